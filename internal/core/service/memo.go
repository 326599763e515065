package service

import (
	"context"
	"fmt"

	"github.com/yndnr/memod/internal/core/domain"
	"github.com/yndnr/memod/internal/telemetry/logger"
)

// MemoRepository defines the storage interface for memo operations.
type MemoRepository interface {
	// Create stores a new memo and assigns its ID.
	Create(ctx context.Context, draft domain.MemoDraft) (*domain.Memo, error)

	// FindByID retrieves a memo by ID.
	FindByID(ctx context.Context, id int64) (*domain.Memo, error)

	// FindAll retrieves every stored memo.
	FindAll(ctx context.Context) ([]*domain.Memo, error)

	// ReplaceByID overwrites title and contents.
	ReplaceByID(ctx context.Context, id int64, draft domain.MemoDraft) (*domain.Memo, error)

	// RenameByID overwrites only the title.
	RenameByID(ctx context.Context, id int64, draft domain.MemoDraft) (*domain.Memo, error)

	// DeleteByID removes a memo.
	DeleteByID(ctx context.Context, id int64) error
}

// OperationRecorder receives the outcome of every memo operation.
type OperationRecorder interface {
	ObserveMemoOperation(op, result string)
}

// Memo operation names reported to the OperationRecorder.
const (
	OpCreate  = "create"
	OpGet     = "get"
	OpList    = "list"
	OpReplace = "replace"
	OpRename  = "rename"
	OpDelete  = "delete"
)

// MemoService handles memo operations.
type MemoService struct {
	repo     MemoRepository
	recorder OperationRecorder
}

// MemoServiceOption configures a MemoService.
type MemoServiceOption func(*MemoService)

// WithRecorder sets the operation recorder.
func WithRecorder(r OperationRecorder) MemoServiceOption {
	return func(s *MemoService) {
		s.recorder = r
	}
}

// NewMemoService creates a new MemoService.
func NewMemoService(repo MemoRepository, opts ...MemoServiceOption) *MemoService {
	s := &MemoService{repo: repo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ============================================================================
// Memo Create Operation
// ============================================================================

// CreateMemoRequest contains parameters for memo creation.
// Neither field is required.
type CreateMemoRequest struct {
	Draft domain.MemoDraft
}

// Create stores a new memo.
func (s *MemoService) Create(ctx context.Context, req *CreateMemoRequest) (*domain.Memo, error) {
	memo, err := s.repo.Create(ctx, req.Draft)
	s.observe(OpCreate, err)
	if err != nil {
		return nil, err
	}

	logger.L(ctx).Debug("memo created",
		"memo_id", memo.ID,
		"contents", memo.Contents)

	return memo, nil
}

// ============================================================================
// Memo Query Operations
// ============================================================================

// Get returns the memo with the given ID.
func (s *MemoService) Get(ctx context.Context, id int64) (*domain.Memo, error) {
	if err := validateID(id); err != nil {
		s.observe(OpGet, err)
		return nil, err
	}

	memo, err := s.repo.FindByID(ctx, id)
	s.observe(OpGet, err)
	return memo, err
}

// List returns every stored memo.
func (s *MemoService) List(ctx context.Context) ([]*domain.Memo, error) {
	memos, err := s.repo.FindAll(ctx)
	s.observe(OpList, err)
	return memos, err
}

// ============================================================================
// Memo Update Operations
// ============================================================================

// UpdateMemoRequest contains parameters for replace and rename.
type UpdateMemoRequest struct {
	ID    int64
	Draft domain.MemoDraft
}

// Replace overwrites both fields of an existing memo.
func (s *MemoService) Replace(ctx context.Context, req *UpdateMemoRequest) (*domain.Memo, error) {
	if err := validateID(req.ID); err != nil {
		s.observe(OpReplace, err)
		return nil, err
	}

	memo, err := s.repo.ReplaceByID(ctx, req.ID, req.Draft)
	s.observe(OpReplace, err)
	if err != nil {
		return nil, err
	}

	logger.L(ctx).Debug("memo replaced", "memo_id", memo.ID)
	return memo, nil
}

// Rename overwrites the title of an existing memo.
func (s *MemoService) Rename(ctx context.Context, req *UpdateMemoRequest) (*domain.Memo, error) {
	if err := validateID(req.ID); err != nil {
		s.observe(OpRename, err)
		return nil, err
	}

	memo, err := s.repo.RenameByID(ctx, req.ID, req.Draft)
	s.observe(OpRename, err)
	if err != nil {
		return nil, err
	}

	logger.L(ctx).Debug("memo renamed", "memo_id", memo.ID)
	return memo, nil
}

// ============================================================================
// Memo Delete Operation
// ============================================================================

// Delete removes the memo with the given ID.
func (s *MemoService) Delete(ctx context.Context, id int64) error {
	if err := validateID(id); err != nil {
		s.observe(OpDelete, err)
		return err
	}

	err := s.repo.DeleteByID(ctx, id)
	s.observe(OpDelete, err)
	if err != nil {
		return err
	}

	logger.L(ctx).Debug("memo deleted", "memo_id", id)
	return nil
}

func validateID(id int64) error {
	if id <= 0 {
		return domain.ErrInvalidArgument.WithDetails(fmt.Sprintf("memo id must be positive, got %d", id))
	}
	return nil
}

// observe reports an operation outcome: "ok", or the error code
// ("MD-MEMO-4040", ...), or "error" for non-domain failures.
func (s *MemoService) observe(op string, err error) {
	if s.recorder == nil {
		return
	}

	result := "ok"
	if err != nil {
		result = domain.GetErrorCode(err)
		if result == "" {
			result = "error"
		}
	}
	s.recorder.ObserveMemoOperation(op, result)
}

package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/yndnr/memod/internal/core/domain"
)

// Store is the in-memory memo table keyed by ID.
type Store struct {
	mu    sync.RWMutex
	memos map[int64]*domain.Memo
	maxID int64 // highest live id, 0 when empty
}

// New creates an empty store.
func New() *Store {
	return &Store{
		memos: make(map[int64]*domain.Memo),
	}
}

// nextID returns max(live ids)+1, or 1 for an empty table.
// Caller must hold s.mu.
func (s *Store) nextID() int64 {
	return s.maxID + 1
}

// rescanMaxID recomputes maxID after the top memo is removed.
// Caller must hold s.mu.
func (s *Store) rescanMaxID() {
	s.maxID = 0
	for id := range s.memos {
		if id > s.maxID {
			s.maxID = id
		}
	}
}

// Create inserts a new memo built from draft and returns a copy of it.
// Absent fields are stored as empty strings.
func (s *Store) Create(_ context.Context, draft domain.MemoDraft) (*domain.Memo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	memo := domain.NewMemo(s.nextID(), draft)
	s.memos[memo.ID] = memo
	s.maxID = memo.ID

	return memo.Clone(), nil
}

// FindByID returns a copy of the memo with the given ID.
func (s *Store) FindByID(_ context.Context, id int64) (*domain.Memo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	memo, ok := s.memos[id]
	if !ok {
		return nil, domain.MemoNotFound(id)
	}
	return memo.Clone(), nil
}

// FindAll returns copies of all memos ordered by ID.
func (s *Store) FindAll(_ context.Context) ([]*domain.Memo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	memos := make([]*domain.Memo, 0, len(s.memos))
	for _, memo := range s.memos {
		memos = append(memos, memo.Clone())
	}

	sort.Slice(memos, func(i, j int) bool {
		return memos[i].ID < memos[j].ID
	})

	return memos, nil
}

// ReplaceByID overwrites title and contents of an existing memo.
// A missing memo is reported before the draft is validated.
func (s *Store) ReplaceByID(_ context.Context, id int64, draft domain.MemoDraft) (*domain.Memo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	memo, ok := s.memos[id]
	if !ok {
		return nil, domain.MemoNotFound(id)
	}

	if err := draft.ValidateReplace(); err != nil {
		return nil, err
	}

	memo.Replace(draft)
	return memo.Clone(), nil
}

// RenameByID overwrites only the title of an existing memo. The draft
// must carry a title and must not carry contents.
func (s *Store) RenameByID(_ context.Context, id int64, draft domain.MemoDraft) (*domain.Memo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	memo, ok := s.memos[id]
	if !ok {
		return nil, domain.MemoNotFound(id)
	}

	if err := draft.ValidateRename(); err != nil {
		return nil, err
	}

	memo.Rename(draft)
	return memo.Clone(), nil
}

// DeleteByID removes the memo with the given ID.
func (s *Store) DeleteByID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.memos[id]; !ok {
		return domain.MemoNotFound(id)
	}

	delete(s.memos, id)
	if id == s.maxID {
		s.rescanMaxID()
	}
	return nil
}

// Count returns the number of live memos.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.memos)
}

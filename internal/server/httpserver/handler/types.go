package handler

import "github.com/yndnr/memod/internal/core/domain"

// MemoRequest is the request body for POST, PUT and PATCH on memos.
// Pointer fields distinguish an absent field from an empty string.
type MemoRequest struct {
	Title    *string `json:"title"`
	Contents *string `json:"contents"`
}

func (r MemoRequest) toDraft() domain.MemoDraft {
	return domain.MemoDraft{Title: r.Title, Contents: r.Contents}
}

// MemoResponse is the wire representation of a memo.
type MemoResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Contents string `json:"contents"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// StatusResponse is the body of /health and /ready.
type StatusResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

func memoToResponse(m *domain.Memo) MemoResponse {
	return MemoResponse{
		ID:       m.ID,
		Title:    m.Title,
		Contents: m.Contents,
	}
}

package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/yndnr/memod/internal/core/domain"
	"github.com/yndnr/memod/internal/core/service"
)

// handleCreateMemo handles POST /memos.
func (h *Handler) handleCreateMemo(w http.ResponseWriter, r *http.Request) {
	draft, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}

	memo, err := h.memoSvc.Create(r.Context(), &service.CreateMemoRequest{Draft: draft})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, memoToResponse(memo))
}

// handleListMemos handles GET /memos.
func (h *Handler) handleListMemos(w http.ResponseWriter, r *http.Request) {
	memos, err := h.memoSvc.List(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	resp := make([]MemoResponse, 0, len(memos))
	for _, m := range memos {
		resp = append(resp, memoToResponse(m))
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

// handleGetMemo handles GET /memos/{id}.
func (h *Handler) handleGetMemo(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	memo, err := h.memoSvc.Get(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, memoToResponse(memo))
}

// handleReplaceMemo handles PUT /memos/{id}.
func (h *Handler) handleReplaceMemo(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	draft, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}

	memo, err := h.memoSvc.Replace(r.Context(), &service.UpdateMemoRequest{ID: id, Draft: draft})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, memoToResponse(memo))
}

// handleRenameMemo handles PATCH /memos/{id}.
func (h *Handler) handleRenameMemo(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}
	draft, ok := h.decodeDraft(w, r)
	if !ok {
		return
	}

	memo, err := h.memoSvc.Rename(r.Context(), &service.UpdateMemoRequest{ID: id, Draft: draft})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, memoToResponse(memo))
}

// handleDeleteMemo handles DELETE /memos/{id}. Success is 200 with no body.
func (h *Handler) handleDeleteMemo(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.memoSvc.Delete(r.Context(), id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	setRequestID(w, r)
	w.WriteHeader(http.StatusOK)
}

// parseID reads the {id} path segment. Anything but a positive decimal
// integer is rejected with 400.
func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		de := domain.ErrInvalidArgument.WithDetails(fmt.Sprintf("memo id must be a positive integer, got %q", raw))
		h.writeError(w, r, http.StatusBadRequest, de.Code, de.Text())
		return 0, false
	}
	return id, true
}

// decodeDraft decodes a memo body. Absent and null fields stay nil.
func (h *Handler) decodeDraft(w http.ResponseWriter, r *http.Request) (domain.MemoDraft, bool) {
	var req MemoRequest
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, domain.ErrBadRequest.Code, "invalid request body")
		return domain.MemoDraft{}, false
	}
	return req.toDraft(), true
}

package domain

import "strings"

// Memo is a stored note identified by a store-assigned numeric ID.
type Memo struct {
	// ID is assigned by the store on creation and never changes.
	ID int64 `json:"id"`

	// Title is the memo headline.
	Title string `json:"title"`

	// Contents is the free-text body.
	Contents string `json:"contents"`
}

// NewMemo builds a memo from a draft. Absent fields become empty strings
// so a stored memo never exposes a missing value.
func NewMemo(id int64, draft MemoDraft) *Memo {
	return &Memo{
		ID:       id,
		Title:    draft.TitleOrEmpty(),
		Contents: draft.ContentsOrEmpty(),
	}
}

// Clone returns a copy of the memo.
func (m *Memo) Clone() *Memo {
	clone := *m
	return &clone
}

// Replace overwrites title and contents from a draft that passed
// ValidateReplace.
func (m *Memo) Replace(draft MemoDraft) {
	m.Title = *draft.Title
	m.Contents = *draft.Contents
}

// Rename overwrites the title from a draft that passed ValidateRename.
// Contents are left untouched.
func (m *Memo) Rename(draft MemoDraft) {
	m.Title = *draft.Title
}

// MemoDraft carries the fields of a create, replace or rename request.
// A nil pointer means the field was not supplied.
type MemoDraft struct {
	Title    *string `json:"title"`
	Contents *string `json:"contents"`
}

// Draft is a convenience constructor for a draft with both fields present.
func Draft(title, contents string) MemoDraft {
	return MemoDraft{Title: &title, Contents: &contents}
}

// TitleOnly returns a draft carrying just a title.
func TitleOnly(title string) MemoDraft {
	return MemoDraft{Title: &title}
}

// HasTitle reports whether the title was supplied.
func (d MemoDraft) HasTitle() bool { return d.Title != nil }

// HasContents reports whether the contents were supplied.
func (d MemoDraft) HasContents() bool { return d.Contents != nil }

// TitleOrEmpty returns the title or "" when absent.
func (d MemoDraft) TitleOrEmpty() string {
	if d.Title == nil {
		return ""
	}
	return *d.Title
}

// ContentsOrEmpty returns the contents or "" when absent.
func (d MemoDraft) ContentsOrEmpty() string {
	if d.Contents == nil {
		return ""
	}
	return *d.Contents
}

// ValidateReplace checks a full replacement: both fields are required.
func (d MemoDraft) ValidateReplace() error {
	var violations []string
	if !d.HasTitle() {
		violations = append(violations, "title is required")
	}
	if !d.HasContents() {
		violations = append(violations, "contents is required")
	}
	if len(violations) > 0 {
		return ErrMemoValidation.WithDetails(strings.Join(violations, "; "))
	}
	return nil
}

// ValidateRename checks a title-only update: title is required and
// contents must not be supplied.
func (d MemoDraft) ValidateRename() error {
	var violations []string
	if !d.HasTitle() {
		violations = append(violations, "title is required")
	}
	if d.HasContents() {
		violations = append(violations, "contents must not be set")
	}
	if len(violations) > 0 {
		return ErrMemoValidation.WithDetails(strings.Join(violations, "; "))
	}
	return nil
}

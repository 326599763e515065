package domain

import (
	"errors"
	"strings"
	"testing"
)

func ptr(s string) *string { return &s }

func TestNewMemo_AbsentFieldsBecomeEmpty(t *testing.T) {
	m := NewMemo(7, MemoDraft{})
	if m.ID != 7 {
		t.Errorf("ID = %d, want 7", m.ID)
	}
	if m.Title != "" || m.Contents != "" {
		t.Errorf("got title=%q contents=%q, want empty strings", m.Title, m.Contents)
	}

	m = NewMemo(1, Draft("A", "b"))
	if m.Title != "A" || m.Contents != "b" {
		t.Errorf("got title=%q contents=%q", m.Title, m.Contents)
	}
}

func TestMemo_Clone(t *testing.T) {
	m := NewMemo(1, Draft("A", "b"))
	c := m.Clone()
	c.Title = "changed"

	if m.Title != "A" {
		t.Error("Clone should not share state with the original")
	}
}

func TestMemoDraft_ValidateReplace(t *testing.T) {
	tests := []struct {
		name    string
		draft   MemoDraft
		wantErr bool
		detail  string
	}{
		{"both present", Draft("t", "c"), false, ""},
		{"empty strings are present", Draft("", ""), false, ""},
		{"missing contents", MemoDraft{Title: ptr("t")}, true, "contents is required"},
		{"missing title", MemoDraft{Contents: ptr("c")}, true, "title is required"},
		{"missing both", MemoDraft{}, true, "title is required; contents is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.ValidateReplace()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateReplace() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrMemoValidation) {
				t.Errorf("error = %v, want ErrMemoValidation", err)
			}
			if !strings.Contains(err.Error(), tt.detail) {
				t.Errorf("error %q should mention %q", err.Error(), tt.detail)
			}
		})
	}
}

func TestMemoDraft_ValidateRename(t *testing.T) {
	tests := []struct {
		name    string
		draft   MemoDraft
		wantErr bool
	}{
		{"title only", TitleOnly("X"), false},
		{"title and contents", Draft("X", "Y"), true},
		{"contents only", MemoDraft{Contents: ptr("Y")}, true},
		{"nothing", MemoDraft{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.ValidateRename()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateRename() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrMemoValidation) {
				t.Errorf("error = %v, want ErrMemoValidation", err)
			}
		})
	}
}

func TestMemo_RenameKeepsContents(t *testing.T) {
	m := NewMemo(1, Draft("old", "body\x00bytes"))
	m.Rename(TitleOnly("new"))

	if m.Title != "new" {
		t.Errorf("Title = %q, want %q", m.Title, "new")
	}
	if m.Contents != "body\x00bytes" {
		t.Errorf("Contents changed to %q", m.Contents)
	}
}

func TestMemo_Replace(t *testing.T) {
	m := NewMemo(3, Draft("a", "b"))
	m.Replace(Draft("c", "d"))

	if m.ID != 3 || m.Title != "c" || m.Contents != "d" {
		t.Errorf("Replace() = %+v", m)
	}
}

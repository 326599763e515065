package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewFormatter(t *testing.T) {
	if _, ok := NewFormatter(FormatJSON, false).(*JSONFormatter); !ok {
		t.Error("expected JSONFormatter")
	}
	if _, ok := NewFormatter(FormatYAML, false).(*YAMLFormatter); !ok {
		t.Error("expected YAMLFormatter")
	}
	tf, ok := NewFormatter("unknown", true).(*TableFormatter)
	if !ok {
		t.Fatal("expected TableFormatter for unknown format")
	}
	if !tf.Wide {
		t.Error("expected Wide=true")
	}
}

type sample struct {
	ID    int64  `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Format(&buf, sample{ID: 7, Title: "milk"}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"id": 7`) || !strings.Contains(out, `"title": "milk"`) {
		t.Errorf("unexpected JSON output:\n%s", out)
	}

	buf.Reset()
	if err := (&JSONFormatter{}).Format(&buf, nil); err != nil {
		t.Fatalf("Format(nil) error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "null" {
		t.Errorf("Format(nil) = %q, want null", got)
	}
}

func TestYAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	data := []sample{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}
	if err := (&YAMLFormatter{}).Format(&buf, data); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "- id: 1\n  title: a\n- id: 2\n  title: b\n"
	if buf.String() != want {
		t.Errorf("Format() =\n%s\nwant\n%s", buf.String(), want)
	}
}

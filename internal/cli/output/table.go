package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"
	"unicode/utf8"
)

// maxCellWidth bounds cells in the narrow view.
const maxCellWidth = 40

// TableFormatter formats data as an aligned text table.
type TableFormatter struct {
	Wide      bool
	NoHeaders bool
}

// Format renders a *Table, a slice of structs, a single struct or a map.
// Anything else falls back to JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	if data == nil {
		return nil
	}
	if t, ok := data.(*Table); ok {
		return t.RenderWithOptions(w, f.NoHeaders)
	}

	t, err := f.toTable(reflect.ValueOf(data))
	if err != nil {
		return (&JSONFormatter{}).Format(w, data)
	}
	return t.RenderWithOptions(w, f.NoHeaders)
}

func (f *TableFormatter) toTable(v reflect.Value) (*Table, error) {
	v = indirect(v)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return f.sliceTable(v)
	case reflect.Struct:
		t := &Table{Headers: []string{"FIELD", "VALUE"}}
		for _, c := range columns(v.Type(), true) {
			t.AddRow(c.name, f.cell(v.Field(c.index)))
		}
		return t, nil
	case reflect.Map:
		t := &Table{Headers: []string{"KEY", "VALUE"}}
		iter := v.MapRange()
		for iter.Next() {
			t.AddRow(fmt.Sprint(iter.Key().Interface()), f.cell(iter.Value()))
		}
		sort.Slice(t.Rows, func(i, j int) bool { return t.Rows[i][0] < t.Rows[j][0] })
		return t, nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", v.Kind())
	}
}

func (f *TableFormatter) sliceTable(v reflect.Value) (*Table, error) {
	elem := v.Type().Elem()
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		t := &Table{Headers: []string{"VALUE"}}
		for i := 0; i < v.Len(); i++ {
			t.AddRow(f.cell(v.Index(i)))
		}
		return t, nil
	}

	cols := columns(elem, f.Wide)
	t := &Table{}
	for _, c := range cols {
		t.Headers = append(t.Headers, strings.ToUpper(c.name))
	}
	for i := 0; i < v.Len(); i++ {
		row := indirect(v.Index(i))
		if !row.IsValid() {
			continue
		}
		cells := make([]string, len(cols))
		for j, c := range cols {
			cells[j] = f.cell(row.Field(c.index))
		}
		t.AddRow(cells...)
	}
	return t, nil
}

func (f *TableFormatter) cell(v reflect.Value) string {
	s := formatValue(v)
	if !f.Wide && utf8.RuneCountInString(s) > maxCellWidth {
		r := []rune(s)
		s = string(r[:maxCellWidth-3]) + "..."
	}
	return s
}

type column struct {
	name  string
	index int
}

// columns lists the displayable fields of a struct type, named by their
// json tag when present.
func columns(t reflect.Type, wide bool) []column {
	var cols []column
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		tag := field.Tag.Get("table")
		if tag == "-" || (tag == "wide" && !wide) {
			continue
		}
		name := field.Name
		if j, _, _ := strings.Cut(field.Tag.Get("json"), ","); j != "" && j != "-" {
			name = j
		}
		cols = append(cols, column{name: name, index: i})
	}
	return cols
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// formatValue renders a single cell. Empty values print as "-".
func formatValue(v reflect.Value) string {
	v = indirect(v)
	if !v.IsValid() {
		return "-"
	}
	switch v.Kind() {
	case reflect.String:
		if v.Len() == 0 {
			return "-"
		}
		// keep rows on one line
		return strings.Join(strings.Fields(v.String()), " ")
	case reflect.Slice, reflect.Array, reflect.Map:
		if v.Len() == 0 {
			return "-"
		}
		b, err := json.Marshal(v.Interface())
		if err != nil {
			return fmt.Sprintf("[%d items]", v.Len())
		}
		return string(b)
	default:
		return fmt.Sprint(v.Interface())
	}
}

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Render renders the table to the writer.
func (t *Table) Render(w io.Writer) error {
	return t.RenderWithOptions(w, false)
}

// RenderWithOptions renders the table, optionally without the header row.
func (t *Table) RenderWithOptions(w io.Writer, noHeaders bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if !noHeaders && len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

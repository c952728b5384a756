package table

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the inferred type of a single cell.
type Kind int

const (
	Missing Kind = iota
	Number
	Bool
	Text
)

// Value is one cell of a table. The raw text is kept for every kind.
type Value struct {
	kind Kind
	raw  string
	num  float64
	b    bool
}

// ParseValue infers the kind of a raw cell.
func ParseValue(s string) Value {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Value{kind: Missing}
	}
	switch strings.ToLower(raw) {
	case "nan", "null", "n/a":
		return Value{kind: Missing, raw: raw}
	case "true":
		return Value{kind: Bool, raw: raw, b: true}
	case "false":
		return Value{kind: Bool, raw: raw}
	}
	if x, ok := parseNumeric(raw); ok {
		return Value{kind: Number, raw: raw, num: x}
	}
	return Value{kind: Text, raw: raw}
}

// NumberValue builds a numeric cell.
func NumberValue(x float64) Value {
	if math.IsNaN(x) {
		return Value{kind: Missing}
	}
	return Value{kind: Number, raw: strconv.FormatFloat(x, 'f', -1, 64), num: x}
}

// TextValue builds a text cell without type inference.
func TextValue(s string) Value { return Value{kind: Text, raw: s} }

// BoolValue builds a boolean cell.
func BoolValue(b bool) Value { return Value{kind: Bool, raw: strconv.FormatBool(b), b: b} }

// Kind reports the inferred type of the cell.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the cell was empty or a null marker.
func (v Value) IsMissing() bool { return v.kind == Missing }

// String returns the cell as it appeared in the file.
func (v Value) String() string { return v.raw }

// Float returns the numeric value; ok is false for anything that is not a number.
func (v Value) Float() (float64, bool) {
	if v.kind != Number || math.IsNaN(v.num) {
		return 0, false
	}
	return v.num, true
}

// Bool returns the boolean value; ok is false for non-boolean cells.
func (v Value) Bool() (bool, bool) {
	if v.kind != Bool {
		return false, false
	}
	return v.b, true
}

// Row holds cells aligned with the owning table's columns.
type Row []Value

// Table is an immutable, column-named row set. Transformations return new tables.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row

	index map[string]int
}

// New builds a table. Rows shorter than columns are padded with missing values.
func New(name string, columns []string, rows []Row) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	idx := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, dup := idx[c]; !dup {
			idx[c] = i
		}
	}
	out := make([]Row, len(rows))
	for i, r := range rows {
		if len(r) < len(cols) {
			padded := make(Row, len(cols))
			copy(padded, r)
			r = padded
		}
		out[i] = r
	}
	return &Table{Name: name, Columns: cols, Rows: out, index: idx}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Has reports whether the column exists.
func (t *Table) Has(col string) bool {
	_, ok := t.index[col]
	return ok
}

// ColumnIndex returns the position of col, or -1.
func (t *Table) ColumnIndex(col string) int {
	if i, ok := t.index[col]; ok {
		return i
	}
	return -1
}

// Get returns the cell at row i in column col, or a missing value when the
// column does not exist.
func (t *Table) Get(i int, col string) Value {
	j, ok := t.index[col]
	if !ok || i < 0 || i >= len(t.Rows) || j >= len(t.Rows[i]) {
		return Value{}
	}
	return t.Rows[i][j]
}

// Where returns a new table holding the rows for which keep returns true.
// Row storage is shared with t; rows are never written after load.
func (t *Table) Where(keep func(i int) bool) *Table {
	rows := make([]Row, 0, len(t.Rows))
	for i, r := range t.Rows {
		if keep(i) {
			rows = append(rows, r)
		}
	}
	return &Table{Name: t.Name, Columns: t.Columns, Rows: rows, index: t.index}
}

// Select projects the table onto cols in the given order. Unknown columns
// become all-missing.
func (t *Table) Select(cols []string) *Table {
	src := make([]int, len(cols))
	for k, c := range cols {
		src[k] = t.ColumnIndex(c)
	}
	rows := make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		nr := make(Row, len(cols))
		for k, j := range src {
			if j >= 0 && j < len(r) {
				nr[k] = r[j]
			}
		}
		rows[i] = nr
	}
	return New(t.Name, cols, rows)
}

// parseNumeric accepts plain decimal numbers plus thousands separators of
// the form "1,234.5". Infinities and NaN are not numbers here.
func parseNumeric(s string) (float64, bool) {
	raw := strings.ReplaceAll(s, "\u00a0", "")
	if strings.Contains(raw, ",") && strings.Contains(raw, ".") && strings.LastIndex(raw, ",") < strings.LastIndex(raw, ".") {
		raw = strings.ReplaceAll(raw, ",", "")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

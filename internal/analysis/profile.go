package analysis

import (
	"math"

	"github.com/KaramelBytes/cronometer-cli/internal/table"
)

// ColumnProfile captures the inferred type and basic statistics of a column.
type ColumnProfile struct {
	Name    string
	Kind    string // numeric|boolean|text|empty
	NonNull int
	Missing int
	// Numeric stats
	Min float64
	Max float64
}

// Profile summarizes every column of an export, in column order.
func Profile(t *table.Table) []ColumnProfile {
	out := make([]ColumnProfile, 0, len(t.Columns))
	for j, col := range t.Columns {
		p := ColumnProfile{Name: col, Min: math.Inf(1), Max: math.Inf(-1)}
		var nums, bools, texts int
		for _, row := range t.Rows {
			v := row[j]
			switch v.Kind() {
			case table.Missing:
				p.Missing++
				continue
			case table.Number:
				x, _ := v.Float()
				p.Min = math.Min(p.Min, x)
				p.Max = math.Max(p.Max, x)
				nums++
			case table.Bool:
				bools++
			default:
				texts++
			}
			p.NonNull++
		}
		// Decide kind by predominant parsed type
		switch {
		case p.NonNull == 0:
			p.Kind = "empty"
		case nums >= bools && nums >= texts:
			p.Kind = "numeric"
		case bools >= texts:
			p.Kind = "boolean"
		default:
			p.Kind = "text"
		}
		if nums == 0 {
			p.Min, p.Max = 0, 0
		}
		out = append(out, p)
	}
	return out
}

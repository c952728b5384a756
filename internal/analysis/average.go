package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/KaramelBytes/cronometer-cli/internal/table"
)

// Columns that never take part in averaging.
var nonNutrientColumns = map[string]bool{
	"Date":      true,
	"Completed": true,
	"_foods":    true,
}

// Average is the mean of one column. Mean is nil when the column held no
// numeric values.
type Average struct {
	Column string
	Mean   *float64
}

// Averages keeps column order; it marshals to a JSON object in that order.
type Averages []Average

// TotalAverage computes the per-column mean over all rows that hold a number
// in that column, rounded to 2 decimals.
func TotalAverage(t *table.Table) Averages {
	out := make(Averages, 0, len(t.Columns))
	for j, col := range t.Columns {
		if nonNutrientColumns[col] || t.ColumnIndex(col) != j {
			continue
		}
		var (
			sum    float64
			n      int
			nonNum int
		)
		for i := range t.Rows {
			v := t.Get(i, col)
			if x, ok := v.Float(); ok {
				sum += x
				n++
			} else if !v.IsMissing() {
				nonNum++
			}
		}
		if n == 0 && nonNum > 0 {
			// text metadata column
			continue
		}
		a := Average{Column: col}
		if n > 0 {
			m := round(sum/float64(n), 2)
			a.Mean = &m
		}
		out = append(out, a)
	}
	return out
}

// Get returns the mean for a column and whether the column was averaged.
func (a Averages) Get(col string) (*float64, bool) {
	for _, e := range a {
		if e.Column == col {
			return e.Mean, true
		}
	}
	return nil, false
}

// Map returns the averages as an unordered map.
func (a Averages) Map() map[string]*float64 {
	m := make(map[string]*float64, len(a))
	for _, e := range a {
		m[e.Column] = e.Mean
	}
	return m
}

// MarshalJSON writes an object whose keys follow column order.
func (a Averages) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('{')
	for i, e := range a {
		if i > 0 {
			b.WriteByte(',')
		}
		k, err := json.Marshal(e.Column)
		if err != nil {
			return nil, fmt.Errorf("marshal column name: %w", err)
		}
		b.Write(k)
		b.WriteByte(':')
		v, err := json.Marshal(e.Mean)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", e.Column, err)
		}
		b.Write(v)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// round rounds half away from zero on the decimal representation, so 0.0625
// becomes 0.063 rather than the binary-float 0.062.
func round(x float64, places int32) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	f, _ := decimal.NewFromFloat(x).Round(places).Float64()
	return f
}

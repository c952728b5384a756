package analysis

import "github.com/KaramelBytes/cronometer-cli/internal/table"

// Point is one dated value of a series.
type Point struct {
	Date  string
	Value float64
}

// Series is a nutrient's daily values. From and To are the first and last
// dates of the source rows, whether or not those rows held a value.
type Series struct {
	Nutrient string
	From     string
	To       string
	Points   []Point
}

// TimeSeries extracts nutrient values in row order, skipping rows where the
// nutrient is missing or non-numeric.
func TimeSeries(t *table.Table, nutrient, dateField string) Series {
	if dateField == "" {
		dateField = "Date"
	}
	s := Series{Nutrient: nutrient}
	if n := t.Len(); n > 0 {
		s.From = t.Get(0, dateField).String()
		s.To = t.Get(n-1, dateField).String()
	}
	for i := range t.Rows {
		x, ok := t.Get(i, nutrient).Float()
		if !ok {
			continue
		}
		s.Points = append(s.Points, Point{Date: t.Get(i, dateField).String(), Value: x})
	}
	return s
}

// Values returns the point values in order.
func (s Series) Values() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Value
	}
	return out
}

// Condense subsamples the values to fit width by keeping every Nth point,
// N = len/width. Series that already fit are returned whole.
func (s Series) Condense(width int) []float64 {
	vals := s.Values()
	if width <= 0 || len(vals) <= width {
		return vals
	}
	step := len(vals) / width
	out := make([]float64, 0, width+1)
	for i := 0; i < len(vals); i += step {
		out = append(out, vals[i])
	}
	return out
}

package filter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KaramelBytes/cronometer-cli/internal/table"
)

const (
	CompletedField = "Completed"
	EnergyField    = "Energy (kcal)"
	SummaryDate    = "Date"
	ServingDate    = "Day"
	dateLayout     = "2006-01-02"
)

// InvalidThresholdError indicates a calorie threshold that is not a number.
type InvalidThresholdError struct {
	Flag  string
	Value string
	Err   error
}

func (e *InvalidThresholdError) Error() string {
	if e.Flag != "" {
		return fmt.Sprintf("invalid --%s threshold %q: expected a number", e.Flag, e.Value)
	}
	return fmt.Sprintf("invalid threshold %q: expected a number", e.Value)
}

func (e *InvalidThresholdError) Unwrap() error { return e.Err }

// InvalidDateError indicates a --since value that is not YYYY-MM-DD.
type InvalidDateError struct {
	Value string
	Err   error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", e.Value)
}

func (e *InvalidDateError) Unwrap() error { return e.Err }

// ParseThreshold parses a calorie threshold as a float.
func ParseThreshold(flag, raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &InvalidThresholdError{Flag: flag, Value: raw, Err: err}
	}
	return f, nil
}

// ParseDate validates an ISO calendar date and returns it in canonical form.
func ParseDate(raw string) (string, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return "", &InvalidDateError{Value: raw, Err: err}
	}
	return d.Format(dateLayout), nil
}

// Complete keeps rows whose Completed cell is boolean true.
func Complete(t *table.Table) *table.Table {
	return t.Where(func(i int) bool {
		done, ok := t.Get(i, CompletedField).Bool()
		return ok && done
	})
}

// OutUnder keeps rows with energy strictly above threshold.
func OutUnder(t *table.Table, threshold float64) *table.Table {
	return t.Where(func(i int) bool {
		kcal, ok := t.Get(i, EnergyField).Float()
		return ok && kcal > threshold
	})
}

// OutOver keeps rows with energy strictly below threshold.
func OutOver(t *table.Table, threshold float64) *table.Table {
	return t.Where(func(i int) bool {
		kcal, ok := t.Get(i, EnergyField).Float()
		return ok && kcal < threshold
	})
}

// Since keeps rows dated on or after since. ISO dates order lexicographically.
func Since(t *table.Table, since, dateField string) *table.Table {
	if dateField == "" {
		dateField = SummaryDate
	}
	return t.Where(func(i int) bool {
		v := t.Get(i, dateField)
		return !v.IsMissing() && v.String() >= since
	})
}

// ByNutrients projects every row onto names followed by the date field.
func ByNutrients(t *table.Table, names []string, dateField string) *table.Table {
	if dateField == "" {
		dateField = SummaryDate
	}
	cols := make([]string, 0, len(names)+1)
	seen := map[string]bool{}
	for _, n := range append(append([]string{}, names...), dateField) {
		if seen[n] {
			continue
		}
		seen[n] = true
		cols = append(cols, n)
	}
	return t.Select(cols)
}

// Options describes a filter chain. Nil thresholds and empty strings disable
// the corresponding step.
type Options struct {
	CompleteOnly bool
	Under        *float64
	Above        *float64
	Since        string
	DateField    string
	Nutrients    []string
}

// Apply runs the enabled filters in the fixed order
// complete, under, above, since, projection.
func Apply(t *table.Table, opt Options) (*table.Table, error) {
	out := t
	if opt.CompleteOnly {
		out = Complete(out)
	}
	if opt.Under != nil {
		out = OutUnder(out, *opt.Under)
	}
	if opt.Above != nil {
		out = OutOver(out, *opt.Above)
	}
	if opt.Since != "" {
		since, err := ParseDate(opt.Since)
		if err != nil {
			return nil, err
		}
		out = Since(out, since, opt.DateField)
	}
	if len(opt.Nutrients) > 0 {
		out = ByNutrients(out, opt.Nutrients, opt.DateField)
	}
	return out, nil
}

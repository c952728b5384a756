package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/KaramelBytes/cronometer-cli/internal/table"
)

const (
	FoodNameField = "Food Name"
	DayField      = "Day"
	DefaultPer    = "Energy (kcal)"
	DefaultTop    = 5

	// Repeat servings whose density is within this fraction of the first
	// logged density collapse into one entry.
	densityTolerance = 0.01
)

// DensityEntry is one ranked food.
type DensityEntry struct {
	Name    string
	Density float64
}

// Ranking is an ordered nutrient density list. Label names the ratio, e.g.
// "Vitamin C (mg) per calorie".
type Ranking struct {
	Nutrient string
	Per      string
	Label    string
	Entries  []DensityEntry
}

// NutrientDensity ranks servings by nutrient/per, highest first, keeping at
// most top entries. A food whose density differs by more than 1% from its
// first occurrence gets an extra entry named "<food> (<day>)".
func NutrientDensity(t *table.Table, nutrient, per string, top int) Ranking {
	if per == "" {
		per = DefaultPer
	}
	r := Ranking{Nutrient: nutrient, Per: per, Label: DensityLabel(nutrient, per), Entries: []DensityEntry{}}
	if top <= 0 {
		return r
	}

	var entries []DensityEntry
	pos := map[string]int{}
	put := func(name string, d float64) {
		if i, ok := pos[name]; ok {
			entries[i].Density = d
			return
		}
		pos[name] = len(entries)
		entries = append(entries, DensityEntry{Name: name, Density: d})
	}
	first := map[string]float64{}

	for i := range t.Rows {
		amount, ok := t.Get(i, nutrient).Float()
		if !ok || amount <= 0 {
			continue
		}
		units, ok := t.Get(i, per).Float()
		if !ok || units <= 0 {
			continue
		}
		d := round(amount/units, 3)
		name := foodName(t.Get(i, FoodNameField))
		stored, seen := first[name]
		if !seen {
			first[name] = d
			put(name, d)
			continue
		}
		if math.Abs(d-stored) > d*densityTolerance {
			put(fmt.Sprintf("%s (%s)", name, t.Get(i, DayField).String()), d)
		}
	}

	sort.SliceStable(entries, func(a, b int) bool { return entries[a].Density > entries[b].Density })
	if len(entries) > top {
		entries = entries[:top]
	}
	r.Entries = append(r.Entries, entries...)
	return r
}

var unitPattern = regexp.MustCompile(`\(([^()]+)\)\s*$`)

// DensityLabel names the ratio column. Energy is reported per calorie; any
// other reference column is reported per its bracketed unit.
func DensityLabel(nutrient, per string) string {
	unit := per
	if per == DefaultPer {
		unit = "calorie"
	} else if m := unitPattern.FindStringSubmatch(per); len(m) == 2 {
		unit = strings.TrimSpace(m[1])
	}
	return fmt.Sprintf("%s per %s", nutrient, unit)
}

func foodName(v table.Value) string {
	s := strings.TrimSpace(v.String())
	if s == "" {
		return "(unnamed)"
	}
	return s
}

// MarshalJSON writes [{"name": ..., "<label>": density}, ...].
func (r Ranking) MarshalJSON() ([]byte, error) {
	label, err := json.Marshal(r.Label)
	if err != nil {
		return nil, fmt.Errorf("marshal label: %w", err)
	}
	var b bytes.Buffer
	b.WriteByte('[')
	for i, e := range r.Entries {
		if i > 0 {
			b.WriteByte(',')
		}
		name, err := json.Marshal(e.Name)
		if err != nil {
			return nil, fmt.Errorf("marshal name: %w", err)
		}
		d, err := json.Marshal(e.Density)
		if err != nil {
			return nil, fmt.Errorf("marshal density for %s: %w", e.Name, err)
		}
		b.WriteString(`{"name":`)
		b.Write(name)
		b.WriteByte(',')
		b.Write(label)
		b.WriteByte(':')
		b.Write(d)
		b.WriteByte('}')
	}
	b.WriteByte(']')
	return b.Bytes(), nil
}

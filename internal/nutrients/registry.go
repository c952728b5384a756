// Package nutrients maps free-form nutrient names to the exact column names
// used in Cronometer exports.
package nutrients

import (
	"fmt"
	"sort"
	"strings"
)

// UnknownNutrientError is returned for an alias that is not in the registry.
type UnknownNutrientError struct {
	Alias string
}

func (e *UnknownNutrientError) Error() string {
	return fmt.Sprintf("failed to find nutrient %q (run `cronometer nutrients` for accepted names)", e.Alias)
}

// entry pairs a canonical column with the extra spellings that resolve to it.
// The lowercased canonical name always resolves as well.
type entry struct {
	column  string
	aliases []string
}

var entries = []entry{
	{"Energy (kcal)", []string{"energy", "kcal", "calories", "calorie", "cal"}},
	{"Alcohol (g)", []string{"alcohol", "ethanol"}},
	{"Caffeine (mg)", []string{"caffeine"}},
	{"Water (g)", []string{"water"}},

	{"B1 (Thiamine) (mg)", []string{"b1", "vit b1", "vitamin b1", "vitamin-b1", "thiamine", "thiamin"}},
	{"B2 (Riboflavin) (mg)", []string{"b2", "vit b2", "vitamin b2", "vitamin-b2", "riboflavin"}},
	{"B3 (Niacin) (mg)", []string{"b3", "vit b3", "vitamin b3", "vitamin-b3", "niacin"}},
	{"B5 (Pantothenic Acid) (mg)", []string{"b5", "vit b5", "vitamin b5", "vitamin-b5", "pantothenic acid", "pantothenic"}},
	{"B6 (Pyridoxine) (mg)", []string{"b6", "vit b6", "vitamin b6", "vitamin-b6", "pyridoxine"}},
	{"B12 (Cobalamin) (µg)", []string{"b12", "vit b12", "vitamin b12", "vitamin-b12", "cobalamin"}},
	{"Folate (µg)", []string{"folate", "folic acid", "b9", "vitamin b9"}},
	{"Vitamin A (µg)", []string{"a", "vit a", "vita", "vitamin a", "vitamin-a"}},
	{"Vitamin C (mg)", []string{"c", "vit c", "vitc", "vitamin c", "vitamin-c", "ascorbic acid"}},
	{"Vitamin D (IU)", []string{"d", "vit d", "vitd", "vitamin d", "vitamin-d"}},
	{"Vitamin E (mg)", []string{"e", "vit e", "vite", "vitamin e", "vitamin-e"}},
	{"Vitamin K (µg)", []string{"k", "vit k", "vitk", "vitamin k", "vitamin-k"}},
	{"Choline (mg)", []string{"choline"}},

	{"Calcium (mg)", []string{"calcium", "ca"}},
	{"Copper (mg)", []string{"copper", "cu"}},
	{"Iron (mg)", []string{"iron", "fe"}},
	{"Magnesium (mg)", []string{"magnesium", "mg"}},
	{"Manganese (mg)", []string{"manganese", "mn"}},
	{"Phosphorus (mg)", []string{"phosphorus", "p"}},
	{"Potassium (mg)", []string{"potassium"}},
	{"Selenium (µg)", []string{"selenium", "se"}},
	{"Sodium (mg)", []string{"sodium", "na", "salt"}},
	{"Zinc (mg)", []string{"zinc", "zn"}},

	{"Carbs (g)", []string{"carbs", "carb", "carbohydrates", "carbohydrate"}},
	{"Fiber (g)", []string{"fiber", "fibre"}},
	{"Starch (g)", []string{"starch"}},
	{"Sugars (g)", []string{"sugars", "sugar"}},
	{"Added Sugars (g)", []string{"added sugars", "added sugar"}},
	{"Net Carbs (g)", []string{"net carbs", "net carb"}},

	{"Fat (g)", []string{"fat", "total fat"}},
	{"Cholesterol (mg)", []string{"cholesterol"}},
	{"Monounsaturated (g)", []string{"monounsaturated", "mufa"}},
	{"Polyunsaturated (g)", []string{"polyunsaturated", "pufa"}},
	{"Saturated (g)", []string{"saturated", "saturated fat", "sfa"}},
	{"Trans-Fats (g)", []string{"trans fats", "trans fat", "trans-fat", "trans"}},
	{"Omega-3 (g)", []string{"omega 3", "omega3", "omega-3", "n-3"}},
	{"Omega-6 (g)", []string{"omega 6", "omega6", "omega-6", "n-6"}},

	{"Protein (g)", []string{"protein"}},
	{"Cystine (g)", []string{"cystine"}},
	{"Histidine (g)", []string{"histidine"}},
	{"Isoleucine (g)", []string{"isoleucine"}},
	{"Leucine (g)", []string{"leucine"}},
	{"Lysine (g)", []string{"lysine"}},
	{"Methionine (g)", []string{"methionine"}},
	{"Phenylalanine (g)", []string{"phenylalanine"}},
	{"Threonine (g)", []string{"threonine"}},
	{"Tryptophan (g)", []string{"tryptophan"}},
	{"Tyrosine (g)", []string{"tyrosine"}},
	{"Valine (g)", []string{"valine"}},
}

var lookup = buildLookup()

func buildLookup() map[string]string {
	m := make(map[string]string, len(entries)*6)
	for _, e := range entries {
		m[key(e.column)] = e.column
		for _, a := range e.aliases {
			m[key(a)] = e.column
		}
	}
	return m
}

func key(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Normalize resolves a case-insensitive alias to its canonical column name.
func Normalize(alias string) (string, error) {
	if col, ok := lookup[key(alias)]; ok {
		return col, nil
	}
	return "", &UnknownNutrientError{Alias: alias}
}

// NormalizeAll resolves every alias, stopping at the first unknown one.
func NormalizeAll(aliases []string) ([]string, error) {
	out := make([]string, 0, len(aliases))
	for _, a := range aliases {
		col, err := Normalize(a)
		if err != nil {
			return nil, err
		}
		out = append(out, col)
	}
	return out, nil
}

// Canonical returns every canonical column name in registry order.
func Canonical() []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.column
	}
	return out
}

// Aliases returns the sorted aliases accepted for a canonical column.
func Aliases(column string) []string {
	for _, e := range entries {
		if e.column == column {
			out := make([]string, len(e.aliases))
			copy(out, e.aliases)
			sort.Strings(out)
			return out
		}
	}
	return nil
}

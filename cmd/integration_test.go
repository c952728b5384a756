package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/cronometer-cli/internal/filter"
	"github.com/KaramelBytes/cronometer-cli/internal/nutrients"
	"github.com/KaramelBytes/cronometer-cli/internal/table"
)

const summaryCSV = `Date,Energy (kcal),Protein (g),Vitamin C (mg),Iron (mg),Completed
2024-01-01,1200,50,30,8,true
2024-01-02,2000,80,90,12,true
2024-01-03,2600,100,,15,false
2024-01-04,1900,70,60,10,true
`

const servingsCSV = `Day,Food Name,Energy (kcal),Vitamin C (mg),Iron (mg)
2024-01-01,Orange,62,70,0.1
2024-01-01,Kale,50,60,1.5
2024-01-02,Orange,62,70.5,0.1
2024-01-02,Beef,250,0,2.6
2024-01-03,Pepper,30,120,0.3
2024-01-03,Orange,120,70,0.2
`

// resetFlags clears values and Changed state left over from earlier runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// runCmd executes the root command with args and returns combined output.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runCmd(t, args...)
	if err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return out
}

// fixtures isolates HOME and writes both exports.
func fixtures(t *testing.T) (summary, servings string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("COLUMNS", "200")
	t.Setenv("LINES", "15")
	summary = filepath.Join(home, "dailysummary.csv")
	servings = filepath.Join(home, "servings.csv")
	require.NoError(t, os.WriteFile(summary, []byte(summaryCSV), 0o644))
	require.NoError(t, os.WriteFile(servings, []byte(servingsCSV), 0o644))
	return summary, servings
}

func TestCLI_AverageJSON(t *testing.T) {
	summary, _ := fixtures(t)

	out := mustRun(t, "average", "--summary", summary, "--complete-only", "--disregard-under", "1500", "--json")
	assert.JSONEq(t, `{"Energy (kcal)": 1950, "Protein (g)": 75, "Vitamin C (mg)": 75, "Iron (mg)": 11}`, out)
	assert.Less(t, strings.Index(out, "Energy (kcal)"), strings.Index(out, "Iron (mg)"))

	out = mustRun(t, "average", "--summary", summary, "--disregard-above", "2000", "--since", "2024-01-02", "--json")
	var got map[string]*float64
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotNil(t, got["Energy (kcal)"])
	assert.Equal(t, 1900.0, *got["Energy (kcal)"])
}

func TestCLI_AverageTableAndOutputFile(t *testing.T) {
	summary, _ := fixtures(t)

	out := mustRun(t, "average", "--summary", summary)
	assert.Contains(t, out, "Averages")
	assert.Contains(t, out, "Average/day")
	assert.Contains(t, out, "Iron (mg)")
	assert.Contains(t, out, "11.25")

	dest := filepath.Join(filepath.Dir(summary), "reports", "avg.json")
	out = mustRun(t, "average", "--summary", summary, "--json", "-o", dest)
	assert.Contains(t, out, "✓ Wrote report to")
	b, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"Iron (mg)": 11.25`)
}

func TestCLI_AverageErrors(t *testing.T) {
	summary, _ := fixtures(t)

	_, err := runCmd(t, "average", "--summary", summary, "--disregard-under", "lots")
	var ite *filter.InvalidThresholdError
	assert.True(t, errors.As(err, &ite), "got %v", err)

	_, err = runCmd(t, "average", "--summary", summary, "--since", "Jan 2")
	var ide *filter.InvalidDateError
	assert.True(t, errors.As(err, &ide), "got %v", err)

	_, err = runCmd(t, "average", "--summary", filepath.Join(t.TempDir(), "nope.csv"))
	var ife *table.InputFileError
	assert.True(t, errors.As(err, &ife), "got %v", err)

	_, err = runCmd(t, "average")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--summary is required")
}

func TestCLI_TimeCharts(t *testing.T) {
	summary, _ := fixtures(t)

	out := mustRun(t, "time", "--summary", summary, "--nutrient", "iron", "--nutrient", "Vit C")
	assert.Contains(t, out, "Iron (mg) over time (2024-01-01 - 2024-01-04)")
	assert.Contains(t, out, "Vitamin C (mg) over time (2024-01-01 - 2024-01-04)")
	assert.Contains(t, out, "15.00")

	out = mustRun(t, "time", "--summary", summary, "--complete-only", "--since", "2024-01-02", "--nutrient", "protein")
	assert.Contains(t, out, "Protein (g) over time (2024-01-02 - 2024-01-04)")

	_, err := runCmd(t, "time", "--summary", summary, "--nutrient", "unobtainium")
	var une *nutrients.UnknownNutrientError
	require.True(t, errors.As(err, &une), "got %v", err)
	assert.Equal(t, "unobtainium", une.Alias)

	_, err = runCmd(t, "time", "--summary", summary)
	assert.Error(t, err)
}

func TestCLI_DensityJSON(t *testing.T) {
	_, servings := fixtures(t)

	out := mustRun(t, "density", "--foods", servings, "--nutrient", "vit c", "--json")
	assert.JSONEq(t, `[
		{"name": "Pepper", "Vitamin C (mg) per calorie": 4},
		{"name": "Kale", "Vitamin C (mg) per calorie": 1.2},
		{"name": "Orange", "Vitamin C (mg) per calorie": 1.129},
		{"name": "Orange (2024-01-03)", "Vitamin C (mg) per calorie": 0.583}
	]`, out)

	out = mustRun(t, "density", "--foods", servings, "--nutrient", "vit c", "--top", "2", "--json")
	assert.JSONEq(t, `[
		{"name": "Pepper", "Vitamin C (mg) per calorie": 4},
		{"name": "Kale", "Vitamin C (mg) per calorie": 1.2}
	]`, out)

	out = mustRun(t, "density", "--foods", servings, "--nutrient", "vit c", "--since", "2024-01-03", "--json")
	assert.JSONEq(t, `[
		{"name": "Pepper", "Vitamin C (mg) per calorie": 4},
		{"name": "Orange", "Vitamin C (mg) per calorie": 0.583}
	]`, out)

	out = mustRun(t, "density", "--foods", servings, "--nutrient", "vit c", "--top", "0", "--json")
	assert.JSONEq(t, `[]`, out)
}

func TestCLI_DensityTables(t *testing.T) {
	_, servings := fixtures(t)

	out := mustRun(t, "density", "--foods", servings, "--nutrient", "iron", "--nutrient", "c")
	assert.Contains(t, out, "Iron (mg) per calorie")
	assert.Contains(t, out, "Vitamin C (mg) per calorie")
	assert.Less(t, strings.Index(out, "Iron (mg) per calorie"), strings.Index(out, "Vitamin C (mg) per calorie"))
	assert.Contains(t, out, "Beef")

	_, err := runCmd(t, "density", "--foods", servings, "--nutrient", "kryptonite")
	var une *nutrients.UnknownNutrientError
	assert.True(t, errors.As(err, &une), "got %v", err)
}

func TestCLI_ConfigDefaults(t *testing.T) {
	_, servings := fixtures(t)

	mustRun(t, "config", "set", "foods_path", servings)
	mustRun(t, "config", "set", "default_top", "3")
	out := mustRun(t, "config", "show")
	assert.Contains(t, out, "default_top: 3")
	assert.Contains(t, out, "foods_path: "+servings)

	out = mustRun(t, "density", "--nutrient", "vitamin c", "--json")
	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 3)

	_, err := runCmd(t, "config", "set", "default_top", "-1")
	assert.Error(t, err)
	_, err = runCmd(t, "config", "set", "colour", "blue")
	assert.Error(t, err)
}

func TestCLI_NutrientsList(t *testing.T) {
	fixtures(t)
	out := mustRun(t, "nutrients")
	assert.Contains(t, out, "Vitamin C (mg)")
	assert.Contains(t, out, "vit c")
}

func TestCLI_Inspect(t *testing.T) {
	summary, _ := fixtures(t)
	out := mustRun(t, "inspect", summary)
	assert.Contains(t, out, "dailysummary.csv (4 rows)")
	assert.Contains(t, out, "Completed")
	assert.Contains(t, out, "boolean")
	assert.Contains(t, out, "1200 … 2600")
}

func TestCLI_ConfigSetKeepsMalformedFile(t *testing.T) {
	fixtures(t)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	path := filepath.Join(home, ".cronometer", "config.yaml")
	body := "summary_path: /data/dailysummary.csv\nfoods_path: /data/servings.csv\ndefault_top: ten\n"
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err = runCmd(t, "config", "set", "chart_width", "60")
	require.Error(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, string(b))
}

func TestCLI_OutputExpandsHome(t *testing.T) {
	summary, _ := fixtures(t)
	out := mustRun(t, "average", "--summary", summary, "--json", "-o", "~/reports/avg.json")
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	dest := filepath.Join(home, "reports", "avg.json")
	assert.Contains(t, out, dest)
	_, err = os.Stat(dest)
	require.NoError(t, err)
}

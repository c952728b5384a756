// Package render presents analysis results as JSON, terminal tables and
// line charts.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/KaramelBytes/cronometer-cli/internal/analysis"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Italic(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numStyle    = cellStyle.Align(lipgloss.Right)
)

// JSON writes v as two-space indented JSON followed by a newline.
func JSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// AveragesTable renders a Nutrient / Average/day table.
func AveragesTable(w io.Writer, title string, avgs analysis.Averages, width int) error {
	rows := make([][]string, len(avgs))
	for i, a := range avgs {
		val := "n/a"
		if a.Mean != nil {
			val = FormatNumber(*a.Mean)
		}
		rows[i] = []string{a.Column, val}
	}
	return Table(w, title, []string{"Nutrient", "Average/day"}, rows, width)
}

// RankingTable renders a Food / <label> table.
func RankingTable(w io.Writer, title string, r analysis.Ranking, width int) error {
	rows := make([][]string, len(r.Entries))
	for i, e := range r.Entries {
		rows[i] = []string{e.Name, FormatNumber(e.Density)}
	}
	return Table(w, title, []string{"Food", r.Label}, rows, width)
}

// FormatNumber prints the shortest decimal form of x.
func FormatNumber(x float64) string { return strconv.FormatFloat(x, 'f', -1, 64) }

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// Table renders rows under headers as a bordered table, shrinking to width
// when it would overflow. A non-empty title is centered above it.
func Table(w io.Writer, title string, headers []string, rows [][]string, width int) error {
	build := func() *table.Table {
		return table.New().
			Border(lipgloss.NormalBorder()).
			Headers(headers...).
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				case row >= 0 && row < len(rows) && col < len(rows[row]) && isNumeric(rows[row][col]):
					return numStyle
				default:
					return cellStyle
				}
			})
	}
	t := build()
	out := t.Render()
	if width > 0 && lipgloss.Width(out) > width {
		out = build().Width(width).Render()
	}
	if title != "" {
		out = lipgloss.PlaceHorizontal(lipgloss.Width(out), lipgloss.Center, titleStyle.Render(title)) + "\n" + out
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

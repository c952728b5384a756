package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"golang.org/x/term"

	"github.com/KaramelBytes/cronometer-cli/internal/analysis"
)

// Size is a terminal or chart area in character cells.
type Size struct {
	Width  int
	Height int
}

var fallbackSize = Size{Width: 80, Height: 20}

// TerminalSize reports the size of stdout's terminal. COLUMNS and LINES take
// precedence; non-terminals fall back to 80x20.
func TerminalSize() Size {
	size := Size{}
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil {
			size = Size{Width: w, Height: h}
		}
	}
	if n := envInt("COLUMNS"); n > 0 {
		size.Width = n
	}
	if n := envInt("LINES"); n > 0 {
		size.Height = n
	}
	if size.Width <= 0 {
		size.Width = fallbackSize.Width
	}
	if size.Height <= 0 {
		size.Height = fallbackSize.Height
	}
	return size
}

func envInt(name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(name)))
	if err != nil {
		return 0
	}
	return n
}

// ChartArea derives the plot area from the terminal: 20 columns are left
// for the axis labels and 5 lines for the caption. Positive overrides win.
func ChartArea(terminal Size, width, height int) Size {
	area := Size{Width: terminal.Width - 20, Height: terminal.Height - 5}
	if width > 0 {
		area.Width = width
	}
	if height > 0 {
		area.Height = height
	}
	if area.Width < 1 {
		area.Width = 1
	}
	if area.Height < 1 {
		area.Height = 1
	}
	return area
}

// Chart plots one nutrient series, subsampled to fit area.Width.
func Chart(w io.Writer, s analysis.Series, area Size) error {
	if len(s.Points) == 0 {
		_, err := fmt.Fprintf(w, "\n%s: no data\n", s.Nutrient)
		return err
	}
	vals := s.Condense(area.Width)
	graph := asciigraph.Plot(vals, asciigraph.Height(area.Height), asciigraph.Precision(2))
	if _, err := fmt.Fprintf(w, "\n%s over time (%s - %s)\n%s\n", s.Nutrient, s.From, s.To, graph); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}

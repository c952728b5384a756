package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/cronometer-cli/internal/filter"
	"github.com/KaramelBytes/cronometer-cli/internal/render"
	"github.com/KaramelBytes/cronometer-cli/internal/table"
	"github.com/KaramelBytes/cronometer-cli/internal/utils"
)

// loadExport resolves the input path from the flag or the configured default
// and loads it.
func loadExport(path, flagName, configured, sheet string) (*table.Table, error) {
	if path == "" {
		path = configured
	}
	if path == "" {
		return nil, fmt.Errorf("--%s is required (or set %s_path with `cronometer config set`)", flagName, flagName)
	}
	path, err := utils.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	t, err := table.Load(path, table.LoadOptions{Sheet: sheet})
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded export", "file", t.Name, "rows", t.Len(), "columns", len(t.Columns))
	return t, nil
}

// calorieBounds parses --disregard-under/--disregard-above. Empty flags yield nil.
func calorieBounds(under, above string) (*float64, *float64, error) {
	var lo, hi *float64
	if under != "" {
		f, err := filter.ParseThreshold("disregard-under", under)
		if err != nil {
			return nil, nil, err
		}
		lo = &f
	}
	if above != "" {
		f, err := filter.ParseThreshold("disregard-above", above)
		if err != nil {
			return nil, nil, err
		}
		hi = &f
	}
	return lo, hi, nil
}

// emit renders a report to stdout, or atomically to output when set.
func emit(cmd *cobra.Command, output string, write func(w io.Writer) error) error {
	if output == "" {
		return write(cmd.OutOrStdout())
	}
	output, err := utils.ExpandHome(output)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	if err := utils.SafeWriteFile(output, buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote report to %s\n", output)
	return nil
}

func tableWidth() int { return render.TerminalSize().Width }

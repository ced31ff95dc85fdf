package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/fastpix/bulk"
)

// printer writes a decoded API response.
type printer func(w io.Writer, v any) error

var printers = map[string]printer{
	"json":   printJSON,
	"yaml":   printYAML,
	"pretty": printPretty,
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func printPretty(w io.Writer, v any) error {
	_, err := pp.Fprintln(w, v)
	return err
}

// printResult writes v in the configured output format.
func printResult(cmd *cobra.Command, v any) error {
	format := "json"
	if cfg != nil {
		format = cfg.Output.Format
	}
	p, ok := printers[format]
	if !ok {
		return fmt.Errorf("invalid output format: %s", format)
	}
	return p(cmd.OutOrStdout(), v)
}

// statusStyles colours human-readable status lines.
type statusStyles struct {
	Success lipgloss.Style
	Warn    lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

var styles = newStyles(false)

func newStyles(color bool) statusStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return statusStyles{Success: plain, Warn: plain, Error: plain, Muted: plain}
	}
	return statusStyles{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// printBulkResult summarises a bulk delete and returns its error.
func printBulkResult(w io.Writer, kind string, result bulk.Result) error {
	for _, id := range result.Succeeded {
		fmt.Fprintln(w, styles.Success.Render(fmt.Sprintf("✓ deleted %s %s", kind, id)))
	}
	for _, failure := range result.Failed {
		fmt.Fprintln(w, styles.Error.Render(fmt.Sprintf("✗ %s", failure.Error())))
	}
	if result.Requested > 1 {
		fmt.Fprintln(w, styles.Muted.Render(fmt.Sprintf("%d of %d succeeded", len(result.Succeeded), result.Requested)))
	}
	return result.Err()
}

// countLabel describes how many items a list response holds, preferring the
// server's total over the page size.
func countLabel(response any) string {
	envelope, ok := response.(map[string]any)
	if !ok {
		if items, ok := response.([]any); ok {
			return fmt.Sprintf("%d", len(items))
		}
		return "unknown"
	}

	if pagination, ok := envelope["pagination"].(map[string]any); ok {
		if total, ok := pagination["totalRecords"].(float64); ok {
			return fmt.Sprintf("%d", int(total))
		}
	}
	if items, ok := envelope["data"].([]any); ok {
		return fmt.Sprintf("%d", len(items))
	}
	return "unknown"
}

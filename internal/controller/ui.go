// Package controller provides output adapters for displaying generator results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "excgen.dev/pkg/excgen/internal/model"
)

// Format selects how statistics are rendered.
type Format string

// Available formats.
const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ParseFormat maps a flag value to a Format, defaulting to FormatTable.
func ParseFormat(value string) (Format, bool) {
	switch Format(value) {
	case "", FormatTable:
		return FormatTable, true
	case FormatYAML:
		return FormatYAML, true
	}

	return FormatTable, false
}

// UI defines how the workflow reports progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayShardWritten(ctx context.Context, summary m.ShardSummary)
	DisplayStats(ctx context.Context, stats m.Stats, format Format) error
	DisplayCheck(ctx context.Context, diffs []m.ShardDiff) error
}

// NewUI returns the interactive UI when attached to a terminal and the plain
// one otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "excgen.dev/pkg/excgen/internal/model"
)

var headingStyle = lipgloss.NewStyle().Bold(true)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayShardWritten reports a finished shard artifact.
func (s *SimpleUI) DisplayShardWritten(ctx context.Context, summary m.ShardSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Wrote shard %d.\n", summary.Index)
}

// DisplayStats prints generation statistics.
func (s *SimpleUI) DisplayStats(ctx context.Context, stats m.Stats, format Format) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if format == FormatYAML {
		out, err := renderStatsYAML(stats)
		if err != nil {
			return err
		}

		s.printf("%s", out)

		return nil
	}

	s.printf("%s", renderStatsTables(stats))

	return nil
}

// DisplayCheck prints the state of every checked artifact and the diffs of stale ones.
func (s *SimpleUI) DisplayCheck(ctx context.Context, diffs []m.ShardDiff) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderCheck(diffs))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderStatsYAML(stats m.Stats) (string, error) {
	out, err := yaml.Marshal(stats)
	if err != nil {
		return "", fmt.Errorf("marshal stats: %w", err)
	}

	return string(out), nil
}

func renderStatsTables(stats m.Stats) string {
	var b bytes.Buffer

	fmt.Fprintf(&b, "%s\n", headingStyle.Render(fmt.Sprintf("%d of %d flag vectors accepted", stats.Accepted, stats.Vectors)))

	b.WriteString("\n" + headingStyle.Render("Pruned by rule") + "\n")
	b.WriteString(renderCountTable("Rule", stats.Pruned, stats.Vectors-stats.Accepted))

	b.WriteString("\n" + headingStyle.Render("Outcomes") + "\n")
	b.WriteString(renderCountTable("Outcome", stats.Outcomes, stats.Accepted))

	b.WriteString("\n" + headingStyle.Render("Alternatives") + "\n")
	b.WriteString(renderCountTable("Alternative", stats.Alternatives, stats.Accepted))

	if len(stats.Shards) > 0 {
		b.WriteString("\n" + headingStyle.Render("Shards") + "\n")
		b.WriteString(renderShardTable(stats.Shards))
	}

	return b.String()
}

func renderCountTable(label string, counts []m.Count, total int) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{label, "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, count := range counts {
		table.Append([]string{count.Name, strconv.Itoa(count.Count)})
	}

	table.SetFooter([]string{"Total", strconv.Itoa(total)})
	table.Render()

	return tableBuffer.String()
}

func renderShardTable(shards []m.ShardSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Shard", "Path", "Tests", "Up to here"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for _, shard := range shards {
		table.Append([]string{
			strconv.Itoa(shard.Index),
			string(shard.Path),
			strconv.Itoa(shard.Tests),
			strconv.Itoa(shard.Cumulative),
		})
	}

	table.Render()

	return tableBuffer.String()
}

func renderCheck(diffs []m.ShardDiff) string {
	var b bytes.Buffer

	for _, diff := range diffs {
		fmt.Fprintf(&b, "%s: %s\n", diff.Shard.Path, diff.Status)

		if diff.Diff != "" {
			b.WriteString(diff.Diff)
		}
	}

	return b.String()
}

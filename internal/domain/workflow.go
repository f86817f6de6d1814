// Package domain contains the test generation pipeline: flag enumeration,
// validation, control-flow simulation, code emission and sharding.
package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"

	"excgen.dev/pkg/excgen/internal/adapter"
	"excgen.dev/pkg/excgen/internal/controller"
	m "excgen.dev/pkg/excgen/internal/model"
)

// ErrOutOfDate is returned by Check when some shard artifact differs from
// freshly generated output.
var ErrOutOfDate = errors.New("shard artifacts are out of date")

// ShardArgs configures sharded output.
type ShardArgs struct {
	Size     int
	Template string
}

// StatsArgs configures the stats report.
type StatsArgs struct {
	ShardArgs
	Format controller.Format
}

// Workflow runs the generator for the CLI commands.
type Workflow interface {
	// Print writes every test as a single combined shard to out.
	Print(ctx context.Context, out io.Writer) error
	// Shard writes one artifact per shard, overwriting existing ones.
	Shard(ctx context.Context, args ShardArgs) error
	// Stats reports validation and simulation statistics without writing artifacts.
	Stats(ctx context.Context, args StatsArgs) error
	// Check compares existing artifacts with freshly generated output.
	Check(ctx context.Context, args ShardArgs) error
}

type workflow struct {
	adapter.ShardStore
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(store adapter.ShardStore, ui controller.UI) Workflow {
	return &workflow{
		ShardStore: store,
		UI:         ui,
	}
}

func (w *workflow) Print(_ context.Context, out io.Writer) error {
	writer := NewShardWriter(NewStreamSink(out), 0)

	summaries, err := writeAll(writer)
	if err != nil {
		return err
	}

	slog.Info("Printed tests", "tests", summaries[len(summaries)-1].Cumulative)

	return nil
}

func (w *workflow) Shard(ctx context.Context, args ShardArgs) error {
	summaries, err := writeShards(w.ShardStore, args, func(summary m.ShardSummary) {
		w.DisplayShardWritten(ctx, summary)
	})
	if err != nil {
		slog.Error("Failed to write shards", "error", err)
		return err
	}

	slog.Info("Wrote shards", "shards", len(summaries), "template", args.Template)

	return nil
}

func writeShards(store adapter.ShardStore, args ShardArgs, onFinish func(m.ShardSummary)) ([]m.ShardSummary, error) {
	if args.Size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidShardSize, args.Size)
	}

	sink, err := NewFileSink(store, args.Template, onFinish)
	if err != nil {
		return nil, err
	}

	return writeAll(NewShardWriter(sink, args.Size))
}

func writeAll(writer *ShardWriter) ([]m.ShardSummary, error) {
	for tc := range Generate() {
		if err := writer.Write(tc); err != nil {
			return nil, err
		}
	}

	return writer.Close()
}

func (w *workflow) Stats(ctx context.Context, args StatsArgs) error {
	if args.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidShardSize, args.Size)
	}

	return w.DisplayStats(ctx, CollectStats(args.ShardArgs), args.Format)
}

// CollectStats validates and simulates every vector and tallies the results.
func CollectStats(args ShardArgs) m.Stats {
	pruned := make(map[Rule]int, len(Rules))
	outcomes := make(map[m.OutcomeKind]int, 3)
	alternatives := make(map[m.Alternative]int, 5)
	stats := m.Stats{}

	for flags := range AllFlags() {
		stats.Vectors++

		if rule := Validate(flags); rule != RuleNone {
			pruned[rule]++
			continue
		}

		stats.Accepted++
		outcomes[Simulate(flags).Outcome.Kind]++
		alternatives[flags.Alternative()]++
	}

	for _, rule := range Rules {
		stats.Pruned = append(stats.Pruned, m.Count{Name: rule.String(), Count: pruned[rule]})
	}

	for _, kind := range []m.OutcomeKind{m.OutcomeNone, m.OutcomeReturn, m.OutcomeThrow} {
		stats.Outcomes = append(stats.Outcomes, m.Count{Name: kind.String(), Count: outcomes[kind]})
	}

	for _, alt := range []m.Alternative{m.AltDirect, m.AltReturnOrThrow, m.AltInvert, m.AltConstructor, m.AltAccessor} {
		stats.Alternatives = append(stats.Alternatives, m.Count{Name: alt.String(), Count: alternatives[alt]})
	}

	stats.Shards = PlanShards(stats.Accepted, args)

	return stats
}

// PlanShards computes the shard layout for total tests without writing them.
func PlanShards(total int, args ShardArgs) []m.ShardSummary {
	if args.Size <= 0 {
		return nil
	}

	shards := make([]m.ShardSummary, 0, total/args.Size+1)
	written := 0

	for index := 1; written < total || index == 1; index++ {
		tests := min(args.Size, total-written)
		written += tests

		shards = append(shards, m.ShardSummary{
			Index:      index,
			Path:       ShardPath(args.Template, index),
			Tests:      tests,
			Cumulative: written,
		})
	}

	return shards
}

func (w *workflow) Check(ctx context.Context, args ShardArgs) error {
	diffs, err := w.diffShards(args)
	if err != nil {
		return err
	}

	if err := w.DisplayCheck(ctx, diffs); err != nil {
		return err
	}

	for _, diff := range diffs {
		if diff.Status != m.UpToDate {
			return ErrOutOfDate
		}
	}

	return nil
}

// diffShards regenerates all shards in memory and compares each with the
// artifact in the store. An artifact right after the last shard is reported
// as unexpected.
func (w *workflow) diffShards(args ShardArgs) ([]m.ShardDiff, error) {
	expected := adapter.NewMemoryShardStore()

	summaries, err := writeShards(expected, args, nil)
	if err != nil {
		return nil, err
	}

	diffs := make([]m.ShardDiff, len(summaries))

	var group errgroup.Group

	for i, summary := range summaries {
		group.Go(func() error {
			want, err := expected.ReadFile(summary.Path)
			if err != nil {
				return err
			}

			diff, err := w.diffShard(summary, want)
			if err != nil {
				return err
			}

			diffs[i] = diff

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	next := m.ShardSummary{Index: len(summaries) + 1, Path: ShardPath(args.Template, len(summaries)+1)}

	extra, err := w.Exists(next.Path)
	if err != nil {
		return nil, err
	}

	if extra {
		diffs = append(diffs, m.ShardDiff{Shard: next, Status: m.Unexpected})
	}

	return diffs, nil
}

func (w *workflow) diffShard(summary m.ShardSummary, want []byte) (m.ShardDiff, error) {
	result := m.ShardDiff{Shard: summary, Status: m.UpToDate}

	exists, err := w.Exists(summary.Path)
	if err != nil {
		return result, err
	}

	if !exists {
		result.Status = m.Missing
		return result, nil
	}

	got, err := w.ReadFile(summary.Path)
	if err != nil {
		return result, err
	}

	if bytes.Equal(got, want) {
		return result, nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(got)),
		B:        difflib.SplitLines(string(want)),
		FromFile: string(summary.Path),
		ToFile:   string(summary.Path) + " (generated)",
		Context:  3,
	})
	if err != nil {
		return result, fmt.Errorf("diff shard %s: %w", summary.Path, err)
	}

	result.Status = m.Stale
	result.Diff = diff

	slog.Debug("Shard artifact is stale", "path", summary.Path)

	return result, nil
}

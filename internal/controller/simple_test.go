package controller

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "excgen.dev/pkg/excgen/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func testStats() m.Stats {
	return m.Stats{
		Vectors:  16,
		Accepted: 4,
		Pruned: []m.Count{
			{Name: "single-alternative", Count: 7},
			{Name: "catch-or-finally", Count: 5},
		},
		Outcomes: []m.Count{
			{Name: "none", Count: 1},
			{Name: "return", Count: 2},
			{Name: "throw", Count: 1},
		},
		Alternatives: []m.Count{
			{Name: "direct", Count: 3},
			{Name: "invertFunctionCall", Count: 1},
		},
		Shards: []m.ShardSummary{
			{Index: 1, Path: "out/t-1.js", Tests: 3, Cumulative: 3},
			{Index: 2, Path: "out/t-2.js", Tests: 1, Cumulative: 4},
		},
	}
}

func TestSimpleUI_DisplayShardWritten(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayShardWritten(context.Background(), m.ShardSummary{Index: 2, Path: "out/t-2.js"})

	assert.Equal(t, "Wrote shard 2.\n", buf.String())
}

func TestSimpleUI_DisplayShardWritten_Cancelled(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui.DisplayShardWritten(ctx, m.ShardSummary{Index: 1})

	assert.Empty(t, buf.String())
}

func TestSimpleUI_DisplayStats_Table(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplayStats(context.Background(), testStats(), FormatTable))

	out := buf.String()
	for _, want := range []string{
		"4 of 16 flag vectors accepted",
		"Pruned by rule",
		"single-alternative",
		"catch-or-finally",
		"Outcomes",
		"invertFunctionCall",
		"Shards",
		"out/t-2.js",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSimpleUI_DisplayStats_YAML(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.DisplayStats(context.Background(), testStats(), FormatYAML))

	var got m.Stats
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testStats(), got)
}

func TestSimpleUI_DisplayStats_Cancelled(t *testing.T) {
	ui, _ := newTestSimpleUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, ui.DisplayStats(ctx, testStats(), FormatTable), context.Canceled)
}

func TestSimpleUI_DisplayCheck(t *testing.T) {
	ui, buf := newTestSimpleUI()

	diffs := []m.ShardDiff{
		{Shard: m.ShardSummary{Index: 1, Path: "out/t-1.js"}, Status: m.UpToDate},
		{Shard: m.ShardSummary{Index: 2, Path: "out/t-2.js"}, Status: m.Stale, Diff: "--- out/t-2.js\n+++ out/t-2.js (generated)\n"},
		{Shard: m.ShardSummary{Index: 3, Path: "out/t-3.js"}, Status: m.Unexpected},
	}

	require.NoError(t, ui.DisplayCheck(context.Background(), diffs))

	want := "out/t-1.js: up to date\n" +
		"out/t-2.js: stale\n" +
		"--- out/t-2.js\n+++ out/t-2.js (generated)\n" +
		"out/t-3.js: unexpected\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderStatsTables_OmitsEmptyShards(t *testing.T) {
	stats := testStats()
	stats.Shards = nil

	assert.NotContains(t, renderStatsTables(stats), "Shards")
}

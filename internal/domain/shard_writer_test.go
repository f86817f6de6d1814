package domain_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"excgen.dev/pkg/excgen/internal/adapter"
	"excgen.dev/pkg/excgen/internal/domain"
	m "excgen.dev/pkg/excgen/internal/model"
)

const testTemplate = "out/inline-exception-{shard}.js"

func writeTests(t *testing.T, writer *domain.ShardWriter) []m.ShardSummary {
	t.Helper()

	for tc := range domain.Generate() {
		require.NoError(t, writer.Write(tc))
	}

	summaries, err := writer.Close()
	require.NoError(t, err)

	return summaries
}

func TestShardPath(t *testing.T) {
	assert.Equal(t, m.Path("out/inline-exception-3.js"), domain.ShardPath(testTemplate, 3))
	assert.Equal(t, m.Path("a-12/b-12.js"), domain.ShardPath("a-{shard}/b-{shard}.js", 12))
}

func TestShardWriter_Stream(t *testing.T) {
	var out bytes.Buffer

	summaries := writeTests(t, domain.NewShardWriter(domain.NewStreamSink(&out), 0))

	assert.Equal(t, []m.ShardSummary{{Index: 1, Tests: 186, Cumulative: 186}}, summaries)

	if diff := cmp.Diff(readGolden(t, "all.golden.js"), out.String()); diff != "" {
		t.Errorf("stream output mismatch (-want +got):\n%s", diff)
	}
}

func TestShardWriter_Files(t *testing.T) {
	store := adapter.NewMemoryShardStore()

	var finished []m.ShardSummary

	sink, err := domain.NewFileSink(store, testTemplate, func(summary m.ShardSummary) {
		finished = append(finished, summary)
	})
	require.NoError(t, err)

	writer := domain.NewShardWriter(sink, 94)
	summaries := writeTests(t, writer)

	want := []m.ShardSummary{
		{Index: 1, Path: "out/inline-exception-1.js", Tests: 94, Cumulative: 94},
		{Index: 2, Path: "out/inline-exception-2.js", Tests: 92, Cumulative: 186},
	}

	assert.Equal(t, want, summaries)
	assert.Equal(t, want, finished)
	assert.Equal(t, domain.Tally{Shard: 2, InShard: 92, Total: 186}, writer.Tally())

	goldens := map[m.Path]string{
		"out/inline-exception-1.js": "shard-1.golden.js",
		"out/inline-exception-2.js": "shard-2.golden.js",
	}

	for path, golden := range goldens {
		got, err := store.ReadFile(path)
		require.NoError(t, err)

		if diff := cmp.Diff(readGolden(t, golden), string(got)); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", path, diff)
		}
	}

	exists, err := store.Exists("out/inline-exception-3.js")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestShardWriter_ExactMultipleLeavesNoEmptyShard(t *testing.T) {
	store := adapter.NewMemoryShardStore()

	sink, err := domain.NewFileSink(store, testTemplate, nil)
	require.NoError(t, err)

	summaries := writeTests(t, domain.NewShardWriter(sink, 93))

	require.Len(t, summaries, 2)
	assert.Equal(t, 93, summaries[1].Tests)
	assert.Equal(t, 186, summaries[1].Cumulative)

	exists, err := store.Exists("out/inline-exception-3.js")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestShardWriter_Empty(t *testing.T) {
	var out bytes.Buffer

	writer := domain.NewShardWriter(domain.NewStreamSink(&out), 0)

	summaries, err := writer.Close()
	require.NoError(t, err)

	assert.Equal(t, []m.ShardSummary{{Index: 1}}, summaries)
	assert.Contains(t, out.String(), "// Printing all shards together to stdout.\n\n")
	assert.Contains(t, out.String(), "// 0 tests in this shard.\n// 0 tests up to here.\n")
}

func TestShardWriter_HeaderAndFooter(t *testing.T) {
	store := adapter.NewMemoryShardStore()

	sink, err := domain.NewFileSink(store, testTemplate, nil)
	require.NoError(t, err)

	writer := domain.NewShardWriter(sink, 94)
	summaries := writeTests(t, writer)
	require.Len(t, summaries, 2)

	got, err := store.ReadFile(summaries[1].Path)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(got, []byte("// Shard 2.\n\n// Copyright 2016 the V8 project authors.")))
	assert.True(t, bytes.HasSuffix(got, []byte("// 92 tests in this shard.\n// 186 tests up to here.\n\nrunThisShard();\n")))
}

func TestNewFileSink_InvalidTemplate(t *testing.T) {
	_, err := domain.NewFileSink(adapter.NewMemoryShardStore(), "out/inline-exception.js", nil)

	require.ErrorIs(t, err, domain.ErrInvalidTemplate)
}

func TestShardWriter_MissingDirectory(t *testing.T) {
	template := filepath.Join(t.TempDir(), "missing", "shard-{shard}.js")

	sink, err := domain.NewFileSink(adapter.NewLocalShardStore(), template, nil)
	require.NoError(t, err)

	tc := domain.NewTestCase(1, m.NewFlags(m.TryReturns, m.DoCatch))

	err = domain.NewShardWriter(sink, 10).Write(tc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open shard 1")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

var errWrite = errors.New("disk full")

func TestShardWriter_WriteError(t *testing.T) {
	writer := domain.NewShardWriter(domain.NewStreamSink(failingWriter{}), 0)

	err := writer.Write(domain.NewTestCase(1, m.NewFlags(m.TryReturns, m.DoCatch)))

	require.ErrorIs(t, err, errWrite)
}

package domain

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"excgen.dev/pkg/excgen/internal/adapter"
	m "excgen.dev/pkg/excgen/internal/model"
)

// ShardPlaceholder marks where the 1-based shard index goes in a file name template.
const ShardPlaceholder = "{shard}"

// ErrInvalidTemplate is returned when a shard file name template cannot
// distinguish shards.
var ErrInvalidTemplate = errors.New("shard template must contain " + ShardPlaceholder)

// ErrInvalidShardSize is returned for a non-positive shard size.
var ErrInvalidShardSize = errors.New("shard size must be positive")

// ShardPath expands template for the given 1-based shard index.
func ShardPath(template string, index int) m.Path {
	return m.Path(strings.ReplaceAll(template, ShardPlaceholder, strconv.Itoa(index)))
}

// Tally counts written tests. It is owned by a ShardWriter and advanced as
// tests are written.
type Tally struct {
	// Shard is the 1-based index of the current shard, 0 before the first one.
	Shard int
	// InShard counts tests in the current shard.
	InShard int
	// Total counts tests written so far across all shards.
	Total int
}

// ShardSink decides where shard text goes.
type ShardSink interface {
	// Open starts shard index and returns the writer for its text.
	Open(index int) (io.Writer, m.Path, error)
	// Finish completes the shard described by summary.
	Finish(summary m.ShardSummary) error
	// Sharded reports whether every shard is a separate artifact.
	Sharded() bool
}

// ShardWriter partitions test cases into contiguous shards of a fixed size
// and wraps every shard with the shared boilerplate.
type ShardWriter struct {
	sink      ShardSink
	size      int
	tally     Tally
	out       io.Writer
	path      m.Path
	summaries []m.ShardSummary
}

// NewShardWriter returns a writer emitting into sink. A size of zero or less
// puts every test into a single shard.
func NewShardWriter(sink ShardSink, size int) *ShardWriter {
	return &ShardWriter{sink: sink, size: size}
}

// Tally returns the counts so far.
func (w *ShardWriter) Tally() Tally {
	return w.tally
}

// Write appends tc to the current shard, opening one if needed and closing
// it once it is full.
func (w *ShardWriter) Write(tc m.TestCase) error {
	if w.out == nil {
		if err := w.open(); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w.out, tc.Source); err != nil {
		return fmt.Errorf("write test %d to shard %d: %w", tc.Index, w.tally.Shard, err)
	}

	w.tally.InShard++
	w.tally.Total++

	if w.size > 0 && w.tally.InShard >= w.size {
		return w.finish()
	}

	return nil
}

// Close finishes the current shard and returns a summary of every shard
// written. When no test was written a single empty shard is produced.
func (w *ShardWriter) Close() ([]m.ShardSummary, error) {
	if w.out == nil && w.tally.Shard == 0 {
		if err := w.open(); err != nil {
			return nil, err
		}
	}

	if w.out != nil {
		if err := w.finish(); err != nil {
			return nil, err
		}
	}

	return w.summaries, nil
}

func (w *ShardWriter) open() error {
	w.tally.Shard++
	w.tally.InShard = 0

	out, path, err := w.sink.Open(w.tally.Shard)
	if err != nil {
		return fmt.Errorf("open shard %d: %w", w.tally.Shard, err)
	}

	if _, err := io.WriteString(out, shardHeader(w.tally.Shard, w.sink.Sharded())); err != nil {
		return fmt.Errorf("write header of shard %d: %w", w.tally.Shard, err)
	}

	w.out = out
	w.path = path

	return nil
}

func (w *ShardWriter) finish() error {
	if _, err := io.WriteString(w.out, shardFooter(w.tally)); err != nil {
		return fmt.Errorf("write footer of shard %d: %w", w.tally.Shard, err)
	}

	summary := m.ShardSummary{
		Index:      w.tally.Shard,
		Path:       w.path,
		Tests:      w.tally.InShard,
		Cumulative: w.tally.Total,
	}

	w.out = nil
	w.summaries = append(w.summaries, summary)

	slog.Debug("Finished shard", "shard", summary.Index, "tests", summary.Tests, "total", summary.Cumulative)

	return w.sink.Finish(summary)
}

// StreamSink writes all tests as one shard into a single stream.
type StreamSink struct {
	out io.Writer
}

// NewStreamSink returns a sink writing to out.
func NewStreamSink(out io.Writer) *StreamSink {
	return &StreamSink{out: out}
}

// Open implements ShardSink.
func (s *StreamSink) Open(_ int) (io.Writer, m.Path, error) {
	if _, err := io.WriteString(s.out, streamBanner); err != nil {
		return nil, "", err
	}

	return s.out, "", nil
}

// Finish implements ShardSink.
func (s *StreamSink) Finish(_ m.ShardSummary) error {
	return nil
}

// Sharded implements ShardSink.
func (s *StreamSink) Sharded() bool {
	return false
}

// FileSink writes every shard to its own artifact in a ShardStore,
// overwriting existing artifacts.
type FileSink struct {
	store    adapter.ShardStore
	template string
	current  io.WriteCloser
	onFinish func(m.ShardSummary)
}

// NewFileSink returns a sink naming artifacts after template. onFinish, if
// not nil, is called after each artifact is closed.
func NewFileSink(store adapter.ShardStore, template string, onFinish func(m.ShardSummary)) (*FileSink, error) {
	if !strings.Contains(template, ShardPlaceholder) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTemplate, template)
	}

	return &FileSink{store: store, template: template, onFinish: onFinish}, nil
}

// Open implements ShardSink.
func (s *FileSink) Open(index int) (io.Writer, m.Path, error) {
	path := ShardPath(s.template, index)

	file, err := s.store.Create(path)
	if err != nil {
		return nil, "", err
	}

	s.current = file

	return file, path, nil
}

// Finish implements ShardSink.
func (s *FileSink) Finish(summary m.ShardSummary) error {
	if s.current == nil {
		return nil
	}

	err := s.current.Close()
	s.current = nil

	if err != nil {
		return fmt.Errorf("close shard %s: %w", summary.Path, err)
	}

	if s.onFinish != nil {
		s.onFinish(summary)
	}

	return nil
}

// Sharded implements ShardSink.
func (s *FileSink) Sharded() bool {
	return true
}

// Package benchlog appends one CSV row per target per run to a benchmark
// log, writing the header only once. The strategy name, worker count, and
// keyspace estimate are threaded through from the run itself rather than
// hardcoded.
//
// No CSV library appears anywhere in the example pack (see DESIGN.md), so
// this is built on stdlib encoding/csv rather than a third-party writer.
package benchlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/blitzforge/blitzforge/internal/engine"
	"github.com/blitzforge/blitzforge/internal/target"
)

var header = []string{
	"timestamp",
	"target_id",
	"algorithm",
	"strategy",
	"workers",
	"keyspace_size",
	"guesses_tried",
	"time_s",
	"hashes_per_s",
	"found",
	"password_length",
	"found_in_s",
}

// RunContext carries the per-run fields a log row needs beyond the
// engine's own result and target list.
type RunContext struct {
	Strategy     string
	Workers      int
	KeyspaceSize string // "unknown" if the generator couldn't estimate it
}

// Logger appends CSV rows to an open file, writing the fixed header exactly
// once (when the file did not already exist).
type Logger struct {
	file *os.File
	w    *csv.Writer
}

// Open opens (or creates) path for appending and writes the header row if
// the file is new.
func Open(path string) (*Logger, error) {
	_, statErr := os.Stat(path)
	existed := statErr == nil

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening benchmark log %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	l := &Logger{file: f, w: w}

	if !existed {
		if err := w.Write(header); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing benchmark log header: %w", err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, err
		}
	}

	return l, nil
}

// LogResult writes one row per target, whether or not it was found.
func (l *Logger) LogResult(result engine.CrackingResult, targets []target.Target, ctx RunContext) error {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	byTarget := make(map[string]target.Match, len(result.Matches))
	for _, m := range result.Matches {
		byTarget[m.TargetID] = m
	}

	for _, t := range targets {
		m, found := byTarget[t.ID]

		passwordLen := ""
		foundInS := ""
		if found {
			passwordLen = strconv.Itoa(len(m.Password))
			foundInS = strconv.FormatFloat(m.SecondsSinceStart, 'f', -1, 64)
		}

		row := []string{
			timestamp,
			t.ID,
			t.Algorithm.String(),
			ctx.Strategy,
			strconv.Itoa(ctx.Workers),
			ctx.KeyspaceSize,
			strconv.FormatUint(result.Statistics.GuessesTried, 10),
			strconv.FormatFloat(result.TotalTime, 'f', -1, 64),
			strconv.FormatFloat(result.Statistics.HashesPerSecond, 'f', -1, 64),
			strconv.FormatBool(found),
			passwordLen,
			foundInS,
		}

		if err := l.w.Write(row); err != nil {
			return fmt.Errorf("writing benchmark log row for target %s: %w", t.ID, err)
		}
	}

	l.w.Flush()
	return l.w.Error()
}

// Close releases the underlying file handle.
func (l *Logger) Close() error {
	return l.file.Close()
}

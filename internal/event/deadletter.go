package event

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/osse101/Casino_Go/internal/logger"
)

// DeadLetterSchemaVersion tags each line so old files can still be replayed
// after DeadLetterEntry changes
const DeadLetterSchemaVersion = "1.0"

// DeadLetterEntry is one event the publisher gave up on
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends entries to a JSON-lines file. Safe for concurrent use.
type DeadLetterWriter struct {
	mu  sync.Mutex
	f   *os.File
	enc *json.Encoder
	now func() time.Time
}

// NewDeadLetterWriter opens path for appending, creating parent directories
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), DeadLetterDirPermissions); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDeadLetterOpen, err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDeadLetterOpen, err)
	}
	return &DeadLetterWriter{f: f, enc: json.NewEncoder(f), now: time.Now}, nil
}

func (w *DeadLetterWriter) Write(evt Event, attempts int, lastErr error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Event:         evt,
		Attempts:      attempts,
	}
	if lastErr != nil {
		entry.LastError = lastErr.Error()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	entry.Timestamp = w.now().UTC()

	logger.FromContext(context.Background()).Warn(LogMsgEventDeadLettered,
		"event_type", evt.Type,
		"attempts", attempts,
		"error", entry.LastError)

	// Encoder.Encode terminates each entry with a newline
	return w.enc.Encode(entry)
}

func (w *DeadLetterWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.f.Close()
}

// ReadDeadLetters parses a dead-letter stream. Blank lines are skipped; a
// malformed line aborts with its line number.
func ReadDeadLetters(r io.Reader) ([]DeadLetterEntry, error) {
	var entries []DeadLetterEntry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), DeadLetterMaxLineBytes)

	for line := 1; scanner.Scan(); line++ {
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var e DeadLetterEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return entries, fmt.Errorf("%s at line %d: %w", ErrMsgDeadLetterParse, line, err)
		}
		entries = append(entries, e)
	}
	return entries, scanner.Err()
}

// Replay republishes entries on bus and returns how many went through. Failures
// are collected rather than stopping the run; cancellation stops it.
func Replay(ctx context.Context, bus Bus, entries []DeadLetterEntry) (int, error) {
	var (
		replayed int
		errs     []error
	)
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return replayed, err
		}
		if err := bus.Publish(ctx, e.Event); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Event.Type, err))
			continue
		}
		replayed++
	}
	return replayed, errors.Join(errs...)
}

package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Recorder is a slog.Handler that keeps a rendered copy of every warning and
// error and forwards all records to the next handler.
type Recorder struct {
	next  slog.Handler
	attrs []slog.Attr
	store *recordStore
}

type recordStore struct {
	mu       sync.Mutex
	messages []string
}

// NewRecorder wraps next. A nil next records only.
func NewRecorder(next slog.Handler) *Recorder {
	return &Recorder{next: next, store: &recordStore{}}
}

// Logger returns a logger writing to r.
func (r *Recorder) Logger() *slog.Logger {
	return slog.New(r)
}

// Enabled implements slog.Handler.
func (r *Recorder) Enabled(ctx context.Context, level slog.Level) bool {
	if level >= slog.LevelWarn {
		return true
	}

	return r.next != nil && r.next.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (r *Recorder) Handle(ctx context.Context, rec slog.Record) error {
	if rec.Level >= slog.LevelWarn {
		r.store.add(render(rec, r.attrs))
	}

	if r.next != nil && r.next.Enabled(ctx, rec.Level) {
		return r.next.Handle(ctx, rec)
	}

	return nil
}

// WithAttrs implements slog.Handler.
func (r *Recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := &Recorder{store: r.store, attrs: append(append([]slog.Attr(nil), r.attrs...), attrs...)}
	if r.next != nil {
		clone.next = r.next.WithAttrs(attrs)
	}

	return clone
}

// WithGroup implements slog.Handler. Groups are not reflected in the
// recorded messages.
func (r *Recorder) WithGroup(name string) slog.Handler {
	clone := &Recorder{store: r.store, attrs: r.attrs}
	if r.next != nil {
		clone.next = r.next.WithGroup(name)
	}

	return clone
}

// Messages returns the recorded warnings in the order they were logged.
func (r *Recorder) Messages() []string {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return append([]string(nil), r.store.messages...)
}

func (s *recordStore) add(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, msg)
}

func render(rec slog.Record, attrs []slog.Attr) string {
	var b strings.Builder

	b.WriteString(rec.Message)

	write := func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value.Resolve())
		return true
	}

	for _, a := range attrs {
		write(a)
	}

	rec.Attrs(write)

	return b.String()
}

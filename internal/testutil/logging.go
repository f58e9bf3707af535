package testutil

import (
	"context"
	"log/slog"
	"sync"
)

// TestLogHandler records every log record. Handlers derived with WithAttrs share the same
// record list and prepend their attributes.
type TestLogHandler struct {
	store *recordStore
	attrs []slog.Attr
}

type recordStore struct {
	mu      sync.Mutex
	records []TestLogRecord
}

type TestLogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

func NewTestLogHandler() *TestLogHandler {
	return &TestLogHandler{store: &recordStore{}}
}

func (h *TestLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return true
}

func (h *TestLogHandler) Handle(ctx context.Context, record slog.Record) error {
	attrs := make(map[string]any, len(h.attrs)+record.NumAttrs())
	for _, attr := range h.attrs {
		attrs[attr.Key] = attr.Value.Any()
	}
	record.Attrs(func(attr slog.Attr) bool {
		attrs[attr.Key] = attr.Value.Any()
		return true
	})

	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	h.store.records = append(h.store.records, TestLogRecord{
		Level:   record.Level,
		Message: record.Message,
		Attrs:   attrs,
	})

	return nil
}

func (h *TestLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &TestLogHandler{store: h.store, attrs: merged}
}

func (h *TestLogHandler) WithGroup(name string) slog.Handler {
	return h
}

func (h *TestLogHandler) GetRecords() []TestLogRecord {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	return append([]TestLogRecord(nil), h.store.records...)
}

func (h *TestLogHandler) GetRecordsByLevel(level slog.Level) []TestLogRecord {
	var filtered []TestLogRecord
	for _, record := range h.GetRecords() {
		if record.Level == level {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// Find returns the first record with message at level.
func (h *TestLogHandler) Find(level slog.Level, message string) (TestLogRecord, bool) {
	for _, record := range h.GetRecordsByLevel(level) {
		if record.Message == message {
			return record, true
		}
	}
	return TestLogRecord{}, false
}

func (h *TestLogHandler) Reset() {
	h.store.mu.Lock()
	defer h.store.mu.Unlock()
	h.store.records = h.store.records[:0]
}

func (h *TestLogHandler) ContainsMessage(level slog.Level, message string) bool {
	_, ok := h.Find(level, message)
	return ok
}

func (h *TestLogHandler) CountByLevel(level slog.Level) int {
	return len(h.GetRecordsByLevel(level))
}

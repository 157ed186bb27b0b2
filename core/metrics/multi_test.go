package metrics

import (
	"errors"
	"testing"
)

type recordSink struct {
	NopRecorder
	count int
	err   error
}

func (r *recordSink) RecordSearch(SearchEvent) error {
	r.count++
	return r.err
}

func (r *recordSink) RecordFailure(float64) error {
	r.count++
	return r.err
}

// TestMultiRecorder ensures events are forwarded to all recorders.
func TestMultiRecorder(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	m := NewMultiRecorder(s1, nil, s2)
	if err := m.RecordSearch(SearchEvent{Alpha: 0.5}); err != nil {
		t.Fatalf("record search: %v", err)
	}
	if err := m.RecordFailure(0.5); err != nil {
		t.Fatalf("record failure: %v", err)
	}
	if s1.count != 2 || s2.count != 2 {
		t.Fatalf("events not forwarded")
	}
}

func TestMultiRecorderJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	ok := &recordSink{}
	m := NewMultiRecorder(&recordSink{err: boom}, ok)
	err := m.RecordSearch(SearchEvent{})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if ok.count != 1 {
		t.Fatalf("second recorder skipped")
	}
}

package metrics

import "errors"

// MultiRecorder forwards events to several recorders.
type MultiRecorder struct {
	recorders []Recorder
}

// NewMultiRecorder combines the given recorders. Nil entries are skipped.
func NewMultiRecorder(recs ...Recorder) *MultiRecorder {
	m := &MultiRecorder{}
	for _, r := range recs {
		if r != nil {
			m.recorders = append(m.recorders, r)
		}
	}
	return m
}

func (m *MultiRecorder) each(fn func(Recorder) error) error {
	var errs []error
	for _, r := range m.recorders {
		if err := fn(r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiRecorder) RecordSearch(ev SearchEvent) error {
	return m.each(func(r Recorder) error { return r.RecordSearch(ev) })
}

func (m *MultiRecorder) RecordFilter(ev FilterEvent) error {
	return m.each(func(r Recorder) error { return r.RecordFilter(ev) })
}

func (m *MultiRecorder) RecordOptimum(ev OptimumEvent) error {
	return m.each(func(r Recorder) error { return r.RecordOptimum(ev) })
}

func (m *MultiRecorder) RecordFailure(alpha float64) error {
	return m.each(func(r Recorder) error { return r.RecordFailure(alpha) })
}

package metrics

import (
	"time"

	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/model"
)

// SearchEvent describes the evaluation of one alpha over the grid.
type SearchEvent struct {
	Alpha    float64
	Points   int
	Duration time.Duration
}

// SearchRecorder records grid search progress.
type SearchRecorder interface {
	RecordSearch(ev SearchEvent) error
}

// FilterEvent summarises the filtered candidate set of one alpha.
type FilterEvent struct {
	Alpha      float64
	Candidates int
	Retained   int
	PhoMean    float64
	PhoStdDev  float64
	PhiMean    float64
	PhiStdDev  float64
}

// OptimumEvent carries a selected report entry.
type OptimumEvent struct {
	Entry model.ReportEntry
}

// ReportRecorder records reporter outcomes.
type ReportRecorder interface {
	RecordFilter(ev FilterEvent) error
	RecordOptimum(ev OptimumEvent) error
	RecordFailure(alpha float64) error
}

// Recorder combines every recorder interface.
type Recorder interface {
	SearchRecorder
	ReportRecorder
}

// NopRecorder implements Recorder with no-op methods.
type NopRecorder struct{}

func (NopRecorder) RecordSearch(SearchEvent) error   { return nil }
func (NopRecorder) RecordFilter(FilterEvent) error   { return nil }
func (NopRecorder) RecordOptimum(OptimumEvent) error { return nil }
func (NopRecorder) RecordFailure(float64) error      { return nil }

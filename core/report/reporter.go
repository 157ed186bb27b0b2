package report

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/logger"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/metrics"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/model"
)

// ErrEmptyFilterResult indicates that no configuration survived filtering.
var ErrEmptyFilterResult = errors.New("empty filter result")

// EmptyFilterError reports the alpha whose candidate set was emptied.
type EmptyFilterError struct {
	Alpha      float64
	Candidates int
}

func (e *EmptyFilterError) Error() string {
	return fmt.Sprintf("alpha %v: %s (%d candidates filtered out)", e.Alpha, ErrEmptyFilterResult, e.Candidates)
}

// Is lets errors.Is match ErrEmptyFilterResult.
func (e *EmptyFilterError) Is(target error) bool { return target == ErrEmptyFilterResult }

// Report is the outcome of a reporter run.
type Report struct {
	Entries   []model.ReportEntry
	Summaries []metrics.FilterEvent
}

// Reporter builds report entries from raw alpha result sets.
type Reporter struct {
	Filter   Filter
	Logger   logger.Logger
	Recorder metrics.ReportRecorder
}

// NewReporter returns a reporter with the default filter.
func NewReporter() *Reporter {
	return &Reporter{Filter: DefaultFilter(), Logger: logger.NopLogger{}, Recorder: metrics.NopRecorder{}}
}

// Build reports every alpha independently. Alphas whose filtered set is
// empty are left out of the entries and their EmptyFilterErrors are joined
// into the returned error.
func (r *Reporter) Build(sets []model.AlphaResultSet) (Report, error) {
	log := r.Logger
	if log == nil {
		log = logger.NopLogger{}
	}
	rec := r.Recorder
	if rec == nil {
		rec = metrics.NopRecorder{}
	}

	var (
		rep  Report
		errs []error
	)
	for _, set := range sets {
		entry, summary, err := r.entry(set)
		if err != nil {
			log.Errorf("report alpha %v: %v", set.Alpha, err)
			if rerr := rec.RecordFailure(set.Alpha); rerr != nil {
				log.Warnf("record failure metrics: %v", rerr)
			}
			errs = append(errs, err)
			continue
		}
		log.Infof("alpha %v: pho_c %.6f at %s, phi_c %.6f at %s (%d/%d retained)",
			entry.Alpha, entry.OptimumPho.Value, entry.OptimumPho.Config,
			entry.OptimumPhi.Value, entry.OptimumPhi.Config,
			summary.Retained, summary.Candidates)
		if rerr := rec.RecordFilter(summary); rerr != nil {
			log.Warnf("record filter metrics: %v", rerr)
		}
		if rerr := rec.RecordOptimum(metrics.OptimumEvent{Entry: entry}); rerr != nil {
			log.Warnf("record optimum metrics: %v", rerr)
		}
		rep.Entries = append(rep.Entries, entry)
		rep.Summaries = append(rep.Summaries, summary)
	}
	return rep, errors.Join(errs...)
}

func (r *Reporter) entry(set model.AlphaResultSet) (model.ReportEntry, metrics.FilterEvent, error) {
	kept := r.Filter.Apply(set.Results)
	if len(kept) == 0 {
		return model.ReportEntry{}, metrics.FilterEvent{}, &EmptyFilterError{Alpha: set.Alpha, Candidates: len(set.Results)}
	}
	pho := values(kept, model.MetricPho)
	phi := values(kept, model.MetricPhi)

	summary := metrics.FilterEvent{Alpha: set.Alpha, Candidates: len(set.Results), Retained: len(kept)}
	summary.PhoMean, summary.PhoStdDev = meanStdDev(pho)
	summary.PhiMean, summary.PhiStdDev = meanStdDev(phi)

	return model.ReportEntry{
		Alpha:      set.Alpha,
		OptimumPho: optimum(kept, pho),
		OptimumPhi: optimum(kept, phi),
	}, summary, nil
}

// optimum returns the first configuration attaining the minimum of vals, so
// ties go to the lexicographically smallest (L,H,W) of the grid enumeration.
// results must not be empty.
func optimum(results []model.ConfigurationResult, vals []float64) model.Optimum {
	// MinIdx returns the first index holding the minimum.
	i := floats.MinIdx(vals)
	return model.Optimum{Config: results[i].Configuration, Value: vals[i]}
}

func values(results []model.ConfigurationResult, metric model.Metric) []float64 {
	out := make([]float64, len(results))
	for i, r := range results {
		out[i] = r.Value(metric)
	}
	return out
}

func meanStdDev(x []float64) (mean, std float64) {
	if len(x) == 1 {
		return x[0], 0
	}
	return stat.MeanStdDev(x, nil)
}

package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/metrics"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/model"
)

// PromRecorder records grid search and report outcomes in Prometheus
// metrics.
type PromRecorder struct {
	points     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	candidates *prometheus.GaugeVec
	mean       *prometheus.GaugeVec
	stddev     *prometheus.GaugeVec
	optimum    *prometheus.GaugeVec
	failures   *prometheus.CounterVec
}

// NewPromRecorder registers the metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromRecorder(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &PromRecorder{
		points: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "yard_grid_points_evaluated_total",
			Help: "Number of block configurations evaluated by the grid search",
		}, []string{"alpha"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "yard_grid_search_duration_seconds",
			Help:    "Time spent evaluating the grid for one alpha",
			Buckets: prometheus.DefBuckets,
		}, []string{"alpha"}),
		candidates: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "yard_report_candidates",
			Help: "Configurations seen and retained by the capacity and height filter",
		}, []string{"alpha", "stage"}),
		mean: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "yard_report_metric_mean_minutes",
			Help: "Mean cost metric over the retained configurations",
		}, []string{"alpha", "metric"}),
		stddev: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "yard_report_metric_stddev_minutes",
			Help: "Standard deviation of the cost metric over the retained configurations",
		}, []string{"alpha", "metric"}),
		optimum: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "yard_report_optimum_minutes",
			Help: "Minimum cost metric and the configuration attaining it",
		}, []string{"alpha", "metric", "config"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "yard_report_empty_filter_total",
			Help: "Alphas whose filtered configuration set was empty",
		}, []string{"alpha"}),
	}

	var err error
	if r.points, err = register(reg, r.points); err != nil {
		return nil, err
	}
	if r.duration, err = register(reg, r.duration); err != nil {
		return nil, err
	}
	if r.candidates, err = register(reg, r.candidates); err != nil {
		return nil, err
	}
	if r.mean, err = register(reg, r.mean); err != nil {
		return nil, err
	}
	if r.stddev, err = register(reg, r.stddev); err != nil {
		return nil, err
	}
	if r.optimum, err = register(reg, r.optimum); err != nil {
		return nil, err
	}
	if r.failures, err = register(reg, r.failures); err != nil {
		return nil, err
	}
	return r, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func alphaLabel(a float64) string {
	return strconv.FormatFloat(a, 'f', -1, 64)
}

func configLabel(d model.Dimensions) string {
	return fmt.Sprintf("%dx%dx%d", d.L, d.H, d.W)
}

// RecordSearch counts the evaluated points and observes the duration.
func (r *PromRecorder) RecordSearch(ev coremetrics.SearchEvent) error {
	a := alphaLabel(ev.Alpha)
	r.points.WithLabelValues(a).Add(float64(ev.Points))
	r.duration.WithLabelValues(a).Observe(ev.Duration.Seconds())
	return nil
}

// RecordFilter sets the candidate counts and metric statistics.
func (r *PromRecorder) RecordFilter(ev coremetrics.FilterEvent) error {
	a := alphaLabel(ev.Alpha)
	r.candidates.WithLabelValues(a, "candidates").Set(float64(ev.Candidates))
	r.candidates.WithLabelValues(a, "retained").Set(float64(ev.Retained))
	r.mean.WithLabelValues(a, string(model.MetricPho)).Set(ev.PhoMean)
	r.mean.WithLabelValues(a, string(model.MetricPhi)).Set(ev.PhiMean)
	r.stddev.WithLabelValues(a, string(model.MetricPho)).Set(ev.PhoStdDev)
	r.stddev.WithLabelValues(a, string(model.MetricPhi)).Set(ev.PhiStdDev)
	return nil
}

// RecordOptimum sets the optimum gauges of one report entry.
func (r *PromRecorder) RecordOptimum(ev coremetrics.OptimumEvent) error {
	e := ev.Entry
	a := alphaLabel(e.Alpha)
	r.optimum.WithLabelValues(a, string(model.MetricPho), configLabel(e.OptimumPho.Config)).Set(e.OptimumPho.Value)
	r.optimum.WithLabelValues(a, string(model.MetricPhi), configLabel(e.OptimumPhi.Config)).Set(e.OptimumPhi.Value)
	return nil
}

// RecordFailure counts an empty filter result.
func (r *PromRecorder) RecordFailure(alpha float64) error {
	r.failures.WithLabelValues(alphaLabel(alpha)).Inc()
	return nil
}

package search

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/cycletime"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/logger"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/metrics"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/model"
)

// DefaultAlphas are the weighting coefficients evaluated by default.
var DefaultAlphas = []float64{0.5, 0.6, 0.7, 0.8, 0.9}

// Driver evaluates the cost metrics over a grid for several alphas.
type Driver struct {
	Model  cycletime.Model
	Grid   Grid
	Alphas []float64
	// LegacyAxisBinding passes H as the width and W as the height to the
	// discharging and delivering estimates.
	LegacyAxisBinding bool
	// Workers bounds the number of alphas evaluated concurrently.
	// Zero uses GOMAXPROCS.
	Workers  int
	Logger   logger.Logger
	Recorder metrics.SearchRecorder
}

// NewDriver returns a driver over the default grid and alphas.
func NewDriver(m cycletime.Model) *Driver {
	return &Driver{
		Model:    m,
		Grid:     DefaultGrid,
		Alphas:   append([]float64(nil), DefaultAlphas...),
		Logger:   logger.NopLogger{},
		Recorder: metrics.NopRecorder{},
	}
}

// Validate checks the grid, alphas and model before any computation.
func (d *Driver) Validate() error {
	if err := d.Grid.Validate(); err != nil {
		return err
	}
	if err := ValidateAlphas(d.Alphas); err != nil {
		return err
	}
	if err := d.Model.Validate(); err != nil {
		return &DomainError{Field: "model", Reason: err.Error()}
	}
	return nil
}

// Evaluate computes both cost metrics of one configuration.
func (d *Driver) Evaluate(alpha float64, dim model.Dimensions) model.ConfigurationResult {
	out := dim
	if d.LegacyAxisBinding {
		out = dim.SwapHW()
	}
	return model.ConfigurationResult{
		Configuration: dim,
		PhoC:          alpha*d.Model.Loading(dim) + (1-alpha)*d.Model.Receiving(dim),
		PhiC:          alpha*d.Model.Discharging(out) + (1-alpha)*d.Model.Delivering(out),
	}
}

// Run evaluates every alpha over the grid. Result sets follow the order of
// d.Alphas and results follow the grid enumeration order, regardless of
// how many workers run.
func (d *Driver) Run(ctx context.Context) ([]model.AlphaResultSet, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	log := d.Logger
	if log == nil {
		log = logger.NopLogger{}
	}
	rec := d.Recorder
	if rec == nil {
		rec = metrics.NopRecorder{}
	}
	workers := d.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	points := d.Grid.Points()
	log.Infof("grid search: %d configurations x %d alphas, %d workers", len(points), len(d.Alphas), workers)

	sets := make([]model.AlphaResultSet, len(d.Alphas))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, alpha := range d.Alphas {
		i, alpha := i, alpha
		g.Go(func() error {
			start := time.Now()
			results, err := d.evaluateAll(gctx, alpha, points)
			if err != nil {
				return err
			}
			sets[i] = model.AlphaResultSet{Alpha: alpha, Results: results}
			elapsed := time.Since(start)
			log.Debugw("alpha evaluated", map[string]any{
				"alpha":    alpha,
				"points":   len(results),
				"duration": elapsed.String(),
			})
			if err := rec.RecordSearch(metrics.SearchEvent{Alpha: alpha, Points: len(results), Duration: elapsed}); err != nil {
				log.Warnf("record search metrics: %v", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}

func (d *Driver) evaluateAll(ctx context.Context, alpha float64, points []model.Dimensions) ([]model.ConfigurationResult, error) {
	results := make([]model.ConfigurationResult, len(points))
	for i, p := range points {
		// cancellation is checked once per row of W values
		if p.W == d.Grid.W.Min {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		results[i] = d.Evaluate(alpha, p)
	}
	return results, nil
}

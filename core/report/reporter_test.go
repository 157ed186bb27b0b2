package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/metrics"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/model"
)

func res(l, h, w int, pho, phi float64) model.ConfigurationResult {
	return model.ConfigurationResult{Configuration: model.Dimensions{L: l, H: h, W: w}, PhoC: pho, PhiC: phi}
}

func TestBuildSelectsMinimum(t *testing.T) {
	sets := []model.AlphaResultSet{{
		Alpha:   0.5,
		Results: []model.ConfigurationResult{res(6, 5, 16, 10, 3), res(7, 5, 16, 5, 4)},
	}}
	rep, err := NewReporter().Build(sets)
	require.NoError(t, err)
	require.Len(t, rep.Entries, 1)
	e := rep.Entries[0]
	assert.Equal(t, 0.5, e.Alpha)
	assert.Equal(t, model.Optimum{Config: model.Dimensions{L: 7, H: 5, W: 16}, Value: 5}, e.OptimumPho)
	assert.Equal(t, model.Optimum{Config: model.Dimensions{L: 6, H: 5, W: 16}, Value: 3}, e.OptimumPhi)
}

func TestBuildFiltersCapacityAndHeight(t *testing.T) {
	sets := []model.AlphaResultSet{{
		Alpha: 0.7,
		Results: []model.ConfigurationResult{
			res(1, 1, 1, 0.1, 0.1),   // too small
			res(10, 6, 10, 0.2, 0.2), // too high
			res(8, 5, 12, 3, 2),
			res(9, 4, 14, 4, 1),
		},
	}}
	rep, err := NewReporter().Build(sets)
	require.NoError(t, err)
	e := rep.Entries[0]
	assert.Equal(t, model.Dimensions{L: 8, H: 5, W: 12}, e.OptimumPho.Config)
	assert.Equal(t, model.Dimensions{L: 9, H: 4, W: 14}, e.OptimumPhi.Config)
	require.Len(t, rep.Summaries, 1)
	assert.Equal(t, 4, rep.Summaries[0].Candidates)
	assert.Equal(t, 2, rep.Summaries[0].Retained)
	assert.InDelta(t, 3.5, rep.Summaries[0].PhoMean, 1e-12)
	assert.InDelta(t, 1.5, rep.Summaries[0].PhiMean, 1e-12)
}

func TestBuildTieGoesToFirst(t *testing.T) {
	sets := []model.AlphaResultSet{{
		Alpha:   0.5,
		Results: []model.ConfigurationResult{res(5, 4, 30, 2, 9), res(5, 5, 20, 2, 9), res(6, 4, 20, 2, 9)},
	}}
	rep, err := NewReporter().Build(sets)
	require.NoError(t, err)
	assert.Equal(t, model.Dimensions{L: 5, H: 4, W: 30}, rep.Entries[0].OptimumPho.Config)
	assert.Equal(t, model.Dimensions{L: 5, H: 4, W: 30}, rep.Entries[0].OptimumPhi.Config)
}

func TestBuildEmptyFilterResult(t *testing.T) {
	sets := []model.AlphaResultSet{
		{Alpha: 0.5, Results: []model.ConfigurationResult{res(1, 1, 1, 1, 1), res(2, 2, 2, 1, 1)}},
		{Alpha: 0.6, Results: []model.ConfigurationResult{res(6, 5, 16, 1, 1)}},
	}
	rep, err := NewReporter().Build(sets)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyFilterResult))

	var efe *EmptyFilterError
	require.True(t, errors.As(err, &efe))
	assert.Equal(t, 0.5, efe.Alpha)
	assert.Equal(t, 2, efe.Candidates)

	require.Len(t, rep.Entries, 1)
	assert.Equal(t, 0.6, rep.Entries[0].Alpha)
	assert.Zero(t, rep.Summaries[0].PhoStdDev)
}

type failureRecorder struct {
	metrics.NopRecorder
	failed []float64
	optima int
}

func (r *failureRecorder) RecordFailure(alpha float64) error {
	r.failed = append(r.failed, alpha)
	return nil
}

func (r *failureRecorder) RecordOptimum(metrics.OptimumEvent) error {
	r.optima++
	return nil
}

func TestBuildRecordsOutcome(t *testing.T) {
	rec := &failureRecorder{}
	r := NewReporter()
	r.Recorder = rec
	_, err := r.Build([]model.AlphaResultSet{
		{Alpha: 0.8},
		{Alpha: 0.9, Results: []model.ConfigurationResult{res(6, 5, 16, 1, 1)}},
	})
	require.Error(t, err)
	assert.Equal(t, []float64{0.8}, rec.failed)
	assert.Equal(t, 1, rec.optima)
}

func TestOptimum(t *testing.T) {
	results := []model.ConfigurationResult{res(1, 1, 1, 3, 7), res(1, 1, 2, 1, 8), res(1, 1, 3, 1, 7)}
	o := optimum(results, values(results, model.MetricPhi))
	assert.Equal(t, model.Optimum{Config: model.Dimensions{L: 1, H: 1, W: 1}, Value: 7}, o)
	o = optimum(results, values(results, model.MetricPho))
	assert.Equal(t, model.Optimum{Config: model.Dimensions{L: 1, H: 1, W: 2}, Value: 1}, o)
}

func TestFilterAccept(t *testing.T) {
	f := DefaultFilter()
	assert.True(t, f.Accept(model.Dimensions{L: 6, H: 5, W: 16}))
	assert.False(t, f.Accept(model.Dimensions{L: 6, H: 5, W: 15}))
	assert.False(t, f.Accept(model.Dimensions{L: 20, H: 6, W: 16}))
}

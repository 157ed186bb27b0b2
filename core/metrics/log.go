package metrics

import "github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/logger"

// LogRecorder writes every event to a logger at debug level.
type LogRecorder struct {
	log logger.Logger
}

// NewLogRecorder returns a LogRecorder. A nil logger discards events.
func NewLogRecorder(l logger.Logger) *LogRecorder {
	if l == nil {
		l = logger.NopLogger{}
	}
	return &LogRecorder{log: l}
}

func (r *LogRecorder) RecordSearch(ev SearchEvent) error {
	r.log.Debugw("alpha evaluated", map[string]any{
		"alpha":       ev.Alpha,
		"points":      ev.Points,
		"duration_ms": ev.Duration.Milliseconds(),
	})
	return nil
}

func (r *LogRecorder) RecordFilter(ev FilterEvent) error {
	r.log.Debugw("candidates filtered", map[string]any{
		"alpha":      ev.Alpha,
		"candidates": ev.Candidates,
		"retained":   ev.Retained,
		"pho_mean":   ev.PhoMean,
		"phi_mean":   ev.PhiMean,
	})
	return nil
}

func (r *LogRecorder) RecordOptimum(ev OptimumEvent) error {
	r.log.Debugw("optimum selected", map[string]any{
		"alpha":         ev.Entry.Alpha,
		"optimum_pho_c": ev.Entry.OptimumPho.Config.String(),
		"optimum_phi_c": ev.Entry.OptimumPhi.Config.String(),
	})
	return nil
}

func (r *LogRecorder) RecordFailure(alpha float64) error {
	r.log.Debugw("filter left no candidates", map[string]any{"alpha": alpha})
	return nil
}

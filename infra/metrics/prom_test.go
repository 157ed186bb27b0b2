package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/metrics"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/model"
)

func TestPromRecorder_RecordSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPromRecorder(reg)
	if err != nil {
		t.Fatalf("create recorder: %v", err)
	}
	if err := rec.RecordSearch(coremetrics.SearchEvent{Alpha: 0.5, Points: 8, Duration: 20 * time.Millisecond}); err != nil {
		t.Fatalf("record error: %v", err)
	}
	if err := rec.RecordSearch(coremetrics.SearchEvent{Alpha: 0.5, Points: 8}); err != nil {
		t.Fatalf("record error: %v", err)
	}

	expected := `
# HELP yard_grid_points_evaluated_total Number of block configurations evaluated by the grid search
# TYPE yard_grid_points_evaluated_total counter
yard_grid_points_evaluated_total{alpha="0.5"} 16
`
	if err := testutil.CollectAndCompare(rec.points, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
	if c := testutil.CollectAndCount(rec.duration); c == 0 {
		t.Errorf("duration not recorded")
	}
}

func TestPromRecorder_Report(t *testing.T) {
	rec, err := NewPromRecorder(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("create recorder: %v", err)
	}
	entry := model.ReportEntry{
		Alpha:      0.7,
		OptimumPho: model.Optimum{Config: model.Dimensions{L: 6, H: 5, W: 16}, Value: 3.6},
		OptimumPhi: model.Optimum{Config: model.Dimensions{L: 1, H: 5, W: 96}, Value: 4.2},
	}
	_ = rec.RecordOptimum(coremetrics.OptimumEvent{Entry: entry})
	_ = rec.RecordFilter(coremetrics.FilterEvent{Alpha: 0.7, Candidates: 10, Retained: 4, PhoMean: 5})
	_ = rec.RecordFailure(0.9)

	if v := testutil.ToFloat64(rec.optimum.WithLabelValues("0.7", "pho_c", "6x5x16")); v != 3.6 {
		t.Fatalf("expected pho optimum 3.6 got %v", v)
	}
	if v := testutil.ToFloat64(rec.candidates.WithLabelValues("0.7", "retained")); v != 4 {
		t.Fatalf("expected 4 retained got %v", v)
	}
	if v := testutil.ToFloat64(rec.mean.WithLabelValues("0.7", "pho_c")); v != 5 {
		t.Fatalf("expected mean 5 got %v", v)
	}
	if v := testutil.ToFloat64(rec.failures.WithLabelValues("0.9")); v != 1 {
		t.Fatalf("expected one failure got %v", v)
	}
}

func TestPromRecorder_ReusesRegistered(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromRecorder(reg)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := NewPromRecorder(reg)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	_ = second.RecordFailure(0.5)
	if v := testutil.ToFloat64(first.failures.WithLabelValues("0.5")); v != 1 {
		t.Fatalf("collectors not shared")
	}
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPromRecorder(reg)
	if err != nil {
		t.Fatalf("create recorder: %v", err)
	}
	_ = rec.RecordFailure(0.6)
	path := filepath.Join(t.TempDir(), "out", "yard.prom")
	if err := WriteTextfile(path, reg); err != nil {
		t.Fatalf("write: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(b), `yard_report_empty_filter_total{alpha="0.6"} 1`) {
		t.Fatalf("missing failure metric:\n%s", b)
	}
}

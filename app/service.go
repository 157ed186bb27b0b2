package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/config"
	coremetrics "github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/metrics"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/model"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/report"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/search"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/infra/history"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/infra/logger"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/infra/metrics"
	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/infra/store"
)

// Service wires the grid search and the reporter to their artifacts,
// metrics and history.
type Service struct {
	cfg      *config.Config
	log      logger.Logger
	registry *prometheus.Registry
	recorder coremetrics.Recorder
	history  *history.Store
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logger.Configure(cfg.Log)
	s := &Service{
		cfg: cfg,
		log: logger.New("service"),
	}
	recorders := []coremetrics.Recorder{coremetrics.NewLogRecorder(logger.New("metrics"))}
	if cfg.Metrics.Textfile != "" {
		s.registry = prometheus.NewRegistry()
		rec, err := metrics.NewPromRecorder(s.registry)
		if err != nil {
			return nil, fmt.Errorf("prom recorder: %w", err)
		}
		recorders = append(recorders, rec)
	}
	s.recorder = coremetrics.NewMultiRecorder(recorders...)
	if cfg.History.Path != "" {
		h, err := history.NewStore(cfg.History)
		if err != nil {
			return nil, fmt.Errorf("history store: %w", err)
		}
		s.history = h
	}
	return s, nil
}

// Driver returns the grid search driver for the configuration.
func (s *Service) Driver() *search.Driver {
	return &search.Driver{
		Model:             s.cfg.Model(),
		Grid:              s.cfg.Grid(),
		Alphas:            s.cfg.Alphas,
		LegacyAxisBinding: s.cfg.LegacyAxisBinding,
		Workers:           s.cfg.Workers,
		Logger:            logger.New("search"),
		Recorder:          s.recorder,
	}
}

// Reporter returns the reporter for the configuration.
func (s *Service) Reporter() *report.Reporter {
	return &report.Reporter{
		Filter:   s.cfg.Filter(),
		Logger:   logger.New("report"),
		Recorder: s.recorder,
	}
}

// Search runs the grid search and writes the raw results artifact.
func (s *Service) Search(ctx context.Context) ([]model.AlphaResultSet, error) {
	if s.cfg.LegacyAxisBinding {
		s.log.Warnf("legacy axis binding: discharging and delivering receive H as width and W as height")
	}
	sets, err := s.Driver().Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("grid search: %w", err)
	}
	if err := store.SaveRawResults(s.cfg.Output.RawResults, sets); err != nil {
		return nil, fmt.Errorf("save raw results: %w", err)
	}
	s.log.Infof("raw results written to %s", s.cfg.Output.RawResults)
	return sets, nil
}

// Report builds the report from the raw results artifact on disk.
func (s *Service) Report(ctx context.Context, rawPath string) ([]model.ReportEntry, error) {
	if rawPath == "" {
		rawPath = s.cfg.Output.RawResults
	}
	sets, err := store.LoadRawResults(rawPath)
	if err != nil {
		return nil, fmt.Errorf("load raw results: %w", err)
	}
	return s.report(ctx, rawPath, sets)
}

// Run executes both stages. The reporter reads the artifact written by the
// grid search so both stages see the same serialized data.
func (s *Service) Run(ctx context.Context) ([]model.ReportEntry, error) {
	if _, err := s.Search(ctx); err != nil {
		return nil, err
	}
	return s.Report(ctx, s.cfg.Output.RawResults)
}

func (s *Service) report(ctx context.Context, source string, sets []model.AlphaResultSet) ([]model.ReportEntry, error) {
	rep, buildErr := s.Reporter().Build(sets)

	out := s.cfg.Output
	if err := store.SaveReport(out.Report, rep.Entries); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}
	if out.ReportCSV != "" {
		if err := store.SaveReportCSV(out.ReportCSV, rep.Entries); err != nil {
			return nil, fmt.Errorf("save report csv: %w", err)
		}
	}
	if out.ReportYAML != "" {
		if err := store.SaveReportYAML(out.ReportYAML, rep.Entries); err != nil {
			return nil, fmt.Errorf("save report yaml: %w", err)
		}
	}
	s.log.Infof("report with %d entries written to %s", len(rep.Entries), out.Report)

	if s.history != nil {
		alphas := make([]float64, len(sets))
		for i, set := range sets {
			alphas[i] = set.Alpha
		}
		rec := history.NewRecord(source, alphas, rep.Entries, failures(buildErr))
		if err := s.history.Append(ctx, rec); err != nil {
			s.log.Warnf("append history: %v", err)
		} else {
			s.log.Debugw("history appended", map[string]any{"id": rec.ID})
		}
	}
	return rep.Entries, buildErr
}

// failures flattens the per-alpha errors joined by the reporter.
func failures(err error) []string {
	if err == nil {
		return nil
	}
	var out []string
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}

// History returns past runs, or an error when history is disabled.
func (s *Service) History(ctx context.Context, q history.Query) ([]history.Record, error) {
	if s.history == nil {
		return nil, errors.New("history is disabled: set history.path")
	}
	return s.history.Query(ctx, q)
}

// Close flushes metrics and closes the history store.
func (s *Service) Close() error {
	var errs []error
	if s.registry != nil {
		if err := metrics.WriteTextfile(s.cfg.Metrics.Textfile, s.registry); err != nil {
			errs = append(errs, err)
		}
	}
	if s.history != nil {
		if err := s.history.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

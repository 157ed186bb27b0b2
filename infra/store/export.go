package store

import (
	"encoding/csv"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/model"
)

// WriteReportCSV writes one row per alpha and metric.
func WriteReportCSV(w io.Writer, entries []model.ReportEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"alpha", "metric", "L", "H", "W", "value"}); err != nil {
		return err
	}
	for _, e := range entries {
		rows := []struct {
			metric model.Metric
			opt    model.Optimum
		}{
			{model.MetricPho, e.OptimumPho},
			{model.MetricPhi, e.OptimumPhi},
		}
		for _, r := range rows {
			rec := []string{
				strconv.FormatFloat(e.Alpha, 'f', -1, 64),
				string(r.metric),
				strconv.Itoa(r.opt.Config.L),
				strconv.Itoa(r.opt.Config.H),
				strconv.Itoa(r.opt.Config.W),
				strconv.FormatFloat(r.opt.Value, 'f', -1, 64),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteReportYAML writes the report entries as a YAML sequence.
func WriteReportYAML(w io.Writer, entries []model.ReportEntry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return enc.Close()
}

// SaveReportCSV writes the CSV export to path.
func SaveReportCSV(path string, entries []model.ReportEntry) error {
	return writeFile(path, func(w io.Writer) error { return WriteReportCSV(w, entries) })
}

// SaveReportYAML writes the YAML export to path.
func SaveReportYAML(path string, entries []model.ReportEntry) error {
	return writeFile(path, func(w io.Writer) error { return WriteReportYAML(w, entries) })
}

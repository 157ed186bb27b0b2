package config

import "fmt"

// OutputConfig names the artifacts written by the pipeline stages.
type OutputConfig struct {
	// RawResults is the grid search artifact read back by the reporter.
	RawResults string `json:"raw_results"`
	// Report is the JSON report artifact.
	Report string `json:"report"`
	// ReportCSV optionally exports the report as CSV.
	ReportCSV string `json:"report_csv"`
	// ReportYAML optionally exports the report as YAML.
	ReportYAML string `json:"report_yaml"`
}

// SetDefaults applies sane defaults.
func (c *OutputConfig) SetDefaults() {
	if c.RawResults == "" {
		c.RawResults = "raw-model-results.json"
	}
	if c.Report == "" {
		c.Report = "report.json"
	}
}

// Validate checks that the artifacts do not overwrite each other.
func (c OutputConfig) Validate() error {
	seen := map[string]string{}
	for name, p := range map[string]string{
		"raw_results": c.RawResults,
		"report":      c.Report,
		"report_csv":  c.ReportCSV,
		"report_yaml": c.ReportYAML,
	} {
		if p == "" {
			continue
		}
		if other, ok := seen[p]; ok {
			return fmt.Errorf("output %s and %s share path %s", name, other, p)
		}
		seen[p] = name
	}
	return nil
}

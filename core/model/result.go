package model

// ConfigurationResult holds both cost metrics of one block under one alpha.
type ConfigurationResult struct {
	Configuration Dimensions `json:"configuration" yaml:"configuration"`
	PhoC          float64    `json:"pho_c" yaml:"pho_c"`
	PhiC          float64    `json:"phi_c" yaml:"phi_c"`
}

// Value returns the result's value for the given metric.
func (r ConfigurationResult) Value(m Metric) float64 {
	if m == MetricPhi {
		return r.PhiC
	}
	return r.PhoC
}

// AlphaResultSet groups the results computed under one weighting coefficient.
type AlphaResultSet struct {
	Alpha   float64               `json:"alpha" yaml:"alpha"`
	Results []ConfigurationResult `json:"results" yaml:"results"`
}

// Optimum is the best block found for a metric.
type Optimum struct {
	Config Dimensions `json:"config" yaml:"config"`
	Value  float64    `json:"value" yaml:"value"`
}

// ReportEntry is the final per-alpha outcome. Fields are declared in
// alphabetical key order so encoders emit sorted keys.
type ReportEntry struct {
	Alpha      float64 `json:"alpha" yaml:"alpha"`
	OptimumPhi Optimum `json:"optimum phi-c" yaml:"optimum phi-c"`
	OptimumPho Optimum `json:"optimum pho-c" yaml:"optimum pho-c"`
}

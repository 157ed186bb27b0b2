package metrics

// Config defines settings for metrics export.
type Config struct {
	// Textfile is the path of a node-exporter textfile written after each
	// run. Empty disables metrics export.
	Textfile string `json:"textfile"`
}

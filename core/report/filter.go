package report

import "github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/model"

const (
	// DefaultMinStorageCapacity is 6 bays x 5 tiers x 16 rows.
	DefaultMinStorageCapacity = 480
	// DefaultMaxStackHeight is the highest stack the yard cranes serve.
	DefaultMaxStackHeight = 5
)

// Filter discards configurations that are too small or stacked too high.
type Filter struct {
	MinStorageCapacity int `json:"min_storage_capacity"`
	MaxStackHeight     int `json:"max_stack_height"`
}

// DefaultFilter returns the default capacity and height thresholds.
func DefaultFilter() Filter {
	return Filter{MinStorageCapacity: DefaultMinStorageCapacity, MaxStackHeight: DefaultMaxStackHeight}
}

// Accept reports whether a configuration passes the filter.
func (f Filter) Accept(d model.Dimensions) bool {
	return d.Volume() >= f.MinStorageCapacity && d.H <= f.MaxStackHeight
}

// Apply returns the accepted results, preserving their order.
func (f Filter) Apply(results []model.ConfigurationResult) []model.ConfigurationResult {
	var out []model.ConfigurationResult
	for _, r := range results {
		if f.Accept(r.Configuration) {
			out = append(out, r)
		}
	}
	return out
}

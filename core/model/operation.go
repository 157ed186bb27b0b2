package model

// Operation identifies a crane handling cycle.
type Operation int

const (
	OpReceiving Operation = iota
	OpLoading
	OpDischarging
	OpDelivering
	OpRehandling
)

// Operations lists the four yard operations entering the cost metrics.
var Operations = []Operation{OpReceiving, OpLoading, OpDischarging, OpDelivering}

// String returns a human-readable representation of the operation.
func (o Operation) String() string {
	switch o {
	case OpReceiving:
		return "receiving"
	case OpLoading:
		return "loading"
	case OpDischarging:
		return "discharging"
	case OpDelivering:
		return "delivering"
	case OpRehandling:
		return "rehandling"
	default:
		return "unknown"
	}
}

// Metric names a composite cost metric.
type Metric string

const (
	// MetricPho blends loading and receiving.
	MetricPho Metric = "pho_c"
	// MetricPhi blends discharging and delivering.
	MetricPhi Metric = "phi_c"
)

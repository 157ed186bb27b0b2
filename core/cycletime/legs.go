package cycletime

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/model"
)

// cycle precomputes the travel times shared by every operation of a block.
type cycle struct {
	handling float64

	trolleyEmpty  float64 // mid trolley travel, empty
	trolleyLoaded float64 // mid trolley travel, loaded
	gantryEmpty   float64 // mid gantry travel, empty

	hoistEmptyMid  float64
	hoistLoadedMid float64
	hoistEmptyMax  float64
	hoistLoadedMax float64
}

func (m Model) cycle(d model.Dimensions) cycle {
	g, t, h := m.Ranges(d)
	sp := m.Speeds
	return cycle{
		handling:       m.HandlingSeconds / 60,
		trolleyEmpty:   t.Mid() / sp.Trolley.Empty,
		trolleyLoaded:  t.Mid() / sp.Trolley.Loaded,
		gantryEmpty:    g.Mid() / sp.Gantry.Empty,
		hoistEmptyMid:  h.Mid() / sp.Hoisting.Empty,
		hoistLoadedMid: h.Mid() / sp.Hoisting.Loaded,
		hoistEmptyMax:  h.Max / sp.Hoisting.Empty,
		hoistLoadedMax: h.Max / sp.Hoisting.Loaded,
	}
}

// approach is the empty move to the target slot, trolley and gantry
// running concurrently.
func (c cycle) approach() float64 {
	return math.Max(c.trolleyEmpty, c.gantryEmpty)
}

// Legs returns the leg times of op in cycle order.
func (m Model) Legs(op model.Operation, d model.Dimensions) []float64 {
	c := m.cycle(d)
	switch op {
	case model.OpReceiving:
		return []float64{
			c.approach(),
			c.hoistEmptyMax,
			c.handling,
			c.hoistLoadedMax,
			c.trolleyLoaded,
			c.hoistLoadedMid,
			c.handling,
			c.hoistEmptyMid,
		}
	case model.OpLoading:
		l0 := float64(m.LoadingMoves)
		return []float64{
			c.approach() / l0,
			c.hoistEmptyMid,
			c.handling,
			c.hoistLoadedMid,
			c.trolleyLoaded,
			c.hoistLoadedMax,
			c.handling,
			c.hoistEmptyMax,
			c.trolleyEmpty * (l0 - 1) / l0,
		}
	case model.OpDischarging:
		uwh := DischargeMoves(d)
		return []float64{
			c.approach() / uwh,
			c.hoistEmptyMax,
			c.handling,
			c.hoistLoadedMax,
			c.trolleyLoaded,
			c.hoistLoadedMid,
			c.handling,
			c.hoistEmptyMid,
			c.trolleyEmpty * (uwh - 1) / uwh,
		}
	case model.OpDelivering:
		return []float64{
			c.approach(),
			m.Rehandling(d) * RehandleFactor(d),
			c.hoistEmptyMid,
			c.handling,
			c.hoistLoadedMid,
			c.trolleyLoaded,
			c.hoistLoadedMax,
			c.handling,
			c.hoistEmptyMax,
		}
	case model.OpRehandling:
		return []float64{
			c.hoistEmptyMid,
			c.handling,
			c.hoistLoadedMid,
			c.trolleyLoaded,
			c.hoistLoadedMid,
			c.handling,
			c.hoistEmptyMid,
			c.trolleyEmpty,
		}
	default:
		return nil
	}
}

// Time returns the expected cycle time of op in minutes.
func (m Model) Time(op model.Operation, d model.Dimensions) float64 {
	return floats.Sum(m.Legs(op, d))
}

// Receiving is the expected time to stack an inbound truck container.
func (m Model) Receiving(d model.Dimensions) float64 { return m.Time(model.OpReceiving, d) }

// Loading is the expected time to retrieve a container for a vessel.
func (m Model) Loading(d model.Dimensions) float64 { return m.Time(model.OpLoading, d) }

// Discharging is the expected time to stack a container from a vessel.
func (m Model) Discharging(d model.Dimensions) float64 { return m.Time(model.OpDischarging, d) }

// Delivering is the expected time to hand a container to an outbound
// truck, including the expected rehandles of blocking containers.
func (m Model) Delivering(d model.Dimensions) float64 { return m.Time(model.OpDelivering, d) }

// Rehandling is the time of a single relocation of a blocking container.
func (m Model) Rehandling(d model.Dimensions) float64 { return m.Time(model.OpRehandling, d) }

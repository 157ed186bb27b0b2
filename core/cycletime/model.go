package cycletime

import (
	"errors"
	"fmt"

	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/model"
)

const (
	// DefaultHoistingHeight is the lift height in metres of the spreader,
	// independent of the block's stack height.
	DefaultHoistingHeight = 15.4
	// DefaultHandlingSeconds is the pick-up or release pause.
	DefaultHandlingSeconds = 5.0
	// DefaultLoadingMoves is the expected number of loading moves per
	// cycle before the crane relocates.
	DefaultLoadingMoves = 10
)

// Model holds the immutable parameters of the cycle-time estimator.
type Model struct {
	Unit            model.UnitDimensions
	Speeds          model.SpeedTable
	HoistingHeight  float64
	HandlingSeconds float64
	LoadingMoves    int
}

// NewDefaultModel returns a model using TEU units and the default crane.
func NewDefaultModel() Model {
	return Model{
		Unit:            model.TEU,
		Speeds:          model.DefaultSpeeds,
		HoistingHeight:  DefaultHoistingHeight,
		HandlingSeconds: DefaultHandlingSeconds,
		LoadingMoves:    DefaultLoadingMoves,
	}
}

// Validate checks that the model cannot produce divisions by zero or
// negative times.
func (m Model) Validate() error {
	if err := m.Unit.Validate(); err != nil {
		return err
	}
	if err := m.Speeds.Validate(); err != nil {
		return err
	}
	if m.HoistingHeight <= 0 {
		return fmt.Errorf("hoisting height must be positive, got %v", m.HoistingHeight)
	}
	if m.HandlingSeconds < 0 {
		return fmt.Errorf("handling time must not be negative, got %v", m.HandlingSeconds)
	}
	if m.LoadingMoves < 1 {
		return errors.New("loading moves must be at least 1")
	}
	return nil
}

// Ranges returns the gantry, trolley and hoisting ranges of a block.
func (m Model) Ranges(d model.Dimensions) (gantry, trolley, hoisting model.Range) {
	gantry = model.Range{Max: float64(d.L) * m.Unit.L}
	trolley = model.Range{Max: float64(d.W) * m.Unit.W}
	hoisting = model.Range{Max: m.HoistingHeight}
	return gantry, trolley, hoisting
}

// RehandleFactor is the expected number of rehandles per retrieval for
// stacks of height H in blocks W rows wide.
func RehandleFactor(d model.Dimensions) float64 {
	h, w := float64(d.H), float64(d.W)
	return (h-1)/4 + (h+2)/(16*w)
}

// DischargeMoves is the expected number of discharge moves before the
// crane relocates.
func DischargeMoves(d model.Dimensions) float64 {
	return float64(d.W*d.H - (d.H - 1))
}

package search

import (
	"errors"
	"fmt"

	"github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/model"
)

// ErrDomain marks configurations that cannot produce a valid grid.
var ErrDomain = errors.New("configuration domain error")

// DomainError reports an invalid configuration option.
type DomainError struct {
	Field  string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrDomain, e.Field, e.Reason)
}

// Is lets errors.Is match ErrDomain.
func (e *DomainError) Is(target error) bool { return target == ErrDomain }

// Bounds is an inclusive integer interval.
type Bounds struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

func (b Bounds) validate(field string) error {
	if b.Min < 1 {
		return &DomainError{Field: field, Reason: fmt.Sprintf("min %d must be at least 1", b.Min)}
	}
	if b.Max < b.Min {
		return &DomainError{Field: field, Reason: fmt.Sprintf("max %d below min %d", b.Max, b.Min)}
	}
	return nil
}

// Len returns the number of values in the interval.
func (b Bounds) Len() int {
	if b.Max < b.Min {
		return 0
	}
	return b.Max - b.Min + 1
}

// Grid is the Cartesian product of the three axis bounds.
type Grid struct {
	L Bounds
	H Bounds
	W Bounds
}

// DefaultGrid covers blocks up to 100 bays, 8 tiers and 100 rows.
var DefaultGrid = Grid{
	L: Bounds{Min: 1, Max: 100},
	H: Bounds{Min: 1, Max: 8},
	W: Bounds{Min: 1, Max: 100},
}

// Validate returns a DomainError when any axis is empty or starts below 1.
func (g Grid) Validate() error {
	if err := g.L.validate("bounds_L"); err != nil {
		return err
	}
	if err := g.H.validate("bounds_H"); err != nil {
		return err
	}
	return g.W.validate("bounds_W")
}

// Size returns the number of grid points.
func (g Grid) Size() int {
	return g.L.Len() * g.H.Len() * g.W.Len()
}

// Points returns every configuration in enumeration order: L outermost,
// then H, then W.
func (g Grid) Points() []model.Dimensions {
	pts := make([]model.Dimensions, 0, g.Size())
	for l := g.L.Min; l <= g.L.Max; l++ {
		for h := g.H.Min; h <= g.H.Max; h++ {
			for w := g.W.Min; w <= g.W.Max; w++ {
				pts = append(pts, model.Dimensions{L: l, H: h, W: w})
			}
		}
	}
	return pts
}

// ValidateAlphas checks that at least one alpha is given and that every
// alpha is a convex weight.
func ValidateAlphas(alphas []float64) error {
	if len(alphas) == 0 {
		return &DomainError{Field: "alphas", Reason: "at least one alpha is required"}
	}
	for _, a := range alphas {
		if a < 0 || a > 1 {
			return &DomainError{Field: "alphas", Reason: fmt.Sprintf("%v outside [0,1]", a)}
		}
	}
	return nil
}

package model

import (
	"encoding/json"
	"fmt"
)

// Dimensions describes a storage block in unit-container counts.
type Dimensions struct {
	L int // bays along the gantry axis
	H int // tiers (stack height)
	W int // rows along the trolley axis
}

// Volume returns the number of storage slots in the block.
func (d Dimensions) Volume() int {
	return d.L * d.H * d.W
}

// Validate reports whether every axis holds at least one unit.
func (d Dimensions) Validate() error {
	if d.L < 1 || d.H < 1 || d.W < 1 {
		return fmt.Errorf("dimensions %s: every axis must be at least 1", d)
	}
	return nil
}

// SwapHW returns the block with height and width exchanged.
func (d Dimensions) SwapHW() Dimensions {
	return Dimensions{L: d.L, H: d.W, W: d.H}
}

func (d Dimensions) String() string {
	return fmt.Sprintf("(%d,%d,%d)", d.L, d.H, d.W)
}

// MarshalJSON encodes the block as a [L,H,W] array.
func (d Dimensions) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{d.L, d.H, d.W})
}

// UnmarshalJSON decodes a [L,H,W] array. Any other shape is rejected.
func (d *Dimensions) UnmarshalJSON(b []byte) error {
	var arr []int
	if err := json.Unmarshal(b, &arr); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	if len(arr) != 3 {
		return fmt.Errorf("configuration: expected 3 values, got %d", len(arr))
	}
	d.L, d.H, d.W = arr[0], arr[1], arr[2]
	return nil
}

// MarshalYAML encodes the block as a flow sequence.
func (d Dimensions) MarshalYAML() (any, error) {
	return []int{d.L, d.H, d.W}, nil
}

// Range is a closed interval travelled by one crane motion.
type Range struct {
	Min float64
	Max float64
}

// Mid returns the expected travel distance over the range.
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// UnitDimensions is the size of one storage unit in metres.
type UnitDimensions struct {
	L float64 `json:"L" yaml:"L"`
	H float64 `json:"H" yaml:"H"`
	W float64 `json:"W" yaml:"W"`
}

// TEU is a twenty-foot equivalent unit.
var TEU = UnitDimensions{L: 6.096, H: 2.591, W: 2.438}

// Validate checks that all unit dimensions are positive.
func (u UnitDimensions) Validate() error {
	if u.L <= 0 || u.H <= 0 || u.W <= 0 {
		return fmt.Errorf("unit dimensions must be positive: %+v", u)
	}
	return nil
}

// Speed holds the travel speed of a motion with and without a container,
// in metres per minute.
type Speed struct {
	Empty  float64 `json:"empty" yaml:"empty"`
	Loaded float64 `json:"loaded" yaml:"loaded"`
}

// SpeedTable holds the speeds of the three crane motions.
type SpeedTable struct {
	Gantry   Speed `json:"gantry" yaml:"gantry"`
	Trolley  Speed `json:"trolley" yaml:"trolley"`
	Hoisting Speed `json:"hoisting" yaml:"hoisting"`
}

// DefaultSpeeds is the equipment speed table of a rubber-tyred gantry crane.
var DefaultSpeeds = SpeedTable{
	Gantry:   Speed{Empty: 90, Loaded: 45},
	Trolley:  Speed{Empty: 70, Loaded: 70},
	Hoisting: Speed{Empty: 24, Loaded: 12},
}

// Validate checks that every speed is strictly positive.
func (s SpeedTable) Validate() error {
	motions := []struct {
		name  string
		speed Speed
	}{
		{"gantry", s.Gantry},
		{"trolley", s.Trolley},
		{"hoisting", s.Hoisting},
	}
	for _, m := range motions {
		if m.speed.Empty <= 0 || m.speed.Loaded <= 0 {
			return fmt.Errorf("%s speed must be positive: %+v", m.name, m.speed)
		}
	}
	return nil
}

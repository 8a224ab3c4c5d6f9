package soil

import "fmt"

// FoundationType selects the capacity/settlement method family.
type FoundationType string

const (
	FoundationShallow FoundationType = "shallow"
	FoundationRaft    FoundationType = "raft"
	FoundationDeep    FoundationType = "deep"
)

// Foundation describes geometry, embedment and loading of one footing.
// PressureKPa is the gross applied bearing pressure at the base. Width
// and length may come in either order; calculators that assume B <= L
// orient the footing themselves.
type Foundation struct {
	Type        FoundationType `json:"foundation_type"`
	WidthM      float64        `json:"width_m"`
	LengthM     float64        `json:"length_m"`
	DepthM      float64        `json:"depth_m"` // embedment depth
	PressureKPa float64        `json:"pressure_kpa"`

	HorizontalLoadXKN float64 `json:"horizontal_load_x_kn,omitempty"`
	HorizontalLoadYKN float64 `json:"horizontal_load_y_kn,omitempty"`

	// Concrete-to-soil friction coefficient for the sliding check.
	SurfaceFriction float64 `json:"surface_friction,omitempty"`
}

// Validate checks the footing geometry against a profile. A zero Type is
// treated as shallow.
func (f Foundation) Validate(p *Profile) error {
	if f.WidthM <= 0 {
		return fmt.Errorf("%w: foundation width %.2f m must be positive", ErrInvalidInput, f.WidthM)
	}
	if f.LengthM <= 0 {
		return fmt.Errorf("%w: foundation length %.2f m must be positive", ErrInvalidInput, f.LengthM)
	}
	if f.DepthM < 0 {
		return fmt.Errorf("%w: embedment depth %.2f m is negative", ErrInvalidInput, f.DepthM)
	}
	if f.PressureKPa < 0 {
		return fmt.Errorf("%w: applied pressure %.2f kPa is negative", ErrInvalidInput, f.PressureKPa)
	}
	if p != nil && f.DepthM > p.DepthM() {
		return fmt.Errorf("%w: embedment depth %.2f m exceeds profile extent %.2f m",
			ErrInvalidInput, f.DepthM, p.DepthM())
	}
	switch f.Type {
	case "", FoundationShallow, FoundationRaft, FoundationDeep:
	default:
		return fmt.Errorf("%w: foundation type %q", ErrInvalidInput, f.Type)
	}
	return nil
}

// VerticalLoadKN is the total vertical load carried by the base area.
func (f Foundation) VerticalLoadKN() float64 {
	return f.PressureKPa * f.WidthM * f.LengthM
}

package units

import (
	"fmt"

	"github.com/vsaulue/gustave/gustaveerr"
)

// PressureStress is the maximum stress a block's material tolerates along
// the three load regimes the solver distinguishes (spec.md §3.1).
type PressureStress struct {
	Compression Pressure
	Shear       Pressure
	Tensile     Pressure
}

// Validate checks that all three components are strictly positive, as
// required by spec.md §3.1 ("all three strictly positive").
func (s PressureStress) Validate() error {
	if s.Compression <= 0 || s.Shear <= 0 || s.Tensile <= 0 {
		return fmt.Errorf("%w: PressureStress components must be strictly positive, got %+v", gustaveerr.ErrInvalidArgument, s)
	}
	return nil
}

// MinStress returns the component-wise minimum of a and b, used when a
// contact spans two blocks of different material (spec.md §4.5.3).
func MinStress(a, b PressureStress) PressureStress {
	return PressureStress{
		Compression: Pressure(Min(float64(a.Compression), float64(b.Compression))),
		Shear:       Pressure(Min(float64(a.Shear), float64(b.Shear))),
		Tensile:     Pressure(Min(float64(a.Tensile), float64(b.Tensile))),
	}
}

// ConductivityTriple holds the three directional conductivities a link
// derives from its material limits and contact geometry (spec.md §3.2):
// area/thickness * maxPressureStress, in force/length.
type ConductivityTriple struct {
	Compression Conductivity
	Shear       Conductivity
	Tensile     Conductivity
}

// AreaConductivity turns a material's PressureStress limits and a contact's
// area/thickness into the three conductivities of a Link.
func AreaConductivity(stress PressureStress, area Area, thickness Length) ConductivityTriple {
	return ConductivityTriple{
		Compression: StressAreaOverThickness(stress.Compression, area, thickness),
		Shear:       StressAreaOverThickness(stress.Shear, area, thickness),
		Tensile:     StressAreaOverThickness(stress.Tensile, area, thickness),
	}
}

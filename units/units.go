// Package units gives the Gustave solver a dimension-tagged real number and
// 3-vector type, the runtime stand-in for the library's RealTraits/cVector3
// collaborator (spec.md §3, §6.1). Dimensions are distinct named float64
// types rather than a single erased real: the compiler then rejects
// mixed-dimension arithmetic for free, and the only cross-dimension
// operations exposed are the named conversions the engine actually needs
// (mass*g, stress*area/thickness, conductivity*potential, ...).
package units

import "math"

// One is the dimensionless unit.
type One float64

// Length in meters.
type Length float64

// Area in square meters.
type Area float64

// Volume in cubic meters.
type Volume float64

// Mass in kilograms.
type Mass float64

// Acceleration in meters per second squared.
type Acceleration float64

// Force in newtons.
type Force float64

// Pressure (stress) in pascals.
type Pressure float64

// Density in kilograms per cubic meter.
type Density float64

// Potential is the scalar potential field solved by Force1, in meters.
type Potential float64

// Conductivity relates a potential difference to a force, in newtons per meter.
type Conductivity float64

// Resistance is the reciprocal of Conductivity, in meters per newton.
type Resistance float64

// Real is the constraint satisfied by every dimension type above: any named
// float64. Vector3 is generic over it.
type Real interface {
	~float64
}

// Sqrt, Abs, Min, Max and SignBit are the free functions spec.md §6.1
// requires of the RealTraits collaborator, exposed here over plain float64
// since Gustave erases units to distinct Go types rather than a template
// parameter (see DESIGN.md).
func Sqrt(x float64) float64 { return math.Sqrt(x) }

func Abs(x float64) float64 { return math.Abs(x) }

func Min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func SignBit(x float64) bool { return math.Signbit(x) }

// MassWeight converts a mass under a gravitational acceleration magnitude
// into the force dimension: weight = mass * |g|.
func MassWeight(m Mass, gNorm Acceleration) Force {
	return Force(float64(m) * float64(gNorm))
}

// StressAreaOverThickness is the area/thickness * stress product that turns
// a contact's geometry and material limit into a conductivity (spec.md §3.2).
func StressAreaOverThickness(stress Pressure, area Area, thickness Length) Conductivity {
	return Conductivity(float64(stress) * float64(area) / float64(thickness))
}

// ForceFromPotentialDelta is c*(ΔP) used by the force balancer (spec.md §4.3.2).
func ForceFromPotentialDelta(c Conductivity, deltaP Potential) Force {
	return Force(float64(c) * float64(deltaP))
}

// PotentialFromForce is the inverse of ForceFromPotentialDelta, used by the
// Newton-style offset step (force/conductivity).
func PotentialFromForce(f Force, c Conductivity) Potential {
	return Potential(float64(f) / float64(c))
}

// RelativeError is |residual| / weight, the quantity the balancer drives
// below its target (spec.md §4.3.1).
func RelativeError(residual Force, weight Force) One {
	return One(Abs(float64(residual)) / float64(weight))
}

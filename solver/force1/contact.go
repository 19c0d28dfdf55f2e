package force1

import (
	"github.com/vsaulue/gustave/solver"
	"github.com/vsaulue/gustave/units"
)

// f1Contact is one endpoint's view of a solver.Link: the other node, the
// owning link's index, and the two signed
// conductivities a Newton step picks between depending on the sign of the
// potential difference (spec.md §3.2).
type f1Contact struct {
	otherNode solver.NodeIndex
	link      solver.LinkIndex
	cPlus     units.Conductivity // used when otherPotential >= localPotential
	cMinus    units.Conductivity // used when otherPotential < localPotential
}

// conductivityAt returns the conductivity that applies for a potential
// difference of deltaP = otherPotential - localPotential (spec.md §4.3.1:
// "c(ΔP) = c+ if P[c.other] >= P[i] else c-").
func (c f1Contact) conductivityAt(deltaP units.Potential) units.Conductivity {
	if deltaP >= 0 {
		return c.cPlus
	}
	return c.cMinus
}

// forceOn returns the force this contact exerts on the local node, given the
// current potentials of both endpoints. The model transmits force along
// gravity only, so the vector is c(ΔP)*ΔP scaled onto the unit gravity
// direction (spec.md §3.2: "force along gravity = c·(otherPotential −
// localPotential)"). A positive magnitude is a load pressing the local node
// gravity-ward, which reproduces the reference scenarios S1/S3 of spec.md §8.
func (c f1Contact) forceOn(localP, otherP units.Potential, gDir units.NormalizedVector3) units.Vector3[units.Force] {
	deltaP := otherP - localP
	cond := c.conductivityAt(deltaP)
	mag := units.ForceFromPotentialDelta(cond, deltaP)
	return units.Scale(gDir, mag)
}

// splitContacts derives the two F1 contacts (one per endpoint) of a
// solver.Link under gravity direction gDir (spec.md §3.2).
//
// Open question resolved (see DESIGN.md "Open questions resolved"): let n̂ be
// the link's normal (pointing from LocalNode to OtherNode) and ĝ the unit
// gravity direction, a = n̂·ĝ. The other endpoint sits "above" the local one
// (against gravity) iff a < 0. In static equilibrium potentials grow against
// gravity, so ΔP = P[other]-P[local] >= 0 lines up with "other above local":
// on that branch the surface is compressed when a < 0 and pulled apart when
// a > 0, and the opposite on the ΔP < 0 branch. The |a| axial fraction is
// split accordingly; the sqrt(1-a²) remainder resists shear on both
// branches:
//
//	cPlus  = max(-a,0)·compression + max(a,0)·tensile + sqrt(1-a²)·shear
//	cMinus = max(-a,0)·tensile + max(a,0)·compression + sqrt(1-a²)·shear
//
// The other endpoint sees the same surface through the flipped normal
// (a' = -a), which exchanges the two formulas: its contact is built by
// swapping cPlus/cMinus. Since ΔP also flips sign between endpoints, both
// endpoints always select the same physical conductivity, which is what
// makes solution.force(a←b) = -solution.force(b←a) hold exactly (spec.md
// §8, property 4).
func splitContacts(link solver.Link, linkIdx solver.LinkIndex, gDir units.NormalizedVector3) (local, other f1Contact) {
	a := link.Normal.Dot(gDir)
	shearFrac := units.Sqrt(units.Max(0, 1-a*a))
	upFrac := units.Max(-a, 0)
	downFrac := units.Max(a, 0)

	cPlus := units.Conductivity(
		upFrac*float64(link.AreaCond.Compression) +
			downFrac*float64(link.AreaCond.Tensile) +
			shearFrac*float64(link.AreaCond.Shear))
	cMinus := units.Conductivity(
		upFrac*float64(link.AreaCond.Tensile) +
			downFrac*float64(link.AreaCond.Compression) +
			shearFrac*float64(link.AreaCond.Shear))

	local = f1Contact{otherNode: link.OtherNode, link: linkIdx, cPlus: cPlus, cMinus: cMinus}
	other = f1Contact{otherNode: link.LocalNode, link: linkIdx, cPlus: cMinus, cMinus: cPlus}
	return local, other
}

package force1

import "github.com/vsaulue/gustave/units"

// maxNewtonProbes bounds the number of breakpoint-crossing Newton steps the
// balancer takes per node/cluster within one sweep call (spec.md §4.3.2:
// "probes at most a bounded number of such steps (implementation detail)").
const maxNewtonProbes = 4

// deltaContact is one contact as seen from the node (or cluster) being
// relaxed: baseDelta is the potential difference (otherPotential minus the
// relaxed side's current potential) evaluated at zero trial offset; as the
// Newton probe tries an offset x, the effective ΔP becomes baseDelta-x.
type deltaContact struct {
	baseDelta units.Potential
	contact   f1Contact
}

// evaluateOffset returns the residual and total conductivity of a node (or
// cluster, acting as one super-node, spec.md §4.3.3) carrying weight, given
// a trial potential offset x added uniformly to every member (spec.md
// §4.3.1: residual(i) = weight(i) + Σc(ΔP)·(P[other]-P[i])).
func evaluateOffset(weight units.Force, contacts []deltaContact, x units.Potential) (residual units.Force, conductivity units.Conductivity) {
	residual = weight
	for _, dc := range contacts {
		deltaP := dc.baseDelta - x
		cond := dc.contact.conductivityAt(deltaP)
		residual += units.ForceFromPotentialDelta(cond, deltaP)
		conductivity += cond
	}
	return residual, conductivity
}

// newtonOffset finds the potential offset that drives a node's (or
// cluster's) residual toward zero via a bounded sequence of Newton steps
// (spec.md §4.3.2): each step solves the current linear segment exactly,
// re-evaluating afterward since a step can cross a breakpoint where some
// contact's conductivity switches between c+ and c-. The probe loop stops
// early once |residual| <= tol, the α·weight threshold of spec.md §4.3.2.
func newtonOffset(weight units.Force, contacts []deltaContact, tol units.Force) units.Potential {
	var x units.Potential
	for i := 0; i < maxNewtonProbes; i++ {
		residual, conductivity := evaluateOffset(weight, contacts, x)
		if units.Abs(float64(residual)) <= float64(tol) || conductivity == 0 {
			break
		}
		x += units.PotentialFromForce(residual, conductivity)
	}
	return x
}

// relativeErrorAt is |residual|/weight for the given offset, the per-node
// term of the convergence metric computed by maxRelError (spec.md §4.3.1).
func relativeErrorAt(weight units.Force, contacts []deltaContact, x units.Potential) units.One {
	residual, _ := evaluateOffset(weight, contacts, x)
	return units.RelativeError(residual, weight)
}

package force1

import (
	"github.com/vsaulue/gustave/solver"
	"github.com/vsaulue/gustave/units"
)

// potentials is the mutable scalar field the three sweep strategies relax
// (spec.md §4.3.1). Index i holds the current potential of node i; a
// foundation node's entry is never written after construction, staying at
// the zero boundary condition (spec.md §3.2: "Foundations have P[i] = 0").
type potentials []units.Potential

// newPotentials allocates the field, zero-initialised: the correct starting
// value for foundations, and a reasonable initial guess for every other node.
func newPotentials(n int) potentials {
	return make(potentials, n)
}

// nodeDeltaContacts builds the deltaContact list node i sees under the
// current potential field.
func (f *F1Structure) nodeDeltaContacts(i solver.NodeIndex, p potentials) []deltaContact {
	contacts := f.contactsOf(i)
	out := make([]deltaContact, len(contacts))
	for j, c := range contacts {
		out[j] = deltaContact{baseDelta: p[c.otherNode] - p[i], contact: c}
	}
	return out
}

// nodeSweep relaxes every non-foundation node once, in depth order, each
// using the potentials currently committed for every other node (spec.md
// §4.3.3: "Node sweep: process nodes in depth order; relax each using
// current potentials").
func (f *F1Structure) nodeSweep(p potentials) {
	for _, i := range f.order {
		w := f.nodes[i].weight
		offset := newtonOffset(w, f.nodeDeltaContacts(i, p), f.balanceWeightTol(w))
		p[i] += offset
	}
}

// layerSweep relaxes one full depth layer at a time, shallowest first
// (spec.md §4.3.3: "for each depth layer, compute new potentials using only
// potentials from shallower layers; commit the whole layer simultaneously").
// Each node's offset is computed against the field as committed so far:
// shallower layers carry this sweep's fresh values, same-layer and deeper
// nodes their previous ones, and the whole layer commits at once. At a
// converged field every offset is zero, so the sweep preserves the fixed
// point. Foundation-layer (depth 0) is never swept.
func (f *F1Structure) layerSweep(p potentials) {
	for _, layer := range f.layers {
		nodesInLayer := f.order[layer.Start:layer.End]
		offsets := make([]units.Potential, len(nodesInLayer))
		for k, i := range nodesInLayer {
			w := f.nodes[i].weight
			offsets[k] = newtonOffset(w, f.nodeDeltaContacts(i, p), f.balanceWeightTol(w))
		}
		for k, i := range nodesInLayer {
			p[i] += offsets[k]
		}
	}
}

// clusterDeltaContacts builds the deltaContact list a cluster sees under the
// current potential field: one entry per external contact, each referencing
// its own owning member's current potential (spec.md §4.3.3: "contacts =
// external contacts"), since different members of the same cluster can sit
// at different potentials even though the sweep applies one shared offset.
func clusterDeltaContacts(c cluster, p potentials) []deltaContact {
	out := make([]deltaContact, len(c.external))
	for j, ext := range c.external {
		out[j] = deltaContact{baseDelta: p[ext.contact.otherNode] - p[ext.owner], contact: ext.contact}
	}
	return out
}

// runClusterSweep relaxes every cluster of one level as a single super-node
// (spec.md §4.3.3: "compute one offset per cluster, applying it uniformly to
// all member nodes"). This is Gustave's ClusterStepRunner (see SPEC_FULL.md,
// SUPPLEMENTED FEATURES #2): it only orchestrates the per-cluster offset and
// its uniform application, while clusterDeltaContacts/newtonOffset play the
// role of the original's ClusterNodeEvaluator.
func (f *F1Structure) runClusterSweep(level clusterLevel, p potentials) {
	for _, c := range level.clusters {
		offset := newtonOffset(c.weight, clusterDeltaContacts(c, p), f.balanceWeightTol(c.weight))
		for _, m := range c.members {
			p[m] += offset
		}
	}
}

// balanceWeightTol turns the structure's α factor into the absolute force
// threshold a relax of a node/cluster of the given weight stops at
// (spec.md §4.3.2: "|force| <= α·weight").
func (f *F1Structure) balanceWeightTol(weight units.Force) units.Force {
	return units.Force(float64(f.balanceTol) * float64(weight))
}

// maxRelError returns max_i |residual(i)|/weight(i) over every non-foundation
// node (spec.md §4.3.1, the convergence metric).
func (f *F1Structure) maxRelError(p potentials) units.One {
	var worst units.One
	for _, i := range f.order {
		contacts := f.nodeDeltaContacts(i, p)
		err := relativeErrorAt(f.nodes[i].weight, contacts, 0)
		if err > worst {
			worst = err
		}
	}
	return worst
}

package force1

import (
	"github.com/vsaulue/gustave/idx"
	"github.com/vsaulue/gustave/solver"
	"github.com/vsaulue/gustave/units"
)

// f1Node is the derived per-node view a Force1 solve works against: the
// node's weight/foundation flag straight from the solver.Structure, plus the
// half-open range of its contacts in the structure's flat contact array
// (spec.md §4.2).
type f1Node struct {
	weight       units.Force
	isFoundation bool
	contacts     idx.Range
}

// F1Structure is the derived view of a solver.Structure under a given
// gravity direction (spec.md §4.2): per-node weight/contacts, plus the
// depth, layer and cluster decompositions the Force1 solver's three sweep
// strategies share. Built once per (Structure, Config) pair and treated as
// immutable afterward.
type F1Structure struct {
	nodes      []f1Node
	contacts   []f1Contact // flat, node.contacts indexes into this
	gDir       units.NormalizedVector3
	balanceTol units.One // α of spec.md §4.3.2: a relax stops at |force| <= α·weight
	depth      []int     // parallel to nodes; -1 means unreachable
	order      []solver.NodeIndex
	layers     []idx.Range // ranges into order, shallowest first
	clusters   []clusterLevel
}

// balanceFactor scales the solver's target error into the default α of
// spec.md §4.3.2 (α = 0.75·ε).
const balanceFactor = 0.75

// unreachableDepth marks a non-foundation node that BFS from the foundation
// set never reaches (spec.md §4.2, §8 property 2).
const unreachableDepth = -1

// BuildF1Structure derives an F1Structure from a solver.Structure and the
// gravity configured in cfg. It returns ok=false if some non-foundation node
// is unreachable from every foundation node (spec.md §3.2, §4.3.4: the
// structure aborts before the first iteration with Unsolvable).
func BuildF1Structure(s *solver.Structure, cfg Config) (f1s *F1Structure, ok bool) {
	gDir, _ := cfg.gravityDirectionAndNorm()

	n := s.NumNodes()
	perNode := make([][]f1Contact, n)
	for li := 0; li < s.NumLinks(); li++ {
		link := s.Link(solver.LinkIndex(li))
		local, other := splitContacts(link, solver.LinkIndex(li), gDir)
		perNode[link.LocalNode] = append(perNode[link.LocalNode], local)
		perNode[link.OtherNode] = append(perNode[link.OtherNode], other)
	}

	f1s = &F1Structure{
		nodes:      make([]f1Node, n),
		gDir:       gDir,
		balanceTol: units.One(balanceFactor) * cfg.TargetMaxError(),
	}
	for i := 0; i < n; i++ {
		node := s.Node(solver.NodeIndex(i))
		start := len(f1s.contacts)
		f1s.contacts = append(f1s.contacts, perNode[i]...)
		f1s.nodes[i] = f1Node{
			weight:       node.Weight,
			isFoundation: node.IsFoundation,
			contacts:     idx.Range{Start: start, End: len(f1s.contacts)},
		}
	}

	if ok = f1s.computeDepth(); !ok {
		return f1s, false
	}
	f1s.buildOrderAndLayers()
	f1s.buildClusters()
	return f1s, true
}

// NumNodes returns the number of nodes in the structure.
func (f *F1Structure) NumNodes() int { return len(f.nodes) }

// contactsOf returns the flat-array slice of contacts owned by node i.
func (f *F1Structure) contactsOf(i solver.NodeIndex) []f1Contact {
	r := f.nodes[i].contacts
	return f.contacts[r.Start:r.End]
}

// unreachableNode returns the first node computeDepth left unreachable
// (depth == unreachableDepth), ok=false if there is none.
func (f *F1Structure) unreachableNode() (solver.NodeIndex, bool) {
	for i, d := range f.depth {
		if d == unreachableDepth {
			return solver.NodeIndex(i), true
		}
	}
	return 0, false
}

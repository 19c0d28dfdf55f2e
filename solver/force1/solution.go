package force1

import (
	"github.com/vsaulue/gustave/solver"
	"github.com/vsaulue/gustave/units"
)

// Solution is a read-only view over a converged potential field: the basis
// it was solved from (structure, derived F1 structure, potentials) plus the
// force queries spec.md §4.4 requires (per node, per contact).
type Solution struct {
	structure   *solver.Structure
	f1Structure *F1Structure
	potentials  potentials
	maxRelError units.One
}

// MaxRelativeError reports the achieved convergence (spec.md §4.3.5).
func (s *Solution) MaxRelativeError() units.One {
	return s.maxRelError
}

// ForceVectorFrom returns the force exerted on node `from` by node `via`
// through their shared link (spec.md §4.4): c(ΔP)*ΔP along the unit gravity
// direction, positive magnitudes pressing `from` gravity-ward.
func (s *Solution) ForceVectorFrom(from, via solver.NodeIndex) (units.Vector3[units.Force], bool) {
	for _, c := range s.f1Structure.contactsOf(from) {
		if c.otherNode == via {
			return c.forceOn(s.potentials[from], s.potentials[via], s.f1Structure.gDir), true
		}
	}
	return units.Vector3[units.Force]{}, false
}

// Contact is one canonical entry of Solution.Contacts(): a link endpoint
// pair plus the force it carries (spec.md's SUPPLEMENTED FEATURES #1,
// original_source/.../solution/Contacts.hpp).
type Contact struct {
	Link  solver.LinkIndex
	Local solver.NodeIndex
	Other solver.NodeIndex
	Force units.Vector3[units.Force]
}

// Contacts returns every link's force in link-index order: one entry per
// physical surface, not two, each the force on the link's LocalNode by its
// OtherNode (spec.md §4.4, supplemented from original_source's Contacts.hpp).
func (s *Solution) Contacts() []Contact {
	out := make([]Contact, 0, s.structure.NumLinks())
	for li := 0; li < s.structure.NumLinks(); li++ {
		link := s.structure.Link(solver.LinkIndex(li))
		force, ok := s.ForceVectorFrom(link.LocalNode, link.OtherNode)
		if !ok {
			continue
		}
		out = append(out, Contact{Link: solver.LinkIndex(li), Local: link.LocalNode, Other: link.OtherNode, Force: force})
	}
	return out
}

// NodePotential returns the solved potential of a node, mostly useful for
// tests and debugging (spec.md's potentials are otherwise an implementation
// detail behind the force queries).
func (s *Solution) NodePotential(i solver.NodeIndex) units.Potential {
	return s.potentials[i]
}

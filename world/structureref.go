package world

import (
	"fmt"

	"github.com/vsaulue/gustave/gustaveerr"
	"github.com/vsaulue/gustave/scene"
	"github.com/vsaulue/gustave/solver"
	"github.com/vsaulue/gustave/solver/force1"
)

// StructureRef is a view over one live structure (spec.md §4.7). Structure
// ids are never reused once retired (spec.md §4.5.1), so unlike BlockRef it
// needs no generation tag: once Valid() is false, it is false forever.
type StructureRef struct {
	world *World
	id    scene.StructureIndex
}

// ID returns the identifier this reference names.
func (r StructureRef) ID() scene.StructureIndex {
	return r.id
}

// Valid reports whether this structure is still live in the scene.
func (r StructureRef) Valid() bool {
	if r.world == nil {
		return false
	}
	_, ok := r.world.scene.Structure(r.id)
	return ok
}

// IsSolved reports whether the solver converged on this structure, false if
// it was retired or reported Unsolvable.
func (r StructureRef) IsSolved() bool {
	if r.world == nil {
		return false
	}
	entry, ok := r.world.solutions[r.id]
	return ok && entry.solution != nil
}

// UnsolvableReason returns why the solver failed on this structure, with
// ok=false if the structure solved fine or no longer exists.
func (r StructureRef) UnsolvableReason() (force1.UnsolvableReason, bool) {
	if r.world == nil {
		return 0, false
	}
	entry, ok := r.world.solutions[r.id]
	if !ok || entry.unsolvable == nil {
		return 0, false
	}
	return entry.unsolvable.Reason, true
}

// Solution returns the converged solution for this structure (spec.md
// §6.4: "solution()"), failing with gustaveerr.ErrStructureUnsolvable if
// the solver could not balance it and gustaveerr.ErrInvalidated if the
// structure was retired.
func (r StructureRef) Solution() (*force1.Solution, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: structure %d", gustaveerr.ErrInvalidated, r.id)
	}
	return r.world.solutionFor(r.id)
}

// UserData returns the opaque payload attached to this structure, nil if
// none was ever set.
func (r StructureRef) UserData() (any, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: structure %d", gustaveerr.ErrInvalidated, r.id)
	}
	sd, _ := r.world.scene.Structure(r.id)
	return sd.UserData(), nil
}

// SetUserData attaches an opaque payload to this structure; it is dropped
// with the structure when a transaction retires it.
func (r StructureRef) SetUserData(v any) error {
	if !r.Valid() {
		return fmt.Errorf("%w: structure %d", gustaveerr.ErrInvalidated, r.id)
	}
	sd, _ := r.world.scene.Structure(r.id)
	sd.SetUserData(v)
	return nil
}

// Members returns a view over every block belonging to this structure
// (spec.md §4.5.1).
func (r StructureRef) Members() ([]BlockRef, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: structure %d", gustaveerr.ErrInvalidated, r.id)
	}
	sd, _ := r.world.scene.Structure(r.id)
	out := make([]BlockRef, 0, len(sd.Members()))
	for _, b := range sd.Members() {
		out = append(out, BlockRef{world: r.world, index: b, generation: r.world.scene.BlockGeneration(b)})
	}
	return out, nil
}

// Contacts returns one canonical ContactRef per link of this structure
// (spec.md §6.4: "contacts()"). Unlike Links it resolves even when the
// structure failed to solve: only Force() on the returned references fails
// then.
func (r StructureRef) Contacts() ([]ContactRef, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: structure %d", gustaveerr.ErrInvalidated, r.id)
	}
	sd, _ := r.world.scene.Structure(r.id)
	s := sd.Solver()
	out := make([]ContactRef, 0, s.NumLinks())
	for li := 0; li < s.NumLinks(); li++ {
		link := s.Link(solver.LinkIndex(li))
		local := sd.BlockOf(link.LocalNode)
		other := sd.BlockOf(link.OtherNode)
		d, ok := scene.DirectionBetween(local, other)
		if !ok {
			continue
		}
		out = append(out, ContactRef{
			world:      r.world,
			block:      local,
			generation: r.world.scene.BlockGeneration(local),
			dir:        d,
		})
	}
	return out, nil
}

// Links returns one view per canonical contact whose endpoints both belong
// to this structure (spec.md §4.4, SUPPLEMENTED FEATURES #1). Returns
// gustaveerr.ErrStructureUnsolvable if the structure failed to solve.
func (r StructureRef) Links() ([]LinkRef, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: structure %d", gustaveerr.ErrInvalidated, r.id)
	}
	sol, err := r.world.solutionFor(r.id)
	if err != nil {
		return nil, err
	}
	sd, _ := r.world.scene.Structure(r.id)
	contacts := sol.Contacts()
	out := make([]LinkRef, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, LinkRef{
			structure: r.id,
			local:     sd.BlockOf(c.Local),
			other:     sd.BlockOf(c.Other),
			force:     c.Force,
		})
	}
	return out, nil
}

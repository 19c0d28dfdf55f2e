package world

import (
	"fmt"

	"github.com/vsaulue/gustave/gustaveerr"
	"github.com/vsaulue/gustave/idx"
	"github.com/vsaulue/gustave/scene"
	"github.com/vsaulue/gustave/units"
)

// BlockRef is a generation-checked view over one scene block (spec.md §4.7):
// holding one across a Modify call is safe, but every accessor fails with
// gustaveerr.ErrInvalidated once the underlying slot has been overwritten.
type BlockRef struct {
	world      *World
	index      scene.BlockIndex
	generation idx.Generation
}

// Valid reports whether this reference still names the block it was taken
// from.
func (r BlockRef) Valid() bool {
	if r.world == nil {
		return false
	}
	if _, ok := r.world.scene.Block(r.index); !ok {
		return false
	}
	return r.world.scene.BlockGeneration(r.index) == r.generation
}

// Index returns the grid coordinate this reference names, valid even after
// invalidation.
func (r BlockRef) Index() scene.BlockIndex {
	return r.index
}

// block resolves the live scene.Block, or ErrInvalidated if this view is
// stale.
func (r BlockRef) block() (scene.Block, error) {
	if !r.Valid() {
		return scene.Block{}, fmt.Errorf("%w: block %+v", gustaveerr.ErrInvalidated, r.index)
	}
	b, ok := r.world.scene.Block(r.index)
	if !ok {
		return scene.Block{}, fmt.Errorf("%w: block %+v", gustaveerr.ErrInvalidated, r.index)
	}
	return b, nil
}

// Mass returns the block's mass (spec.md §3.1).
func (r BlockRef) Mass() (units.Mass, error) {
	b, err := r.block()
	return b.Mass, err
}

// MaxStress returns the block's material limits (spec.md §3.1).
func (r BlockRef) MaxStress() (units.PressureStress, error) {
	b, err := r.block()
	return b.MaxStress, err
}

// IsFoundation reports whether the block is pinned to zero potential.
func (r BlockRef) IsFoundation() (bool, error) {
	b, err := r.block()
	return b.IsFoundation, err
}

// UserData returns the opaque payload attached at construction.
func (r BlockRef) UserData() (any, error) {
	b, err := r.block()
	return b.UserData, err
}

// Structures returns every structure this block currently belongs to
// (spec.md §3.1): zero or one for a non-foundation block, any number for a
// shared foundation.
func (r BlockRef) Structures() ([]StructureRef, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: block %+v", gustaveerr.ErrInvalidated, r.index)
	}
	ids, ok := r.world.scene.BlockStructures(r.index)
	if !ok {
		return nil, fmt.Errorf("%w: block %+v", gustaveerr.ErrInvalidated, r.index)
	}
	out := make([]StructureRef, 0, len(ids))
	for _, id := range ids {
		out = append(out, StructureRef{world: r.world, id: id})
	}
	return out, nil
}

// Contact returns a view of this block's contact along d (spec.md §3.1). The
// face need not currently have a neighbour: the reference resolves lazily,
// failing only when Force() is actually called.
func (r BlockRef) Contact(d scene.Direction) ContactRef {
	return ContactRef{world: r.world, block: r.index, generation: r.generation, dir: d}
}

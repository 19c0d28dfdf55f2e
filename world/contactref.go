package world

import (
	"fmt"

	"github.com/vsaulue/gustave/gustaveerr"
	"github.com/vsaulue/gustave/idx"
	"github.com/vsaulue/gustave/scene"
	"github.com/vsaulue/gustave/units"
)

// ContactRef is a view over one face of one block (spec.md §3.1): the
// neighbour across it may or may not exist, and even when it does the two
// blocks may not bond (two touching foundations, spec.md's property 1).
type ContactRef struct {
	world      *World
	block      scene.BlockIndex
	generation idx.Generation
	dir        scene.Direction
}

// Index returns the (block, direction) pair this contact names (spec.md
// §3.1).
func (r ContactRef) Index() scene.ContactIndex {
	return scene.ContactIndex{Block: r.block, Direction: r.dir}
}

// Block returns the block this contact is a face of.
func (r ContactRef) Block() BlockRef {
	return BlockRef{world: r.world, index: r.block, generation: r.generation}
}

// Opposite returns the same physical surface seen from the neighbour block
// (spec.md §3.1: "(b, +X) and (neighbour(b,+X), -X) refer to the same
// physical surface"), ok=false if the neighbour does not exist.
func (r ContactRef) Opposite() (ContactRef, bool) {
	other, ok := r.Other()
	if !ok {
		return ContactRef{}, false
	}
	return other.Contact(r.dir.Opposite()), true
}

// SurfaceArea returns the area of this contact's face, derived from the
// scene's uniform block size (spec.md §4.5.3, §6.4).
func (r ContactRef) SurfaceArea() units.Area {
	area, _ := r.world.scene.ContactGeometry(r.dir)
	return area
}

// SurfaceNormal returns the unit outward normal of this face, pointing from
// Block() toward the neighbour side.
func (r ContactRef) SurfaceNormal() units.NormalizedVector3 {
	return scene.DirectionNormal(r.dir)
}

// Direction returns the face this contact names.
func (r ContactRef) Direction() scene.Direction {
	return r.dir
}

// Other returns a reference to the block across this contact, ok=false if
// there is none.
func (r ContactRef) Other() (BlockRef, bool) {
	if !r.Block().Valid() {
		return BlockRef{}, false
	}
	neigh, ok := r.block.NeighbourAlong(r.dir)
	if !ok {
		return BlockRef{}, false
	}
	if _, exists := r.world.scene.Block(neigh); !exists {
		return BlockRef{}, false
	}
	return BlockRef{world: r.world, index: neigh, generation: r.world.scene.BlockGeneration(neigh)}, true
}

// Force returns the force this contact's two blocks exert on each other,
// from the point of view of Block() (spec.md §4.4). It fails with
// ErrInvalidated if either endpoint view is stale, ErrOutOfRange if the two
// blocks do not bond into a shared structure, or ErrStructureUnsolvable if
// that structure's solver did not converge.
func (r ContactRef) Force() (units.Vector3[units.Force], error) {
	if !r.Block().Valid() {
		return units.Vector3[units.Force]{}, fmt.Errorf("%w: block %+v", gustaveerr.ErrInvalidated, r.block)
	}
	other, ok := r.Other()
	if !ok {
		return units.Vector3[units.Force]{}, fmt.Errorf("%w: contact %+v/%v has no neighbour", gustaveerr.ErrOutOfRange, r.block, r.dir)
	}

	localIDs, _ := r.world.scene.BlockStructures(r.block)
	otherIDs, _ := r.world.scene.BlockStructures(other.index)
	sharedID, ok := sharedStructure(localIDs, otherIDs)
	if !ok {
		return units.Vector3[units.Force]{}, fmt.Errorf("%w: contact %+v/%v has no shared structure", gustaveerr.ErrOutOfRange, r.block, r.dir)
	}

	sol, err := r.world.solutionFor(sharedID)
	if err != nil {
		return units.Vector3[units.Force]{}, err
	}
	sd, _ := r.world.scene.Structure(sharedID)
	localNode, _ := sd.NodeOf(r.block)
	otherNode, _ := sd.NodeOf(other.index)
	force, ok := sol.ForceVectorFrom(localNode, otherNode)
	if !ok {
		return units.Vector3[units.Force]{}, fmt.Errorf("%w: contact %+v/%v has no link in its structure", gustaveerr.ErrOutOfRange, r.block, r.dir)
	}
	return force, nil
}

func sharedStructure(a, b []scene.StructureIndex) (scene.StructureIndex, bool) {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return x, true
			}
		}
	}
	return 0, false
}

// LinkRef is one entry of StructureRef.Links(): a resolved pair of blocks and
// the force between them (spec.md's SUPPLEMENTED FEATURES #1).
type LinkRef struct {
	structure scene.StructureIndex
	local     scene.BlockIndex
	other     scene.BlockIndex
	force     units.Vector3[units.Force]
}

// Structure returns the id of the structure this link belongs to.
func (l LinkRef) Structure() scene.StructureIndex { return l.structure }

// Local returns the index of this link's first endpoint.
func (l LinkRef) Local() scene.BlockIndex { return l.local }

// Other returns the index of this link's second endpoint.
func (l LinkRef) Other() scene.BlockIndex { return l.other }

// Force returns the force exerted on Local() by Other() through this link.
func (l LinkRef) Force() units.Vector3[units.Force] { return l.force }

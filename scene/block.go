package scene

import (
	"github.com/vsaulue/gustave/idx"
	"github.com/vsaulue/gustave/units"
)

// StructureIndex identifies a structure within a Scene, never reused once
// retired (spec.md §4.5.1: "a monotonically increasing structureIdGenerator").
type StructureIndex uint64

// ContactIndex identifies the oriented face between a block and one of its
// neighbours (spec.md §3.1). The canonical form stored by the scene always
// has a positive Direction; (b, +X) and (neighbour(b,+X), -X) name the same
// physical surface.
type ContactIndex struct {
	Block     BlockIndex
	Direction Direction
}

// Canonical returns the positive-direction form of a contact index, whose
// Block is the one it is now expressed relative to; ok=false if that
// neighbour's coordinate would overflow.
func (c ContactIndex) Canonical() (ContactIndex, bool) {
	if c.Direction.IsPositive() {
		return c, true
	}
	other, ok := c.Block.NeighbourAlong(c.Direction)
	if !ok {
		return ContactIndex{}, false
	}
	return ContactIndex{Block: other, Direction: c.Direction.Opposite()}, true
}

// BlockConstructionInfo is the value type a Transaction builds a new block
// from (spec.md's SUPPLEMENTED FEATURES #4, originally
// scenes/cuboidGrid/BlockConstructionInfo.hpp): a builder struct rather than
// positional constructor arguments.
type BlockConstructionInfo struct {
	Index        BlockIndex
	Mass         units.Mass
	MaxStress    units.PressureStress
	IsFoundation bool
	UserData     any
}

// Block is a read-only snapshot of one scene entry, returned by Scene
// queries (spec.md §3.1).
type Block struct {
	Index        BlockIndex
	Mass         units.Mass
	MaxStress    units.PressureStress
	IsFoundation bool
	UserData     any
}

// blockData is the scene's internal storage for one block (spec.md §4.5.1):
// immutable mass/stress/foundation flag, plus the mutable bookkeeping the
// scene updates on every transaction. structureIDs holds every structure the
// block currently belongs to: exactly one for a non-foundation block, zero
// or more for a foundation block, which belongs to every structure bonding
// to it (spec.md §3.1). generation increments every time a block is
// (re)inserted at this index, so a BlockRef taken before a remove-then-add
// cycle correctly reports itself invalidated (spec.md §4.7).
type blockData struct {
	mass         units.Mass
	maxStress    units.PressureStress
	isFoundation bool
	userData     any
	structureIDs []StructureIndex
	generation   idx.Generation
}

func (b blockData) toBlock(index BlockIndex) Block {
	return Block{
		Index:        index,
		Mass:         b.mass,
		MaxStress:    b.maxStress,
		IsFoundation: b.isFoundation,
		UserData:     b.userData,
	}
}

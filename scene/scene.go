package scene

import (
	"fmt"
	"math"
	"sort"

	"github.com/vsaulue/gustave/gustaveerr"
	"github.com/vsaulue/gustave/idx"
	"github.com/vsaulue/gustave/solver"
	"github.com/vsaulue/gustave/units"
)

// Scene owns the cuboid grid: the block map and the partition of blocks into
// structures (spec.md §4.5.1).
type Scene struct {
	blockSize        units.Vector3[units.Length]
	gravityNorm      units.Acceleration
	blocks           map[BlockIndex]blockData
	blockGenerations map[BlockIndex]idx.Generation
	structures       map[StructureIndex]*StructureData
	nextStructureID  StructureIndex
}

// NewScene returns an empty scene whose blocks all share blockSize, and
// whose node weights are computed against the magnitude of gravityNorm
// (spec.md §6.4: "new(blockSize, solver)" — the world layer owns the
// Force1 Config this is sourced from, see package world).
func NewScene(blockSize units.Vector3[units.Length], gravityNorm units.Acceleration) *Scene {
	return &Scene{
		blockSize:        blockSize,
		gravityNorm:      gravityNorm,
		blocks:           make(map[BlockIndex]blockData),
		blockGenerations: make(map[BlockIndex]idx.Generation),
		structures:       make(map[StructureIndex]*StructureData),
	}
}

// BlockGeneration returns the generation currently live at index, used by
// world.BlockRef to detect invalidation (spec.md §4.7).
func (sc *Scene) BlockGeneration(index BlockIndex) idx.Generation {
	return sc.blockGenerations[index]
}

// Block returns the block at index, or ok=false if none is present.
func (sc *Scene) Block(index BlockIndex) (Block, bool) {
	b, ok := sc.blocks[index]
	if !ok {
		return Block{}, false
	}
	return b.toBlock(index), true
}

// Structure returns the structure data for id, or ok=false if no live
// structure has that id.
func (sc *Scene) Structure(id StructureIndex) (*StructureData, bool) {
	sd, ok := sc.structures[id]
	return sd, ok
}

// NumBlocks returns the number of blocks currently present.
func (sc *Scene) NumBlocks() int { return len(sc.blocks) }

// NumStructures returns the number of live structures.
func (sc *Scene) NumStructures() int { return len(sc.structures) }

// Blocks returns every block index currently present, in unspecified order.
func (sc *Scene) Blocks() []BlockIndex {
	out := make([]BlockIndex, 0, len(sc.blocks))
	for b := range sc.blocks {
		out = append(out, b)
	}
	return out
}

// Structures returns every live structure id, in unspecified order.
func (sc *Scene) Structures() []StructureIndex {
	out := make([]StructureIndex, 0, len(sc.structures))
	for id := range sc.structures {
		out = append(out, id)
	}
	return out
}

// BlockStructures returns every structure id a block currently belongs to:
// at most one for a non-foundation block, any number for a foundation block
// shared between several structures (spec.md §3.1). ok is false if no block
// lives at index.
func (sc *Scene) BlockStructures(index BlockIndex) ([]StructureIndex, bool) {
	data, ok := sc.blocks[index]
	if !ok {
		return nil, false
	}
	return append([]StructureIndex(nil), data.structureIDs...), true
}

// Modify applies a transaction (spec.md §4.5.3), in five phases: validate,
// compute affected structures, mutate the block map, recompute structures
// via flood fill, and snapshot each new structure into a solver.Structure.
// On any validation failure the scene is left untouched and
// gustaveerr.ErrInvalidTransaction is returned (spec.md §8, property 6), or
// gustaveerr.ErrOverflow if the structure id generator could run out.
func (sc *Scene) Modify(tx *Transaction) (TransactionResult, error) {
	// Phase 1: validate.
	for index := range tx.newBlocks {
		if _, exists := sc.blocks[index]; exists {
			return TransactionResult{}, fmt.Errorf("%w: block %+v already present", gustaveerr.ErrInvalidTransaction, index)
		}
	}
	for index := range tx.deletedBlocks {
		if _, exists := sc.blocks[index]; !exists {
			return TransactionResult{}, fmt.Errorf("%w: block %+v does not exist", gustaveerr.ErrInvalidTransaction, index)
		}
	}
	// A transaction can allocate at most one structure per recomputed block;
	// rejecting the (absurdly remote) id exhaustion case up front keeps the
	// failure atomic (spec.md §4.5.1: the id generator "overflows with
	// Overflow").
	if maxNew := uint64(len(sc.blocks) + len(tx.newBlocks)); uint64(sc.nextStructureID) > math.MaxUint64-maxNew {
		return TransactionResult{}, fmt.Errorf("%w: structure id generator exhausted", gustaveerr.ErrOverflow)
	}

	// Phase 2: compute affected structures (pre-mutation block data).
	affected := make(map[StructureIndex]struct{})
	for index := range tx.deletedBlocks {
		for _, id := range sc.blocks[index].structureIDs {
			affected[id] = struct{}{}
		}
	}
	for index := range tx.newBlocks {
		for _, d := range allDirections {
			neigh, ok := index.NeighbourAlong(d)
			if !ok {
				continue
			}
			if data, exists := sc.blocks[neigh]; exists {
				for _, id := range data.structureIDs {
					affected[id] = struct{}{}
				}
			}
		}
	}

	result := TransactionResult{}
	candidateSet := make(map[BlockIndex]struct{})
	for id := range affected {
		sd := sc.structures[id]
		for _, m := range sd.members {
			if _, deleted := tx.deletedBlocks[m]; deleted {
				continue
			}
			candidateSet[m] = struct{}{}
		}
		result.DeletedStructures = append(result.DeletedStructures, id)
		delete(sc.structures, id)
	}

	// Phase 3: mutate the block map.
	for index := range tx.deletedBlocks {
		delete(sc.blocks, index)
	}
	for index, info := range tx.newBlocks {
		sc.blockGenerations[index]++
		sc.blocks[index] = blockData{
			mass:         info.Mass,
			maxStress:    info.MaxStress,
			isFoundation: info.IsFoundation,
			userData:     info.UserData,
			generation:   sc.blockGenerations[index],
		}
		candidateSet[index] = struct{}{}
		for _, d := range allDirections {
			if neigh, ok := index.NeighbourAlong(d); ok {
				if _, exists := sc.blocks[neigh]; exists {
					candidateSet[neigh] = struct{}{}
				}
			}
		}
	}

	// Drop retired memberships on every block being recomputed. A shared
	// foundation can also belong to structures this transaction leaves
	// alone; those ids must survive (spec.md §3.1: "a foundation block
	// belongs to every structure bonding to it").
	candidates := make([]BlockIndex, 0, len(candidateSet))
	for b := range candidateSet {
		data := sc.blocks[b]
		kept := data.structureIDs[:0]
		for _, id := range data.structureIDs {
			if _, retired := affected[id]; !retired {
				kept = append(kept, id)
			}
		}
		data.structureIDs = kept
		sc.blocks[b] = data
		candidates = append(candidates, b)
	}
	sort.Slice(candidates, func(a, b int) bool { return candidates[a].less(candidates[b]) })

	// Phase 4: recompute structures via flood fill.
	components := sc.floodFill(candidates)

	// Phase 5: snapshot each component into a solver.Structure.
	firstNewID := sc.nextStructureID
	for _, comp := range components {
		id := sc.nextStructureID
		sc.nextStructureID++
		sd := sc.buildStructureData(id, comp.blocks)
		sc.structures[id] = sd
		for _, m := range comp.blocks {
			data := sc.blocks[m]
			data.structureIDs = append(data.structureIDs, id)
			sc.blocks[m] = data
		}
	}
	result.NewStructures = idx.Range{Start: int(firstNewID), End: int(sc.nextStructureID)}

	return result, nil
}

// buildStructureData turns a flood-fill component into a solver.Structure
// snapshot (spec.md §4.5.3, step 5): contiguous node indices, one link per
// internal contact with area/thickness derived from blockSize and material
// limits taken as the component-wise minimum of the two endpoint blocks.
func (sc *Scene) buildStructureData(id StructureIndex, members []BlockIndex) *StructureData {
	s := solver.NewStructure()
	nodeOf := make(map[BlockIndex]solver.NodeIndex, len(members))
	blockOf := make([]BlockIndex, 0, len(members))

	for _, b := range members {
		data := sc.blocks[b]
		n, err := s.AddNode(solver.Node{
			Weight:       units.MassWeight(data.mass, sc.gravityNorm),
			IsFoundation: data.isFoundation,
		})
		if err != nil {
			panic(err) // a structure's member count cannot exceed the scene's own block count
		}
		nodeOf[b] = n
		blockOf = append(blockOf, b)
	}

	seen := make(map[ContactIndex]struct{})
	for _, b := range members {
		bData := sc.blocks[b]
		for _, d := range positiveDirections {
			neigh, ok := b.NeighbourAlong(d)
			if !ok {
				continue
			}
			neighData, exists := sc.blocks[neigh]
			if !exists {
				continue
			}
			if _, isMember := nodeOf[neigh]; !isMember {
				continue
			}
			if !bondable(bData, neighData) {
				continue
			}
			ci := ContactIndex{Block: b, Direction: d}
			if _, done := seen[ci]; done {
				continue
			}
			seen[ci] = struct{}{}

			area, thickness := sc.ContactGeometry(d)
			cond := units.AreaConductivity(units.MinStress(bData.maxStress, neighData.maxStress), area, thickness)
			normal := DirectionNormal(d)
			_, err := s.AddLink(solver.Link{
				LocalNode: nodeOf[b],
				OtherNode: nodeOf[neigh],
				Normal:    normal,
				AreaCond:  cond,
			})
			if err != nil {
				panic(err)
			}
		}
	}

	return &StructureData{
		id:      id,
		solver:  s,
		members: append([]BlockIndex(nil), members...),
		nodeOf:  nodeOf,
		blockOf: blockOf,
	}
}

// ContactGeometry returns the area and thickness of a contact along d,
// derived from blockSize (spec.md §4.5.3): area is the product of the two
// block-size components orthogonal to d, thickness is the component along d.
func (sc *Scene) ContactGeometry(d Direction) (units.Area, units.Length) {
	x, y, z := float64(sc.blockSize.X), float64(sc.blockSize.Y), float64(sc.blockSize.Z)
	switch d {
	case DirPX, DirNX:
		return units.Area(y * z), sc.blockSize.X
	case DirPY, DirNY:
		return units.Area(x * z), sc.blockSize.Y
	default:
		return units.Area(x * y), sc.blockSize.Z
	}
}

// DirectionNormal returns the unit outward normal of a contact direction.
func DirectionNormal(d Direction) units.NormalizedVector3 {
	switch d {
	case DirPX:
		return units.AxisPX
	case DirNX:
		return units.AxisNX
	case DirPY:
		return units.AxisPY
	case DirNY:
		return units.AxisNY
	case DirPZ:
		return units.AxisPZ
	case DirNZ:
		return units.AxisNZ
	default:
		panic("scene: invalid direction")
	}
}

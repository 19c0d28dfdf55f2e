// Package world implements the synchronous world (spec.md §4.6): it
// composes a cuboid-grid scene with the Force1 solver, caching one Solution
// (or Unsolvable outcome) per live structure and keeping that cache
// consistent with the scene on every transaction.
package world

import (
	"fmt"

	"github.com/vsaulue/gustave/gustaveerr"
	"github.com/vsaulue/gustave/scene"
	"github.com/vsaulue/gustave/solver/force1"
	"github.com/vsaulue/gustave/units"
)

// solutionEntry is the cached outcome of solving one structure: exactly one
// of solution/unsolvable is non-nil.
type solutionEntry struct {
	solution   *force1.Solution
	unsolvable *force1.Unsolvable
}

// Config is the top-level tuning a World is built from (SPEC_FULL.md's
// AMBIENT STACK, "Configuration"): the uniform size every block shares, and
// the Force1 solver settings applied to every structure. Loadable from YAML
// fixtures through package config.
type Config struct {
	BlockSize units.Vector3[units.Length]
	Solver    force1.Config
}

// World owns a scene, a Force1 config, and a solution cache keyed by
// structure id (spec.md §4.6). The public surface is single-threaded: a
// caller must not call Modify concurrently with itself or with queries
// (spec.md §5).
type World struct {
	scene     *scene.Scene
	cfg       force1.Config
	solutions map[scene.StructureIndex]solutionEntry
}

// New builds a world over an empty scene from cfg (spec.md §6.4:
// "new(blockSize, solver) -> World"). It panics if cfg.Solver's gravity
// vector is zero, matching force1.Config's own invariant.
func New(cfg Config) *World {
	_, gNorm, err := units.Normalize(cfg.Solver.G())
	if err != nil {
		panic("world: gravity vector must be non-zero")
	}
	return &World{
		scene:     scene.NewScene(cfg.BlockSize, gNorm),
		cfg:       cfg.Solver,
		solutions: make(map[scene.StructureIndex]solutionEntry),
	}
}

// Modify delegates to the scene, then drops cache entries for every retired
// structure and solves every freshly allocated one (spec.md §4.6).
func (w *World) Modify(tx *scene.Transaction) (scene.TransactionResult, error) {
	result, err := w.scene.Modify(tx)
	if err != nil {
		return result, err
	}

	for _, id := range result.DeletedStructures {
		delete(w.solutions, id)
	}
	for id := result.NewStructures.Start; id < result.NewStructures.End; id++ {
		structID := scene.StructureIndex(id)
		sd, ok := w.scene.Structure(structID)
		if !ok {
			continue
		}
		sol, unsolvable := force1.Solve(sd.Solver(), w.cfg)
		w.solutions[structID] = solutionEntry{solution: sol, unsolvable: unsolvable}
	}
	return result, nil
}

// Block returns a reference to the block at index (spec.md §6.4:
// "blocks().find(index)"). The second return is false if no block lives
// there.
func (w *World) Block(index scene.BlockIndex) (BlockRef, bool) {
	if _, ok := w.scene.Block(index); !ok {
		return BlockRef{}, false
	}
	return BlockRef{world: w, index: index, generation: w.scene.BlockGeneration(index)}, true
}

// Structure returns a reference to the structure with id (spec.md §6.4:
// "structures().find(index)").
func (w *World) Structure(id scene.StructureIndex) (StructureRef, bool) {
	if _, ok := w.scene.Structure(id); !ok {
		return StructureRef{}, false
	}
	return StructureRef{world: w, id: id}, true
}

// Blocks returns a view over every block in the world, in unspecified order
// (spec.md §6.4: "blocks()").
func (w *World) Blocks() []BlockRef {
	indices := w.scene.Blocks()
	out := make([]BlockRef, 0, len(indices))
	for _, b := range indices {
		out = append(out, BlockRef{world: w, index: b, generation: w.scene.BlockGeneration(b)})
	}
	return out
}

// Structures returns a view over every live structure, in unspecified order
// (spec.md §6.4: "structures()").
func (w *World) Structures() []StructureRef {
	ids := w.scene.Structures()
	out := make([]StructureRef, 0, len(ids))
	for _, id := range ids {
		out = append(out, StructureRef{world: w, id: id})
	}
	return out
}

// BlockAt is the checked variant of Block (spec.md §6.4: "blocks().at"):
// it fails with gustaveerr.ErrOutOfRange where Block returns ok=false.
func (w *World) BlockAt(index scene.BlockIndex) (BlockRef, error) {
	ref, ok := w.Block(index)
	if !ok {
		return BlockRef{}, fmt.Errorf("%w: no block at %+v", gustaveerr.ErrOutOfRange, index)
	}
	return ref, nil
}

// StructureAt is the checked variant of Structure (spec.md §6.4:
// "structures().at").
func (w *World) StructureAt(id scene.StructureIndex) (StructureRef, error) {
	ref, ok := w.Structure(id)
	if !ok {
		return StructureRef{}, fmt.Errorf("%w: no structure %d", gustaveerr.ErrOutOfRange, id)
	}
	return ref, nil
}

// Contact returns a reference to the contact named by index (spec.md §6.4:
// "contacts().find(index)"), ok=false if its local block does not exist.
func (w *World) Contact(index scene.ContactIndex) (ContactRef, bool) {
	block, ok := w.Block(index.Block)
	if !ok {
		return ContactRef{}, false
	}
	return block.Contact(index.Direction), true
}

// ContactAt is the checked variant of Contact (spec.md §6.4:
// "contacts().at").
func (w *World) ContactAt(index scene.ContactIndex) (ContactRef, error) {
	ref, ok := w.Contact(index)
	if !ok {
		return ContactRef{}, fmt.Errorf("%w: no block at %+v", gustaveerr.ErrOutOfRange, index.Block)
	}
	return ref, nil
}

// NumBlocks returns the number of blocks currently in the world (spec.md
// §6.4: "blocks().size()").
func (w *World) NumBlocks() int {
	return w.scene.NumBlocks()
}

// NumStructures returns the number of live structures (spec.md §6.4:
// "structures().size()").
func (w *World) NumStructures() int {
	return w.scene.NumStructures()
}

// Links returns one entry per canonical contact of every solvable structure
// (spec.md §6.4: "links().iter()"). Structures the solver reported
// Unsolvable contribute nothing.
func (w *World) Links() []LinkRef {
	var out []LinkRef
	for _, sr := range w.Structures() {
		links, err := sr.Links()
		if err != nil {
			continue
		}
		out = append(out, links...)
	}
	return out
}

// solutionFor returns the cached outcome for a structure id, failing with
// gustaveerr.ErrStructureUnsolvable if the solver could not balance it
// (spec.md §4.6: "Accessing a force on a contact whose structure is
// Unsolvable fails with StructureUnsolvable").
func (w *World) solutionFor(id scene.StructureIndex) (*force1.Solution, error) {
	entry, ok := w.solutions[id]
	if !ok || entry.solution == nil {
		return nil, fmt.Errorf("%w: structure %d", gustaveerr.ErrStructureUnsolvable, id)
	}
	return entry.solution, nil
}

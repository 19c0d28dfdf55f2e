package scene

import (
	"github.com/vsaulue/gustave/idx"
	"github.com/vsaulue/gustave/solver"
)

// StructureData is the scene's own record of one live structure (spec.md
// §4.5.1): its solver.Structure snapshot (ready to hand to force1.Solve),
// the block indices that are members, and a generation tag that the scene
// leaves at zero (structure ids are never reused, see Generation).
type StructureData struct {
	id         StructureIndex
	solver     *solver.Structure
	members    []BlockIndex
	nodeOf     map[BlockIndex]solver.NodeIndex
	blockOf    []BlockIndex // parallel to solver node indices
	userData   any
	generation idx.Generation
}

// UserData returns the opaque caller payload attached to this structure.
func (sd *StructureData) UserData() any { return sd.userData }

// SetUserData attaches an opaque caller payload. The scene never reads it;
// it lives and dies with the structure.
func (sd *StructureData) SetUserData(v any) { sd.userData = v }

// ID returns this structure's identifier.
func (sd *StructureData) ID() StructureIndex { return sd.id }

// Solver returns the solver.Structure snapshot for this structure.
func (sd *StructureData) Solver() *solver.Structure { return sd.solver }

// Members returns every block index belonging to this structure, foundation
// and non-foundation alike.
func (sd *StructureData) Members() []BlockIndex { return sd.members }

// NodeOf returns the solver node index a block maps to within this
// structure's snapshot.
func (sd *StructureData) NodeOf(b BlockIndex) (solver.NodeIndex, bool) {
	n, ok := sd.nodeOf[b]
	return n, ok
}

// BlockOf is the inverse of NodeOf.
func (sd *StructureData) BlockOf(n solver.NodeIndex) BlockIndex {
	return sd.blockOf[n]
}

// Generation returns the structure's generation tag. The scene never changes
// it from zero, and world.StructureRef does not check it: structure ids are
// never reused, so liveness of the id is what a view checks.
func (sd *StructureData) Generation() idx.Generation { return sd.generation }

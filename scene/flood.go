package scene

// bondable reports whether two face-adjacent blocks bond into the same
// structure (spec.md §3.1: "Two foundation blocks that touch do not bond").
func bondable(a, b blockData) bool {
	return !(a.isFoundation && b.isFoundation)
}

// component is one connected set of blocks found by floodFill, in visit
// order (deterministic given a deterministic candidate iteration order).
// Every component holds at least one non-foundation block: lone foundations
// never seed one (spec.md §4.5.3, step 4: "A component that is a single
// isolated foundation block is discarded").
type component struct {
	blocks []BlockIndex
}

// floodFill partitions candidates into connected components under the
// bonding relation (spec.md §4.5.3, step 4). Exploration never continues
// through a foundation block: foundations terminate a component's growth and
// are included as boundary members only, so a foundation bonded to several
// disjoint sets of non-foundation blocks ends up a member of every resulting
// component (spec.md §3.1: "a foundation block belongs to every structure
// bonding to it"). Hand-written rather than built on a graph library (see
// DESIGN.md, "Considered but not wired: lvlath"): an explicit FIFO queue and
// a visited set over non-foundation blocks, visiting a block's six
// neighbours in the fixed order of allDirections for determinism.
func (sc *Scene) floodFill(candidates []BlockIndex) []component {
	visited := make(map[BlockIndex]struct{}, len(candidates))
	var components []component

	for _, seed := range candidates {
		if sc.blocks[seed].isFoundation {
			continue // foundations never seed a component
		}
		if _, done := visited[seed]; done {
			continue
		}
		comp := component{}
		inComp := make(map[BlockIndex]struct{})
		queue := []BlockIndex{seed}
		visited[seed] = struct{}{}
		inComp[seed] = struct{}{}

		for head := 0; head < len(queue); head++ {
			cur := queue[head]
			curData := sc.blocks[cur]
			comp.blocks = append(comp.blocks, cur)

			for _, d := range allDirections {
				neigh, ok := cur.NeighbourAlong(d)
				if !ok {
					continue
				}
				neighData, present := sc.blocks[neigh]
				if !present || !bondable(curData, neighData) {
					continue
				}
				if _, done := inComp[neigh]; done {
					continue
				}
				if neighData.isFoundation {
					// Boundary member: recorded, never expanded.
					inComp[neigh] = struct{}{}
					comp.blocks = append(comp.blocks, neigh)
					continue
				}
				visited[neigh] = struct{}{}
				inComp[neigh] = struct{}{}
				queue = append(queue, neigh)
			}
		}
		components = append(components, comp)
	}
	return components
}

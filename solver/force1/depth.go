package force1

import "github.com/vsaulue/gustave/solver"

// computeDepth runs a multi-source breadth-first search from every
// foundation node (spec.md §4.2: "BFS from the set of foundation nodes gives
// each node a depth"). It is hand-written rather than built on a graph
// library (see DESIGN.md, "Considered but not wired: lvlath"), shaped after
// that library's bfs.go: an explicit FIFO queue plus a depth slice playing
// the role of its Depth map, visiting neighbours in the deterministic order
// they appear in the flat contact array.
//
// Returns false if some non-foundation node is never reached.
func (f *F1Structure) computeDepth() bool {
	f.depth = make([]int, len(f.nodes))
	for i := range f.depth {
		f.depth[i] = unreachableDepth
	}

	queue := make([]solver.NodeIndex, 0, len(f.nodes))
	for i, node := range f.nodes {
		if node.isFoundation {
			f.depth[i] = 0
			queue = append(queue, solver.NodeIndex(i))
		}
	}

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		curDepth := f.depth[cur]
		for _, c := range f.contactsOf(cur) {
			if f.depth[c.otherNode] != unreachableDepth {
				continue
			}
			f.depth[c.otherNode] = curDepth + 1
			queue = append(queue, c.otherNode)
		}
	}

	for i, node := range f.nodes {
		if !node.isFoundation && f.depth[i] == unreachableDepth {
			return false
		}
	}
	return true
}

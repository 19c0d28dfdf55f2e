package force1

import (
	"sort"

	"github.com/vsaulue/gustave/idx"
	"github.com/vsaulue/gustave/solver"
)

// buildOrderAndLayers groups non-foundation nodes by depth (spec.md §4.2,
// "contiguous grouping of nodes by depth used for layer-sweep relaxation").
// f.order lists every non-foundation node once, shallowest depth first;
// f.layers[d] is the half-open range of f.order holding depth d+1 (depth 0 is
// the foundation set, fixed at potential zero and never swept).
func (f *F1Structure) buildOrderAndLayers() {
	maxDepth := 0
	for i, node := range f.nodes {
		if !node.isFoundation && f.depth[i] > maxDepth {
			maxDepth = f.depth[i]
		}
	}

	f.order = make([]solver.NodeIndex, 0, len(f.nodes))
	for i, node := range f.nodes {
		if !node.isFoundation {
			f.order = append(f.order, solver.NodeIndex(i))
		}
	}
	sort.SliceStable(f.order, func(a, b int) bool {
		return f.depth[f.order[a]] < f.depth[f.order[b]]
	})

	f.layers = make([]idx.Range, 0, maxDepth)
	start := 0
	for d := 1; d <= maxDepth; d++ {
		end := start
		for end < len(f.order) && f.depth[f.order[end]] == d {
			end++
		}
		f.layers = append(f.layers, idx.Range{Start: start, End: end})
		start = end
	}
}

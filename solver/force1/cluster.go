package force1

import (
	"github.com/vsaulue/gustave/solver"
	"github.com/vsaulue/gustave/units"
)

// clusterBandWidths are the geometric depth-band widths clusters are built
// from (spec.md §4.2: "bands of geometric widths 3, 7, 15, ..."): each is
// twice the previous plus one.
var clusterBandWidths = []int{3, 7, 15, 31, 63, 127, 255}

// minClustersPerLevel is the retention threshold of spec.md §4.2: "Cluster
// level k is retained only if it produces >= 8 clusters; construction stops
// at the first level that fails this test."
const minClustersPerLevel = 8

// clusterContact is one external contact of a cluster: owner is the member
// node the contact actually belongs to (needed to read that member's own
// current potential when the cluster is relaxed as a single super-node),
// contact is that member's own F1 contact.
type clusterContact struct {
	owner   solver.NodeIndex
	contact f1Contact
}

// cluster is one band of depth-adjacent nodes treated as a single super-node
// by the cluster sweep (spec.md §4.3.3): its aggregate weight and the
// contacts that cross the cluster's boundary.
type cluster struct {
	members  []solver.NodeIndex
	weight   units.Force
	external []clusterContact
}

// clusterLevel is one retained geometric band width, and the clusters it
// produced.
type clusterLevel struct {
	width    int
	clusters []cluster
}

// buildClusters derives the finest-to-coarsest sequence of cluster levels
// (spec.md §4.2). Each level bands the non-foundation depths (1..maxDepth)
// into groups of `width` consecutive depths; construction stops at the
// first width that would produce fewer than minClustersPerLevel clusters,
// so f.clusters holds only retained levels, finest (narrowest band) first.
func (f *F1Structure) buildClusters() {
	maxDepth := len(f.layers)
	if maxDepth == 0 {
		return
	}

	memberOf := make(map[solver.NodeIndex]int, len(f.order))

	for _, width := range clusterBandWidths {
		numBands := (maxDepth + width - 1) / width
		if numBands < minClustersPerLevel {
			break
		}

		bands := make([]cluster, numBands)
		for i := range f.order {
			depth := f.depth[f.order[i]]
			band := (depth - 1) / width
			bands[band].members = append(bands[band].members, f.order[i])
		}

		for b := range bands {
			for _, m := range bands[b].members {
				memberOf[m] = b
			}
		}

		for b := range bands {
			for _, m := range bands[b].members {
				bands[b].weight += f.nodes[m].weight
				for _, c := range f.contactsOf(m) {
					if otherBand, isMember := memberOf[c.otherNode]; !isMember || otherBand != b {
						bands[b].external = append(bands[b].external, clusterContact{owner: m, contact: c})
					}
				}
			}
		}

		f.clusters = append(f.clusters, clusterLevel{width: width, clusters: bands})
		for k := range memberOf {
			delete(memberOf, k)
		}
	}
}

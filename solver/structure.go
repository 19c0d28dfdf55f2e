// Package solver implements the append-only graph Gustave solves: nodes
// carry a weight and a foundation flag, links carry the two endpoints, a
// surface normal and the three directional conductivities derived from
// contact geometry and material limits (spec.md §3.2, §4.1).
package solver

import (
	"fmt"
	"math"

	"github.com/vsaulue/gustave/gustaveerr"
	"github.com/vsaulue/gustave/idx"
	"github.com/vsaulue/gustave/units"
)

// NodeIndex identifies a node within a Structure, contiguous from 0.
type NodeIndex uint32

// LinkIndex identifies a link within a Structure, contiguous from 0.
type LinkIndex uint32

// maxIndex is the overflow boundary for NodeIndex/LinkIndex (spec.md §6.2:
// "Implementations must detect and report overflow at addNode/addLink").
const maxIndex = math.MaxUint32

// Node is a solver graph vertex: a weight pulling it along gravity, and
// whether it is pinned to zero potential (spec.md §3.2).
type Node struct {
	Weight       units.Force
	IsFoundation bool
}

// Link is an undirected edge between two distinct nodes, carrying the
// contact's surface normal (pointing from LocalNode to OtherNode) and the
// three directional conductivities derived from the contact's geometry and
// material limits (spec.md §3.2).
type Link struct {
	LocalNode NodeIndex
	OtherNode NodeIndex
	Normal    units.NormalizedVector3
	AreaCond  units.ConductivityTriple
}

// Structure is an append-only graph builder (spec.md §4.1). Once built, it
// is treated as immutable by the Force1 solver.
type Structure struct {
	nodes    []Node
	links    []Link
	linkKeys map[uint64]struct{}
}

// NewStructure returns an empty structure builder.
func NewStructure() *Structure {
	return &Structure{linkKeys: make(map[uint64]struct{})}
}

// AddNode appends a node and returns its index, or gustaveerr.ErrOverflow if
// the node-index type would narrow.
func (s *Structure) AddNode(n Node) (NodeIndex, error) {
	if len(s.nodes) >= maxIndex {
		return 0, fmt.Errorf("%w: structure already has the maximum number of nodes", gustaveerr.ErrOverflow)
	}
	s.nodes = append(s.nodes, n)
	return NodeIndex(len(s.nodes) - 1), nil
}

// AddLink appends a link and returns its index. It panics if the endpoints
// are equal or out of range: per spec.md §4.1 this is a programmer error
// ("addLink asserts both endpoints exist and are distinct"), not a
// recoverable one.
func (s *Structure) AddLink(l Link) (LinkIndex, error) {
	if l.LocalNode == l.OtherNode {
		panic("solver: link endpoints must be distinct")
	}
	if int(l.LocalNode) >= len(s.nodes) || int(l.OtherNode) >= len(s.nodes) {
		panic("solver: link endpoint out of range")
	}
	key := idx.PairHash64(uint32(l.LocalNode), uint32(l.OtherNode))
	if _, dup := s.linkKeys[key]; dup {
		panic("solver: duplicate link between node pair")
	}
	if len(s.links) >= maxIndex {
		return 0, fmt.Errorf("%w: structure already has the maximum number of links", gustaveerr.ErrOverflow)
	}
	s.linkKeys[key] = struct{}{}
	s.links = append(s.links, l)
	return LinkIndex(len(s.links) - 1), nil
}

// NumNodes returns the number of nodes appended so far.
func (s *Structure) NumNodes() int { return len(s.nodes) }

// NumLinks returns the number of links appended so far.
func (s *Structure) NumLinks() int { return len(s.links) }

// Node returns the node at the given index.
func (s *Structure) Node(i NodeIndex) Node { return s.nodes[i] }

// Link returns the link at the given index.
func (s *Structure) Link(i LinkIndex) Link { return s.links[i] }

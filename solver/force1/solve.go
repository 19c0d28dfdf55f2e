package force1

import (
	"log"

	"github.com/vsaulue/gustave/solver"
)

// Logger is where the solver reports a failed solve (spec.md §4.3.5,
// "Unsolvable with the reason"), following the teacher's own use of the
// standard log package for recoverable-but-noteworthy conditions
// (physics/solver.go). Swappable by the caller; defaults to log.Default().
var Logger = log.Default()

// UnsolvableReason identifies why Solve could not produce a Solution
// (spec.md §4.3.5).
type UnsolvableReason int

const (
	// ReasonUnreachableNode is returned when F1Structure construction finds
	// a non-foundation node unreachable from every foundation node.
	ReasonUnreachableNode UnsolvableReason = iota
	// ReasonIterationBudgetExhausted is returned when the solver reaches
	// Config.MaxIterations() without convergence (spec.md §8, property 13).
	ReasonIterationBudgetExhausted
)

// String renders the reason for logging/debugging.
func (r UnsolvableReason) String() string {
	switch r {
	case ReasonUnreachableNode:
		return "unreachable node"
	case ReasonIterationBudgetExhausted:
		return "iteration budget exhausted"
	default:
		return "unknown"
	}
}

// Unsolvable is the failure result of Solve (spec.md §4.3.5): the structure
// could not be balanced, either because some non-foundation node cannot
// reach a foundation, or because the iteration budget ran out first.
type Unsolvable struct {
	Reason UnsolvableReason
}

func (u Unsolvable) Error() string {
	return "force1: structure unsolvable: " + u.Reason.String()
}

// Solve runs the Force1 iterative balancer on s under cfg (spec.md §4.3.4):
// one iteration applies cluster sweeps coarsest-to-finest, then a layer
// sweep, then a node sweep, each unconditionally advancing the iteration
// counter; it stops on convergence (maxRelError <= targetMaxError) or on
// exhausting cfg.MaxIterations().
func Solve(s *solver.Structure, cfg Config) (*Solution, *Unsolvable) {
	f1s, ok := BuildF1Structure(s, cfg)
	if !ok {
		node, _ := f1s.unreachableNode()
		Logger.Printf("force1: solve aborted, node %d unreachable from any foundation (%d nodes total)", node, s.NumNodes())
		return nil, &Unsolvable{Reason: ReasonUnreachableNode}
	}

	p := newPotentials(f1s.NumNodes())
	var iteration uint64
	maxErr := f1s.maxRelError(p)

	// Every sweep unconditionally advances the iteration index (spec.md
	// §4.3.4); maxRelError is recomputed once per full schedule pass.
	for maxErr > cfg.TargetMaxError() && iteration < cfg.MaxIterations() {
		for level := len(f1s.clusters) - 1; level >= 0; level-- {
			f1s.runClusterSweep(f1s.clusters[level], p)
			iteration++
		}
		f1s.layerSweep(p)
		iteration++
		f1s.nodeSweep(p)
		iteration++
		maxErr = f1s.maxRelError(p)
	}

	if maxErr > cfg.TargetMaxError() {
		Logger.Printf("force1: solve gave up after %d iterations, maxRelError=%v > target=%v", iteration, maxErr, cfg.TargetMaxError())
		return nil, &Unsolvable{Reason: ReasonIterationBudgetExhausted}
	}

	return &Solution{
		structure:   s,
		f1Structure: f1s,
		potentials:  p,
		maxRelError: maxErr,
	}, nil
}

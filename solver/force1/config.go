// Package force1 implements the Force1 iterative scalar-potential solver
// (spec.md §4.3): it turns a solver.Structure into a derived F1Structure
// (weights + signed per-contact conductivities, depth/layer/cluster
// decompositions) and relaxes a potential field until every non-foundation
// node's residual is within a target relative error, or gives up after a
// configurable iteration budget.
package force1

import (
	"fmt"

	"github.com/vsaulue/gustave/gustaveerr"
	"github.com/vsaulue/gustave/units"
)

// Config holds the tunables of a Force1 solver run (spec.md §6.3).
type Config struct {
	g              units.Vector3[units.Acceleration]
	targetMaxError units.One
	maxIterations  uint64
}

// DefaultMaxIterations is the solver's default iteration budget (spec.md §6.3).
const DefaultMaxIterations uint64 = 10000

// NewConfig builds a Config, rejecting a non-positive targetMaxError.
func NewConfig(g units.Vector3[units.Acceleration], targetMaxError units.One) (Config, error) {
	c := Config{g: g, maxIterations: DefaultMaxIterations}
	if err := c.SetTargetMaxError(targetMaxError); err != nil {
		return Config{}, err
	}
	return c, nil
}

// G returns the gravitational acceleration vector.
func (c *Config) G() units.Vector3[units.Acceleration] { return c.g }

// SetG updates the gravitational acceleration vector.
func (c *Config) SetG(g units.Vector3[units.Acceleration]) { c.g = g }

// TargetMaxError returns the convergence threshold ε (spec.md §4.3.1).
func (c *Config) TargetMaxError() units.One { return c.targetMaxError }

// SetTargetMaxError sets ε, rejecting values <= 0 (spec.md §6.3).
func (c *Config) SetTargetMaxError(eps units.One) error {
	if eps <= 0 {
		return fmt.Errorf("%w: targetMaxError must be > 0, got %v", gustaveerr.ErrInvalidArgument, eps)
	}
	c.targetMaxError = eps
	return nil
}

// MaxIterations returns the iteration budget.
func (c *Config) MaxIterations() uint64 { return c.maxIterations }

// SetMaxIterations sets the iteration budget (spec.md §4.3.4). Zero is a
// valid, if extreme, budget: any non-trivial structure then fails
// immediately with IterationBudgetExhausted (spec.md §8, property 13).
func (c *Config) SetMaxIterations(n uint64) { c.maxIterations = n }

// gravityDirectionAndNorm splits g into a unit direction and a magnitude,
// panicking if g is the zero vector (an assert-by-condition programmer
// error per spec.md §7, not a recoverable one: a world with no gravity has
// no physical meaning for this solver).
func (c *Config) gravityDirectionAndNorm() (units.NormalizedVector3, units.Acceleration) {
	dir, norm, err := units.Normalize(c.g)
	if err != nil {
		panic("force1: gravity vector must be non-zero")
	}
	return dir, norm
}

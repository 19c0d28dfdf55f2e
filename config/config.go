// Package config loads and saves the tunable inputs of a world.World from
// YAML, the way the teacher loads shader configuration (load/shd.go:
// yaml.Unmarshal into an unexported fixture struct, then converted into the
// package's real types) — grounded on gopkg.in/yaml.v3, already a teacher
// dependency. This is an ambient convenience over solver/world tuning, not
// the JSON import layer spec.md §1 excludes: it never loads scene content
// (blocks, transactions), only blockSize/gravity/targetMaxError/maxIterations.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vsaulue/gustave/solver/force1"
	"github.com/vsaulue/gustave/units"
	"github.com/vsaulue/gustave/world"
)

// vector3Fixture is the YAML shape of a Vector3, regardless of the unit it
// ends up tagged with once decoded.
type vector3Fixture struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// fixture is the on-disk shape of a world.Config (spec.md §6.3, §6.4):
// block size, gravity, and the Force1 solver's convergence tuning.
type fixture struct {
	BlockSize      vector3Fixture `yaml:"blockSize"`
	Gravity        vector3Fixture `yaml:"gravity"`
	TargetMaxError float64        `yaml:"targetMaxError"`
	// Pointer so an absent key keeps the solver default while an explicit
	// "maxIterations: 0" is honoured as a real (if extreme) budget.
	MaxIterations *uint64 `yaml:"maxIterations"`
}

// Load decodes a world.Config from YAML bytes (shape: blockSize, gravity,
// targetMaxError, maxIterations). It fails with gustaveerr.ErrInvalidArgument
// (wrapped from force1.NewConfig) if targetMaxError is not strictly positive.
func Load(data []byte) (world.Config, error) {
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return world.Config{}, fmt.Errorf("config: yaml %w", err)
	}

	g := units.NewVector3[units.Acceleration](
		units.Acceleration(f.Gravity.X), units.Acceleration(f.Gravity.Y), units.Acceleration(f.Gravity.Z),
	)
	solverCfg, err := force1.NewConfig(g, units.One(f.TargetMaxError))
	if err != nil {
		return world.Config{}, fmt.Errorf("config: %w", err)
	}
	if f.MaxIterations != nil {
		// Zero is a valid budget: any non-trivial structure then fails
		// immediately with IterationBudgetExhausted (spec.md §8, property 13).
		solverCfg.SetMaxIterations(*f.MaxIterations)
	}

	blockSize := units.NewVector3[units.Length](
		units.Length(f.BlockSize.X), units.Length(f.BlockSize.Y), units.Length(f.BlockSize.Z),
	)

	return world.Config{BlockSize: blockSize, Solver: solverCfg}, nil
}

// Save encodes cfg back to the YAML shape Load reads, mainly so a caller can
// round-trip a tuned configuration to disk for reuse.
func Save(cfg world.Config) ([]byte, error) {
	g := cfg.Solver.G()
	maxIterations := cfg.Solver.MaxIterations()
	f := fixture{
		BlockSize: vector3Fixture{X: float64(cfg.BlockSize.X), Y: float64(cfg.BlockSize.Y), Z: float64(cfg.BlockSize.Z)},
		Gravity:   vector3Fixture{X: float64(g.X), Y: float64(g.Y), Z: float64(g.Z)},

		TargetMaxError: float64(cfg.Solver.TargetMaxError()),
		MaxIterations:  &maxIterations,
	}
	out, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("config: yaml %w", err)
	}
	return out, nil
}

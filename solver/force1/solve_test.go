package force1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsaulue/gustave/solver"
	"github.com/vsaulue/gustave/solver/force1"
	"github.com/vsaulue/gustave/units"
)

// buildPillar returns a vertical stack of n blocks, node 0 at the bottom and
// foundation, each subsequent node bonded to the previous by an upward-facing
// contact (spec.md §8, scenario S1).
func buildPillar(t *testing.T, n int, mass units.Mass, stress units.PressureStress) *solver.Structure {
	t.Helper()
	s := solver.NewStructure()
	gNorm := units.Acceleration(10)
	weight := units.MassWeight(mass, gNorm)
	cond := units.AreaConductivity(stress, 1, 1)

	for i := 0; i < n; i++ {
		_, err := s.AddNode(solver.Node{Weight: weight, IsFoundation: i == 0})
		require.NoError(t, err)
	}
	for i := 0; i < n-1; i++ {
		_, err := s.AddLink(solver.Link{
			LocalNode: solver.NodeIndex(i),
			OtherNode: solver.NodeIndex(i + 1),
			Normal:    units.AxisPY,
			AreaCond:  cond,
		})
		require.NoError(t, err)
	}
	return s
}

func TestSolveVerticalPillar(t *testing.T) {
	mass := units.Mass(4000)
	stress := units.PressureStress{Compression: 20e6, Shear: 14e6, Tensile: 2e6}
	s := buildPillar(t, 10, mass, stress)

	cfg, err := force1.NewConfig(units.NewVector3[units.Acceleration](0, -10, 0), 0.001)
	require.NoError(t, err)

	sol, unsolvable := force1.Solve(s, cfg)
	require.Nil(t, unsolvable)
	require.NotNil(t, sol)
	assert.LessOrEqual(t, float64(sol.MaxRelativeError()), 0.001)

	force, ok := sol.ForceVectorFrom(0, 1)
	require.True(t, ok)
	assert.InDelta(t, 0.0, float64(force.X), 1.0)
	assert.InDelta(t, -360000.0, float64(force.Y), 360.0)
	assert.InDelta(t, 0.0, float64(force.Z), 1.0)
}

func TestSolveReciprocity(t *testing.T) {
	mass := units.Mass(4000)
	stress := units.PressureStress{Compression: 20e6, Shear: 14e6, Tensile: 2e6}
	s := buildPillar(t, 4, mass, stress)

	cfg, err := force1.NewConfig(units.NewVector3[units.Acceleration](0, -10, 0), 0.001)
	require.NoError(t, err)

	sol, unsolvable := force1.Solve(s, cfg)
	require.Nil(t, unsolvable)

	for i := 0; i < 3; i++ {
		onLower, ok := sol.ForceVectorFrom(solver.NodeIndex(i), solver.NodeIndex(i+1))
		require.True(t, ok)
		onUpper, ok := sol.ForceVectorFrom(solver.NodeIndex(i+1), solver.NodeIndex(i))
		require.True(t, ok)

		assert.InDelta(t, -float64(onLower.X), float64(onUpper.X), 1e-6)
		assert.InDelta(t, -float64(onLower.Y), float64(onUpper.Y), 1e-3)
		assert.InDelta(t, -float64(onLower.Z), float64(onUpper.Z), 1e-6)
	}
}

func TestSolveUnreachableNodeIsUnsolvable(t *testing.T) {
	s := solver.NewStructure()
	stress := units.PressureStress{Compression: 20e6, Shear: 14e6, Tensile: 2e6}
	cond := units.AreaConductivity(stress, 1, 1)
	weight := units.MassWeight(4000, 10)

	island0, err := s.AddNode(solver.Node{Weight: weight})
	require.NoError(t, err)
	island1, err := s.AddNode(solver.Node{Weight: weight})
	require.NoError(t, err)
	_, err = s.AddLink(solver.Link{LocalNode: island0, OtherNode: island1, Normal: units.AxisPY, AreaCond: cond})
	require.NoError(t, err)
	_, err = s.AddNode(solver.Node{Weight: weight, IsFoundation: true})
	require.NoError(t, err)

	cfg, err := force1.NewConfig(units.NewVector3[units.Acceleration](0, -10, 0), 0.001)
	require.NoError(t, err)

	sol, unsolvable := force1.Solve(s, cfg)
	require.Nil(t, sol)
	require.NotNil(t, unsolvable)
	assert.Equal(t, force1.ReasonUnreachableNode, unsolvable.Reason)
}

func TestSolveZeroIterationBudgetFails(t *testing.T) {
	mass := units.Mass(4000)
	stress := units.PressureStress{Compression: 20e6, Shear: 14e6, Tensile: 2e6}
	s := buildPillar(t, 3, mass, stress)

	cfg, err := force1.NewConfig(units.NewVector3[units.Acceleration](0, -10, 0), 0.001)
	require.NoError(t, err)
	cfg.SetMaxIterations(0)

	sol, unsolvable := force1.Solve(s, cfg)
	require.Nil(t, sol)
	require.NotNil(t, unsolvable)
	assert.Equal(t, force1.ReasonIterationBudgetExhausted, unsolvable.Reason)
}

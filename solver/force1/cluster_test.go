package force1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsaulue/gustave/solver"
	"github.com/vsaulue/gustave/solver/force1"
	"github.com/vsaulue/gustave/units"
)

// TestSolveTallPillar drives a pillar deep enough for the cluster sweep to
// kick in (24 non-foundation depth layers band into 8 clusters of width 3)
// and checks the converged load at the bottom contact.
func TestSolveTallPillar(t *testing.T) {
	const n = 25
	mass := units.Mass(4000)
	stress := units.PressureStress{Compression: 20e6, Shear: 14e6, Tensile: 2e6}
	s := buildPillar(t, n, mass, stress)

	cfg, err := force1.NewConfig(units.NewVector3[units.Acceleration](0, -10, 0), 0.001)
	require.NoError(t, err)

	sol, unsolvable := force1.Solve(s, cfg)
	require.Nil(t, unsolvable)
	require.NotNil(t, sol)
	assert.LessOrEqual(t, float64(sol.MaxRelativeError()), 0.001)

	force, ok := sol.ForceVectorFrom(0, 1)
	require.True(t, ok)
	carried := float64(n-1) * 4000 * 10
	assert.InDelta(t, -carried, float64(force.Y), carried*0.002)

	contacts := sol.Contacts()
	assert.Len(t, contacts, n-1)
}

// TestSolveHangingBlockUsesTension checks the conductivity split for a block
// suspended below its foundation: the contact works in tension, and the
// supporting force on the hanging block points against gravity.
func TestSolveHangingBlockUsesTension(t *testing.T) {
	s := solver.NewStructure()
	stress := units.PressureStress{Compression: 20e6, Shear: 14e6, Tensile: 2e6}
	cond := units.AreaConductivity(stress, 1, 1)
	weight := units.MassWeight(4000, 10)

	hanging, err := s.AddNode(solver.Node{Weight: weight})
	require.NoError(t, err)
	anchor, err := s.AddNode(solver.Node{Weight: weight, IsFoundation: true})
	require.NoError(t, err)
	// The canonical contact is stored on the lower block, normal +Y toward
	// the anchor above.
	_, err = s.AddLink(solver.Link{LocalNode: hanging, OtherNode: anchor, Normal: units.AxisPY, AreaCond: cond})
	require.NoError(t, err)

	cfg, err := force1.NewConfig(units.NewVector3[units.Acceleration](0, -10, 0), 0.001)
	require.NoError(t, err)

	sol, unsolvable := force1.Solve(s, cfg)
	require.Nil(t, unsolvable)

	onHanging, ok := sol.ForceVectorFrom(hanging, anchor)
	require.True(t, ok)
	assert.InDelta(t, 40000.0, float64(onHanging.Y), 40.0)

	onAnchor, ok := sol.ForceVectorFrom(anchor, hanging)
	require.True(t, ok)
	assert.InDelta(t, -40000.0, float64(onAnchor.Y), 40.0)
}

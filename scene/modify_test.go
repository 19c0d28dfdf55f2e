package scene_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsaulue/gustave/scene"
)

// TestFoundationSharedBetweenStructures checks spec.md §3.1: a foundation
// block bonded to two disjoint sets of non-foundation blocks is a member of
// both resulting structures, while each non-foundation block belongs to
// exactly one.
func TestFoundationSharedBetweenStructures(t *testing.T) {
	sc := newTestScene()
	tx := scene.NewTransaction()
	require.NoError(t, tx.AddBlock(scene.BlockConstructionInfo{
		Index: scene.BlockIndex{X: 0, Y: 0, Z: 0}, Mass: 1000, MaxStress: unitStress(), IsFoundation: true,
	}))
	require.NoError(t, tx.AddBlock(scene.BlockConstructionInfo{
		Index: scene.BlockIndex{X: 0, Y: 1, Z: 0}, Mass: 1000, MaxStress: unitStress(),
	}))
	require.NoError(t, tx.AddBlock(scene.BlockConstructionInfo{
		Index: scene.BlockIndex{X: 0, Y: -1, Z: 0}, Mass: 1000, MaxStress: unitStress(),
	}))

	result, err := sc.Modify(tx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.NewStructures.Len())

	foundationIDs, ok := sc.BlockStructures(scene.BlockIndex{X: 0, Y: 0, Z: 0})
	require.True(t, ok)
	assert.Len(t, foundationIDs, 2)

	aboveIDs, ok := sc.BlockStructures(scene.BlockIndex{X: 0, Y: 1, Z: 0})
	require.True(t, ok)
	assert.Len(t, aboveIDs, 1)
	belowIDs, ok := sc.BlockStructures(scene.BlockIndex{X: 0, Y: -1, Z: 0})
	require.True(t, ok)
	assert.Len(t, belowIDs, 1)
	assert.NotEqual(t, aboveIDs[0], belowIDs[0])
}

// TestSharedFoundationKeepsLiveMembership checks that retiring one of the
// structures bonded to a shared foundation leaves its membership in the
// untouched structure intact.
func TestSharedFoundationKeepsLiveMembership(t *testing.T) {
	sc := newTestScene()
	tx := scene.NewTransaction()
	require.NoError(t, tx.AddBlock(scene.BlockConstructionInfo{
		Index: scene.BlockIndex{X: 0, Y: 0, Z: 0}, Mass: 1000, MaxStress: unitStress(), IsFoundation: true,
	}))
	require.NoError(t, tx.AddBlock(scene.BlockConstructionInfo{
		Index: scene.BlockIndex{X: 0, Y: 1, Z: 0}, Mass: 1000, MaxStress: unitStress(),
	}))
	require.NoError(t, tx.AddBlock(scene.BlockConstructionInfo{
		Index: scene.BlockIndex{X: 0, Y: -1, Z: 0}, Mass: 1000, MaxStress: unitStress(),
	}))
	_, err := sc.Modify(tx)
	require.NoError(t, err)

	belowIDs, _ := sc.BlockStructures(scene.BlockIndex{X: 0, Y: -1, Z: 0})
	require.Len(t, belowIDs, 1)

	tx2 := scene.NewTransaction()
	tx2.RemoveBlock(scene.BlockIndex{X: 0, Y: 1, Z: 0})
	result, err := sc.Modify(tx2)
	require.NoError(t, err)
	assert.Equal(t, 0, result.NewStructures.Len())
	assert.Len(t, result.DeletedStructures, 1)

	foundationIDs, ok := sc.BlockStructures(scene.BlockIndex{X: 0, Y: 0, Z: 0})
	require.True(t, ok)
	assert.Equal(t, belowIDs, foundationIDs)
}

// TestAddThenRemoveRestoresPartition covers spec.md §8 property 8: applying
// a transaction and then its inverse restores the structure partition, up to
// id relabelling.
func TestAddThenRemoveRestoresPartition(t *testing.T) {
	sc := newTestScene()
	tx := scene.NewTransaction()
	require.NoError(t, tx.AddBlock(scene.BlockConstructionInfo{
		Index: scene.BlockIndex{X: 0, Y: 0, Z: 0}, Mass: 1000, MaxStress: unitStress(), IsFoundation: true,
	}))
	for y := int64(1); y <= 3; y++ {
		require.NoError(t, tx.AddBlock(scene.BlockConstructionInfo{
			Index: scene.BlockIndex{X: 0, Y: y, Z: 0}, Mass: 1000, MaxStress: unitStress(),
		}))
	}
	_, err := sc.Modify(tx)
	require.NoError(t, err)

	beforeIDs, _ := sc.BlockStructures(scene.BlockIndex{X: 0, Y: 1, Z: 0})
	require.Len(t, beforeIDs, 1)
	beforeSD, ok := sc.Structure(beforeIDs[0])
	require.True(t, ok)
	beforeMembers := append([]scene.BlockIndex(nil), beforeSD.Members()...)

	extra := scene.BlockIndex{X: 1, Y: 1, Z: 0}
	txAdd := scene.NewTransaction()
	require.NoError(t, txAdd.AddBlock(scene.BlockConstructionInfo{Index: extra, Mass: 1000, MaxStress: unitStress()}))
	_, err = sc.Modify(txAdd)
	require.NoError(t, err)

	txDel := scene.NewTransaction()
	txDel.RemoveBlock(extra)
	result, err := sc.Modify(txDel)
	require.NoError(t, err)
	require.Equal(t, 1, result.NewStructures.Len())

	afterSD, ok := sc.Structure(scene.StructureIndex(result.NewStructures.Start))
	require.True(t, ok)
	assert.ElementsMatch(t, beforeMembers, afterSD.Members())
	assert.Equal(t, beforeSD.Solver().NumNodes(), afterSD.Solver().NumNodes())
	assert.Equal(t, beforeSD.Solver().NumLinks(), afterSD.Solver().NumLinks())
}

// TestNeighbourAlongOverflow covers spec.md §8 property 12: a block at the
// coordinate limit has no neighbour past it.
func TestNeighbourAlongOverflow(t *testing.T) {
	b := scene.BlockIndex{X: math.MaxInt64, Y: 0, Z: 0}
	_, ok := b.NeighbourAlong(scene.DirPX)
	assert.False(t, ok)

	b = scene.BlockIndex{X: 0, Y: math.MinInt64, Z: 0}
	_, ok = b.NeighbourAlong(scene.DirNY)
	assert.False(t, ok)

	neigh, ok := scene.BlockIndex{X: 0, Y: 0, Z: 0}.NeighbourAlong(scene.DirPZ)
	require.True(t, ok)
	assert.Equal(t, scene.BlockIndex{X: 0, Y: 0, Z: 1}, neigh)
}

// TestDirectionBetween checks the neighbour-direction resolver used to turn
// a structure link back into a canonical contact.
func TestDirectionBetween(t *testing.T) {
	a := scene.BlockIndex{X: 0, Y: 0, Z: 0}
	d, ok := scene.DirectionBetween(a, scene.BlockIndex{X: 0, Y: 1, Z: 0})
	require.True(t, ok)
	assert.Equal(t, scene.DirPY, d)

	_, ok = scene.DirectionBetween(a, scene.BlockIndex{X: 1, Y: 1, Z: 0})
	assert.False(t, ok)
}

package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsaulue/gustave/gustaveerr"
	"github.com/vsaulue/gustave/scene"
	"github.com/vsaulue/gustave/units"
)

func unitStress() units.PressureStress {
	return units.PressureStress{Compression: 20e6, Shear: 14e6, Tensile: 2e6}
}

func newTestScene() *scene.Scene {
	return scene.NewScene(units.NewVector3[units.Length](1, 1, 1), 10)
}

// TestFoundationsDoNotBond covers spec.md §8 scenario S6: three foundations
// in a row and one non-foundation on top of the middle produce exactly one
// structure, containing only the non-foundation and the middle foundation.
func TestFoundationsDoNotBond(t *testing.T) {
	sc := newTestScene()
	tx := scene.NewTransaction()
	for x := int64(0); x < 3; x++ {
		require.NoError(t, tx.AddBlock(scene.BlockConstructionInfo{
			Index: scene.BlockIndex{X: x, Y: 0, Z: 0}, Mass: 1000, MaxStress: unitStress(), IsFoundation: true,
		}))
	}
	require.NoError(t, tx.AddBlock(scene.BlockConstructionInfo{
		Index: scene.BlockIndex{X: 1, Y: 1, Z: 0}, Mass: 1000, MaxStress: unitStress(),
	}))

	result, err := sc.Modify(tx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.NewStructures.Len())

	sd, ok := sc.Structure(scene.StructureIndex(result.NewStructures.Start))
	require.True(t, ok)
	assert.ElementsMatch(t, []scene.BlockIndex{{X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}}, sd.Members())
}

// TestLoneFoundationFormsNoStructure covers spec.md §8 property 10's
// complement: a lone foundation block with no bonded neighbour forms no
// structure at all (only a component with >= 1 non-foundation block does).
func TestLoneFoundationFormsNoStructure(t *testing.T) {
	sc := newTestScene()
	tx := scene.NewTransaction()
	require.NoError(t, tx.AddBlock(scene.BlockConstructionInfo{
		Index: scene.BlockIndex{X: 0, Y: 0, Z: 0}, Mass: 1000, MaxStress: unitStress(), IsFoundation: true,
	}))
	result, err := sc.Modify(tx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.NewStructures.Len())
}

// TestSplitOnDelete covers spec.md §8 scenario S5: deleting the middle block
// of an H-shape's crossbar splits one structure into two.
func TestSplitOnDelete(t *testing.T) {
	sc := newTestScene()
	tx := scene.NewTransaction()
	require.NoError(t, tx.AddBlock(scene.BlockConstructionInfo{Index: scene.BlockIndex{X: 0, Y: 0, Z: 0}, Mass: 1000, MaxStress: unitStress(), IsFoundation: true}))
	require.NoError(t, tx.AddBlock(scene.BlockConstructionInfo{Index: scene.BlockIndex{X: 2, Y: 0, Z: 0}, Mass: 1000, MaxStress: unitStress(), IsFoundation: true}))
	require.NoError(t, tx.AddBlock(scene.BlockConstructionInfo{Index: scene.BlockIndex{X: 0, Y: 1, Z: 0}, Mass: 1000, MaxStress: unitStress()}))
	require.NoError(t, tx.AddBlock(scene.BlockConstructionInfo{Index: scene.BlockIndex{X: 1, Y: 1, Z: 0}, Mass: 1000, MaxStress: unitStress()}))
	require.NoError(t, tx.AddBlock(scene.BlockConstructionInfo{Index: scene.BlockIndex{X: 2, Y: 1, Z: 0}, Mass: 1000, MaxStress: unitStress()}))
	result, err := sc.Modify(tx)
	require.NoError(t, err)
	require.Equal(t, 1, result.NewStructures.Len())
	originalID := scene.StructureIndex(result.NewStructures.Start)

	tx2 := scene.NewTransaction()
	tx2.RemoveBlock(scene.BlockIndex{X: 1, Y: 1, Z: 0})
	result2, err := sc.Modify(tx2)
	require.NoError(t, err)
	assert.Contains(t, result2.DeletedStructures, originalID)
	assert.Equal(t, 2, result2.NewStructures.Len())
}

// TestInvalidTransactionIsAtomic covers spec.md §7/§8: adding an
// already-present index alongside a valid one leaves the scene untouched.
func TestInvalidTransactionIsAtomic(t *testing.T) {
	sc := newTestScene()
	tx := scene.NewTransaction()
	require.NoError(t, tx.AddBlock(scene.BlockConstructionInfo{Index: scene.BlockIndex{X: 0, Y: 0, Z: 0}, Mass: 1000, MaxStress: unitStress(), IsFoundation: true}))
	_, err := sc.Modify(tx)
	require.NoError(t, err)

	tx2 := scene.NewTransaction()
	require.NoError(t, tx2.AddBlock(scene.BlockConstructionInfo{Index: scene.BlockIndex{X: 0, Y: 0, Z: 0}, Mass: 1000, MaxStress: unitStress()}))
	require.NoError(t, tx2.AddBlock(scene.BlockConstructionInfo{Index: scene.BlockIndex{X: 1, Y: 0, Z: 0}, Mass: 1000, MaxStress: unitStress()}))
	_, err = sc.Modify(tx2)
	require.Error(t, err)

	_, ok := sc.Block(scene.BlockIndex{X: 1, Y: 0, Z: 0})
	assert.False(t, ok)
}

// TestAddBlockRejectsInvalidPhysicalValues covers spec.md §7: a transaction
// staging a non-positive mass or a non-positive stress component fails at
// AddBlock, before Modify is ever called.
func TestAddBlockRejectsInvalidPhysicalValues(t *testing.T) {
	tx := scene.NewTransaction()
	err := tx.AddBlock(scene.BlockConstructionInfo{
		Index: scene.BlockIndex{X: 0, Y: 0, Z: 0}, Mass: 0, MaxStress: unitStress(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, gustaveerr.ErrInvalidArgument)

	badStress := unitStress()
	badStress.Shear = 0
	err = tx.AddBlock(scene.BlockConstructionInfo{
		Index: scene.BlockIndex{X: 1, Y: 0, Z: 0}, Mass: 1000, MaxStress: badStress,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, gustaveerr.ErrInvalidArgument)
}

package inventory

import (
	"testing"

	"github.com/annel0/voxel-sandbox/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBlockStacks(t *testing.T) {
	inv := New(9, 64)

	added, err := inv.AddBlock(world.Dirt, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	_, err = inv.AddBlock(world.Dirt, 70)
	require.NoError(t, err)

	slots := inv.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, Slot{Kind: world.Dirt, Count: 64, Prefab: "dirt"}, slots[0])
	assert.Equal(t, 7, slots[1].Count)
	assert.Equal(t, 71, inv.Count(world.Dirt))
}

func TestAddBlockRejectsAirAndBedrockIsStorable(t *testing.T) {
	inv := New(9, 64)

	_, err := inv.AddBlock(world.Air, 1)
	assert.ErrorIs(t, err, ErrInvalidKind)
	assert.Equal(t, 0, inv.Len())

	_, err = inv.AddBlock(world.Stone, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, inv.Len(), "нулевое количество не создаёт ячейку")
}

func TestAddBlockFull(t *testing.T) {
	inv := New(2, 10)

	added, err := inv.AddBlock(world.Stone, 25)
	assert.ErrorIs(t, err, ErrFull)
	assert.Equal(t, 20, added)
	assert.Equal(t, 2, inv.Len())
}

func TestNewClampsDegenerateLimits(t *testing.T) {
	inv := New(3, 0)

	added, err := inv.AddBlock(world.Dirt, 5)
	assert.ErrorIs(t, err, ErrFull)
	assert.Equal(t, 3, added, "в стопку помещается хотя бы один блок")
	for _, s := range inv.Slots() {
		assert.Equal(t, 1, s.Count, "пустых ячеек не бывает")
	}

	inv = New(-4, -1)
	added, err = inv.AddBlock(world.Stone, 1)
	assert.ErrorIs(t, err, ErrFull)
	assert.Zero(t, added)
	assert.Zero(t, inv.Len())
}

func TestRemoveBlockAllOrNothing(t *testing.T) {
	inv := New(9, 64)
	inv.AddBlock(world.Grass, 3)

	err := inv.RemoveBlock(world.Grass, 4)
	assert.ErrorIs(t, err, ErrInsufficient)
	assert.Equal(t, 3, inv.Count(world.Grass), "при нехватке ничего не списывается")

	err = inv.RemoveBlock(world.Stone, 1)
	assert.ErrorIs(t, err, ErrInsufficient)
}

func TestRemoveBlockDropsEmptySlot(t *testing.T) {
	inv := New(9, 64)
	inv.AddBlock(world.Grass, 1)
	inv.AddBlock(world.Dirt, 2)
	inv.AddBlock(world.Stone, 5)
	require.NoError(t, inv.Select(2))

	require.NoError(t, inv.RemoveBlock(world.Grass, 1))

	slots := inv.Slots()
	require.Len(t, slots, 2, "опустевшая ячейка удаляется")
	for _, s := range slots {
		assert.Positive(t, s.Count)
	}

	sel, ok := inv.Selected()
	require.True(t, ok)
	assert.Equal(t, world.Stone, sel.Kind, "выбор остаётся на той же ячейке")
	assert.Equal(t, 1, inv.SelectedIndex())
}

func TestSelectedClampedWhenLastSlotRemoved(t *testing.T) {
	inv := New(9, 64)
	inv.AddBlock(world.Grass, 1)
	inv.AddBlock(world.Dirt, 1)
	require.NoError(t, inv.Select(1))

	require.NoError(t, inv.RemoveBlock(world.Dirt, 1))
	assert.Equal(t, 0, inv.SelectedIndex())

	require.NoError(t, inv.RemoveBlock(world.Grass, 1))
	_, ok := inv.Selected()
	assert.False(t, ok)
	assert.Equal(t, 0, inv.SelectedIndex())
}

func TestRemoveBlockAcrossStacks(t *testing.T) {
	inv := New(9, 10)
	inv.AddBlock(world.Stone, 15)

	require.NoError(t, inv.RemoveBlock(world.Stone, 7))
	slots := inv.Slots()
	require.Len(t, slots, 1)
	assert.Equal(t, 8, slots[0].Count)
}

func TestSelectAndScroll(t *testing.T) {
	inv := New(9, 64)
	inv.Scroll(1) // пустой инвентарь — без паники
	assert.ErrorIs(t, inv.Select(0), ErrInvalidSlot)

	inv.AddBlock(world.Grass, 1)
	inv.AddBlock(world.Dirt, 1)
	inv.AddBlock(world.Stone, 1)

	inv.Scroll(1)
	assert.Equal(t, 1, inv.SelectedIndex())
	inv.Scroll(2)
	assert.Equal(t, 0, inv.SelectedIndex(), "прокрутка по кругу")
	inv.Scroll(-1)
	assert.Equal(t, 2, inv.SelectedIndex())

	assert.ErrorIs(t, inv.Select(3), ErrInvalidSlot)
	assert.Equal(t, 2, inv.SelectedIndex())
}

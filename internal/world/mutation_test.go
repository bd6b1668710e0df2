package world

import (
	"math"
	"testing"

	"github.com/annel0/voxel-sandbox/internal/physics"
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boxOccupant struct {
	box physics.AABB
}

func (o boxOccupant) Bounds() physics.AABB { return o.box }

func newTestMutations() (*ChunkStore, *MutationService) {
	store := NewChunkStore(16)
	return store, NewMutationService(store, Limits{MaxHeight: 64, Border: 1000}, nil)
}

func TestRemoveBedrockFails(t *testing.T) {
	store, svc := newTestMutations()
	pos := vec.Vec3{X: 3, Y: 0, Z: 3}
	store.GetOrCreate(store.OwnerOf(pos)).put(pos, Bedrock)

	kind, err := svc.RemoveBlock(pos)
	assert.ErrorIs(t, err, ErrIndestructible)
	assert.Equal(t, Air, kind)

	b, ok := store.BlockAt(pos)
	require.True(t, ok, "бедрок должен остаться на месте")
	assert.Equal(t, Bedrock, b.Kind)
}

func TestRemoveMissingBlock(t *testing.T) {
	store, svc := newTestMutations()

	_, err := svc.RemoveBlock(vec.Vec3{X: 1, Y: 1, Z: 1})
	assert.ErrorIs(t, err, ErrNoBlock, "чанк ещё не существует")

	store.GetOrCreate(vec.Vec2{})
	_, err = svc.RemoveBlock(vec.Vec3{X: 1, Y: 1, Z: 1})
	assert.ErrorIs(t, err, ErrNoBlock, "чанк есть, блока нет")
}

func TestPlaceOnOccupiedFails(t *testing.T) {
	store, svc := newTestMutations()
	pos := vec.Vec3{X: -5, Y: 10, Z: 7}

	require.NoError(t, svc.PlaceBlock(pos, Stone, nil))
	err := svc.PlaceBlock(pos, Dirt, nil)
	assert.ErrorIs(t, err, ErrDuplicateBlock)

	chunk, _ := store.ChunkAt(pos)
	assert.Equal(t, 1, chunk.Len(), "дубликат не должен появиться")
	b, _ := chunk.Block(pos)
	assert.Equal(t, Stone, b.Kind)
}

func TestPlaceAirFails(t *testing.T) {
	store, svc := newTestMutations()

	err := svc.PlaceBlock(vec.Vec3{X: 1, Y: 1, Z: 1}, Air, nil)
	assert.ErrorIs(t, err, ErrAirPlacement)
	assert.Equal(t, 0, store.Len(), "неудачная установка не создаёт чанк")
}

func TestPlaceIntoOccupantFails(t *testing.T) {
	_, svc := newTestMutations()
	player := boxOccupant{box: physics.NewBoxCollider(vec.Vec3Float{X: 0.5, Y: 5, Z: 0.5}, 0.6, 1.8)}

	assert.ErrorIs(t, svc.PlaceBlock(vec.Vec3{X: 0, Y: 5, Z: 0}, Dirt, player), ErrSelfPlacement)
	assert.ErrorIs(t, svc.PlaceBlock(vec.Vec3{X: 0, Y: 6, Z: 0}, Dirt, player), ErrSelfPlacement)

	// Под ногами и рядом ставить можно
	assert.NoError(t, svc.PlaceBlock(vec.Vec3{X: 0, Y: 4, Z: 0}, Dirt, player))
	assert.NoError(t, svc.PlaceBlock(vec.Vec3{X: 1, Y: 5, Z: 0}, Dirt, player))
}

func TestMutationRejectsInvalidCoordinates(t *testing.T) {
	store, svc := newTestMutations()

	for _, pos := range []vec.Vec3{
		{X: 0, Y: -1, Z: 0},
		{X: 0, Y: 64, Z: 0},
		{X: 1000, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: -1000},
		// -MinInt переполняется, сравнение должно идти без модуля
		{X: math.MinInt, Y: 1, Z: 0},
		{X: math.MaxInt, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: math.MinInt},
		{X: 0, Y: 1, Z: math.MaxInt},
		{X: 0, Y: math.MinInt, Z: 0},
	} {
		assert.ErrorIs(t, svc.PlaceBlock(pos, Stone, nil), ErrInvalidCoordinate, "place %s", pos)
		_, err := svc.RemoveBlock(pos)
		assert.ErrorIs(t, err, ErrInvalidCoordinate, "remove %s", pos)
	}
	assert.Zero(t, store.Len(), "отклонённые изменения не создают чанков")

	// Крайние допустимые столбцы
	assert.NoError(t, svc.PlaceBlock(vec.Vec3{X: 999, Y: 1, Z: -999}, Stone, nil))
	assert.NoError(t, svc.PlaceBlock(vec.Vec3{X: -999, Y: 63, Z: 999}, Stone, nil))
}

func TestRemoveThenPlaceRoundTrip(t *testing.T) {
	store, svc := newTestMutations()
	pos := vec.Vec3{X: 17, Y: 9, Z: -2}
	require.NoError(t, svc.PlaceBlock(pos, Grass, nil))

	kind, err := svc.RemoveBlock(pos)
	require.NoError(t, err)
	assert.Equal(t, Grass, kind)
	_, ok := store.BlockAt(pos)
	assert.False(t, ok)

	require.NoError(t, svc.PlaceBlock(pos, kind, nil))
	b, ok := store.BlockAt(pos)
	require.True(t, ok)
	assert.Equal(t, Grass, b.Kind)
	assert.Equal(t, pos, b.Pos)
	assert.Equal(t, physics.BlockCollider(pos), b.Collider)
	assert.Equal(t, store.OwnerOf(pos), b.Chunk().Coords, "владелец определяется делением с округлением вниз")
}

func TestPlaceCreatesOwningChunk(t *testing.T) {
	store, svc := newTestMutations()
	pos := vec.Vec3{X: -33, Y: 2, Z: 0}

	require.NoError(t, svc.PlaceBlock(pos, Stone, nil))
	_, ok := store.Get(vec.Vec2{X: -3, Y: 0})
	assert.True(t, ok)
}

package world

import (
	"testing"

	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/stretchr/testify/assert"
)

func TestChunkOwns(t *testing.T) {
	chunk := NewChunk(vec.Vec2{X: -1, Y: 2}, 16)

	assert.True(t, chunk.Owns(vec.Vec3{X: -1, Y: 10, Z: 32}))
	assert.True(t, chunk.Owns(vec.Vec3{X: -16, Y: 0, Z: 47}))
	assert.False(t, chunk.Owns(vec.Vec3{X: 0, Y: 0, Z: 32}))
	assert.False(t, chunk.Owns(vec.Vec3{X: -17, Y: 0, Z: 32}))
}

func TestChunkPutAndRemove(t *testing.T) {
	chunk := NewChunk(vec.Vec2{}, 16)
	pos := vec.Vec3{X: 1, Y: 2, Z: 3}

	b, ok := chunk.put(pos, Stone)
	assert.True(t, ok)
	assert.Equal(t, Stone, b.Kind)

	// Повторная установка в ту же клетку запрещена
	_, ok = chunk.put(pos, Dirt)
	assert.False(t, ok)
	got, _ := chunk.Block(pos)
	assert.Equal(t, Stone, got.Kind, "первый записавший побеждает")
	assert.Equal(t, 1, chunk.Len())

	removed, ok := chunk.remove(pos)
	assert.True(t, ok)
	assert.Nil(t, removed.Chunk(), "удалённый блок теряет ссылку на чанк")
	assert.Equal(t, 0, chunk.Len())

	_, ok = chunk.remove(pos)
	assert.False(t, ok)
}

func TestChunkBlocksOrdered(t *testing.T) {
	chunk := NewChunk(vec.Vec2{}, 16)
	chunk.put(vec.Vec3{X: 1, Y: 1, Z: 0}, Dirt)
	chunk.put(vec.Vec3{X: 0, Y: 0, Z: 0}, Bedrock)
	chunk.put(vec.Vec3{X: 0, Y: 1, Z: 0}, Dirt)

	blocks := chunk.Blocks()
	assert.Len(t, blocks, 3)
	assert.Equal(t, vec.Vec3{X: 0, Y: 0, Z: 0}, blocks[0].Pos)
	assert.Equal(t, vec.Vec3{X: 0, Y: 1, Z: 0}, blocks[1].Pos)
	assert.Equal(t, vec.Vec3{X: 1, Y: 1, Z: 0}, blocks[2].Pos)
}

package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, want int
	}{
		{0, 16, 0},
		{15, 16, 0},
		{16, 16, 1},
		{-1, 16, -1},
		{-16, 16, -1},
		{-17, 16, -2},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FloorDiv(c.a, c.b), "FloorDiv(%d, %d)", c.a, c.b)
	}
}

func TestFloorMod(t *testing.T) {
	assert.Equal(t, 0, FloorMod(16, 16))
	assert.Equal(t, 15, FloorMod(-1, 16))
	assert.Equal(t, 0, FloorMod(-16, 16))
	assert.Equal(t, 3, FloorMod(19, 16))
}

func TestVec3ToChunkCoords(t *testing.T) {
	// Отрицательные координаты должны попадать в отрицательные чанки
	assert.Equal(t, Vec2{X: -1, Y: 0}, Vec3{X: -1, Y: 40, Z: 3}.ToChunkCoords(16))
	assert.Equal(t, Vec2{X: 2, Y: -3}, Vec3{X: 32, Y: 0, Z: -33}.ToChunkCoords(16))

	// Размер чанка не обязан быть степенью двойки
	assert.Equal(t, Vec2{X: 1, Y: -1}, Vec3{X: 10, Y: 0, Z: -1}.ToChunkCoords(10))
}

func TestVec2LocalInChunk(t *testing.T) {
	local := Vec2{X: -1, Y: 17}.LocalInChunk(16)
	assert.Equal(t, Vec2{X: 15, Y: 1}, local)

	chunk := Vec2{X: -1, Y: 17}.ToChunkCoords(16)
	origin := chunk.Origin(16)
	assert.Equal(t, Vec2{X: -1, Y: 17}, origin.Add(local), "origin + local должны восстановить мировую координату")
}

func TestVec3FloatFloor(t *testing.T) {
	assert.Equal(t, Vec3{X: -1, Y: 2, Z: 0}, Vec3Float{X: -0.5, Y: 2.9, Z: 0.1}.Floor())
}

package vec

import (
	"fmt"
	"math"
)

// Vec2 представляет 2D координаты.
// Для координат чанка X соответствует мировой оси X, а Y — мировой оси Z.
type Vec2 struct {
	X, Y int
}

// ToChunkCoords преобразует глобальные координаты столбца в координаты чанка
func (v Vec2) ToChunkCoords(chunkSize int) Vec2 {
	return Vec2{X: FloorDiv(v.X, chunkSize), Y: FloorDiv(v.Y, chunkSize)}
}

// LocalInChunk возвращает локальные координаты внутри чанка
func (v Vec2) LocalInChunk(chunkSize int) Vec2 {
	return Vec2{X: FloorMod(v.X, chunkSize), Y: FloorMod(v.Y, chunkSize)}
}

// Origin возвращает мировые координаты угла чанка (минимальные X и Z)
func (v Vec2) Origin(chunkSize int) Vec2 {
	return Vec2{X: v.X * chunkSize, Y: v.Y * chunkSize}
}

// Add складывает два вектора
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// DistanceTo вычисляет расстояние до другой точки
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := float64(v.X - other.X)
	dy := float64(v.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

package vec

import "fmt"

// Vec3 представляет трехмерный вектор с целочисленными координатами.
// Используется как мировая координата блока; Y — высота.
type Vec3 struct {
	X int
	Y int
	Z int
}

// Column возвращает координаты столбца (X, Z) без высоты
func (v Vec3) Column() Vec2 {
	return Vec2{X: v.X, Y: v.Z}
}

// ToChunkCoords возвращает координаты чанка, которому принадлежит блок
func (v Vec3) ToChunkCoords(chunkSize int) Vec2 {
	return v.Column().ToChunkCoords(chunkSize)
}

// DistanceSquared возвращает квадрат расстояния до другого вектора
func (v Vec3) DistanceSquared(other Vec3) int {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return dx*dx + dy*dy + dz*dz
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// ToFloat возвращает координаты минимального угла блока
func (v Vec3) ToFloat() Vec3Float {
	return Vec3Float{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

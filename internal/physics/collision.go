package physics

import (
	"github.com/annel0/voxel-sandbox/internal/vec"
)

// AABB представляет ось-ориентированный коллайдер (axis-aligned bounding box).
// Min включительно, Max исключительно.
type AABB struct {
	Min vec.Vec3Float
	Max vec.Vec3Float
}

// NewBoxCollider создаёт коллайдер с центром основания в pos и указанными размерами
func NewBoxCollider(pos vec.Vec3Float, width, height float64) AABB {
	half := width / 2
	return AABB{
		Min: vec.Vec3Float{X: pos.X - half, Y: pos.Y, Z: pos.Z - half},
		Max: vec.Vec3Float{X: pos.X + half, Y: pos.Y + height, Z: pos.Z + half},
	}
}

// BlockCollider возвращает единичный куб, занимаемый блоком
func BlockCollider(pos vec.Vec3) AABB {
	min := pos.ToFloat()
	return AABB{
		Min: min,
		Max: min.Add(vec.Vec3Float{X: 1, Y: 1, Z: 1}),
	}
}

// IsPointInside проверяет, находится ли точка внутри коллайдера
func (b AABB) IsPointInside(point vec.Vec3Float) bool {
	return point.X >= b.Min.X && point.X < b.Max.X &&
		point.Y >= b.Min.Y && point.Y < b.Max.Y &&
		point.Z >= b.Min.Z && point.Z < b.Max.Z
}

// Intersects проверяет пересечение двух коллайдеров.
// Касание гранями пересечением не считается.
func (b AABB) Intersects(other AABB) bool {
	return b.Min.X < other.Max.X && b.Max.X > other.Min.X &&
		b.Min.Y < other.Max.Y && b.Max.Y > other.Min.Y &&
		b.Min.Z < other.Max.Z && b.Max.Z > other.Min.Z
}

// Translate сдвигает коллайдер на offset
func (b AABB) Translate(offset vec.Vec3Float) AABB {
	return AABB{Min: b.Min.Add(offset), Max: b.Max.Add(offset)}
}

// OccupiedBlocks возвращает координаты всех блоков, которые пересекает коллайдер
func (b AABB) OccupiedBlocks() []vec.Vec3 {
	min := b.Min.Floor()
	// Max исключительный: точка ровно на границе блока его не занимает
	max := b.Max.Sub(vec.Vec3Float{X: 1e-9, Y: 1e-9, Z: 1e-9}).Floor()

	var points []vec.Vec3
	for y := min.Y; y <= max.Y; y++ {
		for z := min.Z; z <= max.Z; z++ {
			for x := min.X; x <= max.X; x++ {
				points = append(points, vec.Vec3{X: x, Y: y, Z: z})
			}
		}
	}
	return points
}

// CanMoveToPosition проверяет, может ли коллайдер занять позицию.
// blockChecker сообщает, проходим ли блок в указанной позиции.
func CanMoveToPosition(box AABB, blockChecker func(vec.Vec3) bool) bool {
	for _, point := range box.OccupiedBlocks() {
		if !blockChecker(point) {
			// Если хотя бы одна точка находится в непроходимом блоке, движение невозможно
			return false
		}
	}

	return true
}

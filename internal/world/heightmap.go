package world

import (
	"math"

	"github.com/annel0/voxel-sandbox/internal/util"
)

// HeightSource возвращает высоту поверхности столбца в мировых координатах
type HeightSource interface {
	Height(worldX, worldZ int) int
}

// HeightFunc адаптер функции к HeightSource
type HeightFunc func(worldX, worldZ int) int

// Height реализует HeightSource
func (f HeightFunc) Height(worldX, worldZ int) int {
	return f(worldX, worldZ)
}

// Heightmap детерминированная карта высот на шуме Перлина.
// Считается только в мировых координатах, поэтому соседние чанки стыкуются без швов.
type Heightmap struct {
	noise         *util.Noise
	scale         float64 // Масштаб шума (сглаженность ландшафта)
	terrainHeight int     // Амплитуда рельефа
	baseElevation int     // Базовая высота
	maxY          int     // Максимально допустимая высота поверхности
}

// NewHeightmap создаёт карту высот
func NewHeightmap(seed int64, scale float64, terrainHeight, baseElevation, maxHeight int) *Heightmap {
	return &Heightmap{
		noise:         util.NewNoise(seed),
		scale:         scale,
		terrainHeight: terrainHeight,
		baseElevation: baseElevation,
		maxY:          maxHeight - 1,
	}
}

// Height возвращает высоту травы в столбце (worldX, worldZ)
func (h *Heightmap) Height(worldX, worldZ int) int {
	n := h.noise.Noise2D(float64(worldX)*h.scale, float64(worldZ)*h.scale)

	height := int(math.Floor(n*float64(h.terrainHeight))) + h.baseElevation
	if height > h.maxY {
		height = h.maxY
	}
	if height < 0 {
		height = 0
	}
	return height
}

// ColumnKind возвращает тип блока на высоте y в столбце с поверхностью height.
// Снизу вверх: бедрок на 0, камень, dirtDepth блоков земли, трава на height.
func ColumnKind(y, height, dirtDepth int) BlockKind {
	switch {
	case y < 0 || y > height:
		return Air
	case y == 0:
		return Bedrock
	case y == height:
		return Grass
	case y < height-dirtDepth:
		return Stone
	default:
		return Dirt
	}
}

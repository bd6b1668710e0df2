package world

import (
	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/annel0/voxel-sandbox/internal/vec"
)

// ChunkGenerator обходит квадрат чанков и ставит блоки рельефа в очередь.
// Работа разбита на строки чанков: один Step обрабатывает одну строку,
// чтобы внешний цикл мог чередовать генерацию с другой работой.
type ChunkGenerator struct {
	store     *ChunkStore
	queue     *BlockQueue
	heights   HeightSource
	dirtDepth int
	rows      [][]vec.Vec2
	log       *logging.Logger
}

// NewChunkGenerator создаёт генератор
func NewChunkGenerator(store *ChunkStore, queue *BlockQueue, heights HeightSource, dirtDepth int, log *logging.Logger) *ChunkGenerator {
	return &ChunkGenerator{
		store:     store,
		queue:     queue,
		heights:   heights,
		dirtDepth: dirtDepth,
		log:       log,
	}
}

// StartRegion планирует генерацию квадрата [center-radius, center+radius]² в координатах чанков
func (g *ChunkGenerator) StartRegion(center vec.Vec2, radius int) error {
	if radius < 0 {
		return ErrInvalidRadius
	}

	for cz := center.Y - radius; cz <= center.Y+radius; cz++ {
		row := make([]vec.Vec2, 0, 2*radius+1)
		for cx := center.X - radius; cx <= center.X+radius; cx++ {
			row = append(row, vec.Vec2{X: cx, Y: cz})
		}
		g.rows = append(g.rows, row)
	}

	g.log.Debug("Запланирована генерация региона center=%s radius=%d (%d строк)", center, radius, 2*radius+1)
	return nil
}

// Step генерирует одну строку чанков. Возвращает число поставленных в очередь
// блоков и true, если строки ещё остались.
func (g *ChunkGenerator) Step() (int, bool) {
	if len(g.rows) == 0 {
		return 0, false
	}

	row := g.rows[0]
	g.rows = g.rows[1:]

	enqueued := 0
	for _, coords := range row {
		enqueued += g.generateChunk(coords)
	}

	return enqueued, len(g.rows) > 0
}

// Pending возвращает количество незавершённых строк
func (g *ChunkGenerator) Pending() int {
	return len(g.rows)
}

// GenerateRegion синхронно ставит в очередь весь регион
func (g *ChunkGenerator) GenerateRegion(center vec.Vec2, radius int) (int, error) {
	if err := g.StartRegion(center, radius); err != nil {
		return 0, err
	}

	total := 0
	for {
		n, more := g.Step()
		total += n
		if !more {
			return total, nil
		}
	}
}

// generateChunk ставит в очередь все столбцы чанка. Уже сгенерированные чанки пропускаются.
func (g *ChunkGenerator) generateChunk(coords vec.Vec2) int {
	chunk := g.store.GetOrCreate(coords)
	if chunk.generated {
		return 0
	}

	size := chunk.size
	origin := coords.Origin(size)
	enqueued := 0

	for lz := 0; lz < size; lz++ {
		for lx := 0; lx < size; lx++ {
			worldX := origin.X + lx
			worldZ := origin.Y + lz
			height := g.heights.Height(worldX, worldZ)

			for y := 0; y <= height; y++ {
				pos := vec.Vec3{X: worldX, Y: y, Z: worldZ}
				if g.queue.Enqueue(pos, ColumnKind(y, height, g.dirtDepth), chunk) {
					enqueued++
				}
			}
		}
	}

	chunk.generated = true
	g.log.Trace("Чанк %s: поставлено в очередь %d блоков", coords, enqueued)
	return enqueued
}

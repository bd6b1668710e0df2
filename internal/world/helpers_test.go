package world

import (
	"testing"

	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/annel0/voxel-sandbox/internal/vec"
)

// flatHeights возвращает одинаковую высоту для всех столбцов
func flatHeights(h int) HeightFunc {
	return func(int, int) int { return h }
}

func testSettings() Settings {
	s := DefaultSettings()
	s.ChunkSize = 16
	s.DirtDepth = 3
	return s
}

func newTestWorld(t *testing.T, heights HeightSource) *World {
	t.Helper()
	opts := []Option{WithLogger(logging.Discard("world"))}
	if heights != nil {
		opts = append(opts, WithHeightSource(heights))
	}
	return New(testSettings(), opts...)
}

// newTestPipeline собирает компоненты мира без World
func newTestPipeline(heights HeightSource) (*ChunkStore, *BlockQueue, *ChunkGenerator, *Materializer) {
	log := logging.Discard("world")
	store := NewChunkStore(16)
	queue := NewBlockQueue()
	gen := NewChunkGenerator(store, queue, heights, 3, log)
	mat := NewMaterializer(store, queue, log)
	return store, queue, gen, mat
}

func centerChunk() vec.Vec2 {
	return vec.Vec2{}
}

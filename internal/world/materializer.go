package world

import (
	"github.com/annel0/voxel-sandbox/internal/logging"
)

// StepResult итог одного шага материализации
type StepResult struct {
	Created   int // Создано блоков
	Skipped   int // Пропущено: клетка уже занята
	Remaining int // Осталось в очереди
}

// Materializer превращает ожидающие блоки в настоящие порциями ограниченного размера
type Materializer struct {
	store *ChunkStore
	queue *BlockQueue
	log   *logging.Logger
}

// NewMaterializer создаёт материализатор
func NewMaterializer(store *ChunkStore, queue *BlockQueue, log *logging.Logger) *Materializer {
	return &Materializer{
		store: store,
		queue: queue,
		log:   log,
	}
}

// Step материализует не более maxItems блоков из очереди.
// На пустой очереди ничего не делает.
func (m *Materializer) Step(maxItems int) StepResult {
	var res StepResult

	for _, spec := range m.queue.Drain(maxItems) {
		chunk := spec.Chunk
		if chunk == nil || !chunk.Owns(spec.Pos) {
			owner := m.store.OwnerOf(spec.Pos)
			m.log.Warn("Блок %s пришёл без корректного чанка, владелец %s", spec.Pos, owner)
			chunk = m.store.GetOrCreate(owner)
		}

		// Клетку мог занять игрок, пока блок ждал в очереди: первый записавший побеждает
		if _, ok := chunk.put(spec.Pos, spec.Kind); !ok {
			res.Skipped++
			continue
		}
		res.Created++
	}

	res.Remaining = m.queue.Len()
	return res
}

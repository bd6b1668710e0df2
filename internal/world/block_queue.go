package world

import (
	"github.com/annel0/voxel-sandbox/internal/vec"
)

// PendingBlockSpec блок, ожидающий материализации
type PendingBlockSpec struct {
	Pos   vec.Vec3
	Kind  BlockKind
	Chunk *Chunk
}

// BlockQueue FIFO-очередь ожидающих блоков с подавлением дубликатов.
// Множество seen помнит все координаты текущего прохода генерации,
// включая уже выданные через Drain, и очищается только в EndPass.
type BlockQueue struct {
	items []PendingBlockSpec
	head  int
	seen  map[vec.Vec3]struct{}
}

// NewBlockQueue создаёт пустую очередь
func NewBlockQueue() *BlockQueue {
	return &BlockQueue{
		seen: make(map[vec.Vec3]struct{}),
	}
}

// Enqueue добавляет блок в очередь. Возвращает false, если координата уже
// встречалась в этом проходе или тип блока — воздух.
func (q *BlockQueue) Enqueue(pos vec.Vec3, kind BlockKind, chunk *Chunk) bool {
	if !kind.IsSolid() {
		return false
	}
	if _, dup := q.seen[pos]; dup {
		return false
	}

	q.seen[pos] = struct{}{}
	q.items = append(q.items, PendingBlockSpec{Pos: pos, Kind: kind, Chunk: chunk})
	return true
}

// Drain извлекает до maxItems элементов в порядке добавления
func (q *BlockQueue) Drain(maxItems int) []PendingBlockSpec {
	if maxItems <= 0 || q.Len() == 0 {
		return nil
	}

	n := q.Len()
	if maxItems < n {
		n = maxItems
	}

	out := make([]PendingBlockSpec, n)
	copy(out, q.items[q.head:q.head+n])
	q.head += n

	// Освобождаем выданную часть, чтобы не держать ссылки на чанки
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	} else if q.head > len(q.items)/2 {
		q.items = append(q.items[:0:0], q.items[q.head:]...)
		q.head = 0
	}

	return out
}

// Len возвращает количество ожидающих элементов
func (q *BlockQueue) Len() int {
	return len(q.items) - q.head
}

// Seen проверяет, встречалась ли координата в текущем проходе
func (q *BlockQueue) Seen(pos vec.Vec3) bool {
	_, ok := q.seen[pos]
	return ok
}

// EndPass завершает проход генерации и забывает просмотренные координаты.
// Вызывается только после полного опустошения очереди.
func (q *BlockQueue) EndPass() {
	if q.Len() != 0 {
		return
	}
	q.seen = make(map[vec.Vec3]struct{})
}

package world

import (
	"sort"

	"github.com/annel0/voxel-sandbox/internal/vec"
)

// ChunkStore реестр чанков по их координатам. Удаления нет: чанки живут
// до конца процесса. Синхронизацию обеспечивает World.
type ChunkStore struct {
	chunkSize int
	chunks    map[vec.Vec2]*Chunk
	onCreate  func(*Chunk)
}

// NewChunkStore создаёт пустой реестр
func NewChunkStore(chunkSize int) *ChunkStore {
	return &ChunkStore{
		chunkSize: chunkSize,
		chunks:    make(map[vec.Vec2]*Chunk),
	}
}

// ChunkSize возвращает размер стороны чанка
func (s *ChunkStore) ChunkSize() int {
	return s.chunkSize
}

// OwnerOf возвращает координаты чанка, которому принадлежит блок
func (s *ChunkStore) OwnerOf(pos vec.Vec3) vec.Vec2 {
	return pos.ToChunkCoords(s.chunkSize)
}

// Get возвращает чанк, если он уже создан
func (s *ChunkStore) Get(coords vec.Vec2) (*Chunk, bool) {
	c, ok := s.chunks[coords]
	return c, ok
}

// GetOrCreate возвращает существующий чанк или создаёт и регистрирует новый
func (s *ChunkStore) GetOrCreate(coords vec.Vec2) *Chunk {
	if c, ok := s.chunks[coords]; ok {
		return c
	}

	c := NewChunk(coords, s.chunkSize)
	s.chunks[coords] = c
	if s.onCreate != nil {
		s.onCreate(c)
	}
	return c
}

// ChunkAt возвращает чанк-владелец мировой координаты, если он существует
func (s *ChunkStore) ChunkAt(pos vec.Vec3) (*Chunk, bool) {
	return s.Get(s.OwnerOf(pos))
}

// BlockAt возвращает материализованный блок по мировой координате
func (s *ChunkStore) BlockAt(pos vec.Vec3) (*Block, bool) {
	c, ok := s.ChunkAt(pos)
	if !ok {
		return nil, false
	}
	return c.Block(pos)
}

// Len возвращает количество чанков
func (s *ChunkStore) Len() int {
	return len(s.chunks)
}

// Coords возвращает координаты всех чанков в детерминированном порядке
func (s *ChunkStore) Coords() []vec.Vec2 {
	coords := make([]vec.Vec2, 0, len(s.chunks))
	for c := range s.chunks {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].X < coords[j].X
	})
	return coords
}

// BlockCount возвращает суммарное число материализованных блоков
func (s *ChunkStore) BlockCount() int {
	total := 0
	for _, c := range s.chunks {
		total += c.Len()
	}
	return total
}

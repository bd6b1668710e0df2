package world

import (
	"sort"

	"github.com/annel0/voxel-sandbox/internal/vec"
)

// Chunk представляет участок мира размером size x size блоков по горизонтали
// на всю высоту мира. Чанк владеет материализованными в нём блоками.
type Chunk struct {
	Coords vec.Vec2 // Координаты чанка в мире (X, Z)

	size      int
	blocks    map[vec.Vec3]*Block
	generated bool

	ChangeCounter int // Счетчик изменений после генерации
}

// NewChunk создаёт новый пустой чанк с указанными координатами
func NewChunk(coords vec.Vec2, size int) *Chunk {
	return &Chunk{
		Coords: coords,
		size:   size,
		blocks: make(map[vec.Vec3]*Block),
	}
}

// Size возвращает размер стороны чанка в блоках
func (c *Chunk) Size() int {
	return c.size
}

// Owns проверяет, принадлежит ли мировая координата этому чанку
func (c *Chunk) Owns(pos vec.Vec3) bool {
	return pos.ToChunkCoords(c.size) == c.Coords
}

// Block возвращает блок по мировым координатам
func (c *Chunk) Block(pos vec.Vec3) (*Block, bool) {
	b, ok := c.blocks[pos]
	return b, ok
}

// Len возвращает количество материализованных блоков
func (c *Chunk) Len() int {
	return len(c.blocks)
}

// Generated возвращает true, если рельеф чанка уже поставлен в очередь
func (c *Chunk) Generated() bool {
	return c.generated
}

// Blocks возвращает блоки чанка, упорядоченные по (Y, Z, X)
func (c *Chunk) Blocks() []*Block {
	result := make([]*Block, 0, len(c.blocks))
	for _, b := range c.blocks {
		result = append(result, b)
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i].Pos, result[j].Pos
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		return a.X < b.X
	})
	return result
}

// put добавляет блок. Возвращает false, если клетка уже занята.
func (c *Chunk) put(pos vec.Vec3, kind BlockKind) (*Block, bool) {
	if _, exists := c.blocks[pos]; exists {
		return nil, false
	}
	b := newBlock(pos, kind, c)
	c.blocks[pos] = b
	return b, true
}

// remove удаляет блок и возвращает его
func (c *Chunk) remove(pos vec.Vec3) (*Block, bool) {
	b, ok := c.blocks[pos]
	if !ok {
		return nil, false
	}
	delete(c.blocks, pos)
	b.chunk = nil
	return b, true
}

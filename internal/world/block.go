package world

import (
	"fmt"
	"strings"

	"github.com/annel0/voxel-sandbox/internal/physics"
	"github.com/annel0/voxel-sandbox/internal/vec"
)

// BlockKind представляет тип блока
type BlockKind uint8

// Константы типов блоков
const (
	Air BlockKind = iota // Отсутствие блока
	Grass
	Dirt
	Stone
	Bedrock // Неразрушаемый

	kindCount // всегда последний
)

var kindNames = [kindCount]string{
	Air:     "air",
	Grass:   "grass",
	Dirt:    "dirt",
	Stone:   "stone",
	Bedrock: "bedrock",
}

// String возвращает стабильное имя типа, используемое в логах, конфиге и API
func (k BlockKind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseBlockKind обратная операция к String
func ParseBlockKind(s string) (BlockKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return BlockKind(k), nil
		}
	}
	return Air, fmt.Errorf("unknown block kind %q", s)
}

// Valid возвращает true для известных типов
func (k BlockKind) Valid() bool {
	return k < kindCount
}

// IsSolid возвращает true, если тип занимает клетку
func (k BlockKind) IsSolid() bool {
	return k != Air && k.Valid()
}

// Breakable возвращает true, если блок можно добыть
func (k BlockKind) Breakable() bool {
	return k.IsSolid() && k != Bedrock
}

// Block представляет материализованный блок в игровом мире
type Block struct {
	Pos      vec.Vec3     // Мировые координаты
	Kind     BlockKind    // Тип блока, задаётся при создании
	Collider physics.AABB // Единичный куб для коллизий и взаимодействия

	chunk *Chunk
}

func newBlock(pos vec.Vec3, kind BlockKind, chunk *Chunk) *Block {
	return &Block{
		Pos:      pos,
		Kind:     kind,
		Collider: physics.BlockCollider(pos),
		chunk:    chunk,
	}
}

// Chunk возвращает чанк-владелец блока
func (b *Block) Chunk() *Chunk {
	return b.chunk
}

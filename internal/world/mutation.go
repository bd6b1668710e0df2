package world

import (
	"fmt"

	"github.com/annel0/voxel-sandbox/internal/physics"
	"github.com/annel0/voxel-sandbox/internal/vec"
)

// Occupant сущность, занимающая объём в мире (например, игрок).
// Блок нельзя поставить внутрь её текущего объёма.
type Occupant interface {
	Bounds() physics.AABB
}

// Limits границы допустимых координат блока
type Limits struct {
	MaxHeight int // Y в [0, MaxHeight)
	Border    int // |X|, |Z| < Border
}

// Contains проверяет, лежит ли координата внутри мира
func (l Limits) Contains(pos vec.Vec3) bool {
	return pos.Y >= 0 && pos.Y < l.MaxHeight &&
		pos.X > -l.Border && pos.X < l.Border &&
		pos.Z > -l.Border && pos.Z < l.Border
}

// MutationService одиночные изменения блоков во время игры (добыча и установка)
type MutationService struct {
	store    *ChunkStore
	limits   Limits
	recorder Recorder
}

// NewMutationService создаёт сервис изменений
func NewMutationService(store *ChunkStore, limits Limits, recorder Recorder) *MutationService {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &MutationService{
		store:    store,
		limits:   limits,
		recorder: recorder,
	}
}

// RemoveBlock удаляет блок и возвращает его тип. Бедрок не удаляется.
// Начисление в инвентарь — забота вызывающего.
func (s *MutationService) RemoveBlock(pos vec.Vec3) (BlockKind, error) {
	kind, err := s.removeBlock(pos)
	if err != nil {
		s.recorder.MutationRejected("remove", err)
		return Air, err
	}
	s.recorder.BlockRemoved(kind)
	return kind, nil
}

func (s *MutationService) removeBlock(pos vec.Vec3) (BlockKind, error) {
	if !s.limits.Contains(pos) {
		return Air, fmt.Errorf("remove %s: %w", pos, ErrInvalidCoordinate)
	}

	chunk, ok := s.store.ChunkAt(pos)
	if !ok {
		return Air, fmt.Errorf("remove %s: %w", pos, ErrNoBlock)
	}

	b, ok := chunk.Block(pos)
	if !ok {
		return Air, fmt.Errorf("remove %s: %w", pos, ErrNoBlock)
	}
	if !b.Kind.Breakable() {
		return Air, fmt.Errorf("remove %s (%s): %w", pos, b.Kind, ErrIndestructible)
	}

	chunk.remove(pos)
	chunk.ChangeCounter++
	return b.Kind, nil
}

// PlaceBlock ставит блок. occupant может быть nil.
// Списание из инвентаря должно произойти до вызова.
func (s *MutationService) PlaceBlock(pos vec.Vec3, kind BlockKind, occupant Occupant) error {
	if err := s.placeBlock(pos, kind, occupant); err != nil {
		s.recorder.MutationRejected("place", err)
		return err
	}
	s.recorder.BlockPlaced(kind)
	return nil
}

func (s *MutationService) placeBlock(pos vec.Vec3, kind BlockKind, occupant Occupant) error {
	if !s.limits.Contains(pos) {
		return fmt.Errorf("place %s: %w", pos, ErrInvalidCoordinate)
	}
	if !kind.IsSolid() {
		return fmt.Errorf("place %s: %w", pos, ErrAirPlacement)
	}
	if _, exists := s.store.BlockAt(pos); exists {
		return fmt.Errorf("place %s: %w", pos, ErrDuplicateBlock)
	}
	if occupant != nil && occupant.Bounds().Intersects(physics.BlockCollider(pos)) {
		return fmt.Errorf("place %s: %w", pos, ErrSelfPlacement)
	}

	chunk := s.store.GetOrCreate(s.store.OwnerOf(pos))
	if _, ok := chunk.put(pos, kind); !ok {
		return fmt.Errorf("place %s: %w", pos, ErrDuplicateBlock)
	}
	chunk.ChangeCounter++
	return nil
}

package inventory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/annel0/voxel-sandbox/internal/world"
)

var (
	ErrInsufficient = errors.New("not enough blocks in inventory")
	ErrFull         = errors.New("inventory is full")
	ErrInvalidKind  = errors.New("block kind cannot be stored")
	ErrInvalidSlot  = errors.New("slot index out of range")
)

// Slot ячейка хотбара. Count всегда в [1, maxStack]: опустевшая ячейка удаляется.
type Slot struct {
	Kind   world.BlockKind
	Count  int
	Prefab string // Ключ шаблона для отрисовки
}

// Inventory упорядоченный хотбар с выбранной ячейкой.
// Порядок ячеек — порядок отображения и выбора.
type Inventory struct {
	mu       sync.RWMutex
	slots    []Slot
	selected int
	capacity int
	maxStack int
}

// New создаёт пустой инвентарь. Стопка вмещает хотя бы один блок.
func New(capacity, maxStack int) *Inventory {
	if capacity < 0 {
		capacity = 0
	}
	if maxStack < 1 {
		maxStack = 1
	}
	return &Inventory{
		slots:    make([]Slot, 0, capacity),
		capacity: capacity,
		maxStack: maxStack,
	}
}

// AddBlock добавляет count блоков: сначала дополняет существующие стопки,
// затем открывает новые ячейки. Возвращает число добавленных блоков;
// если поместились не все, возвращает ErrFull.
func (inv *Inventory) AddBlock(kind world.BlockKind, count int) (int, error) {
	if !kind.IsSolid() {
		return 0, fmt.Errorf("add %s: %w", kind, ErrInvalidKind)
	}
	if count <= 0 {
		return 0, nil
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	left := count
	for i := range inv.slots {
		if left == 0 {
			break
		}
		s := &inv.slots[i]
		if s.Kind != kind || s.Count >= inv.maxStack {
			continue
		}
		n := min(inv.maxStack-s.Count, left)
		s.Count += n
		left -= n
	}

	for left > 0 && len(inv.slots) < inv.capacity {
		n := min(inv.maxStack, left)
		inv.slots = append(inv.slots, Slot{Kind: kind, Count: n, Prefab: kind.String()})
		left -= n
	}

	added := count - left
	if left > 0 {
		return added, fmt.Errorf("add %d %s: %w", count, kind, ErrFull)
	}
	return added, nil
}

// RemoveBlock списывает count блоков. Операция атомарна: при нехватке ничего не меняется.
func (inv *Inventory) RemoveBlock(kind world.BlockKind, count int) error {
	if count <= 0 {
		return nil
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if inv.countLocked(kind) < count {
		return fmt.Errorf("remove %d %s: %w", count, kind, ErrInsufficient)
	}

	left := count
	// Списываем с последних стопок, чтобы первые оставались полными
	for i := len(inv.slots) - 1; i >= 0 && left > 0; i-- {
		s := &inv.slots[i]
		if s.Kind != kind {
			continue
		}
		n := min(s.Count, left)
		s.Count -= n
		left -= n
		if s.Count == 0 {
			inv.removeSlotLocked(i)
		}
	}
	return nil
}

// removeSlotLocked удаляет ячейку, сохраняя выбор на той же ячейке, если она осталась
func (inv *Inventory) removeSlotLocked(i int) {
	inv.slots = append(inv.slots[:i], inv.slots[i+1:]...)
	if i < inv.selected {
		inv.selected--
	}
	inv.clampLocked()
}

func (inv *Inventory) clampLocked() {
	if inv.selected >= len(inv.slots) {
		inv.selected = len(inv.slots) - 1
	}
	if inv.selected < 0 {
		inv.selected = 0
	}
}

// Count возвращает общее количество блоков типа kind
func (inv *Inventory) Count(kind world.BlockKind) int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.countLocked(kind)
}

func (inv *Inventory) countLocked(kind world.BlockKind) int {
	total := 0
	for _, s := range inv.slots {
		if s.Kind == kind {
			total += s.Count
		}
	}
	return total
}

// Slots возвращает копию ячеек в порядке хотбара
func (inv *Inventory) Slots() []Slot {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	out := make([]Slot, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// Len возвращает количество занятых ячеек
func (inv *Inventory) Len() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.slots)
}

// Selected возвращает выбранную ячейку; false, если инвентарь пуст
func (inv *Inventory) Selected() (Slot, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	if len(inv.slots) == 0 {
		return Slot{}, false
	}
	return inv.slots[inv.selected], true
}

// SelectedIndex возвращает индекс выбранной ячейки
func (inv *Inventory) SelectedIndex() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.selected
}

// Select выбирает ячейку по индексу
func (inv *Inventory) Select(index int) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if index < 0 || index >= len(inv.slots) {
		return fmt.Errorf("select %d of %d: %w", index, len(inv.slots), ErrInvalidSlot)
	}
	inv.selected = index
	return nil
}

// Scroll сдвигает выбор на delta ячеек по кругу (колесо мыши)
func (inv *Inventory) Scroll(delta int) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	n := len(inv.slots)
	if n == 0 {
		return
	}
	inv.selected = ((inv.selected+delta)%n + n) % n
}

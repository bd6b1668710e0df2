package sandbox

import (
	"fmt"

	"github.com/annel0/voxel-sandbox/internal/inventory"
	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/annel0/voxel-sandbox/internal/physics"
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world"
)

const (
	PlayerWidth  = 0.6
	PlayerHeight = 1.8
)

// Player актёр песочницы: позиция, габариты и хотбар.
// Position — центр основания коллайдера.
type Player struct {
	Name      string
	Position  vec.Vec3Float
	Inventory *inventory.Inventory

	world *world.World
	log   *logging.Logger
}

// NewPlayer создаёт игрока в мире w
func NewPlayer(name string, w *world.World, inv *inventory.Inventory, log *logging.Logger) *Player {
	if log == nil {
		log = logging.GetSandboxLogger()
	}
	return &Player{
		Name:      name,
		Inventory: inv,
		world:     w,
		log:       log,
	}
}

// Bounds возвращает коллайдер игрока
func (p *Player) Bounds() physics.AABB {
	return physics.NewBoxCollider(p.Position, PlayerWidth, PlayerHeight)
}

// Mine добывает блок и кладёт его в инвентарь.
// Если инвентарь переполнен, блок всё равно удаляется из мира, а ошибка ErrFull возвращается вызывающему.
func (p *Player) Mine(pos vec.Vec3) (world.BlockKind, error) {
	kind, err := p.world.RemoveBlock(pos)
	if err != nil {
		return world.Air, err
	}

	if _, err := p.Inventory.AddBlock(kind, 1); err != nil {
		p.log.Warn("Игрок %s: блок %s (%s) не поместился в инвентарь", p.Name, pos, kind)
		return kind, fmt.Errorf("mine %s: %w", pos, err)
	}

	p.log.Debug("Игрок %s добыл %s в %s", p.Name, kind, pos)
	return kind, nil
}

// Place ставит блок выбранной ячейки хотбара. Блок списывается до установки
// и возвращается в инвентарь, если мир отклонил установку.
func (p *Player) Place(pos vec.Vec3) error {
	slot, ok := p.Inventory.Selected()
	if !ok {
		return fmt.Errorf("place %s: %w", pos, inventory.ErrInsufficient)
	}

	if err := p.Inventory.RemoveBlock(slot.Kind, 1); err != nil {
		return fmt.Errorf("place %s: %w", pos, err)
	}

	if err := p.world.PlaceBlock(pos, slot.Kind, p); err != nil {
		if _, refundErr := p.Inventory.AddBlock(slot.Kind, 1); refundErr != nil {
			p.log.Error("Игрок %s: не удалось вернуть %s в инвентарь: %v", p.Name, slot.Kind, refundErr)
		}
		return err
	}

	p.log.Debug("Игрок %s поставил %s в %s", p.Name, slot.Kind, pos)
	return nil
}

// Block возвращает клетку, в которой стоят ноги игрока
func (p *Player) Block() vec.Vec3 {
	return p.Position.Floor()
}

// Move сдвигает игрока на offset, если новая позиция не пересекает блоки.
// Возвращает false, если движение заблокировано.
func (p *Player) Move(offset vec.Vec3Float) bool {
	next := p.Bounds().Translate(offset)
	passable := func(pos vec.Vec3) bool { return !p.world.IsSolid(pos) }
	if !physics.CanMoveToPosition(next, passable) {
		return false
	}
	p.Position = p.Position.Add(offset)
	return true
}

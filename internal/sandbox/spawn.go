package sandbox

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world"
)

var ErrNoGround = errors.New("spawn column has no blocks")

// Spawn ждёт готовности мира и ставит игрока над самым верхним блоком столбца (x, z).
// Опрос идёт с интервалом poll; отмена ctx прерывает ожидание.
func Spawn(ctx context.Context, w *world.World, p *Player, x, z int, poll time.Duration) error {
	if !w.Ready() {
		ticker := time.NewTicker(poll)
		defer ticker.Stop()

		for !w.Ready() {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}
	}

	top, ok := w.HighestBlockAt(x, z)
	if !ok {
		return fmt.Errorf("spawn at (%d, %d): %w", x, z, ErrNoGround)
	}

	p.Position = vec.Vec3Float{X: float64(x) + 0.5, Y: float64(top + 1), Z: float64(z) + 0.5}
	p.log.Info("🧍 Игрок %s появился в %.1f, %.1f, %.1f", p.Name, p.Position.X, p.Position.Y, p.Position.Z)
	return nil
}

package sandbox

import (
	"context"
	"os"
	"time"

	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/annel0/voxel-sandbox/internal/world"
	"github.com/shirou/gopsutil/v3/process"
)

const defaultBudget = 2000

// Host внешний планировщик: вызывает World.Tick с фиксированной частотой.
type Host struct {
	world    *world.World
	interval time.Duration
	budget   int
	log      *logging.Logger

	wasReady bool
	onReady  func(world.Stats)
}

// NewHost создаёт планировщик с частотой tickRate тиков в секунду
// и бюджетом budget блоков на тик.
func NewHost(w *world.World, tickRate, budget int, log *logging.Logger) *Host {
	if tickRate <= 0 {
		tickRate = 60
	}
	if budget <= 0 {
		budget = defaultBudget
	}
	if log == nil {
		log = logging.GetSandboxLogger()
	}
	return &Host{
		world:    w,
		interval: time.Second / time.Duration(tickRate),
		budget:   budget,
		log:      log,
	}
}

// OnReady регистрирует обработчик завершения прохода генерации
func (h *Host) OnReady(fn func(world.Stats)) {
	h.onReady = fn
}

// Step выполняет один тик
func (h *Host) Step() world.TickResult {
	res := h.world.Tick(h.budget)
	if res.Ready && !h.wasReady {
		stats := h.world.Stats()
		h.log.Info("✅ Мир готов: чанков %d, блоков %d", stats.Chunks, stats.Blocks)
		h.reportMemory()
		if h.onReady != nil {
			h.onReady(stats)
		}
	}
	h.wasReady = res.Ready
	return res
}

// Run тикает мир до отмены ctx. Незавершённый проход остаётся незавершённым:
// мир не станет готовым, пока очередь не опустеет.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.log.Info("Планировщик запущен: интервал %v, бюджет %d", h.interval, h.budget)
	for {
		select {
		case <-ctx.Done():
			h.log.Info("Планировщик остановлен")
			return ctx.Err()
		case <-ticker.C:
			h.Step()
		}
	}
}

// reportMemory логирует RSS процесса; переполнение памяти — единственный сбой генерации
func (h *Host) reportMemory() {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		h.log.Warn("Не удалось получить процесс: %v", err)
		return
	}
	mem, err := proc.MemoryInfo()
	if err != nil {
		h.log.Warn("Не удалось получить память процесса: %v", err)
		return
	}
	h.log.Info("📊 Память процесса: RSS %.1f MB", float64(mem.RSS)/1024/1024)
}

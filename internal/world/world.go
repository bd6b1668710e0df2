package world

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/annel0/voxel-sandbox/internal/world"

// Settings параметры мира
type Settings struct {
	Seed          int64
	ChunkSize     int
	DirtDepth     int
	TerrainScale  float64
	TerrainHeight int
	BaseElevation int
	MaxHeight     int
	Border        int
}

// DefaultSettings возвращает параметры по умолчанию
func DefaultSettings() Settings {
	return Settings{
		Seed:          1337,
		ChunkSize:     16,
		DirtDepth:     3,
		TerrainScale:  0.05,
		TerrainHeight: 12,
		BaseElevation: 5,
		MaxHeight:     128,
		Border:        30_000_000,
	}
}

// Option настраивает World при создании
type Option func(*World)

// WithRecorder подключает сборщик метрик
func WithRecorder(r Recorder) Option {
	return func(w *World) {
		if r != nil {
			w.recorder = r
		}
	}
}

// WithLogger задаёт логгер мира
func WithLogger(l *logging.Logger) Option {
	return func(w *World) {
		w.log = l
	}
}

// WithTracer задаёт трассировщик проходов генерации
func WithTracer(t trace.Tracer) Option {
	return func(w *World) {
		w.tracer = t
	}
}

// WithHeightSource заменяет карту высот (используется в тестах)
func WithHeightSource(h HeightSource) Option {
	return func(w *World) {
		w.heights = h
	}
}

// TickResult итог одного тика планировщика
type TickResult struct {
	Enqueued  int
	Created   int
	Skipped   int
	Remaining int
	Ready     bool
}

// Stats снимок состояния мира
type Stats struct {
	Chunks     int       `json:"chunks"`
	Blocks     int       `json:"blocks"`
	Pending    int       `json:"pending"`
	Ready      bool      `json:"ready"`
	Generating bool      `json:"generating"`
	PassID     uuid.UUID `json:"pass_id"`
}

// World владеет всем изменяемым состоянием мира: реестром чанков, очередью,
// генератором, материализатором и сервисом изменений. Все публичные методы
// сериализуются одним мьютексом, поэтому World можно вызывать из разных горутин.
type World struct {
	mu sync.Mutex

	settings     Settings
	limits       Limits
	heights      HeightSource
	store        *ChunkStore
	queue        *BlockQueue
	generator    *ChunkGenerator
	materializer *Materializer
	mutations    *MutationService

	recorder Recorder
	log      *logging.Logger
	tracer   trace.Tracer

	ready      bool
	generating bool
	passID     uuid.UUID
	passStart  time.Time
	passSpan   trace.Span
}

// New создаёт мир. Генерация не начинается до BeginGeneration.
func New(settings Settings, opts ...Option) *World {
	w := &World{
		settings: settings,
		limits:   Limits{MaxHeight: settings.MaxHeight, Border: settings.Border},
		recorder: nopRecorder{},
		log:      logging.GetWorldLogger(),
		tracer:   otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(w)
	}

	if w.heights == nil {
		w.heights = NewHeightmap(settings.Seed, settings.TerrainScale, settings.TerrainHeight,
			settings.BaseElevation, settings.MaxHeight)
	}

	w.store = NewChunkStore(settings.ChunkSize)
	w.store.onCreate = func(c *Chunk) {
		w.recorder.ChunkCreated()
		w.log.Trace("Создан чанк %s", c.Coords)
	}
	w.queue = NewBlockQueue()
	w.generator = NewChunkGenerator(w.store, w.queue, w.heights, settings.DirtDepth, w.log)
	w.materializer = NewMaterializer(w.store, w.queue, w.log)
	w.mutations = NewMutationService(w.store, w.limits, w.recorder)

	return w
}

// Settings возвращает параметры мира
func (w *World) Settings() Settings {
	return w.settings
}

// ChunkCoordOf возвращает координаты чанка для мирового столбца (x, z)
func (w *World) ChunkCoordOf(x, z int) vec.Vec2 {
	return vec.Vec2{X: x, Y: z}.ToChunkCoords(w.settings.ChunkSize)
}

// BeginGeneration начинает проход генерации квадрата чанков вокруг center.
// Проход нельзя отменить: мир станет готовым только после полного опустошения очереди.
func (w *World) BeginGeneration(ctx context.Context, center vec.Vec2, radius int) (uuid.UUID, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.generating {
		return w.passID, ErrPassInProgress
	}
	if err := w.checkRegion(center, radius); err != nil {
		return uuid.Nil, err
	}
	if err := w.generator.StartRegion(center, radius); err != nil {
		return uuid.Nil, err
	}

	w.passID = uuid.New()
	w.passStart = time.Now()
	w.generating = true
	w.ready = false
	w.recorder.SetReady(false)

	_, w.passSpan = w.tracer.Start(ctx, "world.generation_pass",
		trace.WithAttributes(
			attribute.String("pass.id", w.passID.String()),
			attribute.Int("pass.center_x", center.X),
			attribute.Int("pass.center_z", center.Y),
			attribute.Int("pass.radius", radius),
		))

	w.log.Info("Начат проход генерации %s: центр %s, радиус %d", w.passID, center, radius)
	return w.passID, nil
}

// checkRegion проверяет, что квадрат чанков целиком лежит внутри границы мира.
// Сравнения идут в координатах чанков: center и radius не умножаются на размер чанка,
// поэтому произвольные значения не переполняют int.
func (w *World) checkRegion(center vec.Vec2, radius int) error {
	if radius < 0 {
		return ErrInvalidRadius
	}

	lo, hi := w.chunkRange()
	for _, c := range [2]int{center.X, center.Y} {
		if c < lo || c > hi {
			return fmt.Errorf("generation center %s: %w", center, ErrInvalidCoordinate)
		}
		if radius > c-lo || radius > hi-c {
			return fmt.Errorf("generation region %s radius %d crosses border %d: %w",
				center, radius, w.settings.Border, ErrInvalidCoordinate)
		}
	}
	return nil
}

// chunkRange возвращает индексы крайних чанков, все клетки которых лежат в (-Border, Border)
func (w *World) chunkRange() (lo, hi int) {
	size := w.settings.ChunkSize
	return -vec.FloorDiv(w.settings.Border-1, size), vec.FloorDiv(w.settings.Border, size) - 1
}

// Tick выполняет один шаг кооперативного планировщика: одну строку генерации
// и одну порцию материализации размером не более budget.
func (w *World) Tick(budget int) TickResult {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.generating {
		return TickResult{Ready: w.ready}
	}

	start := time.Now()
	var res TickResult

	if w.generator.Pending() > 0 {
		res.Enqueued, _ = w.generator.Step()
		w.recorder.BlocksEnqueued(res.Enqueued)
	}

	step := w.materializer.Step(budget)
	res.Created = step.Created
	res.Skipped = step.Skipped
	res.Remaining = step.Remaining

	w.recorder.BlocksMaterialized(step.Created)
	w.recorder.QueueDepth(step.Remaining)
	w.recorder.StepDuration(time.Since(start))

	if w.generator.Pending() == 0 && step.Remaining == 0 {
		w.completePass()
	}

	res.Ready = w.ready
	return res
}

// completePass переводит мир в состояние готовности. Вызывается под мьютексом.
func (w *World) completePass() {
	w.queue.EndPass()
	w.generating = false
	w.ready = true

	elapsed := time.Since(w.passStart)
	w.recorder.PassCompleted(elapsed)
	w.recorder.SetReady(true)

	if w.passSpan != nil {
		w.passSpan.SetAttributes(
			attribute.Int("world.chunks", w.store.Len()),
			attribute.Int("world.blocks", w.store.BlockCount()),
		)
		w.passSpan.SetStatus(codes.Ok, "")
		w.passSpan.End()
		w.passSpan = nil
	}

	w.log.Info("Проход генерации %s завершён за %v: чанков %d, блоков %d",
		w.passID, elapsed, w.store.Len(), w.store.BlockCount())
}

// RunPass выполняет проход генерации целиком, вызывая Tick до готовности.
// При нулевом бюджете очередь не убывает, поэтому budget должен быть положительным.
func (w *World) RunPass(ctx context.Context, center vec.Vec2, radius, budget int) (int, error) {
	if budget <= 0 {
		return 0, fmt.Errorf("run pass with budget %d: %w", budget, ErrInvalidBudget)
	}
	if _, err := w.BeginGeneration(ctx, center, radius); err != nil {
		return 0, err
	}

	ticks := 0
	for {
		ticks++
		if res := w.Tick(budget); res.Ready {
			return ticks, nil
		}
	}
}

// Ready возвращает true после завершения прохода генерации
func (w *World) Ready() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.ready
}

// Generating возвращает true, пока идёт проход генерации
func (w *World) Generating() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.generating
}

// PassID возвращает идентификатор последнего прохода генерации
func (w *World) PassID() uuid.UUID {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.passID
}

// HighestBlockAt возвращает высоту самого верхнего блока в столбце (x, z).
// Используется для точки появления игрока после готовности мира.
func (w *World) HighestBlockAt(x, z int) (int, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	chunk, ok := w.store.ChunkAt(vec.Vec3{X: x, Y: 0, Z: z})
	if !ok {
		return 0, false
	}
	for y := w.settings.MaxHeight - 1; y >= 0; y-- {
		if _, ok := chunk.Block(vec.Vec3{X: x, Y: y, Z: z}); ok {
			return y, true
		}
	}
	return 0, false
}

// BlockAt возвращает тип материализованного блока
func (w *World) BlockAt(pos vec.Vec3) (BlockKind, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	b, ok := w.store.BlockAt(pos)
	if !ok {
		return Air, false
	}
	return b.Kind, true
}

// IsSolid сообщает, занята ли клетка блоком
func (w *World) IsSolid(pos vec.Vec3) bool {
	_, ok := w.BlockAt(pos)
	return ok
}

// RemoveBlock добывает блок, см. MutationService.RemoveBlock
func (w *World) RemoveBlock(pos vec.Vec3) (BlockKind, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	kind, err := w.mutations.RemoveBlock(pos)
	if err == nil {
		w.log.Debug("Блок %s (%s) удалён", pos, kind)
	}
	return kind, err
}

// PlaceBlock ставит блок, см. MutationService.PlaceBlock
func (w *World) PlaceBlock(pos vec.Vec3, kind BlockKind, occupant Occupant) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	err := w.mutations.PlaceBlock(pos, kind, occupant)
	if err == nil {
		w.log.Debug("Блок %s (%s) установлен", pos, kind)
	}
	return err
}

// ChunkCount возвращает количество созданных чанков
func (w *World) ChunkCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.store.Len()
}

// Stats возвращает снимок состояния мира
func (w *World) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()

	return Stats{
		Chunks:     w.store.Len(),
		Blocks:     w.store.BlockCount(),
		Pending:    w.queue.Len(),
		Ready:      w.ready,
		Generating: w.generating,
		PassID:     w.passID,
	}
}

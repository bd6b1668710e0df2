package metrics

import (
	"errors"
	"time"

	"github.com/annel0/voxel-sandbox/internal/world"
	"github.com/prometheus/client_golang/prometheus"
)

// WorldMetrics реализует world.Recorder поверх Prometheus.
//
// Метрики:
// * <ns>_chunks_created_total — counter
// * <ns>_blocks_enqueued_total — counter
// * <ns>_blocks_materialized_total — counter
// * <ns>_queue_depth — gauge
// * <ns>_tick_duration_seconds — histogram
// * <ns>_blocks_mutated_total{op,kind} — counter
// * <ns>_mutations_rejected_total{op,reason} — counter
// * <ns>_generation_pass_seconds — histogram
// * <ns>_world_ready — gauge (0/1)
type WorldMetrics struct {
	chunksCreated      prometheus.Counter
	blocksEnqueued     prometheus.Counter
	blocksMaterialized prometheus.Counter
	queueDepth         prometheus.Gauge
	tickDuration       prometheus.Histogram
	mutations          *prometheus.CounterVec
	rejected           *prometheus.CounterVec
	passDuration       prometheus.Histogram
	ready              prometheus.Gauge
}

var _ world.Recorder = (*WorldMetrics)(nil)

// NewWorldMetrics создаёт метрики и регистрирует их в reg.
// reg == nil означает prometheus.DefaultRegisterer.
func NewWorldMetrics(namespace string, reg prometheus.Registerer) *WorldMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &WorldMetrics{
		chunksCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunks_created_total",
			Help:      "Количество созданных чанков.",
		}),
		blocksEnqueued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_enqueued_total",
			Help:      "Описаний блоков, поставленных в очередь генератором.",
		}),
		blocksMaterialized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_materialized_total",
			Help:      "Блоков, созданных материализатором.",
		}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_depth",
			Help:      "Текущая длина очереди блоков.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Длительность одного тика генерации.",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_mutated_total",
			Help:      "Успешные изменения блоков игроками.",
		}, []string{"op", "kind"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_rejected_total",
			Help:      "Отклонённые изменения блоков.",
		}, []string{"op", "reason"}),
		passDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_pass_seconds",
			Help:      "Длительность прохода генерации от начала до готовности.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		ready: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "world_ready",
			Help:      "1, если мир готов к появлению игроков.",
		}),
	}

	reg.MustRegister(
		m.chunksCreated, m.blocksEnqueued, m.blocksMaterialized, m.queueDepth,
		m.tickDuration, m.mutations, m.rejected, m.passDuration, m.ready,
	)
	return m
}

func (m *WorldMetrics) ChunkCreated() { m.chunksCreated.Inc() }
func (m *WorldMetrics) BlocksEnqueued(n int) { m.blocksEnqueued.Add(float64(n)) }
func (m *WorldMetrics) BlocksMaterialized(n int) { m.blocksMaterialized.Add(float64(n)) }
func (m *WorldMetrics) QueueDepth(n int) { m.queueDepth.Set(float64(n)) }
func (m *WorldMetrics) StepDuration(d time.Duration) { m.tickDuration.Observe(d.Seconds()) }

func (m *WorldMetrics) BlockRemoved(kind world.BlockKind) {
	m.mutations.WithLabelValues("remove", kind.String()).Inc()
}

func (m *WorldMetrics) BlockPlaced(kind world.BlockKind) {
	m.mutations.WithLabelValues("place", kind.String()).Inc()
}

func (m *WorldMetrics) MutationRejected(op string, err error) {
	m.rejected.WithLabelValues(op, rejectReason(err)).Inc()
}

func (m *WorldMetrics) PassCompleted(d time.Duration) { m.passDuration.Observe(d.Seconds()) }

func (m *WorldMetrics) SetReady(ready bool) {
	if ready {
		m.ready.Set(1)
		return
	}
	m.ready.Set(0)
}

// rejectReason сводит ошибку к метке с ограниченным числом значений
func rejectReason(err error) string {
	switch {
	case errors.Is(err, world.ErrInvalidCoordinate):
		return "invalid_coordinate"
	case errors.Is(err, world.ErrDuplicateBlock):
		return "duplicate"
	case errors.Is(err, world.ErrIndestructible):
		return "indestructible"
	case errors.Is(err, world.ErrNoBlock):
		return "no_block"
	case errors.Is(err, world.ErrAirPlacement):
		return "air"
	case errors.Is(err, world.ErrSelfPlacement):
		return "self"
	default:
		return "other"
	}
}

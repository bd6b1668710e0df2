package metrics

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldMetricsRecordsPass(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWorldMetrics("test", reg)

	flat := world.HeightFunc(func(int, int) int { return 2 })
	w := world.New(world.DefaultSettings(),
		world.WithRecorder(m),
		world.WithHeightSource(flat),
		world.WithLogger(logging.Discard("world")))

	_, err := w.RunPass(context.Background(), vec.Vec2{}, 0, 1000)
	require.NoError(t, err)

	blocks := float64(16 * 16 * 3)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.chunksCreated))
	assert.Equal(t, blocks, testutil.ToFloat64(m.blocksEnqueued))
	assert.Equal(t, blocks, testutil.ToFloat64(m.blocksMaterialized))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.queueDepth))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ready))
	assert.Equal(t, 1, testutil.CollectAndCount(m.passDuration))
}

func TestWorldMetricsMutations(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWorldMetrics("test", reg)

	m.BlockRemoved(world.Grass)
	m.BlockRemoved(world.Grass)
	m.BlockPlaced(world.Stone)
	m.MutationRejected("remove", fmt.Errorf("remove: %w", world.ErrIndestructible))
	m.MutationRejected("place", world.ErrSelfPlacement)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.mutations.WithLabelValues("remove", "grass")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.mutations.WithLabelValues("place", "stone")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.rejected.WithLabelValues("remove", "indestructible")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.rejected.WithLabelValues("place", "self")))
}

func TestWorldMetricsReadyGauge(t *testing.T) {
	m := NewWorldMetrics("test", prometheus.NewRegistry())

	m.SetReady(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ready))
	m.SetReady(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.ready))

	m.StepDuration(3 * time.Millisecond)
	assert.Equal(t, 1, testutil.CollectAndCount(m.tickDuration))
}

func TestRejectReasonFallback(t *testing.T) {
	assert.Equal(t, "other", rejectReason(fmt.Errorf("boom")))
	assert.Equal(t, "duplicate", rejectReason(world.ErrDuplicateBlock))
}

func TestExporterServesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWorldMetrics("sandbox", reg)
	m.ChunkCreated()

	e := NewExporter(":0", reg)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	e.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "sandbox_chunks_created_total 1")
}

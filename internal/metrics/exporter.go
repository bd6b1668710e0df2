package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Exporter отдельный HTTP-эндпоинт Prometheus (например, ":2112")
type Exporter struct {
	server *http.Server
}

// NewExporter создаёт экспортер метрик из g, но не запускает его
func NewExporter(addr string, g prometheus.Gatherer) *Exporter {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return &Exporter{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// StartHTTP запускает HTTP-сервер в отдельной горутине
func (e *Exporter) StartHTTP() {
	go func() {
		logging.Info("📈 Prometheus /metrics доступен по адресу %s", e.server.Addr)
		if err := e.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Ошибка Prometheus HTTP сервера: %v", err)
		}
	}()
}

// Stop останавливает HTTP-сервер
func (e *Exporter) Stop(ctx context.Context) error {
	return e.server.Shutdown(ctx)
}

// Handler возвращает обработчик экспортера
func (e *Exporter) Handler() http.Handler {
	return e.server.Handler
}

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/annel0/voxel-sandbox/internal/middleware"
	"github.com/annel0/voxel-sandbox/internal/vec"
	"github.com/annel0/voxel-sandbox/internal/world"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// WorldView часть мира, доступная серверу статуса только на чтение
type WorldView interface {
	Stats() world.Stats
	HighestBlockAt(x, z int) (int, bool)
	BlockAt(pos vec.Vec3) (world.BlockKind, bool)
}

// Config содержит конфигурацию сервера статуса
type Config struct {
	Addr     string               // адрес, например ":8088"
	World    WorldView            // мир, состояние которого отдаётся
	Registry *prometheus.Registry // регистр метрик; nil — дефолтный
	Logger   *logging.Logger
}

// StatusServer отдаёт готовность мира, его статистику и метрики Prometheus.
// Готовность мира можно только опрашивать: сервер ничего не рассылает.
type StatusServer struct {
	router  *gin.Engine
	server  *http.Server
	world   WorldView
	metrics *ServerMetrics
	log     *logging.Logger
}

// GenericResponse общий формат ответа API
type GenericResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// NewStatusServer создает сервер статуса
func NewStatusServer(cfg Config) *StatusServer {
	if cfg.Addr == "" {
		cfg.Addr = ":8088"
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.GetAPILogger()
	}

	gin.SetMode(gin.ReleaseMode)

	router := gin.New()        // без стандартного logger/recovery
	router.Use(gin.Recovery()) // добавим только recovery

	// === Observability middleware ===
	router.Use(otelgin.Middleware("status_api"))
	router.Use(middleware.NewRequestLogger(cfg.Logger).Handler())

	var reg prometheus.Registerer
	var gatherer prometheus.Gatherer
	if cfg.Registry != nil {
		reg, gatherer = cfg.Registry, cfg.Registry
	}
	promMw := middleware.NewPrometheusMiddleware("status_api", reg)
	router.Use(promMw.Handler())
	promMw.RegisterMetricsEndpoint(router, gatherer)

	s := &StatusServer{
		router:  router,
		world:   cfg.World,
		metrics: NewServerMetrics(),
		log:     cfg.Logger,
		server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	s.setupRoutes()
	return s
}

func (s *StatusServer) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.GET("/server", s.handleServerInfo)

		w := api.Group("/world")
		w.GET("/status", s.handleWorldStatus)
		w.GET("/column", s.handleColumn)
		w.GET("/block", s.handleBlock)
	}
}

// Handler возвращает http.Handler сервера (используется в тестах)
func (s *StatusServer) Handler() http.Handler {
	return s.router
}

// Start запускает сервер и блокируется до Shutdown
func (s *StatusServer) Start() error {
	s.log.Info("🌐 Сервер статуса слушает %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown корректно останавливает сервер
func (s *StatusServer) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// handleHealth проверка состояния процесса
func (s *StatusServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}

// handleWorldStatus отдаёт готовность и статистику мира
func (s *StatusServer) handleWorldStatus(c *gin.Context) {
	stats := s.world.Stats()

	msg := "Мир генерируется"
	if stats.Ready {
		msg = "Мир готов"
	}
	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: msg,
		Data:    stats,
	})
}

// handleColumn отдаёт высоту самого верхнего блока столбца
func (s *StatusServer) handleColumn(c *gin.Context) {
	x, errX := strconv.Atoi(c.Query("x"))
	z, errZ := strconv.Atoi(c.Query("z"))
	if errX != nil || errZ != nil {
		c.JSON(http.StatusBadRequest, GenericResponse{
			Success: false,
			Message: "Параметры x и z должны быть целыми числами",
		})
		return
	}

	top, ok := s.world.HighestBlockAt(x, z)
	if !ok {
		c.JSON(http.StatusNotFound, GenericResponse{
			Success: false,
			Message: fmt.Sprintf("Столбец (%d, %d) пуст", x, z),
		})
		return
	}

	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: "Столбец найден",
		Data: gin.H{
			"x":       x,
			"z":       z,
			"highest": top,
			"spawn_y": top + 1,
		},
	})
}

// handleBlock отдаёт тип блока в клетке
func (s *StatusServer) handleBlock(c *gin.Context) {
	var pos vec.Vec3
	var err error
	for _, p := range []struct {
		name string
		dst  *int
	}{{"x", &pos.X}, {"y", &pos.Y}, {"z", &pos.Z}} {
		if *p.dst, err = strconv.Atoi(c.Query(p.name)); err != nil {
			c.JSON(http.StatusBadRequest, GenericResponse{
				Success: false,
				Message: fmt.Sprintf("Параметр %s должен быть целым числом", p.name),
			})
			return
		}
	}

	kind, ok := s.world.BlockAt(pos)
	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: "Блок получен",
		Data: gin.H{
			"pos":   pos,
			"kind":  kind.String(),
			"solid": ok,
		},
	})
}

// handleServerInfo возвращает информацию о процессе
func (s *StatusServer) handleServerInfo(c *gin.Context) {
	info := map[string]interface{}{
		"name":   "Voxel Sandbox",
		"uptime": s.metrics.GetUptime(),
		"heap":   s.metrics.GetHeapStats(),
	}
	if rss, err := s.metrics.GetRSS(); err == nil {
		info["rss_mb"] = fmt.Sprintf("%.1f", rss)
	}
	if cpu, err := s.metrics.GetCPUUsage(); err == nil {
		info["cpu_percent"] = fmt.Sprintf("%.1f", cpu)
	}

	c.JSON(http.StatusOK, GenericResponse{
		Success: true,
		Message: "Информация о сервере",
		Data:    info,
	})
}

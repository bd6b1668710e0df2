package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/voxel-sandbox/internal/api"
	"github.com/annel0/voxel-sandbox/internal/config"
	"github.com/annel0/voxel-sandbox/internal/inventory"
	"github.com/annel0/voxel-sandbox/internal/logging"
	"github.com/annel0/voxel-sandbox/internal/metrics"
	"github.com/annel0/voxel-sandbox/internal/observability"
	"github.com/annel0/voxel-sandbox/internal/sandbox"
	"github.com/annel0/voxel-sandbox/internal/world"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (по умолчанию $SANDBOX_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	logOpts, err := loggingOptions(cfg.Logging)
	if err != nil {
		log.Fatalf("❌ Ошибка конфигурации логирования: %v", err)
	}
	if err := logging.InitDefaultLogger("sandbox", logOpts); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()
	logging.GetLoggerManager().Configure(logOpts)
	defer logging.GetLoggerManager().CloseAll()

	logging.Info("🧱 Запуск Voxel Sandbox (seed=%d, радиус=%d)", cfg.World.Seed, cfg.Generation.Radius)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// === ТЕЛЕМЕТРИЯ ===
	shutdownTelemetry, err := observability.InitTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("❌ Ошибка инициализации OpenTelemetry: %v", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	worldMetrics := metrics.NewWorldMetrics("sandbox", registry)

	// === МИР ===
	w := world.New(worldSettings(cfg.World),
		world.WithRecorder(worldMetrics),
		world.WithLogger(logging.GetWorldLogger()),
	)

	center := w.ChunkCoordOf(cfg.Generation.CenterX, cfg.Generation.CenterZ)
	passID, err := w.BeginGeneration(ctx, center, cfg.Generation.Radius)
	if err != nil {
		log.Fatalf("❌ Ошибка запуска генерации: %v", err)
	}
	logging.Debug("Проход генерации %s поставлен в планировщик", passID)

	host := sandbox.NewHost(w, cfg.Generation.TickRate, cfg.Generation.MaxItemsPerStep, logging.GetSandboxLogger())
	go func() {
		if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logging.Error("❌ Планировщик остановлен с ошибкой: %v", err)
		}
	}()

	player := sandbox.NewPlayer("player", w,
		inventory.New(cfg.Inventory.HotbarSize, cfg.Inventory.MaxStack),
		logging.GetSandboxLogger())
	go func() {
		err := sandbox.Spawn(ctx, w, player, cfg.Generation.CenterX, cfg.Generation.CenterZ, 100*time.Millisecond)
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error("❌ Не удалось поставить игрока: %v", err)
		}
	}()

	// === HTTP ===
	statusAddr := fmt.Sprintf(":%d", cfg.Server.GetStatusPort())
	statusServer := api.NewStatusServer(api.Config{
		Addr:     statusAddr,
		World:    w,
		Registry: registry,
		Logger:   logging.GetAPILogger(),
	})
	go func() {
		if err := statusServer.Start(); err != nil {
			logging.Error("❌ Ошибка сервера статуса: %v", err)
		}
	}()

	exporter := metrics.NewExporter(fmt.Sprintf(":%d", cfg.Server.GetMetricsPort()), registry)
	exporter.StartHTTP()

	logging.Info("✅ Все сервисы запущены")
	logging.Info("   ❤️  Health check: http://localhost%s/health", statusAddr)
	logging.Info("   🌍 Статус мира: http://localhost%s/api/world/status", statusAddr)

	// Канал для получения сигналов ОС
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logging.Info("📡 Получен сигнал %v, завершение работы...", sig)

	// === GRACEFUL SHUTDOWN ===
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := statusServer.Shutdown(shutdownCtx); err != nil {
		logging.Error("❌ Ошибка остановки сервера статуса: %v", err)
	}
	if err := exporter.Stop(shutdownCtx); err != nil {
		logging.Error("❌ Ошибка остановки экспортера метрик: %v", err)
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		logging.Error("❌ Ошибка остановки OpenTelemetry: %v", err)
	}

	stats := w.Stats()
	logging.Info("👋 Песочница остановлена: чанков %d, блоков %d, готов=%v", stats.Chunks, stats.Blocks, stats.Ready)
}

func loggingOptions(cfg config.LoggingConfig) (logging.Options, error) {
	console, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return logging.Options{}, err
	}
	file, err := logging.ParseLevel(cfg.FileLevel)
	if err != nil {
		return logging.Options{}, err
	}
	return logging.Options{Dir: cfg.Dir, ConsoleLevel: console, FileLevel: file}, nil
}

func worldSettings(cfg config.WorldConfig) world.Settings {
	return world.Settings{
		Seed:          cfg.Seed,
		ChunkSize:     cfg.ChunkSize,
		DirtDepth:     cfg.DirtDepth,
		TerrainScale:  cfg.TerrainScale,
		TerrainHeight: cfg.TerrainHeight,
		BaseElevation: cfg.BaseElevation,
		MaxHeight:     cfg.MaxHeight,
		Border:        cfg.Border,
	}
}

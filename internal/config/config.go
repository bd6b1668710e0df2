package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации песочницы.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Generation GenerationConfig `yaml:"generation"`
	Inventory  InventoryConfig  `yaml:"inventory"`
	Logging    LoggingConfig    `yaml:"logging"`
	Server     ServerConfig     `yaml:"server"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// WorldConfig параметры рельефа и границ мира
type WorldConfig struct {
	Seed          int64   `yaml:"seed"`
	ChunkSize     int     `yaml:"chunk_size"`
	DirtDepth     int     `yaml:"dirt_depth"`
	TerrainScale  float64 `yaml:"terrain_scale"`
	TerrainHeight int     `yaml:"terrain_height"`
	BaseElevation int     `yaml:"base_elevation"`
	MaxHeight     int     `yaml:"max_height"`
	Border        int     `yaml:"border"`
}

// GenerationConfig параметры стартового прохода генерации
type GenerationConfig struct {
	CenterX         int `yaml:"center_x"`
	CenterZ         int `yaml:"center_z"`
	Radius          int `yaml:"radius"`
	MaxItemsPerStep int `yaml:"max_items_per_step"`
	TickRate        int `yaml:"tick_rate"`
}

type InventoryConfig struct {
	HotbarSize int `yaml:"hotbar_size"`
	MaxStack   int `yaml:"max_stack"`
}

type LoggingConfig struct {
	Level     string `yaml:"level"`
	FileLevel string `yaml:"file_level"`
	Dir       string `yaml:"dir"`
}

type ServerConfig struct {
	StatusPort  int `yaml:"status_port"`
	MetricsPort int `yaml:"metrics_port"`
}

type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Seed:          1337,
			ChunkSize:     16,
			DirtDepth:     3,
			TerrainScale:  0.05,
			TerrainHeight: 12,
			BaseElevation: 5,
			MaxHeight:     128,
			Border:        30_000_000,
		},
		Generation: GenerationConfig{
			Radius:          2,
			MaxItemsPerStep: 2000,
			TickRate:        60,
		},
		Inventory: InventoryConfig{
			HotbarSize: 9,
			MaxStack:   64,
		},
		Logging: LoggingConfig{
			Level:     "info",
			FileLevel: "debug",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "voxel-sandbox",
		},
	}
}

// GetStatusPort возвращает порт HTTP статуса с поддержкой fallback значений
func (s *ServerConfig) GetStatusPort() int {
	return getPortWithEnvFallback(s.StatusPort, "SANDBOX_STATUS_PORT", 8088)
}

// GetMetricsPort возвращает Prometheus метрики порт с поддержкой fallback значений
func (s *ServerConfig) GetMetricsPort() int {
	return getPortWithEnvFallback(s.MetricsPort, "SANDBOX_METRICS_PORT", 2112)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	// Если порт задан в конфиге и больше 0, используем его
	if configPort > 0 {
		return configPort
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	// Используем дефолтное значение
	return defaultPort
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", пытается прочитать из ENV SANDBOX_CONFIG или возвращает Default().
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("SANDBOX_CONFIG")
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate проверяет согласованность параметров
func (c *Config) Validate() error {
	w := c.World
	switch {
	case w.ChunkSize <= 0:
		return errors.New("world.chunk_size must be positive")
	case w.DirtDepth < 0:
		return errors.New("world.dirt_depth must not be negative")
	case w.TerrainScale <= 0:
		return errors.New("world.terrain_scale must be positive")
	case w.TerrainHeight < 0:
		return errors.New("world.terrain_height must not be negative")
	case w.BaseElevation < 0:
		return errors.New("world.base_elevation must not be negative")
	case w.MaxHeight <= 1:
		return errors.New("world.max_height must be greater than 1")
	case w.Border <= 0:
		return errors.New("world.border must be positive")
	}

	g := c.Generation
	switch {
	case g.Radius < 0:
		return errors.New("generation.radius must not be negative")
	case g.MaxItemsPerStep <= 0:
		return errors.New("generation.max_items_per_step must be positive")
	case g.TickRate <= 0:
		return errors.New("generation.tick_rate must be positive")
	}

	if c.Inventory.HotbarSize <= 0 || c.Inventory.MaxStack <= 0 {
		return errors.New("inventory.hotbar_size and inventory.max_stack must be positive")
	}

	return nil
}

package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config содержит всю конфигурацию приложения
type Config struct {
	Server   ServerConfig   // Настройки HTTP сервера
	Database DatabaseConfig // Настройки подключения к MongoDB
	API      APIConfig      // Поведение публичного API
	Log      LogConfig      // Настройки логирования
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// DatabaseConfig содержит настройки подключения к MongoDB.
// Оба поля необязательны: без них сервис стартует, но хранилище недоступно.
type DatabaseConfig struct {
	URL            string        `envconfig:"DATABASE_URL"`
	Name           string        `envconfig:"DATABASE_NAME"`
	ConnectTimeout time.Duration `envconfig:"DATABASE_CONNECT_TIMEOUT" default:"5s"`
}

// APIConfig содержит настройки обработки запросов
type APIConfig struct {
	// StrictPayloads включает проверку тел запросов по схемам записей
	StrictPayloads bool `envconfig:"STRICT_PAYLOADS" default:"false"`
}

// LogConfig содержит настройки логгера
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// Configured сообщает, заданы ли параметры подключения к БД
func (d DatabaseConfig) Configured() bool {
	return d.URL != "" && d.Name != ""
}

// SlogLevel возвращает уровень логирования для slog
func (l LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load читает конфигурацию из переменных окружения
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

package utils

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const logFilename = "tutorstate.log"

// LoggerConfig определяет конфигурацию для логгера
type LoggerConfig struct {
	// Уровень логов (trace, debug, info, warn, error)
	Level string
	// Формат логов (text/json)
	Format string
	// Выходной поток, по умолчанию os.Stdout
	Output io.Writer
	// Каталог для файла логов с ротацией; пусто — без файла
	Dir string
}

// InitLogger инициализирует и возвращает логгер
func InitLogger(config ...LoggerConfig) zerolog.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	var out io.Writer = cfg.Output
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: time.DateTime,
		}
	}

	if cfg.Dir != "" {
		fileLogger := &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, logFilename),
			MaxAge:     3,
			MaxBackups: 3,
		}
		out = zerolog.MultiLevelWriter(out, fileLogger)
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("app", "tutorstate").
		Logger()

	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	return logger
}

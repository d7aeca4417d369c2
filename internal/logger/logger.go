// Package logger cấu hình hệ thống logging cho toàn bộ ứng dụng.
// Sử dụng logrus cho structured logging và lumberjack cho log rotation.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig chứa cấu hình logging
type LogConfig struct {
	Level      string // Log level: debug, info, warn, error (env LOG_LEVEL)
	Dir        string // Thư mục chứa log files (env LOG_DIR)
	MaxSizeMB  int    // Kích thước tối đa của 1 file log (MB) trước khi rotate
	MaxBackups int    // Số file backup giữ lại
	MaxAgeDays int    // Số ngày giữ log
	Console    bool   // Có ghi ra console song song hay không
}

// DefaultConfig trả về cấu hình logging mặc định, đọc từ environment variables nếu có.
func DefaultConfig() *LogConfig {
	cfg := &LogConfig{
		Level:      "info",
		Dir:        "logs",
		MaxSizeMB:  50,
		MaxBackups: 5,
		MaxAgeDays: 30,
		Console:    true,
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		cfg.Level = lvl
	}
	if dir := os.Getenv("LOG_DIR"); dir != "" {
		cfg.Dir = dir
	}
	return cfg
}

var (
	appLogger *logrus.Logger
	initOnce  sync.Once
	config    *LogConfig
)

// Init khởi tạo hệ thống logging với cấu hình.
// Truyền nil để dùng cấu hình mặc định (đọc từ environment variables).
func Init(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	config = cfg

	// Tạo thư mục logs nếu chưa tồn tại
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	initOnce.Do(func() {
		appLogger = newLogger("app")
	})
	return nil
}

// newLogger tạo một logger với file rotation qua lumberjack
func newLogger(name string) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(config.Dir, name+".log"),
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAgeDays,
		Compress:   true,
	}

	if config.Console {
		log.SetOutput(io.MultiWriter(os.Stdout, rotator))
	} else {
		log.SetOutput(rotator)
	}

	return log
}

// GetAppLogger trả về logger chính của ứng dụng.
// Nếu chưa init, tự động init với cấu hình mặc định.
func GetAppLogger() *logrus.Logger {
	if appLogger == nil {
		_ = Init(nil)
	}
	return appLogger
}

// WithRequest trả về entry có gắn các field của request hiện tại (method, path, requestId, ip)
// dùng trong các handler và middleware của Fiber.
func WithRequest(c fiber.Ctx) *logrus.Entry {
	requestID, _ := c.Locals("requestid").(string)
	return GetAppLogger().WithFields(logrus.Fields{
		"method":    c.Method(),
		"path":      c.Path(),
		"requestId": requestID,
		"ip":        c.IP(),
	})
}

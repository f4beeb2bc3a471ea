// Package logger 提供基于zap的全局日志
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

var (
	mu     sync.RWMutex
	global = zap.NewNop()
)

// Init 初始化全局日志器。日志同时写入stderr和滚动文件（如配置了文件路径）
func Init(config Config) error {
	level := zapcore.InfoLevel
	if config.Level != "" {
		parsed, err := zapcore.ParseLevel(config.Level)
		if err != nil {
			return err
		}
		level = parsed
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	sinks := []zapcore.WriteSyncer{zapcore.AddSync(os.Stderr)}
	if config.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   config.File,
			MaxSize:    orDefault(config.MaxSizeMB, 50),
			MaxBackups: orDefault(config.MaxBackups, 5),
			MaxAge:     orDefault(config.MaxAgeDays, 30),
			Compress:   true,
		}
		sinks = append(sinks, zapcore.AddSync(rotator))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(sinks...), level)

	mu.Lock()
	global = zap.New(core, zap.AddCaller())
	mu.Unlock()
	return nil
}

// L 返回全局日志器
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// S 返回全局sugared日志器
func S() *zap.SugaredLogger {
	return L().Sugar()
}

func Sync() {
	_ = L().Sync()
}

func orDefault(value, fallback int) int {
	if value <= 0 {
		return fallback
	}
	return value
}

package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v2"

	"cardioscreen/artifact"
	"cardioscreen/db"
	chttp "cardioscreen/http"
	"cardioscreen/logger"
	"cardioscreen/predict"
)

type Config struct {
	Artifacts struct {
		Dir string `yaml:"dir"`
	} `yaml:"artifacts"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	Http struct {
		Port           int      `yaml:"port"`
		TimeoutSeconds int      `yaml:"timeout_seconds"`
		MaxRequestSize int64    `yaml:"max_request_size"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"http"`
	Log logger.Config `yaml:"log"`
}

func main() {
	// 1. Load config
	config, err := loadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Initialize logging
	if err := logger.Init(config.Log); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 3. Initialize database
	if err := db.InitDB(config.Database.Path); err != nil {
		logger.S().Fatalw("failed to initialize database", "path", config.Database.Path, "error", err)
	}
	defer db.Close()
	logger.S().Infow("database initialized", "path", config.Database.Path)

	// 4. Load artifacts; a missing scaler or an empty model set is fatal
	registry, err := artifact.LoadRegistry(config.Artifacts.Dir)
	if err != nil {
		logger.S().Fatalw("failed to load artifacts", "dir", config.Artifacts.Dir, "error", err)
	}
	logger.S().Infow("artifacts loaded", "models", registry.Tags())

	watcher, err := artifact.NewWatcher(config.Artifacts.Dir)
	if err != nil {
		logger.S().Warnw("artifact watcher unavailable", "error", err)
	} else {
		defer watcher.Close()
	}

	chttp.SetRegistry(registry)
	chttp.SetPredictor(predict.FromRegistry(registry))

	// 5. Start HTTP server
	server := chttp.NewServer(chttp.ServerConfig{
		Port:           config.Http.Port,
		Timeout:        time.Duration(config.Http.TimeoutSeconds) * time.Second,
		MaxRequestSize: config.Http.MaxRequestSize,
		AllowedOrigins: config.Http.AllowedOrigins,
	})
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.S().Fatalw("HTTP server failed", "error", err)
		}
	}()

	// 6. Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.S().Info("shutting down")

	if err := server.Stop(); err != nil {
		logger.S().Warnw("server forced to shutdown", "error", err)
	}

	logger.S().Info("exiting")
}

func loadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

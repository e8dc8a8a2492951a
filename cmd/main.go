package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/m04kA/SMC-BeautyBooking/internal/cli/app"
	"github.com/m04kA/SMC-BeautyBooking/internal/config"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
	"github.com/m04kA/SMC-BeautyBooking/pkg/metrics"
)

// EnvConfigPath переменная окружения с путем к конфигурации
const EnvConfigPath = "BOOKING_CONFIG"

func main() {
	os.Exit(run())
}

func run() int {
	configPath := os.Getenv(EnvConfigPath)
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer log.Close()

	log.Info("Starting beauty-booking client, args=%v", os.Args[1:])

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled, textfile=%s", cfg.Metrics.TextfilePath)
	}

	application, err := app.Build(cfg, os.Stdin, os.Stdout, log, metricsCollector)
	if err != nil {
		log.Error("Failed to build application: %v", err)
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		return 1
	}

	// Прерывание отменяет текущий запрос к API
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	code := application.Execute(ctx, os.Args[1:])

	if metricsCollector != nil {
		if err := metricsCollector.WriteToTextfile(cfg.Metrics.TextfilePath); err != nil {
			log.Error("Failed to write metrics to %s: %v", cfg.Metrics.TextfilePath, err)
		}
	}

	log.Info("Command finished with code=%d", code)
	return code
}

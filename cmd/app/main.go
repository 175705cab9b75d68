package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"servis/cmd"
	httpserver "servis/internal/adapters/in/http"
	"servis/internal/adapters/out/postgres/customerrepo"
	"servis/internal/adapters/out/postgres/devicerepo"
	"servis/internal/adapters/out/postgres/orderrepo"
	"servis/internal/adapters/out/postgres/templaterepo"
	"servis/internal/core/application/usecases/commands"
	"servis/internal/jobs"
	"servis/internal/pkg/logger"
)

func main() {
	config := getConfig()

	log := logger.New(config.LogLevel, config.LogFormat)
	defer func() { _ = log.Sync() }()

	db, err := openDatabase(config)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	root := cmd.NewCompositionRoot(config, db, log)

	ctx := context.Background()
	if err = root.CreateLoadTemplatesCommandHandler().
		Handle(ctx, commands.NewLoadTemplatesCommand()); err != nil {
		log.Fatal("failed to load notification templates", zap.Error(err))
	}

	refreshJob := root.CreateWorkingSetRefreshJob(config.RefreshSchedule)
	refreshJob.Refresh(ctx)

	jobManager := jobs.NewJobManager(refreshJob)
	if err = jobManager.StartAll(); err != nil {
		log.Fatal("failed to start background jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	startWebServer(root, config.HTTPPort)
}

func getConfig() cmd.Config {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:           envOrDefault("HTTP_PORT", "8080"),
		DBHost:             envOrDefault("DB_HOST", "localhost"),
		DBPort:             envOrDefault("DB_PORT", "5432"),
		DBUser:             envOrDefault("DB_USER", "postgres"),
		DBPassword:         envOrDefault("DB_PASSWORD", "postgres"),
		DBName:             envOrDefault("DB_NAME", "servis"),
		DBSslMode:          envOrDefault("DB_SSLMODE", "disable"),
		WhatsAppGatewayURL: os.Getenv("WHATSAPP_GATEWAY_URL"),
		WhatsAppTimeout:    envOrDefault("WHATSAPP_TIMEOUT", "10s"),
		RefreshSchedule:    envOrDefault("REFRESH_SCHEDULE", "@every 1m"),
		LogLevel:           envOrDefault("LOG_LEVEL", "info"),
		LogFormat:          envOrDefault("LOG_FORMAT", "json"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&devicerepo.DeviceDTO{},
		&orderrepo.OrderDTO{},
		&templaterepo.TemplateDTO{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func startWebServer(root cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true
	// Application logging goes through zap; echo's own logger only reports
	// problems with the server itself.
	e.Logger.SetLevel(log.WARN)

	server := httpserver.NewServer(
		root.CreateCreateOrderCommandHandler(),
		root.CreateEditOrderCommandHandler(),
		root.CreateDeleteOrderCommandHandler(),
		root.CreateChangeStatusCommandHandler(),
		root.CreateSaveTemplatesCommandHandler(),
		root.CreateGetOrdersQueryHandler(),
		root.CreateGetReceiptQueryHandler(),
		root.CreateGetTemplatesQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

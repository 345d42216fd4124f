package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"eco-garden-system/config"
	"eco-garden-system/handlers"
	"eco-garden-system/middleware"
	"eco-garden-system/models"
	"eco-garden-system/services"
	"eco-garden-system/utils"
	"eco-garden-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, reading environment variables directly")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		logrus.Fatal("failed to open local store: ", err)
	}
	if err := db.AutoMigrate(&models.StoreEntry{}); err != nil {
		logrus.Fatal("failed to migrate local store: ", err)
	}

	storage := services.NewStorageService(services.NewGormStore(db))
	ledger := services.NewLedgerService(storage)
	placeService := services.NewPlaceService(storage)
	weatherService := services.NewWeatherService(utils.HTTPClient)
	missionService := services.NewMissionService()
	syncService := services.NewSheetSyncService(cfg.BackupSheetURL, utils.HTTPClient, ledger)

	app := fiber.New(fiber.Config{})

	app.Use(middleware.DeviceAuthMiddleware(cfg.DeviceToken))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Device-Token",
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backupWorker := workers.NewBackupWorker(syncService, cfg.BackupQueueSize)
	go backupWorker.Run(ctx)

	if utils.R2Configured() {
		if err := utils.InitR2(); err != nil {
			logrus.Fatal("failed to initialize R2 client: ", err)
		}
		ledger.StartSnapshotScheduler()
		logrus.Info("daily ledger snapshot scheduler running")
	} else {
		logrus.Info("R2 not configured, snapshot backups disabled")
	}

	handlers.SetupGardenRoutes(app, ledger)
	handlers.SetupShopRoutes(app, ledger)
	handlers.SetupMissionRoutes(app, ledger, weatherService, missionService, backupWorker.Enqueue)
	handlers.SetupSyncRoutes(app, syncService)
	handlers.SetupPlaceRoutes(app, placeService)

	go func() {
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			logrus.Error("server error: ", err)
		}
	}()
	logrus.Infof("eco-garden-system running on http://localhost:%d", cfg.Port)

	<-ctx.Done()
	logrus.Info("shutting down")
	_ = app.Shutdown()
}

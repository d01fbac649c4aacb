package main

import (
	"flag"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"

	"demo-bank/internal/config"
	"demo-bank/internal/handlers"
	"demo-bank/internal/middleware"
	"demo-bank/internal/routes"
	"demo-bank/internal/session"
	"demo-bank/internal/store"
	"demo-bank/internal/uploads"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Warn("config not loaded, using defaults", zap.String("path", *configPath), zap.Error(err))
		cfg = config.Default()
	}

	var users store.Store
	switch cfg.Store {
	case "sqlite":
		sqliteStore, err := store.OpenSQLite(cfg.DSN, logger)
		if err != nil {
			logger.Fatal("cannot init sqlite store", zap.Error(err))
		}
		defer sqliteStore.Close()
		users = sqliteStore
	default:
		users = store.NewMemory()
	}
	logger.Info("identity store ready", zap.String("backend", cfg.Store))

	uploadStore, err := uploads.New(cfg.UploadDir)
	if err != nil {
		logger.Fatal("cannot init upload store", zap.Error(err))
	}

	sessions := session.NewManager()
	h := handlers.New(users, sessions, uploadStore, logger)
	gate := &middleware.Gate{Sessions: sessions, Users: users, Log: logger}

	engine := html.New(cfg.ViewsDir, ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
	})

	routes.Setup(app, h, gate)

	logger.Info("server listening", zap.String("addr", cfg.Addr))
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

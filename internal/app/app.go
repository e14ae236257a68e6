package app

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"album-backend/internal/config"
	"album-backend/internal/db"
	"album-backend/internal/handlers"
	"album-backend/internal/session"
	"album-backend/internal/store"
)

func Run() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	cfg := config.Load()

	// Init DB
	pool, err := db.Init(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()
	log.Info("Connected to PostgreSQL")

	if err := db.Bootstrap(context.Background(), pool, cfg.AuthUser, cfg.AuthPassword, log); err != nil {
		log.Fatalf("Failed to bootstrap database: %v", err)
	}

	// Stores
	users := store.NewUserStore(pool)
	photos := store.NewPhotoStore(pool)

	sessions, stopSessions := newSessionProvider(cfg, log)
	defer stopSessions()

	// Fiber App
	app := fiber.New(fiber.Config{
		// Room for a full batch of max-size files plus multipart overhead.
		BodyLimit: handlers.MaxUploadFiles*handlers.MaxFileSize + (1 << 20),
	})

	// Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// Routes
	api := app.Group("/api")

	api.Get("/session", handlers.SessionHandler(sessions))
	api.Post("/login", handlers.LoginHandler(users, sessions, cfg.SessionTTL, log))
	api.Post("/logout", handlers.LogoutHandler(sessions))

	albumPhotos := api.Group("/photos", handlers.AuthMiddleware(sessions))
	albumPhotos.Get("/", handlers.ListPhotosHandler(photos))
	albumPhotos.Post("/", handlers.UploadPhotosHandler(photos, log))
	albumPhotos.Delete("/", handlers.ClearPhotosHandler(photos))

	// Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Frontend
	app.Static("/", cfg.WebRoot)
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(cfg.WebRoot, "index.html"))
	})

	// Start Server
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()
	log.Infof("Album app running at http://localhost:%s", cfg.Port)

	// Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Block until signal
	log.Info("Gracefully shutting down...")
	_ = app.Shutdown()
	log.Info("Server shutdown complete")
}

// newSessionProvider picks the session backing from config. The returned stop
// func releases whatever the backing runs in the background.
func newSessionProvider(cfg *config.Config, log *logrus.Logger) (session.Provider, func()) {
	switch cfg.SessionBackend {
	case "redis":
		log.Info("Using redis session backend")
		return session.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.SessionTTL), func() {}

	case "signed":
		if cfg.SessionSecret == "" {
			log.Fatal("SESSION_SECRET is required for the signed session backend")
		}
		log.Info("Using signed session backend")
		return session.NewSigned([]byte(cfg.SessionSecret), cfg.SessionTTL), func() {}

	default:
		mem := session.NewMemory(cfg.SessionTTL)
		sweeper := cron.New()
		if _, err := sweeper.AddFunc("@every 10m", mem.Sweep); err != nil {
			log.Fatalf("Failed to schedule session sweep: %v", err)
		}
		sweeper.Start()
		return mem, func() { sweeper.Stop() }
	}
}

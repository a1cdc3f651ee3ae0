package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rubbishhaha/vocab/core/blobstore"
	"github.com/rubbishhaha/vocab/core/config"
	"github.com/rubbishhaha/vocab/core/database"
	"github.com/rubbishhaha/vocab/core/loader"
	"github.com/rubbishhaha/vocab/core/logger"
	"github.com/rubbishhaha/vocab/core/middleware/auth"
	"github.com/rubbishhaha/vocab/core/middleware/rayid"
	"github.com/rubbishhaha/vocab/core/server"
	"github.com/rubbishhaha/vocab/core/storage"

	"github.com/rubbishhaha/vocab/feature/mindmap"
	"github.com/rubbishhaha/vocab/feature/vocab"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/rubbishhaha/vocab/docs/swagger"
)

// @title Vocab Sync API
// @version 1.0
// @description API for synchronizing the vocab mind-map and word list.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the vocab sync server",
	Long:  `Starts the HTTP server, the static client delivery and the sync features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.IsValidBackend() {
			logg.Fatal("Invalid persistence backend", zap.String("backend", cfg.Server.Backend))
		}

		// 3. Initialize the blob store backend
		store := newBlobStore(cfg, logg)

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(cors.New(cors.Config{
			AllowOrigins: cfg.Server.CORSOrigin,
			AllowHeaders: "Origin, Content-Type, Accept, X-Api-Key",
		}))

		// Logging middleware (Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger documentation (public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Static client bundle (public)
		app.Static("/", cfg.Server.StaticDir)

		// Auth (protects the API; pass-through when no key configured)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 5. Load Features
		mgr := loader.NewManager()
		mgr.Register(mindmap.NewFeature(store, logg))
		mgr.Register(vocab.NewFeature(store, logg))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("backend", cfg.Server.Backend))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// newBlobStore builds the configured persistence backend. The database
// backend falls back to object storage when the connection fails, so a
// broken MySQL never keeps the client from syncing.
func newBlobStore(cfg *config.Config, logg *zap.Logger) blobstore.Store {
	if cfg.Server.Backend == server.BackendDatabase {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Database connection failed, falling back to storage", zap.Error(err))
		} else {
			gormStore := blobstore.NewGormStore(db)
			if err := gormStore.Migrate(); err != nil {
				logg.Fatal("Failed to migrate blobs table", zap.Error(err))
			}
			logg.Info("Using database persistence")
			return gormStore
		}
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Fatal("Failed to create storage client", zap.Error(err))
	}

	minioStore := blobstore.NewMinioStore(client, cfg.Storage.Bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := minioStore.EnsureBucket(ctx); err != nil {
		logg.Fatal("Failed to prepare bucket", zap.Error(err))
	}

	logg.Info("Using storage persistence", zap.String("bucket", cfg.Storage.Bucket))
	return minioStore
}

func init() {
	RootCmd.AddCommand(startCmd)
}

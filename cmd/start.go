package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"listing-sync/core/loader"
	"listing-sync/core/logger"
	"listing-sync/core/middleware/auth"
	"listing-sync/core/middleware/rayid"
	"listing-sync/feature/integrity"
	"listing-sync/feature/listings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "listing-sync/docs/swagger"
)

// @title Listing Sync API
// @version 1.0
// @description API for synchronizing and exporting real-estate listings.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the listing sync server",
	Long:  `Starts the HTTP server, loads all enabled features and runs scheduled syncs when sync.interval is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		a, err := newApp(ctx, appOptions{database: true, migrate: true})
		if err != nil {
			return err
		}
		defer a.Close()
		logg := a.logger

		interval, err := a.cfg.Sync.ScheduleInterval()
		if err != nil {
			return err
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           a.cfg.Server.ReadTimeout(),
			WriteTimeout:          a.cfg.Server.WriteTimeout(),
		})

		mgr := loader.NewManager()
		mgr.Register(listings.NewFeature(a.service))
		mgr.Register(integrity.NewFeature(a.storage, a.cfg.Storage.Bucket, a.cfg.Storage.Region, logg, a.db))

		// RayID first so every log line below can carry it
		app.Use(rayid.New())

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

		// Public routes
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})
		app.Get("/swagger/*", swagger.HandlerDefault)

		if a.cfg.Server.ApiKey == "" {
			logg.Warn("server.api_key is empty, API is unprotected")
		}
		app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		if interval > 0 {
			go a.service.RunEvery(ctx, interval)
		}

		go func() {
			logg.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			if err := app.Listen(a.cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

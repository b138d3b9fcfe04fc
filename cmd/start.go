package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"roundest/core/loader"
	"roundest/core/logger"
	"roundest/core/middleware/rayid"
	"roundest/feature/integrity"
	"roundest/feature/ranking"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "roundest/docs/swagger"
)

// @title Roundest API
// @version 1.0
// @description Pairwise "which Pokémon is rounder?" voting with an Elo leaderboard.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the ranking server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd)
		if err != nil {
			return err
		}
		defer rt.close()
		zap.ReplaceGlobals(rt.logger)
		logg := rt.logger

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(ranking.NewFeature(rt.ranking))
		mgr.Register(integrity.NewFeature(
			integrity.NewService(rt.db, rt.store, rt.cfg.Storage.Bucket, rt.cfg.Catalog.Object, logg),
		))

		// RayID first so every later log line carries it.
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

		app.Use(cors.New(cors.Config{
			AllowOrigins: rt.cfg.Server.Origins(),
			AllowMethods: "GET,POST,OPTIONS",
			AllowHeaders: "Origin, Content-Type, Accept, " + rayid.HeaderName,
		}))

		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(rt.metrics.Handler()))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}
		logg.Info("Features loaded", zap.Strings("features", mgr.Loaded()))

		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(rt.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

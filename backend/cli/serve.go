package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tutorstate/backend/middleware"
	"tutorstate/backend/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve progress and theme over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := buildDeps(cmd)
			if err != nil {
				return err
			}
			if port == "" {
				port = d.cfg.ServerPort
			}

			app := fiber.New(fiber.Config{DisableStartupMessage: true})

			// Middleware
			app.Use(cors.New(cors.Config{
				AllowOrigins: d.cfg.CORSOrigins,
				AllowHeaders: "Origin, Content-Type, Accept",
			}))
			app.Use(middleware.LoggingMiddleware(d.log))

			routes.SetupRoutes(app, d.progress, d.theme, d.log)

			go func() {
				quit := make(chan os.Signal, 1)
				signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
				<-quit
				d.log.Info().Msg("shutting down")
				if err := app.Shutdown(); err != nil {
					d.log.Error().Err(err).Msg("shutdown failed")
				}
			}()

			d.log.Info().
				Str("port", port).
				Str("storage", d.cfg.StorageDriver).
				Msg("listening")
			if err := app.Listen(":" + port); err != nil {
				return fmt.Errorf("server stopped: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "port to listen on (default from SERVER_PORT)")
	return cmd
}

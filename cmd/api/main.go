package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "tractus/docs"
	"tractus/internal/adapter/http/routes"
	"tractus/internal/infrastructure/config"
	"tractus/internal/infrastructure/database"
	"tractus/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title           Tractus API
// @version         1.0
// @description     Commercial and field operations of a heavy machinery service company: clients, proposals, work orders, sales, technical visits and fleet expenses.

// @contact.name   Tractus
// @contact.email  suporte@tractus.com.br

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:           "tractus",
	Short:         "Tractus REST API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(); err != nil {
			return err
		}
		if _, err := logger.New(cfg.LogLevel); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		gin.SetMode(cfg.GinMode)
		return nil
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Migrate the schema and serve the HTTP API",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the schema and seed defaults, then exit",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	defer func() { _ = zap.L().Sync() }()
	return routes.Run(cmd.Context(), cfg)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	defer func() { _ = zap.L().Sync() }()
	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return err
	}
	if err := routes.Bootstrap(cmd.Context(), cfg, db); err != nil {
		return err
	}
	zap.L().Info("schema migrated", zap.String("scope", "migrate"), zap.String("driver", cfg.DatabaseDriver))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

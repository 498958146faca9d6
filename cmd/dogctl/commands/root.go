package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dog-health-tracker/internal/app"
	"dog-health-tracker/internal/config"
)

var (
	// Global flags
	envFile    string
	dbURL      string
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dogctl",
	Short: "Operaciones del dog health tracker fuera del API",
	Long: `dogctl corre las tareas del tracker sin levantar el servidor HTTP.

Commands:
  reminders run       - Una pasada del job de recordatorios
  reminders schedule  - Corre el job según REMINDER_CRON hasta Ctrl+C
  migrate             - Aplica las migraciones de Postgres`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Archivo .env opcional")
	rootCmd.PersistentFlags().StringVar(&dbURL, "db", "", "DATABASE_URL (pisa la del entorno)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Salida en JSON")
}

// loadConfig carga la config y aplica --db.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if v := strings.TrimSpace(dbURL); v != "" {
		if err := os.Setenv("DATABASE_URL", v); err != nil {
			return nil, err
		}
		cfg.Database.URL = v
	}
	return cfg, nil
}

func openApp(ctx context.Context) (*app.App, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return app.New(ctx, cfg, app.NewLogger(cfg))
}

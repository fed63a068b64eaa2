package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"scoringAPI/internal/app"
)

var (
	envFile string
	port    string
	logFile string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "scoring-api",
		Short:         "Scoring API: online_score и clients_interests через POST /method",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := app.New(cfg).Run(cmd.Context()); err != nil {
				slog.Error("run failed", "error", err)
				return err
			}
			return nil
		},
	}
	// Флаги перекрывают значения из окружения.
	root.PersistentFlags().StringVar(&envFile, "env", "", "путь к .env (по умолчанию ./.env, если есть)")
	root.PersistentFlags().StringVarP(&port, "port", "p", "", "порт HTTP-сервера")
	root.PersistentFlags().StringVarP(&logFile, "log", "l", "", "файл лога (по умолчанию только stderr)")

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Применить миграции PostgreSQL истории вызовов",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return app.New(cfg).Migrate(cmd.Context())
		},
	})
	return root
}

func loadConfig() (app.Config, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := app.LoadCfg(files...)
	if err != nil {
		return app.Config{}, fmt.Errorf("config load failed: %w", err)
	}
	if port != "" {
		cfg.Server.Port = port
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	return cfg, nil
}

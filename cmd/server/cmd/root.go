// cmd/server/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"greeter/internal/app/server"
	"greeter/internal/app/server/api"
	"greeter/internal/app/server/config"
	"greeter/internal/domain/greeting"
	"greeter/internal/utils/logger"
)

var rootCmd = &cobra.Command{
	Use:   "greeter",
	Short: "Greeter - HTTP сервис с приветствием и health-check",
	Long: `Greeter поднимает HTTP сервер с двумя маршрутами:
	GET /        приветствие
	GET /health  liveness probe

Порт берется из переменной окружения PORT (по умолчанию 3000).`,
	Args:          cobra.NoArgs,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// сервис создается один раз и явно передается в хендлер корня
	greetingService := greeting.NewService()
	handler := api.New(greetingService, log)

	if err := server.New(cfg, handler, log).Run(ctx); err != nil {
		log.Error("server stopped", logger.Err(err))
		return fmt.Errorf("ошибка запуска сервера: %w", err)
	}

	log.Info("Application terminated.")
	return nil
}

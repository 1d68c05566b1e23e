package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tri-tranminh/gold-tracker/internal/config"
	"github.com/tri-tranminh/gold-tracker/internal/interaction/ngoctham"
	"github.com/tri-tranminh/gold-tracker/internal/repository/history"
	"github.com/tri-tranminh/gold-tracker/internal/usecases"
)

var (
	rootCmd = &cobra.Command{
		Use:           "gold-tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cnf    *config.Config
	logger *slog.Logger
)

func Execute() {
	initConfig()
	initLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

func initConfig() {
	cnf = config.MustLoad("./config.yml")
}

func initLogger() {
	opts := &slog.HandlerOptions{Level: cnf.Logger.ParsedSlogLevel}
	logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func newUpdatePricesUseCase() *usecases.UpdatePricesUseCase {
	feedClient := &http.Client{Timeout: cnf.Feed.Timeout()}

	interaction := ngoctham.NewInteraction(logger, feedClient, ngoctham.Config{
		URL:       cnf.Feed.URL,
		Referer:   cnf.Feed.Referer,
		UserAgent: cnf.Feed.UserAgent,
		GoldTypes: cnf.Feed.GoldTypes,
	})
	repository := history.NewRepository(logger, cnf.Storage.Path)

	return usecases.NewUpdatePricesUseCase(logger, repository, interaction, cnf.Time.Location())
}

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tri-tranminh/gold-tracker/internal/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the daily price update on a cron schedule",
	Run: func(cmd *cobra.Command, _ []string) {
		log := logger.With("package", "cmd")
		ctx := cmd.Context()

		updatePriceUC := newUpdatePricesUseCase()

		sched := scheduler.New(ctx, cnf.Time.Location())
		sched.Add(cnf.Schedule.Cron, func(ctx context.Context) {
			log.Info("running scheduled price update")
			if _, err := updatePriceUC.UpdatePrices(ctx); err != nil {
				log.Error("scheduled price update failed", "error", err)
			}
		})

		log.Info("starting scheduler", "cron", cnf.Schedule.Cron)
		sched.Start()
	},
}

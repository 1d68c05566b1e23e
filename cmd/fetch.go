package cmd

import (
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch today's gold prices once and append new rows to the history file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		log := logger.With("package", "cmd")

		updatePriceUC := newUpdatePricesUseCase()

		count, err := updatePriceUC.UpdatePrices(cmd.Context())
		if err != nil {
			return err
		}

		if count == 0 {
			log.Info("done, no new data to save")
		} else {
			log.Info("done, prices saved", "count", count)
		}
		return nil
	},
}

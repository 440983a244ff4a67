package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/campaign-health-api/internal/app"
	"github.com/vfg2006/campaign-health-api/pkg/utils"
)

var syncCmd = &cobra.Command{
	Use:   "sync-data",
	Short: "Sincroniza as métricas de ontem de todas as contas ativas",
	RunE: func(cmd *cobra.Command, args []string) error {
		accountID, _ := cmd.Flags().GetString("account")

		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			if accountID != "" {
				report, err := c.SyncJob.SyncAccount(ctx, accountID)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(report))
				return nil
			}

			results, err := c.SyncJob.RunNow(ctx)
			if err != nil {
				return err
			}
			return printResults(cmd, results)
		})
	},
}

func init() {
	syncCmd.Flags().String("account", "", "ID interno de uma única conta a sincronizar")
}

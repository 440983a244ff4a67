package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/vfg2006/campaign-health-api/internal/app"
)

var analysisCmd = &cobra.Command{
	Use:   "run-analysis",
	Short: "Analisa as campanhas e criativos sincronizados de todas as contas ativas",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			results, err := c.AnalysisJob.RunNow(ctx)
			if err != nil {
				return err
			}
			return printResults(cmd, results)
		})
	},
}

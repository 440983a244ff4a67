package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/campaign-health-api/internal/app"
	"github.com/vfg2006/campaign-health-api/internal/config"
	"github.com/vfg2006/campaign-health-api/internal/domain"
	"github.com/vfg2006/campaign-health-api/pkg/utils"
)

var rootCmd = &cobra.Command{
	Use:          "campaign-health-jobs",
	Short:        "Executa os lotes de sincronização e análise fora do servidor HTTP",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(analysisCmd)
	rootCmd.AddCommand(tokenCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	app.ConfigureLogger(cfg.App.LogLevel)
	return cfg, nil
}

// withContainer monta as dependências, executa fn e libera tudo ao final
func withContainer(cmd *cobra.Command, fn func(ctx context.Context, c *app.Container) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	container, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		container.Close(closeCtx)
	}()

	return fn(ctx, container)
}

func printResults(cmd *cobra.Command, results []domain.AccountRunResult) error {
	if results == nil {
		results = []domain.AccountRunResult{}
	}

	fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(results))

	if failed := countErrors(results); failed > 0 {
		return fmt.Errorf("%d conta(s) com falha", failed)
	}
	return nil
}

func countErrors(results []domain.AccountRunResult) int {
	total := 0
	for _, result := range results {
		if result.Status == domain.RunStatusError {
			total++
		}
	}
	return total
}

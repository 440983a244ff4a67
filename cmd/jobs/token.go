package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/campaign-health-api/internal/usecases/authenticating"
)

var tokenCmd = &cobra.Command{
	Use:   "issue-token",
	Short: "Emite um token de sessão para um operador",
	RunE: func(cmd *cobra.Command, args []string) error {
		operatorID, _ := cmd.Flags().GetString("operator")
		accountIDs, _ := cmd.Flags().GetStringSlice("accounts")

		if operatorID == "" {
			return errors.New("--operator é obrigatório")
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		token, err := authenticating.NewService(cfg).GenerateToken(operatorID, accountIDs)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("operator", "", "ID do operador")
	tokenCmd.Flags().StringSlice("accounts", nil, "IDs externos das contas permitidas (vazio libera todas)")
}

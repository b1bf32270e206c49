package cmd

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/amirphl/futures-trader/internal/exchange"
)

func init() {
	statusCmd.Flags().String("asset", "USDT", "the asset to show the balance for")
	rootCmd.AddCommand(statusCmd)
}

// go run ./cmd status --asset=USDT
var statusCmd = &cobra.Command{
	Use:          "status [--asset ASSET]",
	Short:        "Check API connectivity and show the account balance",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		asset, err := cmd.Flags().GetString("asset")
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		ex := exchange.NewBinanceFutures(cfg.APIKey, cfg.APISecret, viper.GetBool("testnet"))
		if err := ex.Ping(ctx); err != nil {
			return err
		}

		balances, err := ex.QueryBalances(ctx)
		if err != nil {
			return err
		}

		b, ok := balances[asset]
		if !ok {
			log.Warnf("asset %s not found in account balance", asset)
			return nil
		}

		log.Infof("account balance for %s: %s (available %s)", b.Asset, b.Balance, b.Available)
		fmt.Printf("%s balance: %s (available %s)\n", b.Asset, b.Balance, b.Available)
		return nil
	},
}

// Package cmd
package cmd

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/amirphl/futures-trader/internal/config"
	"github.com/amirphl/futures-trader/internal/utils"
)

var rootCmd = &cobra.Command{
	Use:   "futures-trader",
	Short: "futures trading bot",
	Long:  "A command-line bot for the Binance USDⓈ-M futures testnet",

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dotenvFile := viper.GetString("dotenv")
		if _, err := os.Stat(dotenvFile); err == nil {
			if err := godotenv.Load(dotenvFile); err != nil {
				return errors.Wrap(err, "loading dotenv file")
			}
		}

		cfg, err := config.Load(viper.GetString("config"))
		if err != nil {
			return err
		}

		utils.SetupLogging(cfg.LogFile, viper.GetBool("debug"))
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "debug flag")
	rootCmd.PersistentFlags().Bool("testnet", true, "use the futures testnet instead of production")
	rootCmd.PersistentFlags().String("dotenv", ".env", "dotenv file with API credentials")
	rootCmd.PersistentFlags().String("config", "", "yaml config file")
}

// loadConfig re-reads the config after the dotenv file has been loaded into
// the environment by the root command.
func loadConfig() (config.Config, error) {
	return config.Load(viper.GetString("config"))
}

func Execute() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Enable environment variable binding, the env vars are not overloaded yet.
	viper.AutomaticEnv()

	// Once the flags are defined, we can bind config keys with flags.
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		log.WithError(err).Errorf("failed to bind persistent flags. please check the flag settings.")
	}

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Fatalf("cannot execute command")
	}
}

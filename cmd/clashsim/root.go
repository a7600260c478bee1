package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mbarros/particle-clash/internal/config"
	"github.com/mbarros/particle-clash/internal/constants"
)

var rootCmd = &cobra.Command{
	Use:   "clashsim",
	Short: "Offline battle resolver and simulator",
	Long: `clashsim resolves creature battles from the command line using the
same engine as the server: payoff matrix, equilibrium search and
decision-tree selection, all deterministic for identical inputs.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to clash_config.json (defaults to built-in strategies)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindEnv("config", constants.EnvConfigPath)
}

// loadConfig resolves the strategy configuration for a CLI run. Without a
// config file the built-in strategy set applies, so the simulator works out
// of the box.
func loadConfig() (*config.LoadedConfig, error) {
	path := viper.GetString("config")
	if path == "" {
		if _, err := os.Stat(constants.DefaultConfigPath); err == nil {
			path = constants.DefaultConfigPath
		} else {
			return config.Default(), nil
		}
	}
	return config.LoadConfig(path)
}

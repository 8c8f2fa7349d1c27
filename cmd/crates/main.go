package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cratehub/crates-client/cmd/crates/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "crates",
	Short: "crates.io registry CLI",
	Long: `A command-line interface for looking up crate metadata on crates.io.

Fetches the full metadata record for a crate and shows its versions,
categories, keywords, and per-version feature maps.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.crates/config.yml)")
	rootCmd.PersistentFlags().StringP("user-agent", "u", "", "identification string sent to the registry (required by crates.io policy)")
	rootCmd.PersistentFlags().String("registry", "", "registry endpoint URL (default is crates.io)")
	rootCmd.PersistentFlags().String("output", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("user-agent", rootCmd.PersistentFlags().Lookup("user-agent"))
	_ = viper.BindPFlag("registry", rootCmd.PersistentFlags().Lookup("registry"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewInfoCommand())
	rootCmd.AddCommand(commands.NewVersionsCommand())
	rootCmd.AddCommand(commands.NewFeaturesCommand())
	rootCmd.AddCommand(commands.NewLatestCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(filepath.Join(home, ".crates"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("CRATES")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// Package commands implements the CLI commands for eulerfetch.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "eulerfetch",
	Short: "Download Project Euler challenges as Markdown",
	Long: `Eulerfetch downloads Project Euler challenge descriptions and rewrites
them into Markdown suitable for committing to a repository: one directory per
problem holding a README.md plus any referenced resource files.

Examples:
  # Fetch a single problem into ./018/
  eulerfetch fetch 18

  # Fetch several problems concurrently into a target directory
  eulerfetch fetch 1 2 3 -o challenges/ -c 3

  # Show what would be downloaded without writing anything
  eulerfetch fetch 18 --dry-run --format yaml`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.eulerfetch.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".eulerfetch")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("EULERFETCH")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

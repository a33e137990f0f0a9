// Package cli implements the actiontracker command line.
package cli

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/samdwyer/actiontracker/internal/config"
)

var (
	cfgFile   string
	appConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:   "actiontracker",
	Short: "Track conditions and the three-action economy during combat",
	Long: `actiontracker keeps a ledger of combat conditions and the action, reaction
and bonus reaction pips of every combatant. Conditions that cost actions lock
pips at the start of each turn; auto-decrementing conditions tick down at the
end of the turn.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return appConfig.ApplyOverrides(viper.GetViper())
	},
}

// Execute runs the root command with cfg as the base configuration.
func Execute(cfg config.Config) error {
	appConfig = cfg
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.actiontracker.yaml)")
	rootCmd.PersistentFlags().Bool("strict", false, "fail instead of repairing condition locks applied without a turn reset")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log notifications and turn decisions to stderr")
	viper.BindPFlag(config.KeyStrictOrdering, rootCmd.PersistentFlags().Lookup("strict"))
	viper.BindPFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in the config file if one is set or present in $HOME.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".actiontracker")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Printf("Warning: config file not read: %v", err)
		}
	}
}

// newLogger returns a stderr logger when verbose output is on.
func newLogger(cfg config.Config) *log.Logger {
	if !cfg.Verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "actiontracker: ", log.Ltime)
}

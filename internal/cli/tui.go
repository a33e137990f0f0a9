package cli

import (
	"github.com/spf13/cobra"

	"github.com/samdwyer/actiontracker/internal/game"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive pip tracker",
	Long: `Opens the terminal tracker for an encounter.
Keys: n next turn, 1-3 toggle action, r reaction, b bonus reaction, e end, q quit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		encounter, _ := cmd.Flags().GetString("encounter")
		def, err := resolveEncounter(encounter)
		if err != nil {
			return err
		}
		app, err := NewApp(appConfig, def, newLogger(appConfig), nil)
		if err != nil {
			return err
		}

		g, err := game.New(game.Config{RefreshDelay: appConfig.RefreshDelay}, app.Deps())
		if err != nil {
			return err
		}
		return g.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().StringP("encounter", "e", "skirmish", "bundled encounter name or path to an encounter YAML file")
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/actiontracker/internal/config"
	"github.com/samdwyer/actiontracker/internal/notify"
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run an encounter from a script",
	Long: `Runs an encounter line by line from a script file, or stdin when no file is given.
Turn lines:
	start | next | end | order
Macro lines:
	apply frightened 2 to: valeros
	remove stunned from: ezren
	adjust frightened -1 on: goblin-boss
	tier slowed of: ezren
	conditions of: ezren
	spend actions 2 by: cb-valeros
	spend reaction by: cb-valeros
	reset cb-valeros
	state cb-ezren`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		encounter, _ := cmd.Flags().GetString("encounter")

		in := cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		return runScript(cmd.Context(), appConfig, encounter, in, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("encounter", "e", "skirmish", "bundled encounter name or path to an encounter YAML file")
}

// runScript executes a script against a fresh encounter, echoing condition
// notifications between results.
func runScript(ctx context.Context, cfg config.Config, encounter string, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	def, err := resolveEncounter(encounter)
	if err != nil {
		return err
	}

	echo := notify.SinkFunc(func(evt notify.Event) {
		fmt.Fprintf(out, "  * %s\n", evt.Message())
	})
	app, err := NewApp(cfg, def, newLogger(cfg), echo)
	if err != nil {
		return err
	}
	return NewSession(app, out).Run(ctx, in)
}

package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/samdwyer/actiontracker/data"
	"github.com/samdwyer/actiontracker/internal/gamedata"
)

var conditionsCmd = &cobra.Command{
	Use:   "conditions",
	Short: "List the condition catalog",
	Long:  `Prints every known condition with its kind, maximum tier, action loss class and whether it ticks down at end of turn.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := gamedata.LoadConditionRegistry()
		if err != nil {
			return err
		}
		return writeConditions(cmd.OutOrStdout(), catalog)
	},
}

var encountersCmd = &cobra.Command{
	Use:   "encounters",
	Short: "List the bundled encounters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeEncounters(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(conditionsCmd)
	rootCmd.AddCommand(encountersCmd)
}

func writeConditions(w io.Writer, catalog *gamedata.ConditionRegistry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tNAME\tKIND\tMAX\tLOSS\tAUTO")
	for _, def := range catalog.All() {
		auto := ""
		if def.AutoDecrement {
			auto = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n", def.Key, def.Name, def.Kind, def.MaxTier, def.ActionLoss, auto)
	}
	return tw.Flush()
}

func writeEncounters(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTITLE\tCOMBATANTS")
	for _, name := range data.Encounters() {
		def, err := data.LoadEncounter(name)
		if err != nil {
			return fmt.Errorf("encounter %s: %w", name, err)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\n", name, def.Name, len(def.Combatants))
	}
	return tw.Flush()
}

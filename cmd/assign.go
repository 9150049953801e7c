package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"coachdash/internal/engine"
)

var (
	assignCycle  int
	assignWeek   int
	assignScheme string
	assignClear  bool
)

var assignCmd = &cobra.Command{
	Use:   "assign [client]",
	Short: "Override a client's rep scheme for one week, or clear the override",
	Long: `Override a client's rep scheme for one week of a cycle.

Schemes are named by the top set: "5", "3" or "1". Use "N/A" to skip
the week entirely, or --clear to fall back to the week's global scheme.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := newEditor()

		client, err := resolveClient(editor, args[0])
		if err != nil {
			return err
		}

		scheme := assignScheme
		if assignClear {
			scheme = ""
		} else if scheme == "" {
			return fmt.Errorf("either --scheme or --clear is required")
		}

		weekKey := engine.WeekKey(assignWeek)
		updated, err := editor.UpdateWeekAssignment(client.ID, assignCycle, weekKey, scheme)
		if err != nil {
			return err
		}

		if stored, ok := updated.WeekAssignmentsByCycle[assignCycle][weekKey]; ok {
			fmt.Printf("✅ '%s' now runs scheme %s on %s of cycle %d\n", client.Name, stored, weekKey, assignCycle)
		} else {
			fmt.Printf("✅ '%s' follows the global scheme on %s of cycle %d\n", client.Name, weekKey, assignCycle)
		}
		return nil
	},
}

func init() {
	assignCmd.Flags().IntVarP(&assignCycle, "cycle", "c", 1, "Cycle number")
	assignCmd.Flags().IntVarP(&assignWeek, "week", "w", 1, "Week number within the cycle")
	assignCmd.Flags().StringVarP(&assignScheme, "scheme", "s", "", `Rep scheme ("5", "3", "1" or "N/A")`)
	assignCmd.Flags().BoolVar(&assignClear, "clear", false, "Remove the override")
	rootCmd.AddCommand(assignCmd)
}

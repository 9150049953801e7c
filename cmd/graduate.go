package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var graduateFromCycle int

var graduateCmd = &cobra.Command{
	Use:   "graduate",
	Short: "Advance the whole team to the next cycle with bumped training maxes",
	Long: `Advance every client to the cycle after the given one. Squat and
deadlift training maxes go up by 10, bench and press by 5, and the new
cycle gets a fresh 4-week template derived from the source cycle.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := newEditor()

		_, newCycle, err := editor.GraduateTeam(graduateFromCycle)
		if err != nil {
			return err
		}

		fmt.Printf("✅ Team graduated to cycle %d\n", newCycle)
		return nil
	},
}

func init() {
	graduateCmd.Flags().IntVarP(&graduateFromCycle, "cycle", "c", 1, "Cycle to graduate from")
	rootCmd.AddCommand(graduateCmd)
}

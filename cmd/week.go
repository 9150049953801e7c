package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"coachdash/internal/engine"
)

var (
	weekCycle  int
	weekNumber int
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Edit a cycle's week structure",
}

var weekDuplicateCmd = &cobra.Command{
	Use:   "duplicate",
	Short: "Insert a copy of a week after itself and renumber the rest",
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := newEditor()

		settings, err := editor.DuplicateWeek(weekCycle, engine.WeekKey(weekNumber))
		if err != nil {
			return err
		}

		fmt.Printf("✅ Duplicated week %d; cycle %d now has %d weeks\n",
			weekNumber, weekCycle, len(settings.CycleSettingsByCycle[weekCycle]))
		return nil
	},
}

var weekDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove a week and renumber the rest (the last week cannot be removed)",
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := newEditor()

		settings, err := editor.DeleteWeek(weekCycle, engine.WeekKey(weekNumber))
		if err != nil {
			return err
		}

		fmt.Printf("✅ Deleted week %d; cycle %d now has %d weeks\n",
			weekNumber, weekCycle, len(settings.CycleSettingsByCycle[weekCycle]))
		return nil
	},
}

func init() {
	weekCmd.PersistentFlags().IntVarP(&weekCycle, "cycle", "c", 1, "Cycle number")
	weekCmd.PersistentFlags().IntVarP(&weekNumber, "week", "w", 1, "Week number within the cycle")
	weekCmd.AddCommand(weekDuplicateCmd)
	weekCmd.AddCommand(weekDeleteCmd)
	rootCmd.AddCommand(weekCmd)
}

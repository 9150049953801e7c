package cmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"coachdash/internal/engine"
)

var (
	cycleNumber  int
	cycleNewName string
)

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Inspect and edit training cycles",
}

var cycleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every cycle with its name and week count",
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := newEditor()

		settings, err := editor.LoadSettings()
		if err != nil {
			return err
		}

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		fmt.Println(boldGreen("Cycles:"))

		var numbers []int
		for number := range settings.CycleSettingsByCycle {
			numbers = append(numbers, number)
		}
		sort.Ints(numbers)
		for _, number := range numbers {
			weeks := settings.CycleSettingsByCycle[number]
			schemes := ""
			for i, weekKey := range engine.SortedWeekKeys(weeks) {
				if i > 0 {
					schemes += "/"
				}
				schemes += engine.RepScheme(weeks[weekKey].Reps.Workset3)
			}
			fmt.Printf("  %d. %-20s %d weeks (%s)\n", number, cycleName(settings, number), len(weeks), schemes)
		}
		return nil
	},
}

var cycleDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a cycle; clients on it move back to cycle 1",
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := newEditor()

		if _, err := editor.DeleteCycle(cycleNumber); err != nil {
			return err
		}
		fmt.Printf("✅ Deleted cycle %d\n", cycleNumber)
		return nil
	},
}

var cycleRenameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename a cycle",
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := newEditor()

		if cycleNewName == "" {
			return fmt.Errorf("a new name is required")
		}
		if _, err := editor.RenameCycle(cycleNumber, cycleNewName); err != nil {
			return err
		}
		fmt.Printf("✅ Renamed cycle %d to '%s'\n", cycleNumber, cycleNewName)
		return nil
	},
}

func init() {
	cycleCmd.PersistentFlags().IntVarP(&cycleNumber, "cycle", "c", 1, "Cycle number")
	cycleRenameCmd.Flags().StringVarP(&cycleNewName, "name", "n", "", "New cycle name")
	cycleCmd.AddCommand(cycleListCmd)
	cycleCmd.AddCommand(cycleDeleteCmd)
	cycleCmd.AddCommand(cycleRenameCmd)
	rootCmd.AddCommand(cycleCmd)
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"coachdash/internal/engine"
	"coachdash/internal/models"
)

var rosterShowIDs bool

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Display the client roster with current training maxes",
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := newEditor()

		clients, err := editor.Roster()
		if err != nil {
			return err
		}
		if len(clients) == 0 {
			fmt.Println("No clients on the roster. Add one with 'coachdash add-client'.")
			return nil
		}

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		fmt.Println(boldGreen("Roster:"))
		fmt.Printf("%-20s | %-5s | %-8s | %-8s | %-8s | %-8s\n",
			"Name", "Cycle", "Squat", "Bench", "Deadlift", "Press")
		fmt.Println(strings.Repeat("─", 72))
		for _, client := range clients {
			fmt.Printf("%-20s | %-5d | %-8.1f | %-8.1f | %-8.1f | %-8.1f\n",
				cyan(client.Name),
				client.Cycle(),
				engine.TrainingMaxForCycle(client, models.LiftSquat, client.Cycle()),
				engine.TrainingMaxForCycle(client, models.LiftBench, client.Cycle()),
				engine.TrainingMaxForCycle(client, models.LiftDeadlift, client.Cycle()),
				engine.TrainingMaxForCycle(client, models.LiftPress, client.Cycle()),
			)
			if rosterShowIDs {
				fmt.Printf("   ID: %s\n", client.ID)
			}
		}
		return nil
	},
}

func init() {
	rosterCmd.Flags().BoolVarP(&rosterShowIDs, "ids", "i", false, "Show client IDs")
	rootCmd.AddCommand(rosterCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"coachdash/internal/models"
)

var resetTMCycle int

var resetTMCmd = &cobra.Command{
	Use:   "reset-tm [client]",
	Short: "Re-derive a stalled client's training maxes from their recent records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := newEditor()

		client, err := resolveClient(editor, args[0])
		if err != nil {
			return err
		}

		cycleNumber := resetTMCycle
		if cycleNumber == 0 {
			cycleNumber = client.Cycle()
		}
		updated, err := editor.ResetTrainingMax(client.ID, cycleNumber)
		if err != nil {
			return err
		}

		fmt.Printf("✅ Reset training maxes for '%s' (cycle %d):\n", updated.Name, cycleNumber)
		for _, lift := range models.Lifts {
			fmt.Printf("   %-10s %.1f\n", lift, updated.TrainingMaxesByCycle[cycleNumber][lift])
		}
		return nil
	},
}

func init() {
	resetTMCmd.Flags().IntVarP(&resetTMCycle, "cycle", "c", 0, "Cycle to reset (defaults to the client's current cycle)")
	rootCmd.AddCommand(resetTMCmd)
}

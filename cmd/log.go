package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"coachdash/internal/models"
)

var (
	logLift   string
	logWeight float64
	logReps   int
)

var logCmd = &cobra.Command{
	Use:   "log [client]",
	Short: "Log a performance record (weight × reps) for a client's lift",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := newEditor()

		client, err := resolveClient(editor, args[0])
		if err != nil {
			return err
		}
		lift, ok := models.ParseLift(logLift)
		if !ok {
			return fmt.Errorf("unknown lift %q", logLift)
		}

		record, err := editor.LogRecord(client.ID, lift, logWeight, logReps)
		if err != nil {
			return err
		}

		fmt.Printf("✅ Logged %s %.1f × %d for '%s' (estimated 1RM %.1f)\n",
			lift, record.Weight, record.Reps, client.Name, record.Estimated1RM)
		return nil
	},
}

func init() {
	logCmd.Flags().StringVarP(&logLift, "lift", "l", "", "Lift name (Squat, Bench, Deadlift, Press)")
	logCmd.Flags().Float64VarP(&logWeight, "weight", "w", 0, "Weight lifted")
	logCmd.Flags().IntVarP(&logReps, "reps", "r", 0, "Reps performed")
	logCmd.MarkFlagRequired("lift")
	logCmd.MarkFlagRequired("weight")
	logCmd.MarkFlagRequired("reps")
	rootCmd.AddCommand(logCmd)
}

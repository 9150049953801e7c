package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"coachdash/internal/engine"
	"coachdash/internal/models"
)

var (
	logSetCycle  int
	logSetWeek   int
	logSetLift   string
	logSetIndex  int
	logSetWeight float64
	logSetReps   int
)

var logSetCmd = &cobra.Command{
	Use:   "log-set [client]",
	Short: "Record actual performance against one prescribed set slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := newEditor()

		client, err := resolveClient(editor, args[0])
		if err != nil {
			return err
		}
		lift, ok := models.ParseLift(logSetLift)
		if !ok {
			return fmt.Errorf("unknown lift %q", logSetLift)
		}
		if logSetIndex < 1 || logSetIndex > 5 {
			return fmt.Errorf("set index must be between 1 and 5")
		}

		weekKey := engine.WeekKey(logSetWeek)
		entries := models.LoggedSetMap{
			strconv.Itoa(logSetIndex - 1): {
				Weight:    logSetWeight,
				Reps:      logSetReps,
				UpdatedAt: editor.Now().UTC(),
			},
		}
		if _, err := editor.UpsertLoggedSets(client.ID, logSetCycle, weekKey, lift, entries); err != nil {
			return err
		}

		fmt.Printf("✅ Logged set %d of %s for '%s': %.1f × %d\n",
			logSetIndex, lift, client.Name, logSetWeight, logSetReps)
		return nil
	},
}

func init() {
	logSetCmd.Flags().IntVarP(&logSetCycle, "cycle", "c", 1, "Cycle number")
	logSetCmd.Flags().IntVarP(&logSetWeek, "week", "w", 1, "Week number within the cycle")
	logSetCmd.Flags().StringVarP(&logSetLift, "lift", "l", "", "Lift name (Squat, Bench, Deadlift, Press)")
	logSetCmd.Flags().IntVarP(&logSetIndex, "set", "s", 0, "Prescribed set number (1-5)")
	logSetCmd.Flags().Float64Var(&logSetWeight, "weight", 0, "Weight performed")
	logSetCmd.Flags().IntVarP(&logSetReps, "reps", "r", 0, "Reps performed")
	logSetCmd.MarkFlagRequired("lift")
	logSetCmd.MarkFlagRequired("set")
	logSetCmd.MarkFlagRequired("weight")
	logSetCmd.MarkFlagRequired("reps")
	rootCmd.AddCommand(logSetCmd)
}

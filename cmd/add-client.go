package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"coachdash/internal/models"
)

var (
	newClientSquat    float64
	newClientBench    float64
	newClientDeadlift float64
	newClientPress    float64
)

var addClientCmd = &cobra.Command{
	Use:   "add-client [name]",
	Short: "Add a client to the roster with their tested one-rep maxes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := newEditor()

		client, err := editor.AddClient(args[0], models.TrainingMaxSet{
			models.LiftSquat:    newClientSquat,
			models.LiftBench:    newClientBench,
			models.LiftDeadlift: newClientDeadlift,
			models.LiftPress:    newClientPress,
		})
		if err != nil {
			return err
		}

		fmt.Printf("✅ Added client '%s'\n", client.Name)
		for _, lift := range models.Lifts {
			fmt.Printf("   %-15s 1RM %.1f → TM %.1f\n", lift, client.OneRepMaxes[lift], client.TrainingMaxes[lift])
		}
		return nil
	},
}

func init() {
	addClientCmd.Flags().Float64VarP(&newClientSquat, "squat", "s", 0, "Tested squat one-rep max")
	addClientCmd.Flags().Float64VarP(&newClientBench, "bench", "b", 0, "Tested bench press one-rep max")
	addClientCmd.Flags().Float64VarP(&newClientDeadlift, "deadlift", "d", 0, "Tested deadlift one-rep max")
	addClientCmd.Flags().Float64VarP(&newClientPress, "press", "p", 0, "Tested overhead press one-rep max")
	addClientCmd.MarkFlagRequired("squat")
	addClientCmd.MarkFlagRequired("bench")
	addClientCmd.MarkFlagRequired("deadlift")
	addClientCmd.MarkFlagRequired("press")
	rootCmd.AddCommand(addClientCmd)
}

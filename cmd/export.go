package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"coachdash/internal/engine"
	"coachdash/internal/models"
)

var (
	exportCycle  int
	exportWeek   int
	exportLift   string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the roster's prescribed sets for one lift and week as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := newEditor()

		clients, err := editor.Roster()
		if err != nil {
			return err
		}
		settings, err := editor.LoadSettings()
		if err != nil {
			return err
		}
		records, err := editor.Records.ListRecords()
		if err != nil {
			return fmt.Errorf("Failed to list records: %w", err)
		}

		cycleSettings, ok := settings.CycleSettingsByCycle[exportCycle]
		if !ok {
			return fmt.Errorf("cycle %d does not exist", exportCycle)
		}
		lift, ok := models.ParseLift(exportLift)
		if !ok {
			return fmt.Errorf("unknown lift %q", exportLift)
		}
		weekKey := engine.WeekKey(exportWeek)

		fileName := exportOutput
		if fileName == "" {
			weekName := strings.ReplaceAll(engine.WeekName(exportWeek), " ", "_")
			fileName = fmt.Sprintf("531_Workout_%s_%s.csv", lift, weekName)
		}
		file, err := os.Create(fileName)
		if err != nil {
			return fmt.Errorf("Failed to create %s: %w", fileName, err)
		}
		defer file.Close()

		writer := csv.NewWriter(file)
		if err := writer.Write([]string{"Client", "Set", "Weight (lbs)", "Target Reps"}); err != nil {
			return fmt.Errorf("Failed to write CSV header: %w", err)
		}

		now := time.Now()
		rows := 0
		for _, client := range clients {
			if client.Cycle() != exportCycle {
				continue
			}
			workout := engine.Resolve(client, lift, exportCycle, weekKey, cycleSettings, records, now)
			for _, set := range workout.Sets {
				row := []string{
					client.Name,
					set.Label,
					strconv.FormatFloat(set.Weight, 'f', -1, 64),
					set.Reps,
				}
				if err := writer.Write(row); err != nil {
					return fmt.Errorf("Failed to write CSV row: %w", err)
				}
				rows++
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return fmt.Errorf("Failed to flush CSV: %w", err)
		}

		fmt.Printf("✅ Exported %d sets to %s\n", rows, fileName)
		return nil
	},
}

func init() {
	exportCmd.Flags().IntVarP(&exportCycle, "cycle", "c", 1, "Cycle number")
	exportCmd.Flags().IntVarP(&exportWeek, "week", "w", 1, "Week number within the cycle")
	exportCmd.Flags().StringVarP(&exportLift, "lift", "l", "", "Lift name (Squat, Bench, Deadlift, Press)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file name")
	exportCmd.MarkFlagRequired("lift")
	rootCmd.AddCommand(exportCmd)
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"coachdash/internal/engine"
	"coachdash/internal/models"
)

var (
	workoutCycle int
	workoutWeek  int
	workoutLift  string
)

var workoutCmd = &cobra.Command{
	Use:   "workout [client]",
	Short: "Display a client's prescribed sets for a week, with plates and PR target",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := newEditor()

		client, err := resolveClient(editor, args[0])
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

		cycleNumber := workoutCycle
		if cycleNumber == 0 {
			cycleNumber = client.Cycle()
		}
		cycleSettings, ok := settings.CycleSettingsByCycle[cycleNumber]
		if !ok {
			return fmt.Errorf("cycle %d does not exist", cycleNumber)
		}
		weekKey := engine.WeekKey(workoutWeek)

		lifts := models.Lifts
		if workoutLift != "" {
			lift, ok := models.ParseLift(workoutLift)
			if !ok {
				return fmt.Errorf("unknown lift %q", workoutLift)
			}
			lifts = []models.Lift{lift}
		}

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		magenta := color.New(color.FgMagenta).SprintFunc()

		fmt.Printf("%s %s — %s, %s\n", boldGreen("Workout for"), client.Name,
			cycleName(settings, cycleNumber), engine.WeekName(workoutWeek))

		for _, lift := range lifts {
			workout := engine.Resolve(client, lift, cycleNumber, weekKey, cycleSettings, records, time.Now())

			fmt.Printf("\n%s", boldCyan(string(lift)))
			if workout.SessionMode != models.ModeNormal {
				fmt.Printf(" %s", magenta("["+string(workout.SessionMode)+"]"))
			}
			if workout.EffectiveWeekKey != weekKey {
				fmt.Printf(" %s", yellow("(from "+workout.EffectiveWeekKey+")"))
			}
			fmt.Println()

			if len(workout.Sets) == 0 {
				fmt.Println("  No sets this week.")
				continue
			}

			logged := client.LoggedSetInputsByCycle[cycleNumber][workout.EffectiveWeekKey][lift]

			fmt.Printf("  %-12s | %-8s | %-5s | %-16s | %s\n", "Set", "Weight", "Reps", "Plates/side", "Logged")
			fmt.Println("  " + strings.Repeat("─", 62))
			for i, set := range workout.Sets {
				actual := ""
				if entry, ok := logged[strconv.Itoa(i)]; ok {
					actual = fmt.Sprintf("%.1f × %d", entry.Weight, entry.Reps)
				}
				fmt.Printf("  %-12s | %-8.1f | %-5s | %-16s | %s\n",
					set.Label, set.Weight, set.Reps, set.Plates, actual)
			}
			if workout.PRTarget != nil {
				fmt.Printf("  %s %d reps beats last month's best (e1RM %.1f)\n",
					yellow("PR target:"), workout.PRTarget.Reps, workout.PRTarget.LastMonth1RM)
			}

			if template, ok := cycleSettings[workout.EffectiveWeekKey]; ok {
				visible := template.AccessoryVisibility[lift]
				var accessories []string
				for _, name := range template.Accessories[lift] {
					if shown, ok := visible[name]; ok && !shown {
						continue
					}
					accessories = append(accessories, name)
				}
				if len(accessories) > 0 {
					fmt.Printf("  Accessories: %s\n", strings.Join(accessories, ", "))
				}
			}
		}

		return nil
	},
}

func cycleName(settings models.AppSettings, cycleNumber int) string {
	if name, ok := settings.CycleNames[cycleNumber]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("Cycle %d", cycleNumber)
}

func init() {
	workoutCmd.Flags().IntVarP(&workoutCycle, "cycle", "c", 0, "Cycle number (defaults to the client's current cycle)")
	workoutCmd.Flags().IntVarP(&workoutWeek, "week", "w", 1, "Week number within the cycle")
	workoutCmd.Flags().StringVarP(&workoutLift, "lift", "l", "", "Limit to one lift (Squat, Bench, Deadlift, Press)")
	rootCmd.AddCommand(workoutCmd)
}

package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"coachdash/internal/engine"
	"coachdash/internal/models"
)

var (
	scheduleCycle     int
	scheduleStartDate string
	scheduleDay1      string
	scheduleDay2      string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Display a cycle's calendar: training dates and lift day assignments per week",
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := newEditor()

		settings, err := editor.LoadSettings()
		if err != nil {
			return err
		}
		cycleSettings, ok := settings.CycleSettingsByCycle[scheduleCycle]
		if !ok {
			return fmt.Errorf("cycle %d does not exist", scheduleCycle)
		}

		var schedule *models.ScheduleSettings
		if stored, ok := settings.CycleSchedulesByCycle[scheduleCycle]; ok {
			schedule = &stored
		}

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		fmt.Printf("%s %s\n", boldGreen("Schedule for"), cycleName(settings, scheduleCycle))
		effective := engine.EffectiveSchedule(schedule)
		day1Lifts := engine.LiftsForDaySlot(schedule, models.Day1)
		day2Lifts := engine.LiftsForDaySlot(schedule, models.Day2)
		fmt.Printf("  Day 1 (%s): %s\n", effective.Day1Weekday, liftList(day1Lifts))
		fmt.Printf("  Day 2 (%s): %s\n", effective.Day2Weekday, liftList(day2Lifts))
		if effective.CycleStartDate == "" {
			fmt.Println("  No start date configured; only weekdays shown.")
		}
		fmt.Println()

		for _, weekKey := range engine.SortedWeekKeys(cycleSettings) {
			week := engine.ResolveWeekSchedule(schedule, weekKey)
			template := cycleSettings[weekKey]
			if week.IsConfigured {
				fmt.Printf("  %s (%s): %s %s, %s %s\n",
					cyan(template.Name), engine.RepScheme(template.Reps.Workset3),
					week.Day1Weekday, week.Day1Date,
					week.Day2Weekday, week.Day2Date)
			} else {
				fmt.Printf("  %s (%s): %s / %s\n",
					cyan(template.Name), engine.RepScheme(template.Reps.Workset3),
					week.Day1Weekday, week.Day2Weekday)
			}
		}

		return nil
	},
}

func liftList(lifts []models.Lift) string {
	out := ""
	for i, lift := range lifts {
		if i > 0 {
			out += ", "
		}
		out += string(lift)
	}
	if out == "" {
		out = "none"
	}
	return out
}

var scheduleSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Configure a cycle's start date and training weekdays",
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := newEditor()

		settings, err := editor.LoadSettings()
		if err != nil {
			return err
		}
		schedule := settings.CycleSchedulesByCycle[scheduleCycle]
		if scheduleStartDate != "" {
			schedule.CycleStartDate = scheduleStartDate
		}
		if scheduleDay1 != "" {
			schedule.Day1Weekday = models.Weekday(scheduleDay1)
		}
		if scheduleDay2 != "" {
			schedule.Day2Weekday = models.Weekday(scheduleDay2)
		}

		if _, err := editor.SetCycleSchedule(scheduleCycle, schedule); err != nil {
			return err
		}
		fmt.Printf("✅ Updated schedule for cycle %d\n", scheduleCycle)
		return nil
	},
}

func init() {
	scheduleCmd.PersistentFlags().IntVarP(&scheduleCycle, "cycle", "c", 1, "Cycle number")
	scheduleSetCmd.Flags().StringVarP(&scheduleStartDate, "start", "s", "", "Cycle start date (YYYY-MM-DD)")
	scheduleSetCmd.Flags().StringVar(&scheduleDay1, "day1", "", "Weekday for training day 1")
	scheduleSetCmd.Flags().StringVar(&scheduleDay2, "day2", "", "Weekday for training day 2")
	scheduleCmd.AddCommand(scheduleSetCmd)
	rootCmd.AddCommand(scheduleCmd)
}

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"coachdash/internal/models"
)

var (
	historyLift  string
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history [client]",
	Short: "Display a client's performance history, optionally filtered by lift",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := newEditor()

		client, err := resolveClient(editor, args[0])
		if err != nil {
			return err
		}
		records, err := editor.Records.ListRecords()
		if err != nil {
			return fmt.Errorf("Failed to list records: %w", err)
		}

		var filtered []models.HistoricalRecord
		for _, record := range records {
			if record.ClientID != client.ID {
				continue
			}
			if historyLift != "" && !strings.EqualFold(string(record.Lift), historyLift) {
				continue
			}
			filtered = append(filtered, record)
		}
		sort.Slice(filtered, func(i, j int) bool {
			return filtered[i].Date.After(filtered[j].Date)
		})
		if historyLimit > 0 && len(filtered) > historyLimit {
			filtered = filtered[:historyLimit]
		}

		boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
		magenta := color.New(color.FgMagenta).SprintFunc()

		fmt.Printf("%s %s:\n", boldGreen("History for"), client.Name)
		if len(filtered) == 0 {
			fmt.Println(magenta("  No records found."))
			return nil
		}

		fmt.Printf("  %-12s | %-10s | %-8s | %-5s | %s\n", "Date", "Lift", "Weight", "Reps", "Est. 1RM")
		fmt.Println("  " + strings.Repeat("─", 52))
		for _, record := range filtered {
			fmt.Printf("  %-12s | %-10s | %-8.1f | %-5d | %.1f\n",
				record.Date.Format("2006-01-02"), record.Lift, record.Weight, record.Reps, record.Estimated1RM)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVarP(&historyLift, "lift", "l", "", "Filter by lift name")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Limit the number of records shown")
	rootCmd.AddCommand(historyCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"coachdash/internal/engine"
	"coachdash/internal/models"
)

var (
	modeCycle    int
	modeWeek     int
	modeName     string
	modeFlowWeek int
)

var modeCmd = &cobra.Command{
	Use:   "mode [client]",
	Short: "Set a client's session mode for one week (normal, slide, jack_shit, pause_week, recovery)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := newEditor()

		client, err := resolveClient(editor, args[0])
		if err != nil {
			return err
		}
		mode, ok := models.ParseSessionMode(modeName)
		if !ok {
			return fmt.Errorf("unknown session mode %q", modeName)
		}

		flowWeekKey := ""
		if modeFlowWeek > 0 {
			if mode != models.ModeSlide {
				return fmt.Errorf("--flow-week only applies to slide mode")
			}
			flowWeekKey = engine.WeekKey(modeFlowWeek)
		}

		weekKey := engine.WeekKey(modeWeek)
		if _, err := editor.SetSessionMode(client.ID, modeCycle, weekKey, mode, flowWeekKey); err != nil {
			return err
		}

		fmt.Printf("✅ '%s' set to %s on %s of cycle %d\n", client.Name, mode, weekKey, modeCycle)
		return nil
	},
}

func init() {
	modeCmd.Flags().IntVarP(&modeCycle, "cycle", "c", 1, "Cycle number")
	modeCmd.Flags().IntVarP(&modeWeek, "week", "w", 1, "Week number within the cycle")
	modeCmd.Flags().StringVarP(&modeName, "mode", "m", "", "Session mode")
	modeCmd.Flags().IntVarP(&modeFlowWeek, "flow-week", "f", 0, "Week to slide back to (slide mode only)")
	modeCmd.MarkFlagRequired("mode")
	rootCmd.AddCommand(modeCmd)
}

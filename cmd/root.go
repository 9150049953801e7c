package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"coachdash/internal/coach"
	"coachdash/internal/models"
	"coachdash/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "coachdash",
	Short: "Coaching dashboard for 5/3/1 strength programming",
}

func Execute() error {
	return rootCmd.Execute()
}

func newEditor() *coach.Editor {
	st := storage.NewStorage()
	return coach.NewEditor(st, st, st)
}

// resolveClient matches by exact ID first, then case-insensitive name.
func resolveClient(editor *coach.Editor, ref string) (models.Client, error) {
	clients, err := editor.Roster()
	if err != nil {
		return models.Client{}, err
	}
	for _, client := range clients {
		if client.ID == ref {
			return client, nil
		}
	}
	for _, client := range clients {
		if strings.EqualFold(client.Name, ref) {
			return client, nil
		}
	}
	return models.Client{}, fmt.Errorf("no client matches %q", ref)
}

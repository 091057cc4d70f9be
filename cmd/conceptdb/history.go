package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/9triver/conceptdb/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent queries",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.NewStore(cfg.HistoryDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Recent(historyLimit)
		if err != nil {
			return err
		}
		for _, e := range entries {
			status := "ok"
			if e.Error != "" {
				status = e.Error
			}
			fmt.Printf("%s  %-10s  %4dms  %s  [%s]\n",
				e.ExecutedAt.Format(time.DateTime), e.Database, e.DurationMillis, e.Query, status)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "number of entries to show")
	rootCmd.AddCommand(historyCmd)
}

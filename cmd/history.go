package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lipredict/internal/classifier"
	"github.com/abhisek/lipredict/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent predictions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		session, _ := cmd.Flags().GetString("session")

		return withEventRepo(cmd, func(ctx context.Context, repo store.EventRepo) error {
			events, err := repo.QueryPredictions(ctx, store.QueryOpts{Limit: limit, SessionID: session})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			writePredictions(cmd.OutOrStdout(), events)
			return nil
		})
	},
}

// writePredictions prints one row per event with the raw encoded vector,
// in the column order the model uses.
func writePredictions(w io.Writer, events []store.PredictionEvent) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No predictions found.")
		return
	}

	fmt.Fprintf(w, "%-5s  %-19s  %-8s  %-13s  %-5s  %s\n",
		"ID", "Timestamp", "Session", "Class", "P", "Inc Edu Par Mar Fem Age")
	fmt.Fprintln(w, strings.Repeat("─", 86))
	for _, e := range events {
		res := classifier.Result{Class: e.Class, Probability: e.Probability}
		fmt.Fprintf(w, "%-5d  %-19s  %-8s  %-13s  %-5s  %3d %3d %3d %3d %3d %3d\n",
			e.ID, e.Timestamp.Local().Format(timeLayout), truncate(e.SessionID, 8),
			res.Label(), res.ProbabilityText(),
			e.Income, e.Education, e.Parent, e.Married, e.Female, e.Age)
	}
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of predictions to show")
	historyCmd.Flags().String("session", "", "Only show predictions from this session ID")
}

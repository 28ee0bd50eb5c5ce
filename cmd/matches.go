package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ymori/shogistats/internal/aggregator"
	"github.com/ymori/shogistats/internal/report"
	"github.com/ymori/shogistats/internal/storage"
)

var (
	matchesCompetition string
	matchesYear        int
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List stored matches, newest first",
	Args:  cobra.NoArgs,
	RunE:  runMatches,
}

func init() {
	matchesCmd.Flags().StringVar(&matchesCompetition, "competition", "", "only this competition")
	matchesCmd.Flags().IntVar(&matchesYear, "year", 0, "only this year")
}

func runMatches(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, err := db.ListMatches(storage.MatchFilter{
		Competition: matchesCompetition,
		Year:        matchesYear,
	})
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches stored yet. Run 'shogistats import matches <csv>' to add some.")
		return nil
	}

	o, err := db.Stats()
	if err != nil {
		return fmt.Errorf("store overview: %w", err)
	}
	report.PrintOverview(os.Stdout, o.Players, o.Matches, o.Competitions, o.FirstYear, o.LastYear)
	report.PrintMatches(os.Stdout, aggregator.ResolveAll(matches))
	return nil
}

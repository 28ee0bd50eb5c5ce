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
	standingsCompetition string
	standingsKey         string
	standingsAllPeriods  bool
	standingsCutoffs     []string
)

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Rank players by wins, appearances, losses or win rate",
	Args:  cobra.NoArgs,
	RunE:  runStandings,
}

func init() {
	standingsCmd.Flags().StringVar(&standingsCompetition, "competition", "", "only this competition")
	standingsCmd.Flags().StringVar(&standingsKey, "key", "wins", "ranking key: wins, appearances, losses or winrate")
	rankingFlags(standingsCmd, &standingsAllPeriods, &standingsCutoffs)
}

func runStandings(cmd *cobra.Command, args []string) error {
	key, err := aggregator.ParseSortKey(standingsKey)
	if err != nil {
		return err
	}
	rules, err := eligibilityRules(standingsCutoffs, standingsAllPeriods)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, err := loadGradedMatches(db, storage.MatchFilter{Competition: standingsCompetition}, rules)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches to rank. Run 'shogistats import matches <csv>' to add some.")
		return nil
	}

	report.PrintStandings(os.Stdout, aggregator.BuildStandings(matches, key))
	return nil
}

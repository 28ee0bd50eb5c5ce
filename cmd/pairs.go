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
	pairsCompetition string
	pairsAllPeriods  bool
	pairsCutoffs     []string
)

var pairsCmd = &cobra.Command{
	Use:   "pairs",
	Short: "Rank player pairs by head-to-head meetings",
	Args:  cobra.NoArgs,
	RunE:  runPairs,
}

func init() {
	pairsCmd.Flags().StringVar(&pairsCompetition, "competition", "", "only this competition")
	rankingFlags(pairsCmd, &pairsAllPeriods, &pairsCutoffs)
}

func runPairs(cmd *cobra.Command, args []string) error {
	rules, err := eligibilityRules(pairsCutoffs, pairsAllPeriods)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, err := loadGradedMatches(db, storage.MatchFilter{Competition: pairsCompetition}, rules)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches to rank. Run 'shogistats import matches <csv>' to add some.")
		return nil
	}

	report.PrintPairs(os.Stdout, aggregator.BuildPairRanking(matches))
	return nil
}

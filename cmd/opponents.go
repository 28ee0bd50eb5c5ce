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
	opponentsCompetition string
	opponentsAllPeriods  bool
	opponentsCutoffs     []string
)

var opponentsCmd = &cobra.Command{
	Use:   "opponents <name>",
	Short: "Rank one player's opponents by meetings",
	Args:  cobra.ExactArgs(1),
	RunE:  runOpponents,
}

func init() {
	opponentsCmd.Flags().StringVar(&opponentsCompetition, "competition", "", "only this competition")
	rankingFlags(opponentsCmd, &opponentsAllPeriods, &opponentsCutoffs)
}

func runOpponents(cmd *cobra.Command, args []string) error {
	focal := args[0]

	rules, err := eligibilityRules(opponentsCutoffs, opponentsAllPeriods)
	if err != nil {
		return err
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	matches, err := loadGradedMatches(db, storage.MatchFilter{Competition: opponentsCompetition}, rules)
	if err != nil {
		return err
	}

	rows := aggregator.BuildOpponentRanking(matches, focal)
	if len(rows) == 0 {
		fmt.Fprintf(os.Stdout, "No matches found for %s.\n", focal)
		return nil
	}

	report.PrintOpponents(os.Stdout, focal, rows)
	return nil
}

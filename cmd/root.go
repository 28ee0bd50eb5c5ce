package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ymori/shogistats/internal/aggregator"
	"github.com/ymori/shogistats/internal/config"
	"github.com/ymori/shogistats/internal/model"
	"github.com/ymori/shogistats/internal/storage"
)

var (
	cfg    config.Config
	dbPath string
)

var rootCmd = &cobra.Command{
	Use:   "shogistats",
	Short: "Shogi title-match statistics tool",
	Long:  "Import shogi title-match and player-biography records and render career, standings and head-to-head statistics.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cfg = config.Load()
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", cfg.DBPath, "path to SQLite database")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(pairsCmd)
	rootCmd.AddCommand(opponentsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(serveCmd)
}

// rankingFlags registers the eligibility flags shared by the ranking
// commands.
func rankingFlags(c *cobra.Command, allPeriods *bool, cutoffs *[]string) {
	c.Flags().BoolVar(allPeriods, "all-periods", false, "include pre-title competition periods")
	c.Flags().StringArrayVar(cutoffs, "cutoff", nil, "override a pre-title cutoff as NAME=PERIOD (repeatable)")
}

// eligibilityRules builds the rule table from the flags.
func eligibilityRules(cutoffs []string, allPeriods bool) (aggregator.Rules, error) {
	if allPeriods {
		return aggregator.Rules{}, nil
	}
	rules := aggregator.DefaultRules()
	for _, c := range cutoffs {
		name, val, ok := strings.Cut(c, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("cutoff %q: want NAME=PERIOD", c)
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("cutoff %q: %w", c, err)
		}
		rules[name] = n
	}
	return rules, nil
}

// loadGradedMatches reads stored matches, resolves winners and drops
// ineligible periods.
func loadGradedMatches(db *storage.DB, f storage.MatchFilter, rules aggregator.Rules) ([]model.Match, error) {
	matches, err := db.ListMatches(f)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return aggregator.FilterEligible(aggregator.ResolveAll(matches), rules), nil
}

func openStore() (*storage.DB, error) {
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ymori/shogistats/internal/calendar"
	"github.com/ymori/shogistats/internal/profile"
	"github.com/ymori/shogistats/internal/report"
)

var (
	profileMode  string
	profileOrder string
	profileToday string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show player career profiles",
	Long: `Show player biographies with derived career fields: age, age at each
dan promotion, spans between promotions, tenure and active age.

Modes: seat, number, age, tenure, active-age, promo-age-4..promo-age-9,
gap-4to5..gap-8to9.`,
	Args: cobra.NoArgs,
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&profileMode, "mode", "seat", "view and sort mode")
	profileCmd.Flags().StringVar(&profileOrder, "order", "keep", "sort order: keep, asc or desc")
	profileCmd.Flags().StringVar(&profileToday, "today", "", "reference date as YYYY-MM-DD (default: today)")
}

func runProfile(cmd *cobra.Command, args []string) error {
	mode, err := profile.ParseMode(profileMode)
	if err != nil {
		return err
	}
	order, err := profile.ParseOrder(profileOrder)
	if err != nil {
		return err
	}
	today := calendar.Today()
	if profileToday != "" {
		var ok bool
		if today, ok = calendar.Parse(profileToday); !ok {
			return fmt.Errorf("invalid --today %q: want YYYY-MM-DD", profileToday)
		}
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	players, err := db.ListPlayers()
	if err != nil {
		return fmt.Errorf("list players: %w", err)
	}
	if len(players) == 0 {
		fmt.Fprintln(os.Stdout, "No players stored yet. Run 'shogistats import players <csv>' to add some.")
		return nil
	}

	rows := profile.Enrich(players, today)
	profile.Sort(rows, mode, order)
	report.PrintProfiles(os.Stdout, rows, mode)
	return nil
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ymori/shogistats/internal/parser"
	"github.com/ymori/shogistats/internal/storage"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import CSV record sheets",
}

var importPlayersCmd = &cobra.Command{
	Use:   "players <csv>",
	Short: "Import a player biography sheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runImportPlayers,
}

var importMatchesCmd = &cobra.Command{
	Use:   "matches <csv>...",
	Short: "Import one or more match sheets",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runImportMatches,
}

func init() {
	importCmd.AddCommand(importPlayersCmd)
	importCmd.AddCommand(importMatchesCmd)
}

func runImportPlayers(cmd *cobra.Command, args []string) error {
	db, err := openImportStore()
	if err != nil {
		return err
	}
	defer db.Close()

	players, err := parser.LoadPlayersFile(args[0])
	if err != nil {
		return err
	}
	if err := db.InsertPlayers(players); err != nil {
		return fmt.Errorf("store players: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Imported %d players from %s\n", len(players), args[0])
	return nil
}

func runImportMatches(cmd *cobra.Command, args []string) error {
	db, err := openImportStore()
	if err != nil {
		return err
	}
	defer db.Close()

	total := 0
	for _, path := range args {
		matches, err := parser.LoadMatchesFile(path)
		if err != nil {
			return err
		}
		if err := db.InsertMatches(matches); err != nil {
			return fmt.Errorf("store matches from %s: %w", path, err)
		}
		fmt.Fprintf(os.Stdout, "Imported %d matches from %s\n", len(matches), path)
		total += len(matches)
	}
	if len(args) > 1 {
		fmt.Fprintf(os.Stdout, "Imported %d matches total\n", total)
	}
	return nil
}

// openImportStore creates the database directory on first use.
func openImportStore() (*storage.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	return openStore()
}

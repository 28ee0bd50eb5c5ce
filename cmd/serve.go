package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/ymori/shogistats/internal/api"
	"github.com/ymori/shogistats/internal/logger"
)

var (
	serveAddr       string
	serveAllPeriods bool
	serveCutoffs    []string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the statistics as a JSON API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from SHOGISTATS_ADDR)")
	rankingFlags(serveCmd, &serveAllPeriods, &serveCutoffs)
}

func runServe(cmd *cobra.Command, args []string) error {
	rules, err := eligibilityRules(serveCutoffs, serveAllPeriods)
	if err != nil {
		return err
	}
	addr := serveAddr
	if addr == "" {
		addr = cfg.Addr
	}

	log := logger.New(logger.WithLevel(logger.ParseLevel(cfg.LogLevel)), logger.WithPrefix("serve"))
	logger.SetDefault(log)

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	srv := &http.Server{
		Addr:    addr,
		Handler: api.New(db, rules, log).Routes(),
	}
	log.Info("listening on %s (db %s)", addr, dbPath)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

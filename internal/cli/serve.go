package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mpatters/wordgrid/internal/httpserver"
	"github.com/mpatters/wordgrid/internal/storage"
	"github.com/mpatters/wordgrid/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Hosts the game over HTTP: anonymous and authenticated play, per-user
stats and history, and a daily challenge with a leaderboard.

Configuration comes from wordgrid.yaml and environment variables; see
the config package for the full list.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	bank, err := loadBank()
	if err != nil {
		return err
	}

	db, err := storage.Open(cfg.Server.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	port := cfg.Server.Port
	if servePort != 0 {
		port = servePort
	}

	srv := httpserver.New(bank, store.NewMemory(), db, cfg.Server)
	addr := fmt.Sprintf(":%d", port)
	log.Info().Str("addr", addr).Str("db", cfg.Server.DBPath).Msg("starting server")
	return srv.Start(addr)
}

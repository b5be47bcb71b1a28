package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/perfily/perfily-cli/internal/api"
	"github.com/perfily/perfily-cli/internal/app"
	"github.com/perfily/perfily-cli/internal/config"
	"github.com/perfily/perfily-cli/internal/funnel"
	"github.com/perfily/perfily-cli/internal/logging"
	"github.com/perfily/perfily-cli/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, initialPath string) error {
	cfg := config.Load()
	if flagAPI, _ := cmd.Flags().GetString("api"); flagAPI != "" {
		cfg.APIBaseURL = flagAPI
	}

	log, closeLog, err := logging.Setup(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
		log = logging.Discard()
	} else {
		defer func() { _ = closeLog() }()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	if installID, err := st.InstallID(cmd.Context()); err == nil {
		log = log.With().Str("install", installID).Logger()
	}

	sess := st.LoadSession(cmd.Context())
	save := func(s funnel.Session) {
		if err := st.SaveSession(context.Background(), s); err != nil {
			log.Error().Err(err).Msg("save session failed")
		}
	}

	ctrl := funnel.NewController(sess, save, log)
	client := api.NewClient(cfg.APIBaseURL)

	return app.Run(app.Options{
		Config:      cfg,
		Ctrl:        ctrl,
		Scorer:      client,
		InitialPath: initialPath,
		Log:         log,
	})
}

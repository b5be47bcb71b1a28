package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/perfily/perfily-cli/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Apagar a sessão salva",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.ResetSession(cmd.Context()); err != nil {
			return err
		}

		fmt.Println("Sessão apagada. O próximo teste começa do zero.")
		return nil
	},
}

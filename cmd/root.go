package cmd

import (
	"fmt"

	"github.com/perfily/perfily-cli/internal/catalog"
	"github.com/perfily/perfily-cli/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "perfily [teste]",
	Short: "Testes comportamentais no terminal",
	Long: "Perfily — testes de personalidade, carreira, relacionamento e QI," +
		" com resultado na hora.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		initialPath := "/"
		if len(args) == 1 {
			slug := args[0]
			if _, ok := catalog.Lookup(slug); !ok {
				return fmt.Errorf("teste desconhecido %q; opções: %s", slug, catalog.Slugs())
			}
			initialPath = "/" + slug
		}
		return runApp(cmd, initialPath)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PERFILY_DB env var)")
	rootCmd.PersistentFlags().String("api", "", "Scoring API base URL (overrides PERFILY_API_URL env var)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PERFILY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// README: The list command; read-only operator view over stored grievances.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"railmadad/internal/config"
	"railmadad/internal/infra"
	"railmadad/internal/modules/grievance"
)

func newListCmd() *cobra.Command {
	var dbPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recently stored grievances",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, dbPath, limit)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the grievance database (overrides RAILMADAD_DB_PATH)")
	cmd.Flags().IntVar(&limit, "limit", 10, "maximum number of grievances to show")
	return cmd
}

func runList(cmd *cobra.Command, dbPath string, limit int) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if dbPath != "" {
		cfg.DB.Path = dbPath
	}

	db, err := infra.NewDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("open database %s: %w", cfg.DB.Path, err)
	}
	store := grievance.NewStore(db)
	if err := store.Migrate(); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	recs, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("list grievances: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(recs) == 0 {
		fmt.Fprintln(out, "No grievances stored yet.")
		return nil
	}
	for _, r := range recs {
		domain := r.TrainOrStation.Label()
		if domain == "" {
			domain = "-"
		}
		fmt.Fprintf(out, "#%d  [%s / %s]  %s\n", r.ID, r.Category.Label(), domain, truncate(r.Grievance, 60))
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

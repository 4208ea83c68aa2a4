package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/caibang/attendance-backend-go/internal/config"
	"github.com/caibang/attendance-backend-go/internal/pkg/database"
)

func newMigrateCommand() *cobra.Command {
	var migrationsDir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQL migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			db, err := database.NewPostgreSQLDB(cmd.Context(), cfg.DatabaseURL())
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer db.Close()

			applied, err := db.Migrate(cmd.Context(), os.DirFS(migrationsDir))
			if err != nil {
				return err
			}
			slog.Info("Migrations complete", "applied", len(applied))
			return nil
		},
	}
	cmd.Flags().StringVar(&migrationsDir, "dir", "migrations", "Directory holding *.sql migrations")
	return cmd
}

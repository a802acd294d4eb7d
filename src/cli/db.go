package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khabaroff/thesis-management/src/database"
)

func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "db",
		Aliases: []string{"database"},
		Short:   "Database maintenance",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Connect, create the database if missing, and apply the schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBCheck(cmd.Context())
		},
	})

	return cmd
}

func runDBCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	res, err := database.EnsureDatabase(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if res.Created {
		fmt.Printf("Created database %q\n", res.Database)
	}

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Health(ctx); err != nil {
		return fmt.Errorf("database unhealthy: %w", err)
	}
	fmt.Printf("Database %q is reachable and the schema is up to date\n", res.Database)
	return nil
}

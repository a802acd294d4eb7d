package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khabaroff/thesis-management/src/repositories/postgres"
	"github.com/khabaroff/thesis-management/src/seed"
	"github.com/khabaroff/thesis-management/src/server"
)

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a YAML fixture of departments, supervisors, students, theses and admins",
		Long: `Load a YAML fixture in one transaction. Either every row is written or,
on the first error, none are.`,
		Example: `  thesis-api seed --file seed.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fixture, err := seed.Load(file)
			if err != nil {
				return err
			}

			db, err := openDatabase(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			build := func(tx postgres.DBTX) *server.Services {
				return server.NewServices(tx, cfg)
			}
			res, err := seed.ApplyInTx(cmd.Context(), db.GetPool(), build, fixture)
			if err != nil {
				return fmt.Errorf("seed rolled back: %w", err)
			}
			fmt.Printf("Seeded %d departments, %d supervisors, %d students, %d theses, %d admins (%d skipped)\n",
				res.Departments, res.Supervisors, res.Students, res.Theses, res.Admins, res.AdminsSkipped)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "seed.yaml", "Fixture file")

	return cmd
}

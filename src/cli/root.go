// Package cli implements the thesis-api command tree
package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/khabaroff/thesis-management/src/config"
	"github.com/khabaroff/thesis-management/src/logging"
)

var (
	cfgFile    string
	appVersion string
	cfg        *config.Config
)

// Execute creates the root command tree and runs it
func Execute(version string) error {
	appVersion = version
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thesis-api",
		Short: "Thesis management REST API",
		Long: `Thesis management REST API: departments, supervisors, students and theses
behind an admin-authenticated JSON API. Run without a subcommand to serve.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml; environment variables override it)")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newAdminCmd())
	cmd.AddCommand(newHashPasswordCmd())
	cmd.AddCommand(newDBCmd())
	cmd.AddCommand(newSeedCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg = c

	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	if cfg.GeneratedSecret {
		log.Warn().Msg("JWT_SECRET not set, using a random secret; tokens will not survive a restart")
	}
	return nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khabaroff/thesis-management/src/services"
)

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a password hash suitable for the admins table",
		Long:  "Hash a password with the configured bcrypt cost. The password is prompted for when not given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				pw, err := promptPassword()
				if err != nil {
					return err
				}
				password = pw
			}
			return runHashPassword(cmd, password)
		},
	}
}

func runHashPassword(cmd *cobra.Command, password string) error {
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	hasher := services.NewPasswordHasher(cfg.BcryptCost)
	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}
	if !hasher.Verify(password, hash) {
		return fmt.Errorf("hash failed verification")
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khabaroff/thesis-management/src/models"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin users",
		Long:  "Create and list the administrators who may change records through the API.",
	}

	cmd.AddCommand(newAdminCreateCmd())
	cmd.AddCommand(newAdminListCmd())

	return cmd
}

// ---------- admin create ----------

func newAdminCreateCmd() *cobra.Command {
	var in models.AdminInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin, or reset the password of an existing one",
		Example: `  thesis-api admin create --username admin --email admin@example.com --password secret
  thesis-api admin create --username admin  # prompts for password`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminCreate(cmd, in)
		},
	}

	cmd.Flags().StringVar(&in.Username, "username", "", "Admin username (required)")
	cmd.Flags().StringVar(&in.Email, "email", "", "Admin email address (defaults to <username>@localhost for new admins)")
	cmd.Flags().StringVar(&in.Password, "password", "", "Admin password (prompted if omitted)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func runAdminCreate(cmd *cobra.Command, in models.AdminInput) error {
	if in.Email != "" && !strings.Contains(in.Email, "@") {
		return fmt.Errorf("invalid email address: %q", in.Email)
	}

	if in.Password == "" {
		pw, err := promptPassword()
		if err != nil {
			return err
		}
		in.Password = pw
	}
	if in.Password == "" {
		return fmt.Errorf("password must not be empty")
	}

	db, svc, err := openServices(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	admin, created, err := svc.Admins.EnsureAdmin(cmd.Context(), in)
	if err != nil {
		return err
	}

	if created {
		fmt.Printf("Created admin %q (id %d)\n", admin.Username, admin.ID)
	} else {
		fmt.Printf("Updated password for admin %q (id %d)\n", admin.Username, admin.ID)
	}
	return nil
}

// ---------- admin list ----------

func newAdminListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List admin users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdminList(cmd, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func runAdminList(cmd *cobra.Command, jsonOutput bool) error {
	db, svc, err := openServices(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	admins, err := svc.Admins.List(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(admins)
	}

	if len(admins) == 0 {
		fmt.Println("No admin users. Use 'thesis-api admin create' to create one.")
		return nil
	}

	fmt.Printf("%-6s %-24s %-32s %s\n", "ID", "USERNAME", "EMAIL", "CREATED")
	for _, a := range admins {
		fmt.Printf("%-6d %-24s %-32s %s\n", a.ID, a.Username, a.Email, a.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

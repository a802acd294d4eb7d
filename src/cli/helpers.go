package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/khabaroff/thesis-management/src/database"
	"github.com/khabaroff/thesis-management/src/server"
)

// connectTimeout bounds connecting and applying the schema
const connectTimeout = 30 * time.Second

// openDatabase connects to the configured database and applies the schema.
// The caller closes it.
func openDatabase(ctx context.Context) (*database.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

// openServices connects to the configured database and wires the services on it.
// The caller closes the returned database.
func openServices(ctx context.Context) (*database.Database, *server.Services, error) {
	db, err := openDatabase(ctx)
	if err != nil {
		return nil, nil, err
	}
	return db, server.NewServices(db.GetPool(), cfg), nil
}

// promptPassword reads a password and its confirmation without echoing
func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no terminal to prompt for a password; pass --password")
	}

	fmt.Print("Password: ")
	pw, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Print("Confirm password: ")
	confirm, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}

	if string(pw) != string(confirm) {
		return "", fmt.Errorf("passwords do not match")
	}
	return string(pw), nil
}

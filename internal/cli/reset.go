package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/terraincognita07/lifeboard/internal/db"
	"github.com/terraincognita07/lifeboard/internal/security"
	"github.com/terraincognita07/lifeboard/internal/services"
)

type ResetPasswordOptions struct {
	DBPath   string
	Username string
	// Prompt asks for the new password on the terminal instead of
	// generating a temporary one.
	Prompt bool
	Stdin  *os.File
	Stdout io.Writer
}

func RunResetPasswordCommand(options ResetPasswordOptions) error {
	username := strings.TrimSpace(options.Username)
	if username == "" {
		return errors.New("username is required")
	}
	out := options.Stdout
	if out == nil {
		out = os.Stdout
	}

	password, mustChange, err := resolveResetPassword(options, out)
	if err != nil {
		return err
	}

	database, err := db.OpenSQLite(options.DBPath, nil)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	auth := services.NewAuthService(db.NewUserRepository(database))
	if _, err := auth.ResetPassword(username, password, mustChange); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return fmt.Errorf("user %s not found", username)
		}
		return fmt.Errorf("reset password: %w", err)
	}

	fmt.Fprintln(out, "Password reset successful")
	if mustChange {
		fmt.Fprintf(out, "Temporary password: %s\n", password)
		fmt.Fprintln(out, "User must change password on next login.")
	}
	return nil
}

func resolveResetPassword(options ResetPasswordOptions, out io.Writer) (string, bool, error) {
	if !options.Prompt {
		password, err := security.TemporaryPassword(security.MinTemporaryPasswordLength)
		if err != nil {
			return "", false, fmt.Errorf("generate temporary password: %w", err)
		}
		return password, true, nil
	}

	stdin := options.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	password, err := promptPassword(stdin, out, "New password: ")
	if err != nil {
		return "", false, err
	}
	if err := services.ValidatePasswordStrength(password); err != nil {
		return "", false, err
	}
	confirmation, err := promptPassword(stdin, out, "Repeat password: ")
	if err != nil {
		return "", false, err
	}
	if confirmation != password {
		return "", false, errors.New("passwords do not match")
	}
	return password, false, nil
}

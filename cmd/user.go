/*
Copyright © 2026 FixHub <dev@fixhub.es>
*/

// user.go implements the "tradexdb user" command group.
//
// "user add" prompts for the password without echo when attached to a
// terminal, and reads one line from standard input otherwise so the
// command stays scriptable.

package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fixhub-es/tradexdb/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newUserCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	c.AddCommand(newUserAddCmd(), newUserListCmd())
	return c
}

func newUserAddCmd() *cobra.Command {
	var role string

	c := &cobra.Command{
		Use:   "add <username>",
		Short: "Add a user with a hashed password",
		Long: `Add a user account. The password is prompted without echo (or read
from standard input when piped) and stored as a bcrypt hash.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			username := args[0]

			password, err := readPassword(c)
			if err != nil {
				return fmt.Errorf("user add: %w", err)
			}
			if password == "" {
				return fmt.Errorf("user add: password must not be empty")
			}

			hash, err := store.HashPassword(password)
			if err != nil {
				return fmt.Errorf("user add: %w", err)
			}

			s, err := openStore()
			if err != nil {
				return fmt.Errorf("user add: %w", err)
			}
			defer s.Close()

			if err := s.Init(); err != nil {
				return fmt.Errorf("user add: %w", err)
			}
			if err := s.CreateUser(c.Context(), store.User{
				Username:       username,
				HashedPassword: hash,
				Role:           role,
			}); err != nil {
				return fmt.Errorf("user add: %w", err)
			}

			fmt.Fprintf(Out(), "User %s added\n", username)
			return nil
		},
	}
	c.Flags().StringVar(&role, "role", "User", "Role for the new user")
	return c
}

func newUserListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return fmt.Errorf("user list: %w", err)
			}
			defer s.Close()

			users, err := s.Users(c.Context())
			if err != nil {
				return fmt.Errorf("user list: %w", err)
			}
			if len(users) == 0 {
				fmt.Fprintln(Out(), "No users found")
				return nil
			}
			for _, u := range users {
				fmt.Fprintf(Out(), "%s  %s\n", u.Username, u.Role)
			}
			return nil
		},
	}
}

// readPassword obtains the password interactively or from piped stdin.
func readPassword(c *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(c.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

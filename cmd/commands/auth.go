package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/vitrin/vitrin-cli/internal/cli"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in and store a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cli.NewCommandContext()
			defer ctx.Close()

			authSvc, err := ctx.Auth()
			if err != nil {
				return err
			}

			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}

			session, err := authSvc.Login(context.Background(), args[0], password)
			if err != nil {
				return err
			}
			cli.PrintSuccess("Signed in as %s", session.Email)
			return nil
		},
	}
}

// NewSignupCommand creates the signup command
func NewSignupCommand() *cobra.Command {
	var name, phone string

	cmd := &cobra.Command{
		Use:   "signup <email>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cli.NewCommandContext()
			defer ctx.Close()

			authSvc, err := ctx.Auth()
			if err != nil {
				return err
			}

			if name == "" {
				name, err = readLine("Name: ")
				if err != nil {
					return err
				}
			}
			password, err := readPassword("Password: ")
			if err != nil {
				return err
			}

			user, err := authSvc.Signup(context.Background(), name, phone, args[0], password)
			if err != nil {
				return err
			}
			cli.PrintSuccess("Created account for %s", user.Email)
			cli.PrintInfo("Run 'vitrin login %s' to sign in.", user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cli.NewCommandContext()
			defer ctx.Close()

			authSvc, err := ctx.Auth()
			if err != nil {
				return err
			}
			if err := authSvc.Logout(); err != nil {
				return err
			}
			cli.PrintSuccess("Signed out")
			return nil
		},
	}
}

func readLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := terminal.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

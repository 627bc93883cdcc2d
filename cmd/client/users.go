package main

import (
	"fmt"

	"github.com/MKhiriev/ergo/internal/adapter"
	"github.com/MKhiriev/ergo/models"
	"github.com/spf13/cobra"
)

func registerCmd(api adapter.APIClient) *cobra.Command {
	var user models.User

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := api.Register(cmd.Context(), user)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s registered %s (%s)\n", successStyle.Render("✓"), created.Email, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&user.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&user.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&user.UserName, "username", "", "user name")
	cmd.Flags().StringVar(&user.Email, "email", "", "email, used to log in")
	cmd.Flags().StringVar(&user.Password, "password", "", "password, 8 to 72 characters")
	for _, name := range []string{"first-name", "last-name", "username", "email", "password"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func loginCmd(api adapter.APIClient) *cobra.Command {
	var credentials models.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the environment for guarded commands",
		Long: `Log in and print shell exports for ERGO_TOKEN and ERGO_USER_ID.

Example:
  eval "$(ergo login --email ada@example.com --password ...)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := api.Login(cmd.Context(), credentials)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "export ERGO_TOKEN=%s\nexport ERGO_USER_ID=%s\n", resp.Token, resp.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&credentials.Email, "email", "", "account email")
	cmd.Flags().StringVar(&credentials.Password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

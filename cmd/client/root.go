package main

import (
	"fmt"

	"github.com/MKhiriev/ergo/internal/adapter"
	"github.com/MKhiriev/ergo/models"
	"github.com/spf13/cobra"
)

func newRootCmd(api adapter.APIClient, info models.AppBuildInfo) *cobra.Command {
	var token, userID string

	root := &cobra.Command{
		Use:   "ergo",
		Short: "Command-line client for the ergo task API",
		Long: `ergo manages your tasks and tags on an ergo server.

The server address is read from ERGO_SERVER_URL. Guarded commands need
ERGO_TOKEN and ERGO_USER_ID, both printed by "ergo login", or the
--token and --user-id flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().Changed("token") {
				api.SetToken(token)
			}
			if cmd.Flags().Changed("user-id") {
				api.SetUserID(userID)
			}
		},
	}

	root.PersistentFlags().StringVar(&token, "token", "", "bearer token (overrides ERGO_TOKEN)")
	root.PersistentFlags().StringVar(&userID, "user-id", "", "owner id (overrides ERGO_USER_ID)")

	root.AddCommand(
		registerCmd(api),
		loginCmd(api),
		tasksCmd(api),
		tagsCmd(api),
		versionCmd(info),
	)

	return root
}

func versionCmd(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", info.Version)
			fmt.Fprintf(out, "Build date: %s\n", info.Date)
			fmt.Fprintf(out, "Build commit: %s\n", info.Commit)
		},
	}
}

package main

import (
	"fmt"

	"github.com/MKhiriev/ergo/internal/adapter"
	"github.com/MKhiriev/ergo/models"
	"github.com/spf13/cobra"
)

func tagsCmd(api adapter.APIClient) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Manage tags",
	}

	cmd.AddCommand(
		tagsListCmd(api),
		tagsAddCmd(api),
		tagsRmCmd(api),
	)

	return cmd
}

func tagsListCmd(api adapter.APIClient) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tags, err := api.ListTags(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTags(tags))
			return nil
		},
	}
}

func tagsAddCmd(api adapter.APIClient) *cobra.Command {
	var tag models.Tag

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag.TagName = args[0]

			created, err := api.CreateTag(cmd.Context(), tag)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s created tag %s\n", successStyle.Render("✓"), created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&tag.TagColor, "color", "", "tag color")
	_ = cmd.MarkFlagRequired("color")

	return cmd
}

func tagsRmCmd(api adapter.APIClient) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <tag id>",
		Short: "Delete a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := api.DeleteTag(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s tag deleted\n", successStyle.Render("✓"))
			return nil
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gregbehm/twittertools"
	"github.com/gregbehm/twittertools/export"
)

func newConnectionsCmd(credentialsPath *string) *cobra.Command {
	var (
		friends  bool
		jsonPath string
	)

	cmd := &cobra.Command{
		Use:   "connections <screen-name>",
		Short: "Collect follower or friend IDs",
		Long:  "Collect the complete list of follower IDs for a user, or friend (following) IDs with --friends.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(*credentialsPath)
			if err != nil {
				return err
			}

			which := twittertools.Followers
			if friends {
				which = twittertools.Friends
			}
			ids, err := client.ConnectionIDs(cmd.Context(), args[0], which)
			if err != nil {
				return fmt.Errorf("collect %s IDs: %w", which, err)
			}

			fmt.Printf("%s has %d %s\n", args[0], len(ids), which)
			if jsonPath != "" {
				if err := export.WriteJSON(jsonPath, ids); err != nil {
					return err
				}
				fmt.Printf("Saved to %s\n", jsonPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&friends, "friends", false, "collect friend (following) IDs instead of followers")
	cmd.Flags().StringVar(&jsonPath, "json", "", "write IDs to a JSON file")
	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gregbehm/twittertools/export"
)

func newProfilesCmd(credentialsPath *string) *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "profiles <screen-name>...",
		Short: "Look up user profiles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(*credentialsPath)
			if err != nil {
				return err
			}

			users, err := client.UserProfiles(cmd.Context(), args)
			if err != nil {
				return fmt.Errorf("look up profiles: %w", err)
			}

			for _, u := range users {
				fmt.Printf("@%s (%s): %d tweets, %d followers\n",
					u.ScreenName, u.Name, u.StatusesCount, u.FollowersCount)
			}
			if csvPath != "" {
				if err := export.WriteProfilesCSV(csvPath, users); err != nil {
					return err
				}
				fmt.Printf("Saved %d profiles to %s\n", len(users), csvPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "write profiles to a CSV file")
	return cmd
}

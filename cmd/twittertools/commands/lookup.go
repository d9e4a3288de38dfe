package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gregbehm/twittertools/export"
)

func newLookupCmd(credentialsPath *string) *cobra.Command {
	var jsonPath string

	cmd := &cobra.Command{
		Use:   "lookup <tweet-id>...",
		Short: "Fetch tweets by ID",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid tweet id %q: %w", arg, err)
				}
				ids = append(ids, id)
			}

			client, err := newClient(*credentialsPath)
			if err != nil {
				return err
			}

			tweets, err := client.TweetsByID(cmd.Context(), ids)
			if err != nil {
				return fmt.Errorf("look up tweets: %w", err)
			}

			for _, t := range tweets {
				screenName := ""
				if t.User != nil {
					screenName = "@" + t.User.ScreenName + ": "
				}
				fmt.Printf("%s  %s%s\n", t.IDStr, screenName, t.Text)
			}
			if jsonPath != "" {
				if err := export.WriteJSON(jsonPath, tweets); err != nil {
					return err
				}
				fmt.Printf("Saved %d tweets to %s\n", len(tweets), jsonPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&jsonPath, "json", "", "write tweets to a JSON file")
	return cmd
}

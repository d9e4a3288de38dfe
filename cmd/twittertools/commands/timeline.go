package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gregbehm/twittertools"
	"github.com/gregbehm/twittertools/export"
)

func newTimelineCmd(credentialsPath *string) *cobra.Command {
	var (
		favorites   bool
		home        bool
		maxTweets   int
		maxRequests int
		csvPath     string
		jsonPath    string
	)

	cmd := &cobra.Command{
		Use:   "timeline [screen-name]",
		Short: "Collect a timeline",
		Long:  "Collect a user's timeline (default the authenticated user's), their favorites, or the home timeline.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(*credentialsPath)
			if err != nil {
				return err
			}

			var screenName string
			if len(args) == 1 {
				screenName = args[0]
			}
			opts := twittertools.TimelineOptions{MaxTweets: maxTweets, MaxRequests: maxRequests}

			var tweets []twittertools.Tweet
			switch {
			case home:
				tweets, err = client.HomeTimeline(cmd.Context(), opts)
			case favorites:
				tweets, err = client.UserFavorites(cmd.Context(), screenName, opts)
			default:
				tweets, err = client.UserTimeline(cmd.Context(), screenName, opts)
			}
			if err != nil {
				return fmt.Errorf("collect timeline: %w", err)
			}

			fmt.Printf("Collected %d tweets\n", len(tweets))
			if csvPath != "" {
				if err := export.WriteTweetsCSV(csvPath, tweets); err != nil {
					return err
				}
				fmt.Printf("Saved to %s\n", csvPath)
			}
			if jsonPath != "" {
				if err := export.WriteJSON(jsonPath, tweets); err != nil {
					return err
				}
				fmt.Printf("Saved to %s\n", jsonPath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&home, "home", false, "collect the home timeline")
	cmd.Flags().BoolVar(&favorites, "favorites", false, "collect favorites instead of posted tweets")
	cmd.Flags().IntVar(&maxTweets, "max", 0, "maximum tweets to collect (0 = API limit)")
	cmd.Flags().IntVar(&maxRequests, "requests", 0, "maximum requests to issue (0 = no cap)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write tweets to a CSV file")
	cmd.Flags().StringVar(&jsonPath, "json", "", "write tweets to a JSON file")
	return cmd
}

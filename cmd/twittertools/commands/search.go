package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gregbehm/twittertools/export"
)

func newSearchCmd(credentialsPath *string) *cobra.Command {
	var (
		maxRequests int
		csvPath     string
		jsonPath    string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search recent tweets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(*credentialsPath)
			if err != nil {
				return err
			}

			tweets, err := client.SearchTweets(cmd.Context(), args[0], maxRequests)
			if err != nil {
				return fmt.Errorf("search tweets: %w", err)
			}

			fmt.Printf("Found %d tweets for %q\n", len(tweets), args[0])
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

	cmd.Flags().IntVar(&maxRequests, "requests", 5, "maximum search requests to issue")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write results to a CSV file")
	cmd.Flags().StringVar(&jsonPath, "json", "", "write results to a JSON file")
	return cmd
}

package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gregbehm/twittertools"
)

func newPostCmd(credentialsPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "post <text>",
		Short: "Post a status update",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(*credentialsPath)
			if err != nil {
				return err
			}

			tweet, err := client.PostStatusUpdate(cmd.Context(), args[0])
			if err != nil {
				var apiErr *twittertools.APIError
				if errors.As(err, &apiErr) && apiErr.DuplicateStatus() {
					return fmt.Errorf("rejected as a duplicate of a recent tweet: %w", err)
				}
				return fmt.Errorf("post status: %w", err)
			}

			fmt.Printf("Posted tweet %s\n", tweet.IDStr)
			return nil
		},
	}
}

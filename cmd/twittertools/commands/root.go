// Package commands implements the twittertools CLI subcommands.
package commands

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gregbehm/twittertools"
)

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var credentialsPath string

	cmd := &cobra.Command{
		Use:           "twittertools",
		Short:         "Collect Twitter REST API data",
		Long:          "twittertools collects rate limits, profiles, timelines, trends, connections, and search results from the Twitter REST API and exports them to CSV or JSON.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&credentialsPath, "credentials", defaultCredentialsPath(),
		"path to the JSON credentials file")

	cmd.AddCommand(
		newLimitsCmd(&credentialsPath),
		newProfilesCmd(&credentialsPath),
		newTimelineCmd(&credentialsPath),
		newLookupCmd(&credentialsPath),
		newTrendsCmd(&credentialsPath),
		newConnectionsCmd(&credentialsPath),
		newSearchCmd(&credentialsPath),
		newPostCmd(&credentialsPath),
	)
	return cmd
}

// defaultCredentialsPath is ~/.twitter/credentials.json.
func defaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "credentials.json"
	}
	return filepath.Join(home, ".twitter", "credentials.json")
}

// newClient builds a client from the credentials file, falling back to
// the TWITTER_* environment variables when the file is unavailable.
func newClient(credentialsPath string) (*twittertools.Client, error) {
	creds, fileErr := twittertools.LoadCredentials(credentialsPath)
	if fileErr != nil {
		var envErr error
		creds, envErr = twittertools.CredentialsFromEnv()
		if envErr != nil {
			return nil, errors.Join(fileErr, envErr)
		}
	}
	return twittertools.NewClient(twittertools.ClientConfig{Credentials: creds})
}

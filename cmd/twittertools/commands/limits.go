package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newLimitsCmd(credentialsPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "limits [family [endpoint]]",
		Short: "Show current rate limit status",
		Long:  "Show the authenticated user's current rate limit status, optionally filtered to one API family and endpoint path.",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(*credentialsPath)
			if err != nil {
				return err
			}

			snapshot, err := client.RateLimits(cmd.Context(), args...)
			if err != nil {
				return fmt.Errorf("fetch rate limits: %w", err)
			}

			families := make([]string, 0, len(snapshot))
			for family := range snapshot {
				families = append(families, family)
			}
			sort.Strings(families)

			for _, family := range families {
				fmt.Printf("%s:\n", family)
				endpoints := make([]string, 0, len(snapshot[family]))
				for endpoint := range snapshot[family] {
					endpoints = append(endpoints, endpoint)
				}
				sort.Strings(endpoints)
				for _, endpoint := range endpoints {
					limit := snapshot[family][endpoint]
					fmt.Printf("  %-60s %3d/%3d  resets %s\n",
						endpoint, limit.Remaining, limit.Limit,
						limit.ResetTime().Format("15:04:05"))
				}
			}
			return nil
		},
	}
}

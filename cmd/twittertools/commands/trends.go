package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gregbehm/twittertools"
)

func newTrendsCmd(credentialsPath *string) *cobra.Command {
	var (
		woeid   int64
		closest string
	)

	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Show trending topics or trend locations",
		Long:  "With --woeid, show trending topics for that location. Otherwise list trend locations, optionally the ones closest to --closest lat,lon.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(*credentialsPath)
			if err != nil {
				return err
			}

			if woeid != 0 {
				trends, err := client.Trends(cmd.Context(), woeid)
				if err != nil {
					return fmt.Errorf("fetch trends: %w", err)
				}
				for _, trend := range trends {
					fmt.Printf("%-40s %s\n", trend.Name, trend.Query)
				}
				return nil
			}

			var coords *twittertools.Coordinates
			if closest != "" {
				coords, err = parseCoordinates(closest)
				if err != nil {
					return err
				}
			}
			locations, err := client.TrendLocations(cmd.Context(), coords)
			if err != nil {
				return fmt.Errorf("fetch trend locations: %w", err)
			}
			for _, loc := range locations {
				fmt.Printf("%-30s woeid %d  %s\n", loc.Name, loc.WOEID, loc.Country)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&woeid, "woeid", 0, "show trends for this WOEID (1 = worldwide)")
	cmd.Flags().StringVar(&closest, "closest", "", "list locations closest to lat,lon")
	return cmd
}

func parseCoordinates(s string) (*twittertools.Coordinates, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid coordinates %q: want lat,lon", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}
	return &twittertools.Coordinates{Lat: lat, Long: lon}, nil
}

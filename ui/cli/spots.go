// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rutero-app/rutero/internal/api"
	"github.com/rutero-app/rutero/internal/i18n"
	"github.com/rutero-app/rutero/internal/model"
)

func newSpotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spots",
		Short: "Browse tourist spots",
	}
	cmd.AddCommand(newSpotsListCmd(), newSpotsShowCmd(), newSpotsRecommendedCmd())
	return cmd
}

func newSpotsListCmd() *cobra.Command {
	var (
		limit  int
		offset int
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tourist spots",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd); err != nil {
				return err
			}

			if all {
				spots, err := apiClient.Spots.ListAll(cmd.Context())
				if err != nil {
					return err
				}
				if len(spots) == 0 {
					fmt.Println(i18n.T("spots.none"))
					return nil
				}
				for _, spot := range spots {
					printSpotLine(spot)
				}
				return nil
			}

			page, err := apiClient.Spots.List(cmd.Context(), limit, offset)
			if err != nil {
				return err
			}
			if len(page.Results) == 0 {
				fmt.Println(i18n.T("spots.none"))
				return nil
			}
			for _, spot := range page.Results {
				printSpotLine(spot)
			}
			if page.Next != nil {
				fmt.Printf("(%d/%d)\n", offset+len(page.Results), page.Count)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")
	cmd.Flags().BoolVar(&all, "all", false, "Fetch every spot in one request")
	return cmd
}

func newSpotsShowCmd() *cobra.Command {
	var withReviews bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a tourist spot in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid spot id %q", args[0])
			}

			spot, err := apiClient.Spots.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			printSpotDetail(*spot)

			if withReviews {
				page, err := apiClient.Reviews.ListBySpot(cmd.Context(), id, 20, 0)
				if err != nil {
					return err
				}
				fmt.Println()
				fmt.Println(i18n.Td("spots.reviews", map[string]interface{}{"Count": page.Count}))
				if len(page.Results) == 0 {
					fmt.Println(i18n.T("reviews.none"))
					return nil
				}
				for _, review := range page.Results {
					printReviewLine(review)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withReviews, "reviews", false, "Include the spot's reviews")
	return cmd
}

func newSpotsRecommendedCmd() *cobra.Command {
	var (
		activityID string
		locationID string
	)

	cmd := &cobra.Command{
		Use:   "recommended",
		Short: "List spots matching your preferred activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd); err != nil {
				return err
			}
			if activityID == "" {
				activityID = api.RecommendAll
			}
			if locationID == "" {
				locationID = api.RecommendAll
			}

			spots, err := apiClient.Spots.Recommended(cmd.Context(), activityID, locationID)
			if err != nil {
				return err
			}
			if len(spots) == 0 {
				fmt.Println(i18n.T("spots.none"))
				return nil
			}
			for _, spot := range spots {
				printSpotLine(spot)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&activityID, "activity", "", "Filter by activity id")
	cmd.Flags().StringVar(&locationID, "location", "", "Filter by location id")
	return cmd
}

func printSpotLine(spot model.Spot) {
	location := ""
	if spot.Location.Name != "" {
		location = " @ " + spot.Location.Name
	}
	fmt.Printf("%4d  %s%s  (%.1f★, %d reviews)\n",
		spot.ID, spot.Name, location, spot.AverageRating, spot.NumReviews)
}

func printSpotDetail(spot model.Spot) {
	printSpotLine(spot)
	if spot.Description != "" {
		fmt.Printf("  %s\n", truncate(spot.Description, 400))
	}
	if spot.Latitude != 0 || spot.Longitude != 0 {
		fmt.Printf("  coordinates: %f, %f\n", spot.Latitude, spot.Longitude)
	}
}

func newActivitiesCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "activities",
		Short: "List the activity catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd); err != nil {
				return err
			}
			activities, err := apiClient.Catalog.Activities(cmd.Context(), all)
			if err != nil {
				return err
			}
			for _, activity := range activities {
				fmt.Printf("%4d  %s\n", activity.ID, activity.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Fetch the full catalog in one request")
	return cmd
}

func newLocationsCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List the location catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd); err != nil {
				return err
			}
			locations, err := apiClient.Catalog.Locations(cmd.Context(), all)
			if err != nil {
				return err
			}
			for _, location := range locations {
				fmt.Printf("%4d  %s\n", location.ID, location.Name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Fetch the full catalog in one request")
	return cmd
}

// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rutero-app/rutero/internal/api"
	"github.com/rutero-app/rutero/internal/i18n"
	"github.com/rutero-app/rutero/internal/model"
)

func newReviewsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Read and write spot reviews",
	}
	cmd.AddCommand(
		newReviewsListCmd(),
		newReviewsMineCmd(),
		newReviewsAddCmd(),
		newReviewsEditCmd(),
		newReviewsDeleteCmd(),
	)
	return cmd
}

func newReviewsListCmd() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "list <spot-id>",
		Short: "List a spot's reviews, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd); err != nil {
				return err
			}
			spotID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid spot id %q", args[0])
			}

			page, err := apiClient.Reviews.ListBySpot(cmd.Context(), spotID, limit, offset)
			if err != nil {
				return err
			}
			if len(page.Results) == 0 {
				fmt.Println(i18n.T("reviews.none"))
				return nil
			}
			for _, review := range page.Results {
				printReviewLine(review)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")
	return cmd
}

func newReviewsMineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mine <spot-id>",
		Short: "Show your own review of a spot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd); err != nil {
				return err
			}
			spotID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid spot id %q", args[0])
			}

			review, err := apiClient.Reviews.UserReview(cmd.Context(), spotID)
			if err != nil {
				return err
			}
			if review == nil {
				fmt.Println(i18n.T("reviews.none"))
				return nil
			}
			printReviewLine(*review)
			return nil
		},
	}
}

func newReviewsAddCmd() *cobra.Command {
	var (
		rating  int
		comment string
	)

	cmd := &cobra.Command{
		Use:   "add <spot-id>",
		Short: "Review a spot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd); err != nil {
				return err
			}
			spotID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid spot id %q", args[0])
			}
			if rating < 1 || rating > 5 {
				return fmt.Errorf("rating must be between 1 and 5")
			}

			_, err = apiClient.Reviews.Create(cmd.Context(), api.ReviewParams{
				Comment:     comment,
				Rating:      rating,
				TouristSpot: spotID,
			})
			if err != nil {
				return err
			}
			fmt.Println(i18n.T("reviews.saved"))
			return nil
		},
	}

	cmd.Flags().IntVarP(&rating, "rating", "r", 0, "Rating from 1 to 5 (required)")
	cmd.Flags().StringVarP(&comment, "comment", "m", "", "Review text")
	_ = cmd.MarkFlagRequired("rating")
	return cmd
}

func newReviewsEditCmd() *cobra.Command {
	var (
		rating  int
		comment string
	)

	cmd := &cobra.Command{
		Use:   "edit <spot-id>",
		Short: "Update your review of a spot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd); err != nil {
				return err
			}
			spotID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid spot id %q", args[0])
			}

			existing, err := apiClient.Reviews.UserReview(cmd.Context(), spotID)
			if err != nil {
				return err
			}
			if existing == nil {
				fmt.Println(i18n.T("reviews.none"))
				return nil
			}

			params := api.ReviewParams{
				Comment:     existing.Comment,
				Rating:      existing.Rating,
				TouristSpot: spotID,
			}
			if cmd.Flags().Changed("rating") {
				if rating < 1 || rating > 5 {
					return fmt.Errorf("rating must be between 1 and 5")
				}
				params.Rating = rating
			}
			if cmd.Flags().Changed("comment") {
				params.Comment = comment
			}

			if _, err := apiClient.Reviews.Update(cmd.Context(), existing.ID, params); err != nil {
				return err
			}
			fmt.Println(i18n.T("reviews.saved"))
			return nil
		},
	}

	cmd.Flags().IntVarP(&rating, "rating", "r", 0, "New rating from 1 to 5")
	cmd.Flags().StringVarP(&comment, "comment", "m", "", "New review text")
	return cmd
}

func newReviewsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <spot-id>",
		Short: "Delete your review of a spot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd); err != nil {
				return err
			}
			spotID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid spot id %q", args[0])
			}

			existing, err := apiClient.Reviews.UserReview(cmd.Context(), spotID)
			if err != nil {
				return err
			}
			if existing == nil {
				fmt.Println(i18n.T("reviews.none"))
				return nil
			}
			if err := apiClient.Reviews.Delete(cmd.Context(), existing.ID); err != nil {
				return err
			}
			fmt.Println(i18n.T("reviews.deleted"))
			return nil
		},
	}
}

func printReviewLine(review model.Review) {
	author := strings.TrimSpace(review.User.FirstName + " " + review.User.LastName)
	if author == "" {
		author = review.User.Email
	}
	stars := strings.Repeat("★", review.Rating) + strings.Repeat("☆", 5-review.Rating)
	fmt.Printf("%s  %s\n", stars, author)
	if review.Comment != "" {
		fmt.Printf("  %s\n", truncate(review.Comment, 200))
	}
}

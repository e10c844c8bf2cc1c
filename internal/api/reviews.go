// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rutero-app/rutero/internal/model"
)

// ReviewService manages spot reviews.
type ReviewService struct {
	c *Client
}

// ReviewParams is the create/update payload for a review.
type ReviewParams struct {
	Comment     string `json:"comment"`
	Rating      int    `json:"rating"`
	TouristSpot int    `json:"tourist_spot"`
}

// ListBySpot returns one page of a spot's reviews, newest first.
func (s *ReviewService) ListBySpot(ctx context.Context, spotID, limit, offset int) (*model.Page[model.Review], error) {
	opts := append(pageOpts(limit, offset), WithQuery("tourist_spot", strconv.Itoa(spotID)))
	resp, err := s.c.Get(ctx, "/reviews/", opts...)
	if err != nil {
		return nil, err
	}
	page, err := Decode[model.Page[model.Review]](resp)
	if err != nil {
		return nil, fmt.Errorf("list reviews for spot %d: %w", spotID, err)
	}
	return &page, nil
}

// UserReview returns the signed-in user's review of a spot, or nil when
// the user has not reviewed it (the server answers 404).
func (s *ReviewService) UserReview(ctx context.Context, spotID int) (*model.Review, error) {
	resp, err := s.c.Get(ctx, "/reviews/user-review/", WithQuery("tourist_spot", strconv.Itoa(spotID)))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	review, err := Decode[model.Review](resp)
	if err != nil {
		return nil, fmt.Errorf("user review for spot %d: %w", spotID, err)
	}
	return &review, nil
}

// Create posts a new review. The server answers 201.
func (s *ReviewService) Create(ctx context.Context, params ReviewParams) (*model.Review, error) {
	resp, err := s.c.Post(ctx, "/reviews/", params)
	if err != nil {
		return nil, err
	}
	review, err := Decode[model.Review](resp)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return &review, nil
}

// Update replaces an existing review.
func (s *ReviewService) Update(ctx context.Context, id int, params ReviewParams) (*model.Review, error) {
	resp, err := s.c.Put(ctx, fmt.Sprintf("/reviews/%d/", id), params)
	if err != nil {
		return nil, err
	}
	review, err := Decode[model.Review](resp)
	if err != nil {
		return nil, fmt.Errorf("update review %d: %w", id, err)
	}
	return &review, nil
}

// Delete removes the user's review.
func (s *ReviewService) Delete(ctx context.Context, id int) error {
	_, err := s.c.Delete(ctx, fmt.Sprintf("/reviews/%d/", id))
	return err
}

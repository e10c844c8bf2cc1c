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

// SpotService reads the tourist-spot catalog.
type SpotService struct {
	c *Client
}

// List returns one page of spots. limit <= 0 leaves the server default.
func (s *SpotService) List(ctx context.Context, limit, offset int) (*model.Page[model.Spot], error) {
	opts := pageOpts(limit, offset)
	resp, err := s.c.Get(ctx, "/tourist-spots/", opts...)
	if err != nil {
		return nil, err
	}
	page, err := Decode[model.Page[model.Spot]](resp)
	if err != nil {
		return nil, fmt.Errorf("list spots: %w", err)
	}
	return &page, nil
}

// ListAll returns the whole catalog in one response, bypassing pagination.
func (s *SpotService) ListAll(ctx context.Context) ([]model.Spot, error) {
	resp, err := s.c.Get(ctx, "/tourist-spots/", WithQuery("all", "true"))
	if err != nil {
		return nil, err
	}
	spots, err := Decode[[]model.Spot](resp)
	if err != nil {
		return nil, fmt.Errorf("list all spots: %w", err)
	}
	return spots, nil
}

// Get returns one spot with its full detail record.
func (s *SpotService) Get(ctx context.Context, id int) (*model.Spot, error) {
	resp, err := s.c.Get(ctx, fmt.Sprintf("/tourist-spots/%d/", id))
	if err != nil {
		return nil, err
	}
	spot, err := Decode[model.Spot](resp)
	if err != nil {
		return nil, fmt.Errorf("get spot %d: %w", id, err)
	}
	return &spot, nil
}

// RecommendAll is the sentinel accepted by Recommended for "no filter".
const RecommendAll = "all"

// Recommended returns the server's ranked picks, optionally filtered by
// activity and/or location. Pass RecommendAll (or an empty string) to
// leave a dimension unfiltered.
func (s *SpotService) Recommended(ctx context.Context, activityID, locationID string) ([]model.Spot, error) {
	if activityID == "" {
		activityID = RecommendAll
	}
	if locationID == "" {
		locationID = RecommendAll
	}
	resp, err := s.c.Get(ctx, "/tourist-spots/recommended/",
		WithQuery("activity_id", activityID),
		WithQuery("location_id", locationID),
	)
	if err != nil {
		return nil, err
	}
	spots, err := Decode[[]model.Spot](resp)
	if err != nil {
		return nil, fmt.Errorf("recommended spots: %w", err)
	}
	return spots, nil
}

// pageOpts translates limit/offset into query options.
func pageOpts(limit, offset int) []RequestOption {
	var opts []RequestOption
	if limit > 0 {
		opts = append(opts, WithQuery("limit", strconv.Itoa(limit)))
	}
	if offset > 0 {
		opts = append(opts, WithQuery("offset", strconv.Itoa(offset)))
	}
	return opts
}

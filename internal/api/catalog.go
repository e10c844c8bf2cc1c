// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"fmt"

	"github.com/rutero-app/rutero/internal/model"
)

// CatalogService reads the activity and location reference lists used to
// filter spots and build preference choices.
type CatalogService struct {
	c *Client
}

// Activities returns one page of the activity catalog, or the full list
// when all is true.
func (s *CatalogService) Activities(ctx context.Context, all bool) ([]model.Activity, error) {
	if all {
		resp, err := s.c.Get(ctx, "/activities-spots/", WithQuery("all", "true"))
		if err != nil {
			return nil, err
		}
		activities, err := Decode[[]model.Activity](resp)
		if err != nil {
			return nil, fmt.Errorf("list activities: %w", err)
		}
		return activities, nil
	}

	resp, err := s.c.Get(ctx, "/activities-spots/")
	if err != nil {
		return nil, err
	}
	page, err := Decode[model.Page[model.Activity]](resp)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return page.Results, nil
}

// Locations returns one page of the location catalog, or the full list
// when all is true.
func (s *CatalogService) Locations(ctx context.Context, all bool) ([]model.Location, error) {
	if all {
		resp, err := s.c.Get(ctx, "/location-spots/", WithQuery("all", "true"))
		if err != nil {
			return nil, err
		}
		locations, err := Decode[[]model.Location](resp)
		if err != nil {
			return nil, fmt.Errorf("list locations: %w", err)
		}
		return locations, nil
	}

	resp, err := s.c.Get(ctx, "/location-spots/")
	if err != nil {
		return nil, err
	}
	page, err := Decode[model.Page[model.Location]](resp)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return page.Results, nil
}

// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"fmt"

	"github.com/rutero-app/rutero/internal/model"
)

// RouteService manages the user's personal itineraries. Route
// auto-generation happens entirely server-side: the client creates an
// empty route shell, reads the generated plan back via Activities, and
// accepts it with Update or rejects it with Delete.
type RouteService struct {
	c *Client
}

// RouteParams is the create/update payload for a route.
type RouteParams struct {
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	DateStart      string                `json:"date_start"`
	DateEnd        string                `json:"date_end"`
	ActivityRoutes []model.ActivityRoute `json:"activity_routes"`
}

// RoutePlan is the payload of the route-activities endpoint, carrying the
// server-generated schedule for a route.
type RoutePlan struct {
	ActivitiesForRoute []model.ActivityRoute `json:"activities_for_route"`
}

// Mine lists the signed-in user's routes.
func (s *RouteService) Mine(ctx context.Context) ([]model.TouristRoute, error) {
	resp, err := s.c.Get(ctx, "/tourist-routes/me")
	if err != nil {
		return nil, err
	}
	routes, err := Decode[[]model.TouristRoute](resp)
	if err != nil {
		return nil, fmt.Errorf("list my routes: %w", err)
	}
	return routes, nil
}

// Get returns one route with its scheduled stops.
func (s *RouteService) Get(ctx context.Context, id int) (*model.TouristRoute, error) {
	resp, err := s.c.Get(ctx, fmt.Sprintf("/tourist-routes/%d", id))
	if err != nil {
		return nil, err
	}
	route, err := Decode[model.TouristRoute](resp)
	if err != nil {
		return nil, fmt.Errorf("get route %d: %w", id, err)
	}
	return &route, nil
}

// Activities returns the server-generated plan for a route.
func (s *RouteService) Activities(ctx context.Context, id int) ([]model.ActivityRoute, error) {
	resp, err := s.c.Get(ctx, fmt.Sprintf("/tourist-routes/%d/activities", id))
	if err != nil {
		return nil, err
	}
	plan, err := Decode[RoutePlan](resp)
	if err != nil {
		return nil, fmt.Errorf("route %d activities: %w", id, err)
	}
	return plan.ActivitiesForRoute, nil
}

// Create makes a new route. The stop list starts empty; manual edits and
// plan acceptance both go through Update.
func (s *RouteService) Create(ctx context.Context, params RouteParams) (*model.TouristRoute, error) {
	if params.ActivityRoutes == nil {
		params.ActivityRoutes = []model.ActivityRoute{}
	}
	resp, err := s.c.Post(ctx, "/tourist-routes/create", params)
	if err != nil {
		return nil, err
	}
	route, err := Decode[model.TouristRoute](resp)
	if err != nil {
		return nil, fmt.Errorf("create route: %w", err)
	}
	return &route, nil
}

// Update replaces a route's fields and stop list. This is also how a
// generated plan is accepted and how a spot is added to an existing route.
func (s *RouteService) Update(ctx context.Context, id int, params RouteParams) (*model.TouristRoute, error) {
	resp, err := s.c.Put(ctx, fmt.Sprintf("/tourist-routes/update/%d", id), params)
	if err != nil {
		return nil, err
	}
	route, err := Decode[model.TouristRoute](resp)
	if err != nil {
		return nil, fmt.Errorf("update route %d: %w", id, err)
	}
	return &route, nil
}

// Delete removes a route; rejecting a generated plan is the same call.
func (s *RouteService) Delete(ctx context.Context, id int) error {
	_, err := s.c.Delete(ctx, fmt.Sprintf("/tourist-routes/delete/%d", id))
	return err
}

// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

// package model defines the core data structures exchanged with the
// tourism-discovery API. Field names and JSON tags follow the remote
// service's wire format.
package model // import "github.com/rutero-app/rutero/internal/model"

import "time"

// UserProfile is the authenticated user's account record as returned by
// the current-user endpoint.
type UserProfile struct {
	ID                  int        `json:"id"`
	LastLogin           *time.Time `json:"last_login"`
	IsSuperuser         bool       `json:"is_superuser"`
	Email               string     `json:"email"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	ImgProfile          string     `json:"img_profile"`
	PhoneNumber         string     `json:"phone_number"`
	IsActive            bool       `json:"is_active"`
	IsStaff             bool       `json:"is_staff"`
	PreferredActivities []int      `json:"preferred_activities"`
}

// FullName returns the user's display name.
func (u UserProfile) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// Activity is a category of things to do (hiking, gastronomy, ...).
type Activity struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Location is a named geographic area spots belong to.
type Location struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SpotImage is a single gallery image of a spot.
type SpotImage struct {
	Image string `json:"image"`
}

// Spot is a point of interest users browse, review and add to routes.
type Spot struct {
	ID            int         `json:"id"`
	Name          string      `json:"name"`
	Images        []SpotImage `json:"images"`
	Location      Location    `json:"location"`
	AverageRating float64     `json:"average_rating"`
	NumReviews    int         `json:"num_reviews"`
	Latitude      float64     `json:"latitude"`
	Longitude     float64     `json:"longitude"`
	Description   string      `json:"description"`
	Activities    []Activity  `json:"activities"`
}

// ReviewUser is the author summary embedded in a review.
type ReviewUser struct {
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	ImgProfile string `json:"img_profile"`
}

// Review is a user's rating and comment on a spot.
type Review struct {
	ID          int        `json:"id"`
	TouristSpot int        `json:"tourist_spot"`
	User        ReviewUser `json:"user"`
	Comment     string     `json:"comment"`
	Rating      int        `json:"rating"`
	CreatedAt   string     `json:"created_at"`
}

// ActivityRoute is one scheduled stop of a route. The server's automatic
// planner fills Spot and Activity; manual edits only carry the spot id.
type ActivityRoute struct {
	ID          int    `json:"id,omitempty"`
	Date        string `json:"date"`
	TouristSpot int    `json:"tourist_spot"`
	Spot        *Spot  `json:"spot,omitempty"`
	Activity    string `json:"activity,omitempty"`
}

// TouristRoute is a personal multi-day itinerary. Date fields are
// calendar dates in YYYY-MM-DD form, as the API serves them.
type TouristRoute struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	DateStart      string          `json:"date_start"`
	DateEnd        string          `json:"date_end"`
	ActivityRoutes []ActivityRoute `json:"activity_routes"`
}

// Page is the offset/limit page shape list endpoints return.
type Page[T any] struct {
	Results []T     `json:"results"`
	Count   int     `json:"count"`
	Next    *string `json:"next"`
}

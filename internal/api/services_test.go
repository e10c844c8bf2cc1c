// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthCreateToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/jwt/create/" {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}
		var creds map[string]string
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if creds["email"] != "ana@example.com" || creds["password"] != "secret" {
			t.Errorf("credentials = %v", creds)
		}
		json.NewEncoder(w).Encode(map[string]string{"access": "jwt-token"})
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	token, err := c.Auth.CreateToken(context.Background(), "ana@example.com", "secret")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if token != "jwt-token" {
		t.Errorf("token = %q, want %q", token, "jwt-token")
	}
}

func TestAuthMe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/users/me/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"id":7,"email":"ana@example.com","first_name":"Ana","last_name":"García"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, func() string { return "tok" })
	profile, err := c.Auth.Me(context.Background())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if profile.ID != 7 || profile.FullName() != "Ana García" {
		t.Errorf("profile = %+v", profile)
	}
}

func TestSpotsListPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("limit") != "10" || q.Get("offset") != "20" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`{"results":[{"id":1,"name":"Mirador"}],"count":31,"next":"/tourist-spots/?offset=30"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	page, err := c.Spots.List(context.Background(), 10, 20)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Count != 31 || len(page.Results) != 1 || page.Results[0].Name != "Mirador" {
		t.Errorf("page = %+v", page)
	}
	if page.Next == nil {
		t.Error("Next = nil, want a value")
	}
}

func TestSpotsRecommendedDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("activity_id") != "all" || q.Get("location_id") != "all" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`[{"id":3,"name":"Cascada"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	spots, err := c.Spots.Recommended(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Recommended: %v", err)
	}
	if len(spots) != 1 || spots[0].Name != "Cascada" {
		t.Errorf("spots = %+v", spots)
	}
}

func TestUserReviewAbsentIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	review, err := c.Reviews.UserReview(context.Background(), 5)
	if err != nil {
		t.Fatalf("UserReview: %v", err)
	}
	if review != nil {
		t.Errorf("review = %+v, want nil", review)
	}
}

func TestRouteCreateSendsEmptyStopList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tourist-routes/create" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var body map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if string(body["activity_routes"]) != "[]" {
			t.Errorf("activity_routes = %s, want []", body["activity_routes"])
		}
		w.Write([]byte(`{"id":9,"name":"Finde"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	route, err := c.Routes.Create(context.Background(), RouteParams{Name: "Finde"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if route.ID != 9 {
		t.Errorf("route = %+v", route)
	}
}

func TestRouteActivitiesUnwrapsPlan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tourist-routes/9/activities" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"activities_for_route":[{"date":"2026-09-01","tourist_spot":3,"activity":"Senderismo"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	plan, err := c.Routes.Activities(context.Background(), 9)
	if err != nil {
		t.Fatalf("Activities: %v", err)
	}
	if len(plan) != 1 || plan[0].TouristSpot != 3 || plan[0].Activity != "Senderismo" {
		t.Errorf("plan = %+v", plan)
	}
}

func TestCatalogActivitiesAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/activities-spots/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("all") != "true" {
			t.Errorf("query = %v", r.URL.Query())
		}
		w.Write([]byte(`[{"id":1,"name":"Senderismo"},{"id":2,"name":"Gastronomía"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	activities, err := c.Catalog.Activities(context.Background(), true)
	if err != nil {
		t.Fatalf("Activities: %v", err)
	}
	if len(activities) != 2 {
		t.Errorf("activities = %+v", activities)
	}
}

func TestCatalogLocationsPaged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"id":4,"name":"Valle Norte"}],"count":1,"next":null}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	locations, err := c.Catalog.Locations(context.Background(), false)
	if err != nil {
		t.Fatalf("Locations: %v", err)
	}
	if len(locations) != 1 || locations[0].Name != "Valle Norte" {
		t.Errorf("locations = %+v", locations)
	}
}

func TestResetPasswordUnregisteredPhone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/send-reset-password-code/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		http.Error(w, `{"detail":"not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	err := c.Auth.SendResetPasswordCode(context.Background(), "+5355512345")
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *api.Error", err)
	}
	if !IsNotFound(err) {
		t.Errorf("status = %d, want 404", apiErr.Status)
	}
}

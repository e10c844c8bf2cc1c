// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func mustParseQuery(t *testing.T, rawURL string) url.Values {
	t.Helper()
	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("parse %q: %v", rawURL, err)
	}
	return u.Query()
}

func TestBearerAttachedFromTokenSource(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, func() string { return "tok123" })
	if _, err := c.Get(context.Background(), "/anything/"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok123")
	}
}

func TestNoBearerWhenTokenEmpty(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, func() string { return "" })
	if _, err := c.Get(context.Background(), "/anything/"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestCallerHeaderWinsOverAmbientToken(t *testing.T) {
	var gotAuth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Values("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, func() string { return "ambient" })
	if _, err := c.Get(context.Background(), "/me/", WithBearer("explicit")); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(gotAuth) != 1 || gotAuth[0] != "Bearer explicit" {
		t.Errorf("Authorization = %v, want exactly [Bearer explicit]", gotAuth)
	}
}

func TestErrorPreservesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"bad credentials"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Post(context.Background(), "/auth/jwt/create/", map[string]string{})
	if err == nil {
		t.Fatal("expected an error for a 401 response")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("error is %T, want *Error", err)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Errorf("Status = %d, want 401", apiErr.Status)
	}
	if string(apiErr.Body) != `{"detail":"bad credentials"}` {
		t.Errorf("Body = %q", apiErr.Body)
	}
	if !IsUnauthorized(err) {
		t.Error("IsUnauthorized = false")
	}
	if IsNotFound(err) {
		t.Error("IsNotFound = true for a 401")
	}
}

func TestQueryMergedWithPathQuery(t *testing.T) {
	var gotURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.String()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Get(context.Background(), "/tourist-spots/?page=2", WithQuery("all", "true"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	q := mustParseQuery(t, gotURL)
	if q.Get("page") != "2" || q.Get("all") != "true" {
		t.Errorf("query = %q, want page=2 and all=true", gotURL)
	}
}

func TestDecodeEmptyBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}
	v, err := Decode[payload](&Response{Status: http.StatusNoContent})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if v.Name != "" {
		t.Errorf("Decode = %+v, want zero value", v)
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	_, err := Decode[map[string]string](&Response{Data: []byte("nope"), Status: 200})
	if err == nil {
		t.Fatal("Decode accepted invalid JSON")
	}
}

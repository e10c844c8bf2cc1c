// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is returned for any non-2xx response. It preserves the status
// code and the raw body so callers can branch on specific statuses
// (401/403/404/410 all carry meaning to different commands).
type Error struct {
	Status int
	Body   []byte
	Method string
	Path   string
}

func (e *Error) Error() string {
	if len(e.Body) > 0 {
		return fmt.Sprintf("api: %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Body)
	}
	return fmt.Sprintf("api: %s %s: status %d", e.Method, e.Path, e.Status)
}

// IsStatus reports whether err is an API error with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// IsUnauthorized reports whether err is a 401 from the remote API.
func IsUnauthorized(err error) bool {
	return IsStatus(err, http.StatusUnauthorized)
}

// IsNotFound reports whether err is a 404 from the remote API.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}

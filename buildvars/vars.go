// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars contains variables injected at build time.
package buildvars

// Version is set at link time via `-ldflags -X github.com/rutero-app/rutero/buildvars.Version=...`.
// It will be empty for local or development builds.
var Version string

// Commit is set at link time with the short commit SHA.
var Commit string

// Date is set at link time with the RFC3339 build timestamp.
var Date string

// VersionOrDefault returns Version if set, otherwise the provided default.
func VersionOrDefault(def string) string {
	if len(Version) > 0 {
		return Version
	}
	return def
}

// Copyright (c) 2026 Rutero Team
// Rutero - tourism discovery companion
// This source code is licensed under the MIT license found in the LICENSE file.

// package session owns the authentication state of the running app: the
// bearer token, the cached user profile and the last user-visible error.
// It keeps that state synchronized with the durable store so a relaunch
// silently resumes the previous session.
package session // import "github.com/rutero-app/rutero/internal/session"

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rutero-app/rutero/internal/api"
	"github.com/rutero-app/rutero/internal/i18n"
	"github.com/rutero-app/rutero/internal/logging"
	"github.com/rutero-app/rutero/internal/model"
	"github.com/rutero-app/rutero/internal/store"
)

// State is the manager's coarse authentication state.
type State int

const (
	// StateUnknown means the persisted token has not been read yet.
	StateUnknown State = iota
	// StateUnauthenticated means no valid token is held.
	StateUnauthenticated
	// StateAuthenticated means a token is held; the profile is either
	// present or being fetched.
	StateAuthenticated
)

// Manager is the single source of truth for session state. All methods
// are safe for concurrent use.
type Manager struct {
	cache  *store.Cache
	client *api.Client

	mu       sync.RWMutex
	token    string
	profile  *model.UserProfile
	errMsg   string
	hydrated bool
	// gen is bumped on every sign-in and sign-out; a profile fetch whose
	// generation is stale by the time it completes is discarded, so a slow
	// response can never repopulate state after a sign-out.
	gen uint64
}

// New creates a Manager over the given cache and API client. The client's
// TokenSource should read the same cache (see ui/cli for the wiring).
func New(cache *store.Cache, client *api.Client) *Manager {
	return &Manager{cache: cache, client: client}
}

// Rehydrate restores session state from the durable store. A cached
// profile is published immediately so the UI can render before the
// network round trip; when a token is present but no profile was cached,
// a profile fetch is issued automatically.
func (m *Manager) Rehydrate(ctx context.Context) {
	token, _ := m.cache.Value(ctx, store.KeySession)

	var cached *model.UserProfile
	if raw, ok := m.cache.Value(ctx, store.KeyUserProfile); ok && raw != "" {
		var p model.UserProfile
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			logging.Warnf("session: discarding unreadable cached profile: %v", err)
		} else {
			cached = &p
		}
	}

	m.mu.Lock()
	m.token = token
	if m.profile == nil {
		m.profile = cached
	}
	m.hydrated = true
	needsFetch := m.token != "" && m.profile == nil
	m.mu.Unlock()

	if needsFetch {
		_ = m.FetchUserProfile(ctx, token)
	}
}

// SignIn exchanges credentials for a token. Rejected credentials set a
// user-visible error and return nil; any other failure is returned to the
// caller for contextual handling. On success the token is persisted
// before the profile fetch is triggered.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	m.setErr("")

	token, err := m.client.Auth.CreateToken(ctx, email, password)
	if err != nil {
		if api.IsUnauthorized(err) {
			m.setErr(i18n.T("error.invalid_credentials"))
			return nil
		}
		return err
	}

	m.cache.Set(ctx, store.KeySession, token)

	m.mu.Lock()
	m.token = token
	m.hydrated = true
	m.gen++
	m.mu.Unlock()

	// The profile fetch records its own failure; sign-in itself succeeded.
	_ = m.FetchUserProfile(ctx, token)
	return nil
}

// FetchUserProfile refreshes the profile using the given token. The
// previously cached serialized profile is cleared first; on failure the
// in-memory and persisted copies are both scrubbed and an error message
// is set, so no stale profile is ever observable after a failed refresh.
func (m *Manager) FetchUserProfile(ctx context.Context, token string) error {
	m.mu.RLock()
	gen := m.gen
	m.mu.RUnlock()

	m.cache.Clear(ctx, store.KeyUserProfile)

	profile, err := m.client.Auth.Me(ctx, api.WithBearer(token))

	m.mu.Lock()
	if m.gen != gen {
		// A sign-in or sign-out happened while this fetch was in flight.
		m.mu.Unlock()
		logging.Debugf("session: discarding stale profile fetch")
		return nil
	}
	if err != nil {
		m.profile = nil
		m.errMsg = i18n.T("error.profile_fetch")
		m.mu.Unlock()
		m.cache.Clear(ctx, store.KeyUserProfile)
		return err
	}
	m.profile = profile
	m.errMsg = ""
	// Persist while still holding the lock so a concurrent SignOut cannot
	// clear the store between the generation check and this write.
	if raw, err := json.Marshal(profile); err == nil {
		m.cache.Set(ctx, store.KeyUserProfile, string(raw))
	} else {
		logging.Warnf("session: could not serialize profile: %v", err)
	}
	m.mu.Unlock()
	return nil
}

// SignOut clears the session from memory and from the durable store. It
// is idempotent and safe to call when already signed out.
func (m *Manager) SignOut(ctx context.Context) {
	m.mu.Lock()
	m.token = ""
	m.profile = nil
	m.errMsg = ""
	m.hydrated = true
	m.gen++
	// Clearing under the lock orders the wipe against any in-flight
	// profile persist, so a signed-out store never regains a profile.
	m.cache.Clear(ctx, store.KeySession)
	m.cache.Clear(ctx, store.KeyUserProfile)
	m.mu.Unlock()
}

// Token returns the current bearer token, or "" when unauthenticated.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Profile returns the current user profile, or nil.
func (m *Manager) Profile() *model.UserProfile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profile
}

// Loading reports whether the initial store read is still pending.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.hydrated
}

// Err returns the last user-visible error message, or "" when none.
func (m *Manager) Err() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.errMsg
}

// State returns the coarse authentication state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	switch {
	case !m.hydrated:
		return StateUnknown
	case m.token == "":
		return StateUnauthenticated
	default:
		return StateAuthenticated
	}
}

func (m *Manager) setErr(msg string) {
	m.mu.Lock()
	m.errMsg = msg
	m.mu.Unlock()
}

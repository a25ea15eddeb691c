// Package session owns the authentication state of one client process:
// which credential is active, whether it has been validated, and keeping the
// API adapter in sync with it.
package session

import (
	"context"
	"errors"
	"sync"

	"paygate/internal/api"
	"paygate/internal/logging"
	"paygate/internal/models"
	"paygate/internal/repositories/credentials"
)

// ErrNoCredential reports that no credential is stored. Callers route the
// user to the login flow instead of showing an error banner.
var ErrNoCredential = errors.New("no stored credential")

// Session is the process-wide authentication state.
//
// Lifecycle: loading → checking stored credential → authenticated or
// unauthenticated. Init runs the check exactly once; Login and Logout move
// between the two terminal states.
//
// Invariant: IsAuthenticated is true if and only if a credential is held,
// and the adapter's credential always equals the session's.
type Session struct {
	client api.Client
	repo   credentials.Repository
	log    logging.Logger

	mu            sync.Mutex
	once          sync.Once
	credential    string
	authenticated bool
	loading       bool
	account       *models.Account
}

// New constructs a Session in the loading state.
func New(client api.Client, repo credentials.Repository, log logging.Logger) *Session {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Session{client: client, repo: repo, log: log.With("component", "session"), loading: true}
}

// Init reads any previously stored credential and, if present, configures
// the adapter and marks the session authenticated. It always concludes by
// clearing the loading flag exactly once, regardless of outcome.
func (s *Session) Init(ctx context.Context) error {
	var initErr error
	s.once.Do(func() {
		defer func() {
			s.mu.Lock()
			s.loading = false
			s.mu.Unlock()
		}()

		stored, err := s.repo.Get(ctx, credentials.KeyAPIKey)
		if err != nil {
			s.log.Error(ctx, "reading stored credential", "error", err)
			initErr = err
			return
		}
		if stored == "" {
			s.log.Debug(ctx, "no stored credential")
			return
		}

		s.mu.Lock()
		s.credential = stored
		s.authenticated = true
		s.mu.Unlock()
		s.client.SetCredential(stored)
		s.log.Info(ctx, "restored stored credential")
	})
	return initErr
}

// Login validates candidate against the gateway. On success the credential
// is persisted, the adapter stays configured with it, and true is returned.
// On any failure — network error or rejection — state and storage are left
// untouched, the adapter is restored to the previous credential, and false
// is returned. Login never surfaces the underlying error to the caller.
func (s *Session) Login(ctx context.Context, candidate string) bool {
	s.mu.Lock()
	previous := s.credential
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	s.client.SetCredential(candidate)

	account, err := s.client.GetAccount(ctx, candidate)
	if err != nil {
		s.log.Warn(ctx, "credential validation failed", "error", err)
		s.client.SetCredential(previous)
		return false
	}

	if err := s.repo.Set(ctx, credentials.KeyAPIKey, candidate); err != nil {
		s.log.Error(ctx, "persisting credential", "error", err)
		s.client.SetCredential(previous)
		return false
	}

	s.mu.Lock()
	s.credential = candidate
	s.authenticated = true
	s.account = account
	s.mu.Unlock()

	s.log.Info(ctx, "login succeeded", "account_id", account.ID)
	return true
}

// Logout clears the stored credential, the adapter credential, and the
// in-memory state.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.repo.Delete(ctx, credentials.KeyAPIKey); err != nil {
		return err
	}

	s.mu.Lock()
	s.credential = ""
	s.authenticated = false
	s.account = nil
	s.mu.Unlock()
	s.client.SetCredential("")

	s.log.Info(ctx, "logged out")
	return nil
}

// IsAuthenticated reports whether a validated (or restored) credential is held.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// IsLoading reports whether the session is still initializing or mid-login.
func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Credential returns the active API key, or "" when unauthenticated.
func (s *Session) Credential() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential
}

// Account returns the account captured at login time, or nil. It is an
// in-memory convenience only and is never persisted.
func (s *Session) Account() *models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account
}

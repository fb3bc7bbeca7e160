package auth

import (
	"context"

	"github.com/VERITAS-IO/dietech-client/internal/api"
)

// Service wraps the auth endpoints. The session credential is a cookie the
// transport's jar carries automatically; the service only maintains the
// session store.
type Service struct {
	api   *api.Client
	store *Store
}

func NewService(client *api.Client, store *Store) *Service {
	return &Service{api: client, store: store}
}

// Login authenticates and records the account in the session store.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*Account, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var acct Account
	if err := s.api.Post(ctx, "/auth/login", req, &acct); err != nil {
		return nil, err
	}
	s.store.SetAccount(acct)
	return &acct, nil
}

// Register creates an account and logs it in.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Account, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var acct Account
	if err := s.api.Post(ctx, "/auth/register", req, &acct); err != nil {
		return nil, err
	}
	s.store.SetAccount(acct)
	return &acct, nil
}

// Logout ends the server session and clears the store. The store is
// cleared even when the server call fails; a dangling local session is
// worse than a dangling server one.
func (s *Service) Logout(ctx context.Context) error {
	err := s.api.Post(ctx, "/auth/logout", nil, nil)
	s.store.Clear()
	return err
}

package auth

import "sync"

// Store holds the session state: whether a user is logged in and who.
// Clear is also the global 401 hook; an unauthorized response from any
// endpoint empties the store so the next render falls back to the public
// login route.
type Store struct {
	mu       sync.Mutex
	account  *Account
	loggedIn bool
}

func NewStore() *Store {
	return &Store{}
}

// SetAccount records a successful login.
func (s *Store) SetAccount(a Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = &a
	s.loggedIn = true
}

// Account returns the logged-in account, or nil.
func (s *Store) Account() *Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account == nil {
		return nil
	}
	a := *s.account
	return &a
}

// LoggedIn reports whether a session is active.
func (s *Store) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

// Clear drops the session. Wired as the HTTP client's unauthorized hook.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = nil
	s.loggedIn = false
}

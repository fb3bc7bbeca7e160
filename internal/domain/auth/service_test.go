package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VERITAS-IO/dietech-client/internal/api"
)

func authServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password != "hunter42x" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{
				"title": "Unauthorized", "status": 401, "detail": "bad credentials",
			})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "dietech_session", Value: "tok"})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Account{ID: 1, Username: req.Username})
	})
	mux.HandleFunc("GET /api/v1/diets", func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("dietech_session"); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{
				"title": "Unauthorized", "status": 401, "detail": "no session",
			})
			return
		}
		w.Write([]byte(`{"items":[],"totalCount":0}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLogin_RecordsAccount(t *testing.T) {
	srv := authServer(t)
	store := NewStore()
	client, err := api.New(srv.URL, api.WithUnauthorizedHook(store.Clear))
	if err != nil {
		t.Fatal(err)
	}
	svc := NewService(client, store)

	acct, err := svc.Login(context.Background(), LoginRequest{Username: "dietitian", Password: "hunter42x"})
	if err != nil {
		t.Fatal(err)
	}
	if acct.Username != "dietitian" || !store.LoggedIn() {
		t.Errorf("login must fill the session store: %+v", acct)
	}
}

func TestUnauthorizedResponse_ClearsSessionStore(t *testing.T) {
	srv := authServer(t)
	store := NewStore()
	store.SetAccount(Account{ID: 1, Username: "stale"})
	client, err := api.New(srv.URL, api.WithUnauthorizedHook(store.Clear))
	if err != nil {
		t.Fatal(err)
	}

	var out map[string]any
	err = client.Get(context.Background(), "/api/v1/diets", nil, &out)
	if !errors.Is(err, api.ErrUnauthorized) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	if store.LoggedIn() {
		t.Error("a 401 from any endpoint must clear the session store")
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	req := RegisterRequest{
		Username:        "dietitian_1",
		Email:           "d@example.com",
		Password:        "sup3rsecret",
		ConfirmPassword: "sup3rsecret",
	}
	if err := req.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	req.ConfirmPassword = "different1"
	if err := req.Validate(); err == nil {
		t.Error("expected confirmation mismatch error")
	}
	if req.ConfirmationMatches() {
		t.Error("live match check must report mismatch")
	}
}

func TestRegisterRequest_PasswordPolicy(t *testing.T) {
	req := RegisterRequest{
		Username:        "dietitian_1",
		Email:           "d@example.com",
		Password:        "short1",
		ConfirmPassword: "short1",
	}
	if err := req.Validate(); err == nil {
		t.Error("expected password policy error")
	}
}

func TestLogout_ClearsStoreEvenOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	store := NewStore()
	store.SetAccount(Account{ID: 1})
	client, err := api.New(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if err := NewService(client, store).Logout(context.Background()); err == nil {
		t.Error("server failure must surface")
	}
	if store.LoggedIn() {
		t.Error("logout must clear the local session regardless")
	}
}

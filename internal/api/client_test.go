package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestClient_GetDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/diets" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("pageNumber") != "2" {
			t.Errorf("query not forwarded: %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(map[string]any{"items": []string{"a"}, "totalCount": 1})
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := url.Values{}
	q.Set("pageNumber", "2")
	var out struct {
		Items      []string `json:"items"`
		TotalCount int      `json:"totalCount"`
	}
	if err := c.Get(context.Background(), "/api/v1/diets", q, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TotalCount != 1 || len(out.Items) != 1 {
		t.Errorf("unexpected response: %+v", out)
	}
}

func TestClient_DecodesProblemDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(Problem{Title: "Validation failed", Status: 400, Detail: "name is required"})
	}))
	defer srv.Close()

	c, _ := New(srv.URL)
	err := c.Post(context.Background(), "/api/v1/diets", map[string]string{}, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	var p *Problem
	if !errors.As(err, &p) {
		t.Fatalf("expected *Problem, got %T", err)
	}
	if p.Title != "Validation failed" || p.Detail != "name is required" {
		t.Errorf("unexpected problem: %+v", p)
	}
}

func TestClient_NonProblemBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	c, _ := New(srv.URL)
	err := c.Delete(context.Background(), "/api/v1/diets/1")
	var p *Problem
	if !errors.As(err, &p) {
		t.Fatalf("expected *Problem, got %T", err)
	}
	if p.Status != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", p.Status)
	}
}

func TestClient_NotFoundSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(Problem{Title: "Not Found", Status: 404})
	}))
	defer srv.Close()

	c, _ := New(srv.URL)
	err := c.Get(context.Background(), "/api/v1/diets/99", nil, &struct{}{})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_UnauthorizedHookRunsOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(Problem{Title: "Unauthorized", Status: 401})
	}))
	defer srv.Close()

	calls := 0
	c, _ := New(srv.URL, WithUnauthorizedHook(func() { calls++ }))
	err := c.Get(context.Background(), "/appointments", nil, &struct{}{})
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected hook to run once, ran %d times", calls)
	}
}

func TestClient_CookiesPersistAcrossRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			http.SetCookie(w, &http.Cookie{Name: "dietech_session", Value: "tok", Path: "/"})
			w.WriteHeader(http.StatusOK)
		default:
			if _, err := r.Cookie("dietech_session"); err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(Problem{Title: "Unauthorized", Status: 401})
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("{}"))
		}
	}))
	defer srv.Close()

	c, _ := New(srv.URL)
	if err := c.Post(context.Background(), "/auth/login", map[string]string{"username": "u"}, nil); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if err := c.Get(context.Background(), "/api/v1/diets", nil, &struct{}{}); err != nil {
		t.Fatalf("session cookie not carried: %v", err)
	}
}

func TestProblem_Error(t *testing.T) {
	p := &Problem{Title: "Bad Request", Status: 400, Detail: "name is required"}
	want := "Bad Request (400): name is required"
	if p.Error() != want {
		t.Errorf("expected %q, got %q", want, p.Error())
	}
	p = &Problem{Title: "Not Found", Status: 404}
	if p.Error() != "Not Found (404)" {
		t.Errorf("unexpected message %q", p.Error())
	}
}

package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the two failure classes call sites branch on. A 404 on
// a detail fetch renders as an inline not-found state and a 401 is handled
// globally, so both need to be recognizable with errors.Is.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// Problem is the problem-details error payload the API returns on failure.
type Problem struct {
	Type   string `json:"type,omitempty"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (p *Problem) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("%s (%d): %s", p.Title, p.Status, p.Detail)
	}
	return fmt.Sprintf("%s (%d)", p.Title, p.Status)
}

// Is maps the problem status onto the package sentinels so callers can use
// errors.Is without inspecting status codes themselves.
func (p *Problem) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return p.Status == http.StatusNotFound
	case ErrUnauthorized:
		return p.Status == http.StatusUnauthorized
	}
	return false
}

// genericProblem builds a fallback problem for responses that did not carry
// a decodable problem-details body.
func genericProblem(status int) *Problem {
	return &Problem{
		Title:  http.StatusText(status),
		Status: status,
		Detail: "the server returned an unexpected response",
	}
}

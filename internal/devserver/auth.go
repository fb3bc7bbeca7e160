package devserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VERITAS-IO/dietech-client/internal/domain/auth"
)

func (s *Server) login(c echo.Context) error {
	var req auth.LoginRequest
	if err := c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "malformed login payload")
	}
	if err := req.Validate(); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Validation Failed", err.Error())
	}

	s.mem.mu.Lock()
	acct, ok := s.mem.accounts[req.Username]
	s.mem.mu.Unlock()
	if !ok || acct.password != req.Password {
		return writeProblem(c, http.StatusUnauthorized, "Unauthorized", "invalid username or password")
	}

	cookie, err := s.sess.issue(acct.ID, acct.Username)
	if err != nil {
		return writeProblem(c, http.StatusInternalServerError, "Internal Server Error", "could not issue session")
	}
	c.SetCookie(cookie)
	return c.JSON(http.StatusOK, acct.Account)
}

func (s *Server) register(c echo.Context) error {
	var req auth.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "malformed register payload")
	}
	// Confirmation never travels over the wire, so only the wire fields are
	// checked here.
	if req.Username == "" || req.Email == "" || len(req.Password) < 8 {
		return writeProblem(c, http.StatusBadRequest, "Validation Failed", "username, email and a password of at least 8 characters are required")
	}

	s.mem.mu.Lock()
	if _, exists := s.mem.accounts[req.Username]; exists {
		s.mem.mu.Unlock()
		return writeProblem(c, http.StatusConflict, "Conflict", "username already taken")
	}
	acct := account{
		Account:  auth.Account{ID: s.mem.nextID(), Username: req.Username, Email: req.Email},
		password: req.Password,
	}
	s.mem.accounts[req.Username] = acct
	s.mem.mu.Unlock()

	cookie, err := s.sess.issue(acct.ID, acct.Username)
	if err != nil {
		return writeProblem(c, http.StatusInternalServerError, "Internal Server Error", "could not issue session")
	}
	c.SetCookie(cookie)
	return c.JSON(http.StatusCreated, acct.Account)
}

func (s *Server) logout(c echo.Context) error {
	c.SetCookie(s.sess.expired())
	return c.NoContent(http.StatusNoContent)
}

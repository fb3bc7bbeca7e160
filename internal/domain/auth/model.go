package auth

import (
	"github.com/VERITAS-IO/dietech-client/internal/validate"
)

// LoginRequest is the wire request for /auth/login. The session arrives as
// a cookie; the response body carries the account profile.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var v validate.Errors
	v.Require("username", r.Username)
	v.Require("password", r.Password)
	return v.Err()
}

// RegisterRequest is the wire request for /auth/register. The confirmation
// never travels over the wire; it exists only for the live match check.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
}

func (r *RegisterRequest) Validate() error {
	var v validate.Errors
	v.Require("username", r.Username)
	v.Match("username", r.Username, validate.UsernamePattern, "must be 3-32 letters, digits or underscores")
	v.Require("email", r.Email)
	v.Password("password", r.Password)
	if !validate.PasswordsMatch(r.Password, r.ConfirmPassword) {
		v.Add("confirmPassword", "passwords do not match")
	}
	return v.Err()
}

// ConfirmationMatches is the per-keystroke check a registration form runs
// while the user types the confirmation field.
func (r *RegisterRequest) ConfirmationMatches() bool {
	return validate.PasswordsMatch(r.Password, r.ConfirmPassword)
}

// Account is the profile returned by login and register.
type Account struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

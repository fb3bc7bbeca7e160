// Package validate collects field-level validation errors so a form can
// render them inline per field. Validation always runs before any network
// call; a request with field errors is never submitted.
package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Wire-format constraints shared by the registration and auth forms.
var (
	PhonePattern    = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)
	// At least 8 characters with one letter and one digit.
	passwordLetter = regexp.MustCompile(`[a-zA-Z]`)
	passwordDigit  = regexp.MustCompile(`[0-9]`)
)

// FieldErrors maps field names to messages. It satisfies the error interface
// so a failed validation is an ordinary error return.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f + ": " + e[f]
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Errors accumulates field errors during a validation pass. The zero value
// is ready to use.
type Errors struct {
	fields FieldErrors
}

func (v *Errors) add(field, msg string) {
	if v.fields == nil {
		v.fields = FieldErrors{}
	}
	if _, seen := v.fields[field]; !seen {
		v.fields[field] = msg
	}
}

// Require records an error when value is blank.
func (v *Errors) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "is required")
	}
}

// RangeInt records an error when n falls outside [min, max].
func (v *Errors) RangeInt(field string, n, min, max int) {
	if n < min || n > max {
		v.add(field, fmt.Sprintf("must be between %d and %d", min, max))
	}
}

// RangeFloat records an error when n falls outside [min, max].
func (v *Errors) RangeFloat(field string, n, min, max float64) {
	if n < min || n > max {
		v.add(field, fmt.Sprintf("must be between %g and %g", min, max))
	}
}

// Positive records an error when n is not greater than zero.
func (v *Errors) Positive(field string, n int) {
	if n <= 0 {
		v.add(field, "must be greater than zero")
	}
}

// OneOf records an error when value is not a member of allowed.
func (v *Errors) OneOf(field, value string, allowed map[string]bool) {
	if value == "" {
		return
	}
	if !allowed[value] {
		v.add(field, fmt.Sprintf("invalid value %q", value))
	}
}

// Match records an error when value does not match the pattern. Blank values
// are skipped so optional fields compose with Require.
func (v *Errors) Match(field, value string, pattern *regexp.Regexp, msg string) {
	if value == "" {
		return
	}
	if !pattern.MatchString(value) {
		v.add(field, msg)
	}
}

// Password applies the password policy to value.
func (v *Errors) Password(field, value string) {
	if len(value) < 8 {
		v.add(field, "must be at least 8 characters")
		return
	}
	if !passwordLetter.MatchString(value) || !passwordDigit.MatchString(value) {
		v.add(field, "must contain a letter and a digit")
	}
}

// Add records a custom error for field.
func (v *Errors) Add(field, msg string) { v.add(field, msg) }

// Err returns the collected errors, or nil when the pass found none.
func (v *Errors) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return v.fields
}

// PasswordsMatch is the live confirmation check a registration form runs on
// every keystroke. Empty confirmation reports false without an error state.
func PasswordsMatch(password, confirmation string) bool {
	return confirmation != "" && password == confirmation
}

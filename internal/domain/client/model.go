package client

import (
	"net/url"
	"time"

	"github.com/VERITAS-IO/dietech-client/internal/validate"
	"github.com/VERITAS-IO/dietech-client/pkg/pagination"
)

// Gender enumerates the accepted gender values.
type Gender string

const (
	GenderFemale      Gender = "female"
	GenderMale        Gender = "male"
	GenderOther       Gender = "other"
	GenderUndisclosed Gender = "undisclosed"
)

var validGenders = map[string]bool{
	string(GenderFemale): true, string(GenderMale): true,
	string(GenderOther): true, string(GenderUndisclosed): true,
}

// ActivityLevel enumerates lifestyle activity bands.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very-active"
)

var validActivityLevels = map[string]bool{
	string(ActivitySedentary): true, string(ActivityLight): true,
	string(ActivityModerate): true, string(ActivityActive): true,
	string(ActivityVeryActive): true,
}

// ContactInfo is the wizard's first step.
type ContactInfo struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

func (c *ContactInfo) Validate() error {
	var v validate.Errors
	v.Require("firstName", c.FirstName)
	v.Require("lastName", c.LastName)
	v.Require("email", c.Email)
	v.Require("phoneNumber", c.PhoneNumber)
	v.Match("phoneNumber", c.PhoneNumber, validate.PhonePattern, "must be a valid phone number")
	return v.Err()
}

// PersonalInfo is the wizard's second step.
type PersonalInfo struct {
	BirthDate time.Time `json:"birthDate"`
	Gender    Gender    `json:"gender"`
	HeightCM  float64   `json:"heightCm"`
	WeightKG  float64   `json:"weightKg"`
}

func (p *PersonalInfo) Validate() error {
	var v validate.Errors
	if p.BirthDate.IsZero() {
		v.Add("birthDate", "is required")
	}
	v.Require("gender", string(p.Gender))
	v.OneOf("gender", string(p.Gender), validGenders)
	v.RangeFloat("heightCm", p.HeightCM, 50, 250)
	v.RangeFloat("weightKg", p.WeightKG, 20, 400)
	return v.Err()
}

// LifestyleInfo is the wizard's third step.
type LifestyleInfo struct {
	ActivityLevel ActivityLevel `json:"activityLevel"`
	Occupation    string        `json:"occupation,omitempty"`
	SleepHours    int           `json:"sleepHours"`
	Smoker        bool          `json:"smoker"`
}

func (l *LifestyleInfo) Validate() error {
	var v validate.Errors
	v.Require("activityLevel", string(l.ActivityLevel))
	v.OneOf("activityLevel", string(l.ActivityLevel), validActivityLevels)
	v.RangeInt("sleepHours", l.SleepHours, 1, 16)
	return v.Err()
}

// HealthInfo is the wizard's fourth step. Every field is optional.
type HealthInfo struct {
	Allergies         []string `json:"allergies,omitempty"`
	ChronicConditions []string `json:"chronicConditions,omitempty"`
	Medications       []string `json:"medications,omitempty"`
	Notes             string   `json:"notes,omitempty"`
}

func (h *HealthInfo) Validate() error { return nil }

// Client is a registered client with the nested sub-records created together
// through the registration wizard.
type Client struct {
	ID        int64         `json:"id"`
	Contact   ContactInfo   `json:"contact"`
	Personal  PersonalInfo  `json:"personal"`
	Lifestyle LifestyleInfo `json:"lifestyle"`
	Health    HealthInfo    `json:"health"`
}

// RegisterClientRequest is the multi-step registration payload. All four
// sub-records are created together in one request.
type RegisterClientRequest struct {
	Contact   ContactInfo   `json:"contact"`
	Personal  PersonalInfo  `json:"personal"`
	Lifestyle LifestyleInfo `json:"lifestyle"`
	Health    HealthInfo    `json:"health"`
}

func (r *RegisterClientRequest) Validate() error {
	if err := r.Contact.Validate(); err != nil {
		return err
	}
	if err := r.Personal.Validate(); err != nil {
		return err
	}
	if err := r.Lifestyle.Validate(); err != nil {
		return err
	}
	return r.Health.Validate()
}

// Filters is the query-filter state for client lists.
type Filters struct {
	pagination.Params
	Name   string
	SortBy string
}

func DefaultFilters() Filters {
	return Filters{Params: pagination.Default()}
}

func (f Filters) Values() url.Values {
	q := url.Values{}
	f.Params.Normalize().Encode(q)
	if f.Name != "" {
		q.Set("name", f.Name)
	}
	if f.SortBy != "" {
		q.Set("sortBy", f.SortBy)
	}
	return q
}

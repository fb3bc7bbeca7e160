package diet

import (
	"net/url"
	"time"

	"github.com/VERITAS-IO/dietech-client/internal/domain/meal"
	"github.com/VERITAS-IO/dietech-client/internal/validate"
	"github.com/VERITAS-IO/dietech-client/pkg/pagination"
)

// Type enumerates the diet categories.
type Type string

const (
	TypeWeightLoss  Type = "weight-loss"
	TypeWeightGain  Type = "weight-gain"
	TypeMaintenance Type = "maintenance"
	TypeMuscleGain  Type = "muscle-gain"
	TypeMedical     Type = "medical"
	TypeVegetarian  Type = "vegetarian"
)

var validTypes = map[string]bool{
	string(TypeWeightLoss): true, string(TypeWeightGain): true, string(TypeMaintenance): true,
	string(TypeMuscleGain): true, string(TypeMedical): true, string(TypeVegetarian): true,
}

// Diet is the scalar part of a diet record.
type Diet struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	DietDescription string    `json:"dietDescription"`
	DietType        Type      `json:"dietType"`
	DietDuration    int       `json:"dietDuration"`
	TotalCalories   int       `json:"totalCalories"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	IsActive        bool      `json:"isActive"`
}

// Detail is a diet with its ordered meal collection, as returned by the
// detail endpoint.
type Detail struct {
	Diet
	Meals []meal.Meal `json:"meals"`
}

// CreateDietRequest is the wire request for creating a diet. Meals staged
// during the creation session travel inside the same request; they are never
// created through separate meal calls.
type CreateDietRequest struct {
	Name            string                   `json:"name"`
	DietDescription string                   `json:"dietDescription,omitempty"`
	DietType        Type                     `json:"dietType"`
	DietDuration    int                      `json:"dietDuration"`
	TotalCalories   int                      `json:"totalCalories"`
	StartDate       time.Time                `json:"startDate"`
	EndDate         time.Time                `json:"endDate"`
	IsActive        bool                     `json:"isActive"`
	Meals           []meal.CreateMealRequest `json:"meals,omitempty"`
}

func (r *CreateDietRequest) Validate() error {
	var v validate.Errors
	v.Require("name", r.Name)
	v.Require("dietType", string(r.DietType))
	v.OneOf("dietType", string(r.DietType), validTypes)
	v.RangeInt("dietDuration", r.DietDuration, 1, 365)
	v.RangeInt("totalCalories", r.TotalCalories, 500, 10000)
	if !r.StartDate.IsZero() && !r.EndDate.IsZero() && r.EndDate.Before(r.StartDate) {
		v.Add("endDate", "must not be before startDate")
	}
	for _, m := range r.Meals {
		if err := m.Validate(); err != nil {
			v.Add("meals", err.Error())
			break
		}
	}
	return v.Err()
}

// UpdateDietRequest carries only the changed scalar fields plus the staged
// meal operations. A nil scalar is omitted from the payload, and the two
// meal arrays are attached only when non-empty: an absent array means "no
// change", never "remove everything".
type UpdateDietRequest struct {
	Name            *string    `json:"name,omitempty"`
	DietDescription *string    `json:"dietDescription,omitempty"`
	DietType        *Type      `json:"dietType,omitempty"`
	DietDuration    *int       `json:"dietDuration,omitempty"`
	TotalCalories   *int       `json:"totalCalories,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	IsActive        *bool      `json:"isActive,omitempty"`

	MealIdsToRemove []int64                  `json:"mealIdsToRemove,omitempty"`
	NewMealsToAdd   []meal.CreateMealRequest `json:"newMealsToAdd,omitempty"`
}

// Empty reports whether the request would change nothing; an empty request
// must never be sent.
func (r *UpdateDietRequest) Empty() bool {
	return r.Name == nil && r.DietDescription == nil && r.DietType == nil &&
		r.DietDuration == nil && r.TotalCalories == nil && r.StartDate == nil &&
		r.EndDate == nil && r.IsActive == nil &&
		len(r.MealIdsToRemove) == 0 && len(r.NewMealsToAdd) == 0
}

func (r *UpdateDietRequest) Validate() error {
	var v validate.Errors
	if r.Name != nil {
		v.Require("name", *r.Name)
	}
	if r.DietType != nil {
		v.OneOf("dietType", string(*r.DietType), validTypes)
	}
	if r.DietDuration != nil {
		v.RangeInt("dietDuration", *r.DietDuration, 1, 365)
	}
	if r.TotalCalories != nil {
		v.RangeInt("totalCalories", *r.TotalCalories, 500, 10000)
	}
	for _, m := range r.NewMealsToAdd {
		if err := m.Validate(); err != nil {
			v.Add("newMealsToAdd", err.Error())
			break
		}
	}
	return v.Err()
}

// Draft holds the editable scalar fields of a diet form, pre-filled from the
// fetched detail when an edit session starts.
type Draft struct {
	Name            string
	DietDescription string
	DietType        Type
	DietDuration    int
	TotalCalories   int
	StartDate       time.Time
	EndDate         time.Time
	IsActive        bool
}

// NewDraft pre-fills a draft from a fetched diet.
func NewDraft(d Diet) Draft {
	return Draft{
		Name:            d.Name,
		DietDescription: d.DietDescription,
		DietType:        d.DietType,
		DietDuration:    d.DietDuration,
		TotalCalories:   d.TotalCalories,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		IsActive:        d.IsActive,
	}
}

// BuildUpdate diffs the draft against the original fetched values and
// returns a request carrying only the dirty fields. Unchanged fields stay
// nil and are omitted from the payload rather than echoed back.
func BuildUpdate(original Diet, draft Draft) UpdateDietRequest {
	var req UpdateDietRequest
	if draft.Name != original.Name {
		req.Name = &draft.Name
	}
	if draft.DietDescription != original.DietDescription {
		req.DietDescription = &draft.DietDescription
	}
	if draft.DietType != original.DietType {
		req.DietType = &draft.DietType
	}
	if draft.DietDuration != original.DietDuration {
		req.DietDuration = &draft.DietDuration
	}
	if draft.TotalCalories != original.TotalCalories {
		req.TotalCalories = &draft.TotalCalories
	}
	if !draft.StartDate.Equal(original.StartDate) {
		req.StartDate = &draft.StartDate
	}
	if !draft.EndDate.Equal(original.EndDate) {
		req.EndDate = &draft.EndDate
	}
	if draft.IsActive != original.IsActive {
		req.IsActive = &draft.IsActive
	}
	return req
}

// Filters is the query-filter state for diet lists.
type Filters struct {
	pagination.Params
	Name     string
	DietType Type
	Active   *bool
	SortBy   string
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
	if f.DietType != "" {
		q.Set("dietType", string(f.DietType))
	}
	if f.Active != nil {
		if *f.Active {
			q.Set("isActive", "true")
		} else {
			q.Set("isActive", "false")
		}
	}
	if f.SortBy != "" {
		q.Set("sortBy", f.SortBy)
	}
	return q
}

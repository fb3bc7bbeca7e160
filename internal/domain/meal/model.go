package meal

import (
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/VERITAS-IO/dietech-client/internal/validate"
	"github.com/VERITAS-IO/dietech-client/pkg/pagination"
)

// Type enumerates the meal categories.
type Type string

const (
	TypeBreakfast Type = "breakfast"
	TypeLunch     Type = "lunch"
	TypeDinner    Type = "dinner"
	TypeSnack     Type = "snack"
	TypeDessert   Type = "dessert"
	TypeDrink     Type = "drink"
)

var validTypes = map[string]bool{
	string(TypeBreakfast): true, string(TypeLunch): true, string(TypeDinner): true,
	string(TypeSnack): true, string(TypeDessert): true, string(TypeDrink): true,
}

// timeOfDay is the wire format for meal start/end times.
const timeOfDay = "15:04"

// Meal is a persisted meal: it carries a server-assigned id. A meal that has
// not been persisted yet exists only as a Staged value.
type Meal struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	MealType         Type    `json:"mealType"`
	MealOrder        int     `json:"mealOrder"`
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
	DietID           *int64  `json:"dietId,omitempty"`
	NutritionInfoIDs []int64 `json:"nutritionInfoIds,omitempty"`
}

// CreateMealRequest is the wire request for creating a meal, either directly
// or embedded in a diet create/update payload.
type CreateMealRequest struct {
	Name             string  `json:"name"`
	MealType         Type    `json:"mealType"`
	MealOrder        int     `json:"mealOrder"`
	StartTime        string  `json:"startTime"`
	EndTime          string  `json:"endTime"`
	DietID           *int64  `json:"dietId,omitempty"`
	NutritionInfoIDs []int64 `json:"nutritionInfoIds,omitempty"`
}

func (r *CreateMealRequest) Validate() error {
	var v validate.Errors
	v.Require("name", r.Name)
	v.Require("mealType", string(r.MealType))
	v.OneOf("mealType", string(r.MealType), validTypes)
	v.RangeInt("mealOrder", r.MealOrder, 1, 20)
	validateTimeOfDay(&v, "startTime", r.StartTime)
	validateTimeOfDay(&v, "endTime", r.EndTime)
	return v.Err()
}

// UpdateMealRequest carries only the fields to change; a nil field is
// omitted from the payload and leaves the server value untouched.
type UpdateMealRequest struct {
	Name             *string `json:"name,omitempty"`
	MealType         *Type   `json:"mealType,omitempty"`
	MealOrder        *int    `json:"mealOrder,omitempty"`
	StartTime        *string `json:"startTime,omitempty"`
	EndTime          *string `json:"endTime,omitempty"`
	DietID           *int64  `json:"dietId,omitempty"`
	NutritionInfoIDs []int64 `json:"nutritionInfoIds,omitempty"`
}

func (r *UpdateMealRequest) Validate() error {
	var v validate.Errors
	if r.Name != nil {
		v.Require("name", *r.Name)
	}
	if r.MealType != nil {
		v.OneOf("mealType", string(*r.MealType), validTypes)
	}
	if r.MealOrder != nil {
		v.RangeInt("mealOrder", *r.MealOrder, 1, 20)
	}
	if r.StartTime != nil {
		validateTimeOfDay(&v, "startTime", *r.StartTime)
	}
	if r.EndTime != nil {
		validateTimeOfDay(&v, "endTime", *r.EndTime)
	}
	return v.Err()
}

func validateTimeOfDay(v *validate.Errors, field, value string) {
	if value == "" {
		v.Require(field, value)
		return
	}
	if _, err := time.Parse(timeOfDay, value); err != nil {
		v.Add(field, "must be a time of day in HH:MM format")
	}
}

// Staged is a meal that exists only in client memory, pending attachment to
// a diet that is itself being created or edited. It is keyed by a local id;
// it never owns a server-assigned one.
type Staged struct {
	LocalID uuid.UUID
	CreateMealRequest
}

// NewStaged wraps a validated create request in a staged meal with a fresh
// local id.
func NewStaged(req CreateMealRequest) Staged {
	return Staged{LocalID: uuid.New(), CreateMealRequest: req}
}

// Filters is the query-filter state for meal lists.
type Filters struct {
	pagination.Params
	Name     string
	MealType Type
	DietID   int64
	SortBy   string
}

// DefaultFilters returns the initial filter state: page 1, fixed page size,
// no field filters.
func DefaultFilters() Filters {
	return Filters{Params: pagination.Default()}
}

// Values canonicalizes the filters into query parameters. Zero-valued field
// filters are omitted.
func (f Filters) Values() url.Values {
	q := url.Values{}
	f.Params.Normalize().Encode(q)
	if f.Name != "" {
		q.Set("name", f.Name)
	}
	if f.MealType != "" {
		q.Set("mealType", string(f.MealType))
	}
	if f.DietID != 0 {
		q.Set("dietId", strconv.FormatInt(f.DietID, 10))
	}
	if f.SortBy != "" {
		q.Set("sortBy", f.SortBy)
	}
	return q
}

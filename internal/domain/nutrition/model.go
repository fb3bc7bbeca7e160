package nutrition

import (
	"net/url"

	"github.com/VERITAS-IO/dietech-client/internal/validate"
	"github.com/VERITAS-IO/dietech-client/pkg/pagination"
)

// ServingUnit enumerates the units a serving size can be expressed in.
type ServingUnit string

const (
	UnitGram       ServingUnit = "g"
	UnitMilliliter ServingUnit = "ml"
	UnitPiece      ServingUnit = "piece"
	UnitCup        ServingUnit = "cup"
	UnitTablespoon ServingUnit = "tbsp"
)

var validUnits = map[string]bool{
	string(UnitGram): true, string(UnitMilliliter): true, string(UnitPiece): true,
	string(UnitCup): true, string(UnitTablespoon): true,
}

// FoodCategory enumerates the food groups a record belongs to.
type FoodCategory string

const (
	CategoryFruit     FoodCategory = "fruit"
	CategoryVegetable FoodCategory = "vegetable"
	CategoryGrain     FoodCategory = "grain"
	CategoryProtein   FoodCategory = "protein"
	CategoryDairy     FoodCategory = "dairy"
	CategoryFat       FoodCategory = "fat"
	CategoryBeverage  FoodCategory = "beverage"
	CategoryOther     FoodCategory = "other"
)

var validCategories = map[string]bool{
	string(CategoryFruit): true, string(CategoryVegetable): true, string(CategoryGrain): true,
	string(CategoryProtein): true, string(CategoryDairy): true, string(CategoryFat): true,
	string(CategoryBeverage): true, string(CategoryOther): true,
}

// Info is a reusable nutrition record referenced by meals many-to-many.
type Info struct {
	ID            int64        `json:"id"`
	FoodName      string       `json:"foodName"`
	ServingSize   float64      `json:"servingSize"`
	ServingUnit   ServingUnit  `json:"servingUnit"`
	FoodCategory  FoodCategory `json:"foodCategory"`
	Calories      float64      `json:"calories"`
	Protein       float64      `json:"protein"`
	Carbohydrates float64      `json:"carbohydrates"`
	Fat           float64      `json:"fat"`
}

// CreateInfoRequest is the wire request for creating a nutrition record.
type CreateInfoRequest struct {
	FoodName      string       `json:"foodName"`
	ServingSize   float64      `json:"servingSize"`
	ServingUnit   ServingUnit  `json:"servingUnit"`
	FoodCategory  FoodCategory `json:"foodCategory"`
	Calories      float64      `json:"calories"`
	Protein       float64      `json:"protein"`
	Carbohydrates float64      `json:"carbohydrates"`
	Fat           float64      `json:"fat"`
}

func (r *CreateInfoRequest) Validate() error {
	var v validate.Errors
	v.Require("foodName", r.FoodName)
	v.RangeFloat("servingSize", r.ServingSize, 0.1, 5000)
	v.Require("servingUnit", string(r.ServingUnit))
	v.OneOf("servingUnit", string(r.ServingUnit), validUnits)
	v.Require("foodCategory", string(r.FoodCategory))
	v.OneOf("foodCategory", string(r.FoodCategory), validCategories)
	v.RangeFloat("calories", r.Calories, 0, 10000)
	v.RangeFloat("protein", r.Protein, 0, 1000)
	v.RangeFloat("carbohydrates", r.Carbohydrates, 0, 1000)
	v.RangeFloat("fat", r.Fat, 0, 1000)
	return v.Err()
}

// UpdateInfoRequest carries only the fields to change.
type UpdateInfoRequest struct {
	FoodName      *string       `json:"foodName,omitempty"`
	ServingSize   *float64      `json:"servingSize,omitempty"`
	ServingUnit   *ServingUnit  `json:"servingUnit,omitempty"`
	FoodCategory  *FoodCategory `json:"foodCategory,omitempty"`
	Calories      *float64      `json:"calories,omitempty"`
	Protein       *float64      `json:"protein,omitempty"`
	Carbohydrates *float64      `json:"carbohydrates,omitempty"`
	Fat           *float64      `json:"fat,omitempty"`
}

func (r *UpdateInfoRequest) Validate() error {
	var v validate.Errors
	if r.FoodName != nil {
		v.Require("foodName", *r.FoodName)
	}
	if r.ServingSize != nil {
		v.RangeFloat("servingSize", *r.ServingSize, 0.1, 5000)
	}
	if r.ServingUnit != nil {
		v.OneOf("servingUnit", string(*r.ServingUnit), validUnits)
	}
	if r.FoodCategory != nil {
		v.OneOf("foodCategory", string(*r.FoodCategory), validCategories)
	}
	if r.Calories != nil {
		v.RangeFloat("calories", *r.Calories, 0, 10000)
	}
	return v.Err()
}

// Filters is the query-filter state for nutrition-info lists. Filtering,
// sorting, and pagination are all server-side.
type Filters struct {
	pagination.Params
	FoodName     string
	FoodCategory FoodCategory
	SortBy       string
}

func DefaultFilters() Filters {
	return Filters{Params: pagination.Default()}
}

func (f Filters) Values() url.Values {
	q := url.Values{}
	f.Params.Normalize().Encode(q)
	if f.FoodName != "" {
		q.Set("foodName", f.FoodName)
	}
	if f.FoodCategory != "" {
		q.Set("foodCategory", string(f.FoodCategory))
	}
	if f.SortBy != "" {
		q.Set("sortBy", f.SortBy)
	}
	return q
}

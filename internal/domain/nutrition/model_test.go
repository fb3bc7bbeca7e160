package nutrition

import "testing"

func validCreate() CreateInfoRequest {
	return CreateInfoRequest{
		FoodName:      "Oatmeal",
		ServingSize:   40,
		ServingUnit:   UnitGram,
		FoodCategory:  CategoryGrain,
		Calories:      150,
		Protein:       5,
		Carbohydrates: 27,
		Fat:           2.5,
	}
}

func TestCreateInfoRequest_Validate(t *testing.T) {
	req := validCreate()
	if err := req.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreateInfoRequest_Invalid(t *testing.T) {
	req := validCreate()
	req.FoodName = ""
	if err := req.Validate(); err == nil {
		t.Error("expected error for missing food name")
	}

	req = validCreate()
	req.ServingUnit = "handful"
	if err := req.Validate(); err == nil {
		t.Error("expected error for invalid serving unit")
	}

	req = validCreate()
	req.Calories = -1
	if err := req.Validate(); err == nil {
		t.Error("expected error for negative calories")
	}
}

func TestUpdateInfoRequest_Validate(t *testing.T) {
	if err := (&UpdateInfoRequest{}).Validate(); err != nil {
		t.Errorf("empty update must validate: %v", err)
	}
	bad := FoodCategory("junk")
	req := UpdateInfoRequest{FoodCategory: &bad}
	if err := req.Validate(); err == nil {
		t.Error("expected error for invalid category")
	}
}

func TestFilters_Values(t *testing.T) {
	f := DefaultFilters()
	f.FoodCategory = CategoryDairy
	f.SortBy = "calories"
	q := f.Values()
	if q.Get("foodCategory") != "dairy" || q.Get("sortBy") != "calories" {
		t.Errorf("filters not encoded: %s", q.Encode())
	}
	if q.Get("pageNumber") != "1" {
		t.Errorf("default page not encoded: %s", q.Encode())
	}
}

package devserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VERITAS-IO/dietech-client/internal/domain/diet"
	"github.com/VERITAS-IO/dietech-client/internal/domain/meal"
	"github.com/VERITAS-IO/dietech-client/pkg/pagination"
)

func (s *Server) listDiets(c echo.Context) error {
	params := pagination.FromContext(c)
	name := c.QueryParam("name")
	dietType := c.QueryParam("dietType")
	active := c.QueryParam("isActive")

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	matched := []diet.Diet{}
	for _, d := range s.mem.diets {
		if name != "" && !containsFold(d.Name, name) {
			continue
		}
		if dietType != "" && string(d.DietType) != dietType {
			continue
		}
		if active == "true" && !d.IsActive {
			continue
		}
		if active == "false" && d.IsActive {
			continue
		}
		matched = append(matched, d)
	}
	return c.JSON(http.StatusOK, pagination.Slice(matched, params))
}

func (s *Server) getDiet(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "invalid diet id")
	}

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	i, ok := s.mem.findDiet(id)
	if !ok {
		return writeProblem(c, http.StatusNotFound, "Not Found", "diet not found")
	}
	return c.JSON(http.StatusOK, diet.Detail{Diet: s.mem.diets[i], Meals: s.mem.dietMeals(id)})
}

func (s *Server) createDiet(c echo.Context) error {
	var req diet.CreateDietRequest
	if err := c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "malformed diet payload")
	}
	if err := req.Validate(); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Validation Failed", err.Error())
	}

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	d := diet.Diet{
		ID:              s.mem.nextID(),
		Name:            req.Name,
		DietDescription: req.DietDescription,
		DietType:        req.DietType,
		DietDuration:    req.DietDuration,
		TotalCalories:   req.TotalCalories,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IsActive:        req.IsActive,
	}
	s.mem.diets = append(s.mem.diets, d)
	for _, mr := range req.Meals {
		s.mem.meals = append(s.mem.meals, s.mealFromRequest(mr, d.ID))
	}
	return c.JSON(http.StatusCreated, map[string]int64{"id": d.ID})
}

func (s *Server) updateDiet(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "invalid diet id")
	}
	var req diet.UpdateDietRequest
	if err := c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "malformed diet payload")
	}
	if err := req.Validate(); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Validation Failed", err.Error())
	}

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	i, ok := s.mem.findDiet(id)
	if !ok {
		return writeProblem(c, http.StatusNotFound, "Not Found", "diet not found")
	}

	d := &s.mem.diets[i]
	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.DietDescription != nil {
		d.DietDescription = *req.DietDescription
	}
	if req.DietType != nil {
		d.DietType = *req.DietType
	}
	if req.DietDuration != nil {
		d.DietDuration = *req.DietDuration
	}
	if req.TotalCalories != nil {
		d.TotalCalories = *req.TotalCalories
	}
	if req.StartDate != nil {
		d.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		d.EndDate = *req.EndDate
	}
	if req.IsActive != nil {
		d.IsActive = *req.IsActive
	}

	// An absent mealIdsToRemove means "no change"; only listed meals go.
	for _, mealID := range req.MealIdsToRemove {
		if j, found := s.mem.findMeal(mealID); found {
			s.mem.meals = append(s.mem.meals[:j], s.mem.meals[j+1:]...)
		}
	}
	for _, mr := range req.NewMealsToAdd {
		s.mem.meals = append(s.mem.meals, s.mealFromRequest(mr, id))
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) deleteDiet(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "invalid diet id")
	}

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	i, ok := s.mem.findDiet(id)
	if !ok {
		return writeProblem(c, http.StatusNotFound, "Not Found", "diet not found")
	}
	s.mem.diets = append(s.mem.diets[:i], s.mem.diets[i+1:]...)

	// Deleting a diet takes its meals with it.
	kept := s.mem.meals[:0]
	for _, v := range s.mem.meals {
		if v.DietID == nil || *v.DietID != id {
			kept = append(kept, v)
		}
	}
	s.mem.meals = kept
	return c.NoContent(http.StatusNoContent)
}

// mealFromRequest persists an embedded meal request under a diet. The
// caller must hold mu.
func (s *Server) mealFromRequest(req meal.CreateMealRequest, dietID int64) meal.Meal {
	return meal.Meal{
		ID:               s.mem.nextID(),
		Name:             req.Name,
		MealType:         req.MealType,
		MealOrder:        req.MealOrder,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		DietID:           &dietID,
		NutritionInfoIDs: req.NutritionInfoIDs,
	}
}

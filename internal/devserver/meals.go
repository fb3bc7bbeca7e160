package devserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/VERITAS-IO/dietech-client/internal/domain/meal"
	"github.com/VERITAS-IO/dietech-client/pkg/pagination"
)

func (s *Server) listMeals(c echo.Context) error {
	params := pagination.FromContext(c)
	name := c.QueryParam("name")
	mealType := c.QueryParam("mealType")
	dietID, _ := strconv.ParseInt(c.QueryParam("dietId"), 10, 64)

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	matched := []meal.Meal{}
	for _, v := range s.mem.meals {
		if name != "" && !containsFold(v.Name, name) {
			continue
		}
		if mealType != "" && string(v.MealType) != mealType {
			continue
		}
		if dietID != 0 && (v.DietID == nil || *v.DietID != dietID) {
			continue
		}
		matched = append(matched, v)
	}
	return c.JSON(http.StatusOK, pagination.Slice(matched, params))
}

func (s *Server) getMeal(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "invalid meal id")
	}

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	i, ok := s.mem.findMeal(id)
	if !ok {
		return writeProblem(c, http.StatusNotFound, "Not Found", "meal not found")
	}
	return c.JSON(http.StatusOK, s.mem.meals[i])
}

func (s *Server) createMeal(c echo.Context) error {
	var req meal.CreateMealRequest
	if err := c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "malformed meal payload")
	}
	if err := req.Validate(); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Validation Failed", err.Error())
	}

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	if req.DietID != nil {
		if _, ok := s.mem.findDiet(*req.DietID); !ok {
			return writeProblem(c, http.StatusBadRequest, "Bad Request", "referenced diet does not exist")
		}
	}
	m := meal.Meal{
		ID:               s.mem.nextID(),
		Name:             req.Name,
		MealType:         req.MealType,
		MealOrder:        req.MealOrder,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		DietID:           req.DietID,
		NutritionInfoIDs: req.NutritionInfoIDs,
	}
	s.mem.meals = append(s.mem.meals, m)
	return c.JSON(http.StatusCreated, map[string]int64{"id": m.ID})
}

func (s *Server) updateMeal(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "invalid meal id")
	}
	var req meal.UpdateMealRequest
	if err := c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "malformed meal payload")
	}
	if err := req.Validate(); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Validation Failed", err.Error())
	}

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	i, ok := s.mem.findMeal(id)
	if !ok {
		return writeProblem(c, http.StatusNotFound, "Not Found", "meal not found")
	}

	m := &s.mem.meals[i]
	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.MealType != nil {
		m.MealType = *req.MealType
	}
	if req.MealOrder != nil {
		m.MealOrder = *req.MealOrder
	}
	if req.StartTime != nil {
		m.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		m.EndTime = *req.EndTime
	}
	if req.DietID != nil {
		m.DietID = req.DietID
	}
	if req.NutritionInfoIDs != nil {
		m.NutritionInfoIDs = req.NutritionInfoIDs
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) deleteMeal(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "invalid meal id")
	}

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	i, ok := s.mem.findMeal(id)
	if !ok {
		return writeProblem(c, http.StatusNotFound, "Not Found", "meal not found")
	}
	s.mem.meals = append(s.mem.meals[:i], s.mem.meals[i+1:]...)
	return c.NoContent(http.StatusNoContent)
}

package devserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VERITAS-IO/dietech-client/internal/domain/nutrition"
	"github.com/VERITAS-IO/dietech-client/pkg/pagination"
)

func (s *Server) listNutrition(c echo.Context) error {
	params := pagination.FromContext(c)
	name := c.QueryParam("foodName")
	category := c.QueryParam("foodCategory")

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	matched := []nutrition.Info{}
	for _, n := range s.mem.nutrition {
		if name != "" && !containsFold(n.FoodName, name) {
			continue
		}
		if category != "" && string(n.FoodCategory) != category {
			continue
		}
		matched = append(matched, n)
	}
	return c.JSON(http.StatusOK, pagination.Slice(matched, params))
}

func (s *Server) getNutrition(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "invalid nutrition-info id")
	}

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	i, ok := s.mem.findNutrition(id)
	if !ok {
		return writeProblem(c, http.StatusNotFound, "Not Found", "nutrition-info not found")
	}
	return c.JSON(http.StatusOK, s.mem.nutrition[i])
}

func (s *Server) createNutrition(c echo.Context) error {
	var req nutrition.CreateInfoRequest
	if err := c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "malformed nutrition-info payload")
	}
	if err := req.Validate(); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Validation Failed", err.Error())
	}

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	n := nutrition.Info{
		ID:            s.mem.nextID(),
		FoodName:      req.FoodName,
		ServingSize:   req.ServingSize,
		ServingUnit:   req.ServingUnit,
		FoodCategory:  req.FoodCategory,
		Calories:      req.Calories,
		Protein:       req.Protein,
		Carbohydrates: req.Carbohydrates,
		Fat:           req.Fat,
	}
	s.mem.nutrition = append(s.mem.nutrition, n)
	return c.JSON(http.StatusCreated, map[string]int64{"id": n.ID})
}

func (s *Server) updateNutrition(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "invalid nutrition-info id")
	}
	var req nutrition.UpdateInfoRequest
	if err := c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "malformed nutrition-info payload")
	}
	if err := req.Validate(); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Validation Failed", err.Error())
	}

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	i, ok := s.mem.findNutrition(id)
	if !ok {
		return writeProblem(c, http.StatusNotFound, "Not Found", "nutrition-info not found")
	}

	n := &s.mem.nutrition[i]
	if req.FoodName != nil {
		n.FoodName = *req.FoodName
	}
	if req.ServingSize != nil {
		n.ServingSize = *req.ServingSize
	}
	if req.ServingUnit != nil {
		n.ServingUnit = *req.ServingUnit
	}
	if req.FoodCategory != nil {
		n.FoodCategory = *req.FoodCategory
	}
	if req.Calories != nil {
		n.Calories = *req.Calories
	}
	if req.Protein != nil {
		n.Protein = *req.Protein
	}
	if req.Carbohydrates != nil {
		n.Carbohydrates = *req.Carbohydrates
	}
	if req.Fat != nil {
		n.Fat = *req.Fat
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) deleteNutrition(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "invalid nutrition-info id")
	}

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	i, ok := s.mem.findNutrition(id)
	if !ok {
		return writeProblem(c, http.StatusNotFound, "Not Found", "nutrition-info not found")
	}
	s.mem.nutrition = append(s.mem.nutrition[:i], s.mem.nutrition[i+1:]...)
	return c.NoContent(http.StatusNoContent)
}

package devserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VERITAS-IO/dietech-client/internal/domain/client"
	"github.com/VERITAS-IO/dietech-client/pkg/pagination"
)

func (s *Server) listClients(c echo.Context) error {
	params := pagination.FromContext(c)
	name := c.QueryParam("name")

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	matched := []client.Client{}
	for _, cl := range s.mem.clients {
		if name != "" && !containsFold(cl.Contact.FirstName+" "+cl.Contact.LastName, name) {
			continue
		}
		matched = append(matched, cl)
	}
	return c.JSON(http.StatusOK, pagination.Slice(matched, params))
}

func (s *Server) getClient(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "invalid client id")
	}

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	i, ok := s.mem.findClient(id)
	if !ok {
		return writeProblem(c, http.StatusNotFound, "Not Found", "client not found")
	}
	return c.JSON(http.StatusOK, s.mem.clients[i])
}

// registerClient accepts the multi-step registration payload: the client
// and all four sub-records are created together in one request.
func (s *Server) registerClient(c echo.Context) error {
	var req client.RegisterClientRequest
	if err := c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "malformed registration payload")
	}
	if err := req.Validate(); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Validation Failed", err.Error())
	}

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	cl := client.Client{
		ID:        s.mem.nextID(),
		Contact:   req.Contact,
		Personal:  req.Personal,
		Lifestyle: req.Lifestyle,
		Health:    req.Health,
	}
	s.mem.clients = append(s.mem.clients, cl)
	return c.JSON(http.StatusCreated, map[string]int64{"id": cl.ID})
}

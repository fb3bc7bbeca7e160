package devserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/VERITAS-IO/dietech-client/internal/domain/appointment"
	"github.com/VERITAS-IO/dietech-client/pkg/pagination"
)

func (s *Server) listAppointments(c echo.Context) error {
	params := pagination.FromContext(c)
	clientID, _ := strconv.ParseInt(c.QueryParam("clientId"), 10, 64)
	status := c.QueryParam("status")
	from, _ := time.Parse(time.RFC3339, c.QueryParam("from"))
	to, _ := time.Parse(time.RFC3339, c.QueryParam("to"))

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	matched := []appointment.Appointment{}
	for _, a := range s.mem.appointments {
		if clientID != 0 && a.ClientID != clientID {
			continue
		}
		if status != "" && string(a.Status) != status {
			continue
		}
		if !from.IsZero() && a.StartsAt.Before(from) {
			continue
		}
		if !to.IsZero() && a.StartsAt.After(to) {
			continue
		}
		matched = append(matched, a)
	}
	return c.JSON(http.StatusOK, pagination.Slice(matched, params))
}

func (s *Server) getAppointment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "invalid appointment id")
	}

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	i, ok := s.mem.findAppointment(id)
	if !ok {
		return writeProblem(c, http.StatusNotFound, "Not Found", "appointment not found")
	}
	return c.JSON(http.StatusOK, s.mem.appointments[i])
}

func (s *Server) createAppointment(c echo.Context) error {
	var req appointment.CreateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "malformed appointment payload")
	}
	if err := req.Validate(); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Validation Failed", err.Error())
	}

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	a := appointment.Appointment{
		ID:       s.mem.nextID(),
		Title:    req.Title,
		ClientID: req.ClientID,
		Type:     req.Type,
		Status:   appointment.StatusScheduled,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	}
	s.mem.appointments = append(s.mem.appointments, a)
	return c.JSON(http.StatusCreated, map[string]int64{"id": a.ID})
}

func (s *Server) updateAppointment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "invalid appointment id")
	}
	var req appointment.UpdateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "malformed appointment payload")
	}
	if err := req.Validate(); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Validation Failed", err.Error())
	}

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	i, ok := s.mem.findAppointment(id)
	if !ok {
		return writeProblem(c, http.StatusNotFound, "Not Found", "appointment not found")
	}

	a := &s.mem.appointments[i]
	if req.Status != nil && !appointment.CanTransition(a.Status, *req.Status) {
		return writeProblem(c, http.StatusConflict, "Conflict",
			"status cannot change from "+string(a.Status)+" to "+string(*req.Status))
	}
	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Type != nil {
		a.Type = *req.Type
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
	if req.StartsAt != nil {
		a.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		a.EndsAt = *req.EndsAt
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) deleteAppointment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "invalid appointment id")
	}

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	i, ok := s.mem.findAppointment(id)
	if !ok {
		return writeProblem(c, http.StatusNotFound, "Not Found", "appointment not found")
	}
	s.mem.appointments = append(s.mem.appointments[:i], s.mem.appointments[i+1:]...)
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) addAppointmentNote(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "invalid appointment id")
	}
	var req appointment.CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Bad Request", "malformed note payload")
	}
	req.AppointmentID = id
	if err := req.Validate(); err != nil {
		return writeProblem(c, http.StatusBadRequest, "Validation Failed", err.Error())
	}

	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()
	i, ok := s.mem.findAppointment(id)
	if !ok {
		return writeProblem(c, http.StatusNotFound, "Not Found", "appointment not found")
	}
	note := appointment.Note{
		ID:            s.mem.nextID(),
		AppointmentID: id,
		NoteType:      req.NoteType,
		Text:          req.Text,
		CreatedAt:     time.Now().UTC(),
	}
	s.mem.appointments[i].Notes = append(s.mem.appointments[i].Notes, note)
	return c.JSON(http.StatusCreated, map[string]int64{"id": note.ID})
}

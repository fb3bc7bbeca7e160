package appointment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/VERITAS-IO/dietech-client/internal/api"
	"github.com/VERITAS-IO/dietech-client/internal/querycache"
	"github.com/VERITAS-IO/dietech-client/pkg/pagination"
)

const (
	family   = "appointments"
	basePath = "/appointments"
)

// Service wraps the appointment endpoints, including the per-appointment
// notes sub-resource.
type Service struct {
	api   *api.Client
	cache *querycache.Cache
}

func NewService(client *api.Client, cache *querycache.Cache) *Service {
	return &Service{api: client, cache: cache}
}

// Query lists appointments for the given filters, typically a calendar's
// visible date range.
func (s *Service) Query(ctx context.Context, f Filters) (pagination.Page[Appointment], error) {
	key := querycache.ListKey(family, f.Values())
	if v, ok := s.cache.Get(key); ok {
		return v.(pagination.Page[Appointment]), nil
	}
	token := s.cache.Begin(key)
	var page pagination.Page[Appointment]
	if err := s.api.Get(ctx, basePath, f.Values(), &page); err != nil {
		return pagination.Page[Appointment]{}, err
	}
	s.cache.Complete(key, token, page)
	return page, nil
}

// Get fetches a single appointment with its notes.
func (s *Service) Get(ctx context.Context, id int64) (*Appointment, error) {
	key := querycache.DetailKey(family, id)
	if v, ok := s.cache.Get(key); ok {
		a := v.(Appointment)
		return &a, nil
	}
	token := s.cache.Begin(key)
	var a Appointment
	if err := s.api.Get(ctx, s.path(id), nil, &a); err != nil {
		return nil, err
	}
	s.cache.Complete(key, token, a)
	return &a, nil
}

// Create schedules an appointment and returns its server-assigned id.
func (s *Service) Create(ctx context.Context, req CreateAppointmentRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := s.api.Post(ctx, basePath, req, &resp); err != nil {
		return 0, err
	}
	s.cache.InvalidateAfterMutation(family, resp.ID)
	return resp.ID, nil
}

// Update applies a partial update to an appointment.
func (s *Service) Update(ctx context.Context, id int64, req UpdateAppointmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.api.Put(ctx, s.path(id), req); err != nil {
		return err
	}
	s.cache.InvalidateAfterMutation(family, id)
	return nil
}

// ChangeStatus moves an appointment through its status machine, refusing
// transitions the machine does not allow before any request is sent.
func (s *Service) ChangeStatus(ctx context.Context, id int64, from, to Status) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("appointment status cannot change from %s to %s", from, to)
	}
	req := UpdateAppointmentRequest{Status: &to}
	return s.Update(ctx, id, req)
}

// Delete removes an appointment and its notes.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, s.path(id)); err != nil {
		return err
	}
	s.cache.InvalidateAfterMutation(family, id)
	return nil
}

// AddNote attaches a note to an appointment. A request without an
// appointment id fails locally; no network call is made.
func (s *Service) AddNote(ctx context.Context, req CreateNoteRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := s.api.Post(ctx, s.notesPath(req.AppointmentID), req, &resp); err != nil {
		return 0, err
	}
	s.cache.InvalidateAfterMutation(family, req.AppointmentID)
	return resp.ID, nil
}

func (s *Service) path(id int64) string {
	return fmt.Sprintf("%s/%s", basePath, strconv.FormatInt(id, 10))
}

func (s *Service) notesPath(id int64) string {
	return s.path(id) + "/notes"
}

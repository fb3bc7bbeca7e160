package appointment

import (
	"net/url"
	"strconv"
	"time"

	"github.com/VERITAS-IO/dietech-client/internal/validate"
	"github.com/VERITAS-IO/dietech-client/pkg/pagination"
)

// Type enumerates the appointment categories.
type Type string

const (
	TypeInitialConsult Type = "initial-consultation"
	TypeFollowUp       Type = "follow-up"
	TypeDietReview     Type = "diet-review"
	TypeMeasurement    Type = "measurement"
	TypeOnline         Type = "online"
)

var validTypes = map[string]bool{
	string(TypeInitialConsult): true, string(TypeFollowUp): true,
	string(TypeDietReview): true, string(TypeMeasurement): true,
	string(TypeOnline): true,
}

// Status is the appointment lifecycle state.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

var validStatuses = map[string]bool{
	string(StatusScheduled): true, string(StatusConfirmed): true,
	string(StatusCancelled): true, string(StatusCompleted): true,
}

// transitions is the status state machine. Cancelled and Completed are
// terminal.
var transitions = map[Status][]Status{
	StatusScheduled: {StatusConfirmed, StatusCancelled, StatusCompleted},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether moving from one status to another is
// allowed.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// NoteType tags when during the appointment a note was taken.
type NoteType string

const (
	NotePre    NoteType = "pre"
	NoteDuring NoteType = "during"
	NoteAfter  NoteType = "after"
)

var validNoteTypes = map[string]bool{
	string(NotePre): true, string(NoteDuring): true, string(NoteAfter): true,
}

// Appointment is a scheduled session with a client.
type Appointment struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	ClientID  int64     `json:"clientId"`
	Type      Type      `json:"appointmentType"`
	Status    Status    `json:"status"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	Notes     []Note    `json:"notes,omitempty"`
}

// Note is a free-text note tied to one appointment.
type Note struct {
	ID            int64     `json:"id"`
	AppointmentID int64     `json:"appointmentId"`
	NoteType      NoteType  `json:"noteType"`
	Text          string    `json:"text"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreateAppointmentRequest is the wire request for scheduling an
// appointment. New appointments always start in the scheduled status.
type CreateAppointmentRequest struct {
	Title    string    `json:"title"`
	ClientID int64     `json:"clientId"`
	Type     Type      `json:"appointmentType"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}

func (r *CreateAppointmentRequest) Validate() error {
	var v validate.Errors
	v.Require("title", r.Title)
	if r.ClientID <= 0 {
		v.Add("clientId", "is required")
	}
	v.Require("appointmentType", string(r.Type))
	v.OneOf("appointmentType", string(r.Type), validTypes)
	if r.StartsAt.IsZero() {
		v.Add("startsAt", "is required")
	}
	if r.EndsAt.IsZero() {
		v.Add("endsAt", "is required")
	} else if !r.StartsAt.IsZero() && !r.EndsAt.After(r.StartsAt) {
		v.Add("endsAt", "must be after startsAt")
	}
	return v.Err()
}

// UpdateAppointmentRequest carries only the fields to change. A status
// change is validated against the state machine by the caller, which knows
// the current status.
type UpdateAppointmentRequest struct {
	Title    *string    `json:"title,omitempty"`
	Type     *Type      `json:"appointmentType,omitempty"`
	Status   *Status    `json:"status,omitempty"`
	StartsAt *time.Time `json:"startsAt,omitempty"`
	EndsAt   *time.Time `json:"endsAt,omitempty"`
}

func (r *UpdateAppointmentRequest) Validate() error {
	var v validate.Errors
	if r.Title != nil {
		v.Require("title", *r.Title)
	}
	if r.Type != nil {
		v.OneOf("appointmentType", string(*r.Type), validTypes)
	}
	if r.Status != nil {
		v.OneOf("status", string(*r.Status), validStatuses)
	}
	return v.Err()
}

// CreateNoteRequest is the wire request for adding a note to an
// appointment. A missing appointment id must fail locally; an orphan note
// is never sent to the server.
type CreateNoteRequest struct {
	AppointmentID int64    `json:"appointmentId"`
	NoteType      NoteType `json:"noteType"`
	Text          string   `json:"text"`
}

func (r *CreateNoteRequest) Validate() error {
	var v validate.Errors
	if r.AppointmentID <= 0 {
		v.Add("appointmentId", "is required")
	}
	v.Require("noteType", string(r.NoteType))
	v.OneOf("noteType", string(r.NoteType), validNoteTypes)
	v.Require("text", r.Text)
	return v.Err()
}

// Filters is the query-filter state for appointment lists, including the
// calendar's visible date range.
type Filters struct {
	pagination.Params
	ClientID int64
	Status   Status
	From     time.Time
	To       time.Time
	SortBy   string
}

func DefaultFilters() Filters {
	return Filters{Params: pagination.Default()}
}

func (f Filters) Values() url.Values {
	q := url.Values{}
	f.Params.Normalize().Encode(q)
	if f.ClientID != 0 {
		q.Set("clientId", strconv.FormatInt(f.ClientID, 10))
	}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if !f.From.IsZero() {
		q.Set("from", f.From.Format(time.RFC3339))
	}
	if !f.To.IsZero() {
		q.Set("to", f.To.Format(time.RFC3339))
	}
	if f.SortBy != "" {
		q.Set("sortBy", f.SortBy)
	}
	return q
}

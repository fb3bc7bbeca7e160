package appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/VERITAS-IO/dietech-client/internal/api"
	"github.com/VERITAS-IO/dietech-client/internal/querycache"
)

func validCreate() CreateAppointmentRequest {
	return CreateAppointmentRequest{
		Title:    "Initial consult",
		ClientID: 3,
		Type:     TypeInitialConsult,
		StartsAt: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC),
	}
}

func TestCreateAppointmentRequest_Validate(t *testing.T) {
	req := validCreate()
	if err := req.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	req.EndsAt = req.StartsAt
	if err := req.Validate(); err == nil {
		t.Error("expected time range error")
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusScheduled, StatusConfirmed, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusScheduled, StatusCompleted, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusScheduled, false},
		{StatusCancelled, StatusScheduled, false},
		{StatusCompleted, StatusConfirmed, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestChangeStatus_RejectsIllegalTransitionLocally(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	c, err := api.New(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	svc := NewService(c, querycache.New())
	if err := svc.ChangeStatus(context.Background(), 1, StatusCompleted, StatusScheduled); err == nil {
		t.Fatal("terminal status must not transition")
	}
	if calls != 0 {
		t.Errorf("illegal transition must not reach the server, got %d calls", calls)
	}

	if err := svc.ChangeStatus(context.Background(), 1, StatusScheduled, StatusConfirmed); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("legal transition must issue one request, got %d", calls)
	}
}

func TestAddNote_RejectsMissingAppointmentLocally(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	t.Cleanup(srv.Close)

	c, err := api.New(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	svc := NewService(c, querycache.New())
	req := CreateNoteRequest{NoteType: NotePre, Text: "prefers morning sessions"}
	if _, err := svc.AddNote(context.Background(), req); err == nil {
		t.Fatal("note without an appointment id must fail locally")
	}
	if calls != 0 {
		t.Errorf("orphan note must never be sent, got %d calls", calls)
	}
}

func TestFilters_Values_DateRange(t *testing.T) {
	f := DefaultFilters()
	f.From = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	f.To = time.Date(2026, 9, 30, 23, 59, 59, 0, time.UTC)
	f.Status = StatusScheduled
	q := f.Values()
	if q.Get("from") == "" || q.Get("to") == "" {
		t.Errorf("date range not encoded: %s", q.Encode())
	}
	if q.Get("status") != "scheduled" {
		t.Errorf("status not encoded: %s", q.Encode())
	}
}

func TestStore_SetRangeResetsPage(t *testing.T) {
	s := NewStore()
	f := s.Filters()
	f.PageNumber = 4
	s.SetFilters(f)
	s.SetRange(time.Now(), time.Now().Add(24*time.Hour))
	if got := s.Filters().PageNumber; got != 1 {
		t.Errorf("range change must reset to page 1, got %d", got)
	}
}

package appointment

import (
	"sync"
	"time"
)

// Store holds the appointment domain's UI state: the calendar's visible
// range, dialog state, and the last-applied list filters.
type Store struct {
	mu         sync.Mutex
	dialogOpen bool
	selectedID int64
	editMode   bool
	filters    Filters
}

func NewStore() *Store {
	return &Store{filters: DefaultFilters()}
}

// OpenDetail selects an appointment and opens the detail dialog.
func (s *Store) OpenDetail(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogOpen = true
	s.selectedID = id
	s.editMode = false
}

// CloseDialog closes the dialog and drops the selection.
func (s *Store) CloseDialog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogOpen = false
	s.selectedID = 0
	s.editMode = false
}

// SetEditMode toggles the detail view between view and edit mode.
func (s *Store) SetEditMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editMode = on
}

// SelectedID returns the selected appointment id.
func (s *Store) SelectedID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

// DialogOpen reports whether the detail dialog is open.
func (s *Store) DialogOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialogOpen
}

// EditMode reports whether the detail view is in edit mode.
func (s *Store) EditMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editMode
}

// SetRange moves the calendar's visible date range, resetting to the first
// page since the result set changes wholesale.
func (s *Store) SetRange(from, to time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.From = from
	s.filters.To = to
	s.filters.PageNumber = 1
}

// SetFilters replaces the last-applied list filters.
func (s *Store) SetFilters(f Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f
}

// Filters returns the last-applied list filters.
func (s *Store) Filters() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// ResetFilters restores the default filter state.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = DefaultFilters()
}

package meal

import "sync"

// Store holds the UI-only state of the meal domain: which dialog is open,
// which meal is selected, and the last-applied list filters. It is injected
// into the components that need it; nothing reads it through a global.
// Staged (not-yet-persisted) meals belong to the diet store, since staging
// only ever happens inside a diet create/edit session.
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

// OpenDetail selects a meal and opens the detail dialog in view mode.
func (s *Store) OpenDetail(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogOpen = true
	s.selectedID = id
	s.editMode = false
}

// CloseDialog closes the dialog and drops the selection and edit flag.
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

// SelectedID returns the selected meal id, or zero when nothing is selected.
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

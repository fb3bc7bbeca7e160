package nutrition

import "sync"

// Store holds the UI-only state of the nutrition domain.
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

func (s *Store) OpenDetail(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogOpen = true
	s.selectedID = id
	s.editMode = false
}

func (s *Store) CloseDialog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogOpen = false
	s.selectedID = 0
	s.editMode = false
}

func (s *Store) SetEditMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editMode = on
}

func (s *Store) SelectedID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

func (s *Store) DialogOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialogOpen
}

func (s *Store) EditMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editMode
}

func (s *Store) SetFilters(f Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f
}

func (s *Store) Filters() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = DefaultFilters()
}

package diet

import (
	"sync"

	"github.com/google/uuid"

	"github.com/VERITAS-IO/dietech-client/internal/domain/meal"
)

// Store holds the diet domain's client state: list filters, dialog state,
// and the meal staging lists used by create and edit sessions. Staged meal
// additions and removals accumulate here and are only sent to the server as
// part of the enclosing diet submit; nothing in the store talks to the
// network.
type Store struct {
	mu         sync.Mutex
	dialogOpen bool
	selectedID int64
	editMode   bool
	filters    Filters

	temporaryMeals []meal.Staged
	mealsToRemove  []int64
}

func NewStore() *Store {
	return &Store{filters: DefaultFilters()}
}

// OpenDetail selects a diet and opens the detail dialog in view mode.
func (s *Store) OpenDetail(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogOpen = true
	s.selectedID = id
	s.editMode = false
}

// CloseDialog closes the dialog, drops the selection, and clears any staged
// meal operations from the abandoned session.
func (s *Store) CloseDialog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialogOpen = false
	s.selectedID = 0
	s.editMode = false
	s.temporaryMeals = nil
	s.mealsToRemove = nil
}

// SetEditMode toggles the detail view between view and edit mode.
func (s *Store) SetEditMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editMode = on
}

// SelectedID returns the selected diet id, or zero when nothing is selected.
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

// StageMeal appends an unsaved meal to the session's staging list and
// returns its local id.
func (s *Store) StageMeal(req meal.CreateMealRequest) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	staged := meal.NewStaged(req)
	s.temporaryMeals = append(s.temporaryMeals, staged)
	return staged.LocalID
}

// UnstageMeal drops a staged meal by its local id. Unstaging never touches
// persisted meals or the removal list.
func (s *Store) UnstageMeal(localID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.temporaryMeals {
		if m.LocalID == localID {
			s.temporaryMeals = append(s.temporaryMeals[:i], s.temporaryMeals[i+1:]...)
			return true
		}
	}
	return false
}

// StageRemoval marks a persisted meal for removal on the next submit. The
// meal stays on the server until then. Staging the same id twice is a no-op.
func (s *Store) StageRemoval(mealID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.mealsToRemove {
		if id == mealID {
			return
		}
	}
	s.mealsToRemove = append(s.mealsToRemove, mealID)
}

// UnstageRemoval takes a persisted meal back off the removal list.
func (s *Store) UnstageRemoval(mealID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, id := range s.mealsToRemove {
		if id == mealID {
			s.mealsToRemove = append(s.mealsToRemove[:i], s.mealsToRemove[i+1:]...)
			return true
		}
	}
	return false
}

// TemporaryMeals returns a copy of the staged meal additions.
func (s *Store) TemporaryMeals() []meal.Staged {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]meal.Staged, len(s.temporaryMeals))
	copy(out, s.temporaryMeals)
	return out
}

// MealsToRemove returns a copy of the staged removal ids.
func (s *Store) MealsToRemove() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int64, len(s.mealsToRemove))
	copy(out, s.mealsToRemove)
	return out
}

// ClearStaging drops both staging lists, after a successful submit or a
// cancelled session.
func (s *Store) ClearStaging() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.temporaryMeals = nil
	s.mealsToRemove = nil
}

// HasStagedChanges reports whether either staging list is non-empty.
func (s *Store) HasStagedChanges() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.temporaryMeals) > 0 || len(s.mealsToRemove) > 0
}

// VisibleMeals composes the meal list a session should display: the
// persisted meals minus those staged for removal, followed by the staged
// additions.
func (s *Store) VisibleMeals(persisted []meal.Meal) ([]meal.Meal, []meal.Staged) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := make(map[int64]bool, len(s.mealsToRemove))
	for _, id := range s.mealsToRemove {
		removed[id] = true
	}
	kept := make([]meal.Meal, 0, len(persisted))
	for _, m := range persisted {
		if !removed[m.ID] {
			kept = append(kept, m)
		}
	}
	staged := make([]meal.Staged, len(s.temporaryMeals))
	copy(staged, s.temporaryMeals)
	return kept, staged
}

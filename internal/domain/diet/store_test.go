package diet

import (
	"testing"

	"github.com/VERITAS-IO/dietech-client/internal/domain/meal"
)

func stagedMeal(name string) meal.CreateMealRequest {
	return meal.CreateMealRequest{
		Name:      name,
		MealType:  meal.TypeLunch,
		MealOrder: 2,
		StartTime: "12:00",
		EndTime:   "12:45",
	}
}

func TestStore_StageAndUnstageMeal(t *testing.T) {
	s := NewStore()
	id := s.StageMeal(stagedMeal("Salad"))
	if got := len(s.TemporaryMeals()); got != 1 {
		t.Fatalf("expected 1 staged meal, got %d", got)
	}
	if !s.UnstageMeal(id) {
		t.Fatal("unstage by local id failed")
	}
	if got := len(s.TemporaryMeals()); got != 0 {
		t.Errorf("expected empty staging list, got %d", got)
	}
}

func TestStore_StageRemovalDeduplicates(t *testing.T) {
	s := NewStore()
	s.StageRemoval(42)
	s.StageRemoval(42)
	if got := s.MealsToRemove(); len(got) != 1 || got[0] != 42 {
		t.Errorf("expected [42], got %v", got)
	}
}

func TestStore_AddAndRemoveDoNotCoalesce(t *testing.T) {
	s := NewStore()
	s.StageMeal(stagedMeal("New Soup"))
	s.StageRemoval(42)
	if len(s.TemporaryMeals()) != 1 || len(s.MealsToRemove()) != 1 {
		t.Error("additions and removals are independent lists")
	}
}

func TestStore_VisibleMeals(t *testing.T) {
	s := NewStore()
	persisted := []meal.Meal{
		{ID: 41, Name: "Oats"},
		{ID: 42, Name: "Toast"},
	}
	s.StageRemoval(42)
	s.StageMeal(stagedMeal("Salad"))

	kept, staged := s.VisibleMeals(persisted)
	if len(kept) != 1 || kept[0].ID != 41 {
		t.Errorf("removal-staged meal must be hidden: %v", kept)
	}
	if len(staged) != 1 || staged[0].Name != "Salad" {
		t.Errorf("staged addition must be visible: %v", staged)
	}

	// Undoing the removal brings the persisted meal back untouched.
	s.UnstageRemoval(42)
	kept, _ = s.VisibleMeals(persisted)
	if len(kept) != 2 {
		t.Errorf("unstaged removal must restore the meal: %v", kept)
	}
}

func TestStore_CloseDialogClearsStaging(t *testing.T) {
	s := NewStore()
	s.OpenDetail(5)
	s.StageMeal(stagedMeal("Salad"))
	s.StageRemoval(42)
	s.CloseDialog()
	if s.HasStagedChanges() {
		t.Error("closing the dialog must drop staged state")
	}
	if s.DialogOpen() || s.SelectedID() != 0 {
		t.Error("dialog state must reset")
	}
}

package diet

import (
	"context"

	"github.com/google/uuid"

	"github.com/VERITAS-IO/dietech-client/internal/domain/meal"
)

// EditSession drives the lifecycle of a single diet's detail dialog: opened
// in view mode, optionally switched to edit mode, then submitted or
// cancelled. The session owns a draft of the scalar fields and delegates
// meal staging to the store; Submit folds both into one aggregate update.
type EditSession struct {
	svc   *Service
	store *Store

	original Detail
	draft    Draft
}

// OpenEditSession fetches the diet detail, opens the dialog in view mode,
// and pre-fills the draft from the fetched values.
func OpenEditSession(ctx context.Context, svc *Service, store *Store, id int64) (*EditSession, error) {
	detail, err := svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	store.OpenDetail(id)
	return &EditSession{
		svc:      svc,
		store:    store,
		original: *detail,
		draft:    NewDraft(detail.Diet),
	}, nil
}

// StartEdit switches the dialog from view mode to edit mode.
func (es *EditSession) StartEdit() {
	es.store.SetEditMode(true)
}

// Draft returns the current draft values.
func (es *EditSession) Draft() Draft {
	return es.draft
}

// SetDraft replaces the draft values.
func (es *EditSession) SetDraft(d Draft) {
	es.draft = d
}

// Original returns the detail fetched when the session opened.
func (es *EditSession) Original() Detail {
	return es.original
}

// StageMeal stages a new meal for this session and returns its local id.
func (es *EditSession) StageMeal(req meal.CreateMealRequest) (uuid.UUID, error) {
	if err := req.Validate(); err != nil {
		return uuid.Nil, err
	}
	return es.store.StageMeal(req), nil
}

// UnstageMeal drops a staged meal addition.
func (es *EditSession) UnstageMeal(localID uuid.UUID) bool {
	return es.store.UnstageMeal(localID)
}

// StageRemoval marks a persisted meal for removal on submit.
func (es *EditSession) StageRemoval(mealID int64) {
	es.store.StageRemoval(mealID)
}

// UnstageRemoval takes a persisted meal back off the removal list.
func (es *EditSession) UnstageRemoval(mealID int64) bool {
	return es.store.UnstageRemoval(mealID)
}

// VisibleMeals returns the meal list the dialog should display: persisted
// meals minus staged removals, plus the staged additions.
func (es *EditSession) VisibleMeals() ([]meal.Meal, []meal.Staged) {
	return es.store.VisibleMeals(es.original.Meals)
}

// BuildRequest assembles the aggregate update: the dirty scalar fields from
// the draft diff plus the staged meal operations. Empty staging lists are
// left off the request entirely.
func (es *EditSession) BuildRequest() UpdateDietRequest {
	req := BuildUpdate(es.original.Diet, es.draft)
	for _, staged := range es.store.TemporaryMeals() {
		req.NewMealsToAdd = append(req.NewMealsToAdd, staged.CreateMealRequest)
	}
	req.MealIdsToRemove = es.store.MealsToRemove()
	return req
}

// Submit sends the aggregate update and, on success, clears the staging
// lists and returns the dialog to view mode. When nothing changed, no
// request is sent at all and Submit reports false.
func (es *EditSession) Submit(ctx context.Context) (bool, error) {
	req := es.BuildRequest()
	if req.Empty() {
		es.store.SetEditMode(false)
		return false, nil
	}
	if err := es.svc.Update(ctx, es.original.ID, req); err != nil {
		return false, err
	}
	es.store.ClearStaging()
	es.store.SetEditMode(false)
	refreshed, err := es.svc.Get(ctx, es.original.ID)
	if err != nil {
		return true, err
	}
	es.original = *refreshed
	es.draft = NewDraft(refreshed.Diet)
	return true, nil
}

// Cancel abandons the edit: the draft snaps back to the fetched values, the
// staging lists are cleared, and the dialog returns to view mode. Persisted
// meals that were staged for removal reappear in the visible list.
func (es *EditSession) Cancel() {
	es.draft = NewDraft(es.original.Diet)
	es.store.ClearStaging()
	es.store.SetEditMode(false)
}

// Close abandons the whole dialog, staged state included.
func (es *EditSession) Close() {
	es.store.CloseDialog()
}

// CreateSession accumulates a new diet's scalar fields and staged meals
// before anything exists on the server. Staged meals ride inside the create
// request; they are never created through the meal endpoints.
type CreateSession struct {
	svc   *Service
	store *Store

	draft Draft
}

func NewCreateSession(svc *Service, store *Store) *CreateSession {
	store.ClearStaging()
	return &CreateSession{svc: svc, store: store}
}

// Draft returns the current draft values.
func (cs *CreateSession) Draft() Draft {
	return cs.draft
}

// SetDraft replaces the draft values.
func (cs *CreateSession) SetDraft(d Draft) {
	cs.draft = d
}

// StageMeal stages a meal for inclusion in the create request.
func (cs *CreateSession) StageMeal(req meal.CreateMealRequest) (uuid.UUID, error) {
	if err := req.Validate(); err != nil {
		return uuid.Nil, err
	}
	return cs.store.StageMeal(req), nil
}

// UnstageMeal drops a staged meal.
func (cs *CreateSession) UnstageMeal(localID uuid.UUID) bool {
	return cs.store.UnstageMeal(localID)
}

// StagedMeals returns the meals staged so far.
func (cs *CreateSession) StagedMeals() []meal.Staged {
	return cs.store.TemporaryMeals()
}

// BuildRequest assembles the create request with the staged meals inlined.
func (cs *CreateSession) BuildRequest() CreateDietRequest {
	req := CreateDietRequest{
		Name:            cs.draft.Name,
		DietDescription: cs.draft.DietDescription,
		DietType:        cs.draft.DietType,
		DietDuration:    cs.draft.DietDuration,
		TotalCalories:   cs.draft.TotalCalories,
		StartDate:       cs.draft.StartDate,
		EndDate:         cs.draft.EndDate,
		IsActive:        cs.draft.IsActive,
	}
	for _, staged := range cs.store.TemporaryMeals() {
		req.Meals = append(req.Meals, staged.CreateMealRequest)
	}
	return req
}

// Submit creates the diet together with its staged meals and clears the
// staging list on success.
func (cs *CreateSession) Submit(ctx context.Context) (int64, error) {
	id, err := cs.svc.Create(ctx, cs.BuildRequest())
	if err != nil {
		return 0, err
	}
	cs.store.ClearStaging()
	return id, nil
}

// Cancel abandons the creation and drops the staged meals.
func (cs *CreateSession) Cancel() {
	cs.store.ClearStaging()
	cs.draft = Draft{}
}

package devserver

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/VERITAS-IO/dietech-client/internal/api"
	"github.com/VERITAS-IO/dietech-client/internal/config"
	"github.com/VERITAS-IO/dietech-client/internal/domain/appointment"
	"github.com/VERITAS-IO/dietech-client/internal/domain/auth"
	"github.com/VERITAS-IO/dietech-client/internal/domain/diet"
	"github.com/VERITAS-IO/dietech-client/internal/domain/meal"
	"github.com/VERITAS-IO/dietech-client/internal/querycache"
)

func testConfig() *config.Config {
	return &config.Config{
		Env:           "development",
		DevServerPort: "0",
		SessionTTLMin: 60,
		CORSOrigins:   "http://localhost:5173",
	}
}

// newClient boots the dev server and returns an SDK client logged in with
// the seeded development account.
func newClient(t *testing.T) *api.Client {
	t.Helper()
	srv := httptest.NewServer(New(testConfig(), zerolog.Nop()).Handler())
	t.Cleanup(srv.Close)

	c, err := api.New(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	store := auth.NewStore()
	svc := auth.NewService(c, store)
	if _, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "dietitian", Password: "dietitian1",
	}); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestRequestWithoutSessionIsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(New(testConfig(), zerolog.Nop()).Handler())
	t.Cleanup(srv.Close)

	c, err := api.New(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	svc := diet.NewService(c, querycache.New())
	if _, err := svc.Query(context.Background(), diet.DefaultFilters()); !errors.Is(err, api.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestCreateThenQueryIncludesNewDiet(t *testing.T) {
	c := newClient(t)
	svc := diet.NewService(c, querycache.New())
	ctx := context.Background()

	// Prime the cache with the empty list so the create must invalidate it.
	if _, err := svc.Query(ctx, diet.DefaultFilters()); err != nil {
		t.Fatal(err)
	}

	id, err := svc.Create(ctx, diet.CreateDietRequest{
		Name:          "Low Carb",
		DietType:      diet.TypeWeightLoss,
		DietDuration:  7,
		TotalCalories: 1800,
		StartDate:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
		Meals: []meal.CreateMealRequest{{
			Name: "Breakfast Bowl", MealType: meal.TypeBreakfast,
			MealOrder: 1, StartTime: "08:00", EndTime: "08:30",
		}},
	})
	if err != nil {
		t.Fatal(err)
	}

	page, err := svc.Query(ctx, diet.DefaultFilters())
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, d := range page.Items {
		if d.ID == id && d.Name == "Low Carb" {
			found = true
		}
	}
	if !found {
		t.Fatalf("created diet missing from the refetched list: %+v", page.Items)
	}

	detail, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(detail.Meals) != 1 || detail.Meals[0].Name != "Breakfast Bowl" {
		t.Errorf("embedded meal not persisted with the diet: %+v", detail.Meals)
	}
}

func TestDietUpdateAppliesStagedMealOperations(t *testing.T) {
	c := newClient(t)
	svc := diet.NewService(c, querycache.New())
	ctx := context.Background()

	id, err := svc.Create(ctx, diet.CreateDietRequest{
		Name:          "Maintenance",
		DietType:      diet.TypeMaintenance,
		DietDuration:  30,
		TotalCalories: 2200,
		Meals: []meal.CreateMealRequest{
			{Name: "Oats", MealType: meal.TypeBreakfast, MealOrder: 1, StartTime: "08:00", EndTime: "08:20"},
			{Name: "Toast", MealType: meal.TypeBreakfast, MealOrder: 2, StartTime: "08:30", EndTime: "08:45"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	detail, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	toastID := detail.Meals[1].ID

	calories := 2000
	err = svc.Update(ctx, id, diet.UpdateDietRequest{
		TotalCalories:   &calories,
		MealIdsToRemove: []int64{toastID},
		NewMealsToAdd: []meal.CreateMealRequest{
			{Name: "Salad", MealType: meal.TypeLunch, MealOrder: 3, StartTime: "12:30", EndTime: "13:00"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	after, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if after.TotalCalories != 2000 {
		t.Errorf("scalar update lost: %d", after.TotalCalories)
	}
	names := map[string]bool{}
	for _, m := range after.Meals {
		names[m.Name] = true
	}
	if names["Toast"] || !names["Oats"] || !names["Salad"] {
		t.Errorf("meal operations misapplied: %v", names)
	}
}

func TestDietUpdateWithoutArraysLeavesMealsAlone(t *testing.T) {
	c := newClient(t)
	svc := diet.NewService(c, querycache.New())
	ctx := context.Background()

	id, err := svc.Create(ctx, diet.CreateDietRequest{
		Name:          "Keep Meals",
		DietType:      diet.TypeMaintenance,
		DietDuration:  14,
		TotalCalories: 2100,
		Meals: []meal.CreateMealRequest{
			{Name: "Oats", MealType: meal.TypeBreakfast, MealOrder: 1, StartTime: "08:00", EndTime: "08:20"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	name := "Keep Meals Renamed"
	if err := svc.Update(ctx, id, diet.UpdateDietRequest{Name: &name}); err != nil {
		t.Fatal(err)
	}
	after, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if len(after.Meals) != 1 {
		t.Errorf("absent meal arrays must not touch persisted meals: %+v", after.Meals)
	}
}

func TestAppointmentNoteAndStatusFlow(t *testing.T) {
	c := newClient(t)
	svc := appointment.NewService(c, querycache.New())
	ctx := context.Background()

	id, err := svc.Create(ctx, appointment.CreateAppointmentRequest{
		Title:    "Follow up",
		ClientID: 1,
		Type:     appointment.TypeFollowUp,
		StartsAt: time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 9, 2, 15, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.AddNote(ctx, appointment.CreateNoteRequest{
		AppointmentID: id, NoteType: appointment.NotePre, Text: "bring latest bloodwork",
	}); err != nil {
		t.Fatal(err)
	}

	if err := svc.ChangeStatus(ctx, id, appointment.StatusScheduled, appointment.StatusConfirmed); err != nil {
		t.Fatal(err)
	}

	got, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != appointment.StatusConfirmed || len(got.Notes) != 1 {
		t.Errorf("unexpected appointment state: %+v", got)
	}

	// The server enforces the state machine for clients that skip the
	// local check.
	bad := appointment.StatusScheduled
	if err := svc.Update(ctx, id, appointment.UpdateAppointmentRequest{Status: &bad}); err == nil {
		t.Error("server must reject an illegal status transition")
	}
}

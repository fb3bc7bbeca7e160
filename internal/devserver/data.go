package devserver

import (
	"strings"
	"sync"

	"github.com/VERITAS-IO/dietech-client/internal/domain/appointment"
	"github.com/VERITAS-IO/dietech-client/internal/domain/auth"
	"github.com/VERITAS-IO/dietech-client/internal/domain/client"
	"github.com/VERITAS-IO/dietech-client/internal/domain/diet"
	"github.com/VERITAS-IO/dietech-client/internal/domain/meal"
	"github.com/VERITAS-IO/dietech-client/internal/domain/nutrition"
)

type account struct {
	auth.Account
	password string
}

// memory is the dev server's entire state. Everything lives in process
// memory; restarting the server drops all data.
type memory struct {
	mu  sync.Mutex
	seq int64

	accounts     map[string]account
	clients      []client.Client
	diets        []diet.Diet
	meals        []meal.Meal
	nutrition    []nutrition.Info
	appointments []appointment.Appointment
}

func newMemory() *memory {
	return &memory{accounts: map[string]account{}}
}

// nextID hands out monotonically increasing ids across all families. The
// caller must hold mu.
func (m *memory) nextID() int64 {
	m.seq++
	return m.seq
}

// seed installs the development account so a fresh server is immediately
// usable.
func (m *memory) seed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts["dietitian"] = account{
		Account:  auth.Account{ID: m.nextID(), Username: "dietitian", Email: "dietitian@example.com"},
		password: "dietitian1",
	}
}

func (m *memory) findDiet(id int64) (int, bool) {
	for i, d := range m.diets {
		if d.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (m *memory) findMeal(id int64) (int, bool) {
	for i, v := range m.meals {
		if v.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (m *memory) findNutrition(id int64) (int, bool) {
	for i, n := range m.nutrition {
		if n.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (m *memory) findAppointment(id int64) (int, bool) {
	for i, a := range m.appointments {
		if a.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (m *memory) findClient(id int64) (int, bool) {
	for i, c := range m.clients {
		if c.ID == id {
			return i, true
		}
	}
	return -1, false
}

// dietMeals returns the persisted meals attached to a diet. The caller must
// hold mu.
func (m *memory) dietMeals(dietID int64) []meal.Meal {
	out := []meal.Meal{}
	for _, v := range m.meals {
		if v.DietID != nil && *v.DietID == dietID {
			out = append(out, v)
		}
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

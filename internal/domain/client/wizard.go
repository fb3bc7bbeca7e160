package client

import (
	"context"
	"sync"
)

// Step identifies one of the four registration wizard steps.
type Step int

const (
	StepContact Step = iota + 1
	StepPersonal
	StepLifestyle
	StepHealth
)

const lastStep = StepHealth

// Wizard is the client-registration store: it accumulates the four step
// drafts, tracks the current step, and only allows advancing past a step
// once that step validates. Nothing is sent to the server before Submit.
type Wizard struct {
	mu   sync.Mutex
	svc  *Service
	step Step

	contact   ContactInfo
	personal  PersonalInfo
	lifestyle LifestyleInfo
	health    HealthInfo
}

func NewWizard(svc *Service) *Wizard {
	return &Wizard{svc: svc, step: StepContact}
}

// Step returns the current wizard step.
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// SetContact saves the first step's draft.
func (w *Wizard) SetContact(c ContactInfo) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.contact = c
}

// SetPersonal saves the second step's draft.
func (w *Wizard) SetPersonal(p PersonalInfo) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.personal = p
}

// SetLifestyle saves the third step's draft.
func (w *Wizard) SetLifestyle(l LifestyleInfo) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lifestyle = l
}

// SetHealth saves the fourth step's draft.
func (w *Wizard) SetHealth(h HealthInfo) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.health = h
}

// Next validates the current step and advances when it passes. Validation
// errors stay attached to the step's fields; the wizard does not move.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.validateStep(w.step); err != nil {
		return err
	}
	if w.step < lastStep {
		w.step++
	}
	return nil
}

// Back moves to the previous step without validating; drafts are kept.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > StepContact {
		w.step--
	}
}

func (w *Wizard) validateStep(s Step) error {
	switch s {
	case StepContact:
		return w.contact.Validate()
	case StepPersonal:
		return w.personal.Validate()
	case StepLifestyle:
		return w.lifestyle.Validate()
	default:
		return w.health.Validate()
	}
}

// BuildRequest assembles the single registration payload from the four
// step drafts.
func (w *Wizard) BuildRequest() RegisterClientRequest {
	w.mu.Lock()
	defer w.mu.Unlock()
	return RegisterClientRequest{
		Contact:   w.contact,
		Personal:  w.personal,
		Lifestyle: w.lifestyle,
		Health:    w.health,
	}
}

// Submit validates the assembled request and registers the client. On
// success the wizard resets to its initial state.
func (w *Wizard) Submit(ctx context.Context) (int64, error) {
	req := w.BuildRequest()
	id, err := w.svc.Register(ctx, req)
	if err != nil {
		return 0, err
	}
	w.Reset()
	return id, nil
}

// Reset drops all drafts and returns to the first step.
func (w *Wizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.step = StepContact
	w.contact = ContactInfo{}
	w.personal = PersonalInfo{}
	w.lifestyle = LifestyleInfo{}
	w.health = HealthInfo{}
}

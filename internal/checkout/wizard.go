package checkout

import (
	"errors"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
)

type Step string

const (
	StepInfo    Step = "info"
	StepAddress Step = "address"
	StepPayment Step = "payment"
)

var steps = []Step{StepInfo, StepAddress, StepPayment}

var (
	ErrUnknownStep    = errors.New("unknown checkout step")
	ErrNoNextStep     = errors.New("already at the last step")
	ErrNoPreviousStep = errors.New("already at the first step")
	ErrNotAtPayment   = errors.New("orders can only be submitted from the payment step")
)

func ParseStep(s string) (Step, error) {
	for _, st := range steps {
		if string(st) == s {
			return st, nil
		}
	}
	return "", ErrUnknownStep
}

// Wizard is the linear info -> address -> payment flow. Moving forward runs
// the current step's guard; moving back always goes exactly one step.
type Wizard struct {
	draft      *Draft
	pos        int
	submitting bool
}

func NewWizard(d *Draft) *Wizard {
	return &Wizard{draft: d}
}

func (w *Wizard) Step() Step {
	return steps[w.pos]
}

func (w *Wizard) Next() error {
	if w.pos == len(steps)-1 {
		return ErrNoNextStep
	}
	if err := ValidateStep(w.Step(), *w.draft); err != nil {
		return err
	}
	w.pos++
	return nil
}

func (w *Wizard) Previous() error {
	if w.pos == 0 {
		return ErrNoPreviousStep
	}
	w.pos--
	return nil
}

// BeginSubmit marks a submission in flight. It is only allowed on the
// payment step and only once until EndSubmit.
func (w *Wizard) BeginSubmit() error {
	if w.Step() != StepPayment {
		return ErrNotAtPayment
	}
	if w.submitting {
		return entities.ErrSubmitInProgress
	}
	w.submitting = true
	return nil
}

func (w *Wizard) EndSubmit() {
	w.submitting = false
}

func (w *Wizard) Submitting() bool {
	return w.submitting
}

// ValidateStep runs the guard that protects leaving step. The payment step
// has no guard.
func ValidateStep(step Step, d Draft) error {
	switch step {
	case StepInfo:
		return ValidateCustomer(d.Customer)
	case StepAddress:
		if err := ValidateAddress(d.ShippingAddress); err != nil {
			return prefixFields(err, "shipping")
		}
		if d.BillingAddress != nil {
			if err := ValidateAddress(*d.BillingAddress); err != nil {
				return prefixFields(err, "billing")
			}
		}
		return nil
	case StepPayment:
		return nil
	default:
		return ErrUnknownStep
	}
}

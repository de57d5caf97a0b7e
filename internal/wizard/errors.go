package wizard

import (
	"errors"
	"fmt"

	"github.com/sofiebrandt/prepdeck/internal/domain"
)

var (
	// ErrInvalidTransition indicates a step was completed out of order.
	// This is a programming error in the caller: the UI offered an action
	// for a step that is not the current one.
	ErrInvalidTransition = errors.New("invalid wizard transition")

	// ErrStepNotAccessible indicates navigation to a step that is neither
	// completed nor current. The controller state is unchanged.
	ErrStepNotAccessible = errors.New("step not accessible")
)

// InvalidTransitionError wraps ErrInvalidTransition with the offending steps.
type InvalidTransitionError struct {
	Requested domain.Step
	Current   domain.Step
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot complete step %q while on step %q", e.Requested, e.Current)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// StepNotAccessibleError wraps ErrStepNotAccessible with the target step.
type StepNotAccessibleError struct {
	Target domain.Step
}

func (e *StepNotAccessibleError) Error() string {
	return fmt.Sprintf("step %q is not accessible", e.Target)
}

func (e *StepNotAccessibleError) Unwrap() error { return ErrStepNotAccessible }

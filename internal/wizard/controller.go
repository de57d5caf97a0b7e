package wizard

import (
	"fmt"

	"github.com/sofiebrandt/prepdeck/internal/domain"
)

// Controller is the finite-state machine driving one practice wizard run.
// It decides which step is active, which steps are reachable, and whether a
// requested transition is legal. The controller performs no I/O and never
// suspends; gateway calls happen in the caller between transitions.
//
// A Controller is owned by a single interactive user and is not safe for
// concurrent use.
type Controller struct {
	current   domain.Step
	completed map[domain.Step]bool
	mode      domain.Mode
	session   domain.PracticeSession
}

// NewController creates a controller positioned on the Mode step with an
// empty session.
func NewController() *Controller {
	return &Controller{
		current:   domain.StepMode,
		completed: make(map[domain.Step]bool),
	}
}

// Current returns the active step.
func (c *Controller) Current() domain.Step { return c.current }

// Mode returns the selected mode, or "" before mode selection.
func (c *Controller) Mode() domain.Mode { return c.mode }

// Session returns a copy of the accumulated session data.
func (c *Controller) Session() domain.PracticeSession { return c.session }

// Completed reports whether the given step has been completed this run.
func (c *Controller) Completed(step domain.Step) bool { return c.completed[step] }

// Accessible reports whether navigation to step is currently legal: the step
// is completed or is the active step. Unvisited future steps are never
// reachable.
func (c *Controller) Accessible(step domain.Step) bool {
	return step == c.current || c.completed[step]
}

// SelectMode records the chosen mode, marks the Mode step completed, and
// routes deterministically: Custom and Prompted advance straight to Question,
// AiGenerated advances to Configure. Always succeeds for a valid mode.
//
// Callers handling ModePrompted should follow up with a prompted-question
// fetch; the controller itself never issues it.
func (c *Controller) SelectMode(mode domain.Mode) error {
	if !domain.ValidModes[string(mode)] {
		return fmt.Errorf("unknown mode %q", mode)
	}
	c.mode = mode
	c.completed[domain.StepMode] = true
	if mode == domain.ModeAiGenerated {
		c.current = domain.StepConfigure
	} else {
		c.current = domain.StepQuestion
	}
	return nil
}

// CompleteStep merges the step's produced data into the session, marks the
// step completed, and advances to the next step of the effective sequence.
// Fails with an InvalidTransitionError when step is not the active step, in
// which case neither the session nor the state changes.
func (c *Controller) CompleteStep(step domain.Step, patch domain.SessionPatch) error {
	if step != c.current {
		return &InvalidTransitionError{Requested: step, Current: c.current}
	}
	next, ok := domain.NextStep(c.mode, step)
	if !ok && step != domain.StepFeedback {
		return &InvalidTransitionError{Requested: step, Current: c.current}
	}

	c.session.Apply(patch)
	c.completed[step] = true
	if ok {
		c.current = next
	}
	return nil
}

// NavigateTo moves the active step to a previously completed step (or the
// current one, a no-op). Any other target fails with a StepNotAccessibleError
// and leaves the state unchanged.
func (c *Controller) NavigateTo(step domain.Step) error {
	if !c.Accessible(step) {
		return &StepNotAccessibleError{Target: step}
	}
	c.current = step
	return nil
}

// Restart resets everything: session cleared, completed set emptied, mode
// cleared, active step back to Mode.
func (c *Controller) Restart() {
	c.current = domain.StepMode
	c.completed = make(map[domain.Step]bool)
	c.mode = ""
	c.session.Reset()
}

// GenerateAnother is the mode-preserving shortcut from the Feedback step. It
// keeps the mode and configuration (topic, difficulty, experience level),
// drops the run's content, and re-enters at Configure for AiGenerated or at
// Question otherwise. Fails unless the wizard is on the Feedback step.
func (c *Controller) GenerateAnother() error {
	if c.current != domain.StepFeedback {
		return &InvalidTransitionError{Requested: domain.StepFeedback, Current: c.current}
	}

	c.session.ClearContent()
	c.completed = map[domain.Step]bool{domain.StepMode: true}
	if c.mode == domain.ModeAiGenerated {
		c.current = domain.StepConfigure
	} else {
		c.current = domain.StepQuestion
	}
	return nil
}

package wizard

import (
	"math/rand"
	"testing"

	"github.com/sofiebrandt/prepdeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRandomOperations_UnreachableStepsStayUnreachable drives the controller
// with random operation sequences and checks the reachability invariant after
// every operation: NavigateTo only ever succeeds for completed steps or the
// current one, and the current step is always a member of the fixed sequence.
func TestRandomOperations_UnreachableStepsStayUnreachable(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	modes := []domain.Mode{domain.ModeCustom, domain.ModePrompted, domain.ModeAiGenerated}

	for run := 0; run < 200; run++ {
		c := NewController()

		for op := 0; op < 50; op++ {
			switch rng.Intn(5) {
			case 0:
				_ = c.SelectMode(modes[rng.Intn(len(modes))])
			case 1:
				step := domain.StepSequence[rng.Intn(len(domain.StepSequence))]
				_ = c.CompleteStep(step, domain.SessionPatch{})
			case 2:
				target := domain.StepSequence[rng.Intn(len(domain.StepSequence))]
				wasAccessible := c.Accessible(target)
				err := c.NavigateTo(target)
				if wasAccessible {
					assert.NoError(t, err)
					assert.Equal(t, target, c.Current())
				} else {
					assert.ErrorIs(t, err, ErrStepNotAccessible)
				}
			case 3:
				c.Restart()
				assert.Equal(t, domain.StepMode, c.Current())
				assert.Equal(t, domain.PracticeSession{}, c.Session())
			case 4:
				_ = c.GenerateAnother()
			}

			require.NotEqual(t, -1, domain.StepIndex(c.Current()),
				"current step %q left the fixed sequence", c.Current())
		}
	}
}

// TestLegalCompletionChain_CurrentMatchesSequence verifies that after N legal
// CompleteStep calls the active step is the (N+1)-th element of the effective
// sequence for the chosen mode.
func TestLegalCompletionChain_CurrentMatchesSequence(t *testing.T) {
	for _, mode := range []domain.Mode{domain.ModeCustom, domain.ModePrompted, domain.ModeAiGenerated} {
		c := NewController()
		require.NoError(t, c.SelectMode(mode))

		seq := domain.EffectiveSequence(mode)
		// SelectMode completes seq[0]; walk the rest short of the terminal step.
		for i := 1; i < len(seq)-1; i++ {
			assert.Equal(t, seq[i], c.Current(), "mode %s before completion %d", mode, i)
			require.NoError(t, c.CompleteStep(seq[i], domain.SessionPatch{}))
		}
		assert.Equal(t, domain.StepFeedback, c.Current(), "mode %s", mode)
	}
}

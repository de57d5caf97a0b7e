package wizard

import "sync"

// Operation identifies one logical gateway call kind for inflight tracking.
type Operation string

const (
	OpValidateQuestion Operation = "validate_question"
	OpOptimalAnswer    Operation = "optimal_answer"
	OpAnalyzeAnswer    Operation = "analyze_answer"
	OpGenerateCase     Operation = "generate_case"
	OpEvaluateCase     Operation = "evaluate_case"
	OpFetchPrompted    Operation = "fetch_prompted"
)

// Ticket represents one admitted gateway call. Its generation is compared at
// resolution time so responses that straddle a navigation are discarded.
type Ticket struct {
	op  Operation
	gen uint64
}

// InflightGuard enforces the wizard's concurrency rules: at most one pending
// call per operation kind (a second trigger is suppressed, not queued), and
// responses resolved after a navigation or restart are treated as stale.
type InflightGuard struct {
	mu      sync.Mutex
	pending map[Operation]bool
	gen     uint64
}

// NewInflightGuard creates an empty guard.
func NewInflightGuard() *InflightGuard {
	return &InflightGuard{pending: make(map[Operation]bool)}
}

// Begin admits a call for op. Returns ok=false when a call of the same kind
// is already pending; the caller must drop the trigger.
func (g *InflightGuard) Begin(op Operation) (Ticket, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending[op] {
		return Ticket{}, false
	}
	g.pending[op] = true
	return Ticket{op: op, gen: g.gen}, true
}

// Finish marks the ticket's call as resolved and reports whether its result
// is still current. A false return means the user navigated away while the
// call was pending; the result must be ignored, never applied to the session.
func (g *InflightGuard) Finish(t Ticket) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.pending, t.op)
	return t.gen == g.gen
}

// Invalidate bumps the generation so every outstanding ticket resolves stale.
// Called on navigation and restart.
func (g *InflightGuard) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
}

// Pending reports whether a call of the given kind is in flight. The UI uses
// this to disable the triggering control.
func (g *InflightGuard) Pending(op Operation) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending[op]
}

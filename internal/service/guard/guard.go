// Package guard tracks whether the user-data draft has unsaved changes and
// decides whether leaving the page needs confirmation.
//
// The guard is a policy object. It never blocks anything itself; the UI layer
// (or the HTTP API on its behalf) consults BeforeLeave on a page-unload attempt.
package guard

import (
	"sync"
	"time"
)

// State is the guard state.
type State string

const (
	Clean State = "clean"
	Dirty State = "dirty"
)

// LeaveMessage is the confirmation prompt shown while changes are unsaved.
const LeaveMessage = "You have unsaved changes. Are you sure you want to leave?"

// Decision is the answer to a navigation-away attempt.
type Decision struct {
	// Block is true when the environment must ask the user to confirm.
	Block   bool
	Message string
}

// Status is a snapshot of the guard.
type Status struct {
	State State
	// Since is when the guard last changed state. Zero until the first transition.
	Since time.Time
}

// Guard is a two-state machine: Clean and Dirty. It is safe for concurrent use.
type Guard struct {
	mu    sync.RWMutex
	state State
	since time.Time
	now   func() time.Time
}

// New returns a guard in the Clean state.
func New() *Guard {
	return &Guard{state: Clean, now: time.Now}
}

// MarkDirty records an edit to the draft.
func (g *Guard) MarkDirty() {
	g.transition(Dirty)
}

// MarkClean records a successful commit (or a fresh load).
func (g *Guard) MarkClean() {
	g.transition(Clean)
}

func (g *Guard) transition(to State) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == to {
		return
	}
	g.state = to
	g.since = g.now().UTC()
}

// State returns the current state.
func (g *Guard) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// IsDirty reports whether there are unsaved changes.
func (g *Guard) IsDirty() bool {
	return g.State() == Dirty
}

// Status returns the current state and when it was entered.
func (g *Guard) Status() Status {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return Status{State: g.state, Since: g.since}
}

// BeforeLeave answers a page-leave attempt.
func (g *Guard) BeforeLeave() Decision {
	if g.IsDirty() {
		return Decision{Block: true, Message: LeaveMessage}
	}
	return Decision{}
}

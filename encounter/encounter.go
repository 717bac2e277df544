// Package encounter owns the shared encounter scratchpad: a turn
// counter and a few suppress toggles subsystems coordinate through.
//
// Unlike package vitals, this is the loose variant of the shared-state
// split: the Handle capability exposes the backing Record directly
// instead of per-field accessors, so adding a field costs nothing. The
// trade-off is strictly weaker isolation; any Handle holder can set any
// field to any value. Code without a Handle is limited to the read-only
// TurnCount method.
package encounter

import "sync"

// Record is the shared encounter scratchpad. Handle holders read and
// write its fields directly; no invariants apply beyond the types.
type Record struct {
	// TurnCount is the number of completed encounter turns.
	TurnCount int
	// SuppressA, SuppressB, and SuppressC are scratch toggles reserved
	// for encounter scripting. The library assigns them no meaning.
	SuppressA bool
	SuppressB bool
	SuppressC bool
}

// Flags owns a Record for the life of the process. Mutation happens
// only through the Handle returned by New.
type Flags struct {
	mu  sync.Mutex
	rec Record
}

// Handle is the open capability over a Flags record. Access is
// bracketed by Acquire/Release (or scoped with Do) so concurrent
// holders do not race on the record.
type Handle struct {
	f *Flags
}

// New creates the shared record and the capability that exposes it.
// The record starts zeroed. The caller owns handing the Handle to
// authorized subsystems; the *Flags itself is safe to share with
// anyone.
func New() (*Flags, Handle) {
	f := &Flags{}
	return f, Handle{f}
}

// Acquire locks the record and returns it for direct field access.
// Every Acquire must be paired with a Release.
func (h Handle) Acquire() *Record {
	h.f.mu.Lock()
	return &h.f.rec
}

// Release unlocks the record. The *Record from the matching Acquire
// must not be used after Release returns.
func (h Handle) Release() {
	h.f.mu.Unlock()
}

// Do runs fn with the record locked. Convenience wrapper over
// Acquire/Release for single-step access.
func (h Handle) Do(fn func(*Record)) {
	h.f.mu.Lock()
	defer h.f.mu.Unlock()
	fn(&h.f.rec)
}

// TurnCount returns the current turn counter. It is the only operation
// reachable without a Handle.
func (f *Flags) TurnCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rec.TurnCount
}

package vitals

import (
	"fmt"

	"github.com/louisbranch/partystate/internal/calltrace"
)

// DumpDiagnostics writes a one-line summary of the pool followed by the
// caller's call chain to the diagnostic sink. It is the only operation
// reachable without a Grant.
//
// The write is fire-and-forget: a nil sink is skipped, sink errors are
// dropped, and state is never altered. Callers can invoke it from any
// context for debugging without affecting gameplay.
func (p *Vitals) DumpDiagnostics() {
	p.mu.Lock()
	current, maximum := p.current, p.maximum
	sink := p.sink
	p.mu.Unlock()

	if sink == nil {
		return
	}
	trace := calltrace.Capture(1)
	_, _ = fmt.Fprintf(sink, "HP : %d, MaxHP : %d, Hierarchy is\n%s\n", current, maximum, trace)
}

package vitals

import (
	"io"
	"os"
	"sync"
)

// Pool bounds for hit points.
const (
	// Min is the floor for the current value.
	Min = 0
	// DefaultMaximum is the starting ceiling for a fresh pool.
	DefaultMaximum = 32
)

// Vitals holds the shared hit-point record: a current value and its
// ceiling. The record is created once by the composing owner and lives
// for the life of the process; mutation happens only through the Grant
// returned by New.
type Vitals struct {
	mu      sync.Mutex
	current int
	maximum int
	sink    io.Writer
}

// Grant is the restricted capability over a Vitals record. Holding a
// Grant is what authorizes a subsystem to read and write the pool.
type Grant interface {
	// CurrentHP returns the current value.
	CurrentHP() int
	// SetCurrentHP stores value clamped into [Min, maximum]. This is
	// the only write path for the current value.
	SetCurrentHP(value int)
	// MaxHP returns the ceiling.
	MaxHP() int
	// SetMaxHP raises or lowers the ceiling. Non-positive values are
	// silently ignored. Lowering the ceiling below the current value
	// clamps the current value down to the new ceiling.
	SetMaxHP(value int)
	// TakeDamage subtracts amount from the current value and clamps.
	// Negative amounts heal. The subtraction saturates at the pool
	// bounds instead of wrapping.
	TakeDamage(amount int)
}

// Option configures a Vitals record at construction.
type Option func(*Vitals)

// WithMaximum sets the starting ceiling (and current value) of the
// pool. Non-positive values are ignored, matching SetMaxHP.
func WithMaximum(v int) Option {
	return func(p *Vitals) {
		if v > 0 {
			p.maximum = v
			p.current = v
		}
	}
}

// WithSink sets the diagnostic sink. A nil sink disables diagnostics.
func WithSink(w io.Writer) Option {
	return func(p *Vitals) { p.sink = w }
}

// New creates the shared record and the capability that mutates it.
// The record starts full at DefaultMaximum and writes diagnostics to
// stderr unless options say otherwise. The caller owns handing the
// Grant to authorized subsystems; the *Vitals itself is safe to share
// with anyone.
func New(opts ...Option) (*Vitals, Grant) {
	p := &Vitals{
		current: DefaultMaximum,
		maximum: DefaultMaximum,
		sink:    os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, grant{p}
}

// setCurrent clamps and stores. Callers hold p.mu.
func (p *Vitals) setCurrent(value int) {
	switch {
	case value > p.maximum:
		p.current = p.maximum
	case value < Min:
		p.current = Min
	default:
		p.current = value
	}
}

// grant implements Grant for exactly one record.
type grant struct {
	p *Vitals
}

func (g grant) CurrentHP() int {
	g.p.mu.Lock()
	defer g.p.mu.Unlock()
	return g.p.current
}

func (g grant) SetCurrentHP(value int) {
	g.p.mu.Lock()
	defer g.p.mu.Unlock()
	g.p.setCurrent(value)
}

func (g grant) MaxHP() int {
	g.p.mu.Lock()
	defer g.p.mu.Unlock()
	return g.p.maximum
}

func (g grant) SetMaxHP(value int) {
	g.p.mu.Lock()
	defer g.p.mu.Unlock()
	if value <= 0 {
		return
	}
	g.p.maximum = value
	if g.p.current > g.p.maximum {
		g.p.setCurrent(g.p.maximum)
	}
}

func (g grant) TakeDamage(amount int) {
	g.p.mu.Lock()
	defer g.p.mu.Unlock()
	next := g.p.current - amount
	// current is never negative, so the subtraction can only wrap when
	// healing by a near-boundary amount. Saturate at the ceiling.
	if amount < 0 && next < g.p.current {
		next = g.p.maximum
	}
	g.p.setCurrent(next)
}

var _ Grant = grant{}

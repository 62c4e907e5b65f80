package log

import (
	"time"

	"github.com/google/uuid"
)

// Tracer stamps the events of one traced transport with a shared session ID
// and forwards them to a Logger.
type Tracer struct {
	logger  Logger
	tier    Tier
	session string
	now     func() time.Time
}

// Option configures a Tracer.
type Option func(*Tracer)

// WithSessionID sets the session ID instead of a random UUID.
func WithSessionID(id string) Option {
	return func(t *Tracer) { t.session = id }
}

// WithClock sets the time source used for timestamps and durations.
func WithClock(now func() time.Time) Option {
	return func(t *Tracer) { t.now = now }
}

// NewTracer returns a Tracer for tier. A nil logger discards events.
func NewTracer(logger Logger, tier Tier, opts ...Option) *Tracer {
	if logger == nil {
		logger = NoopLogger{}
	}
	t := &Tracer{
		logger:  logger,
		tier:    tier,
		session: uuid.NewString(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SessionID returns the session ID stamped on every event.
func (t *Tracer) SessionID() string { return t.session }

// Start returns the timestamp of an operation about to begin.
func (t *Tracer) Start() time.Time { return t.now() }

// Record logs one finished operation that began at start. scope is nil for
// direct access.
func (t *Tracer) Record(op Op, scope *uint8, addr uint8, register string, value uint16, start time.Time, err error) {
	event := Event{
		Timestamp: start,
		SessionID: t.session,
		Tier:      t.tier,
		Op:        op,
		Scope:     scope,
		Addr:      addr,
		Register:  register,
		Value:     value,
		Duration:  t.now().Sub(start),
	}
	if err != nil {
		event.Error = err.Error()
	}
	t.logger.Log(event)
}

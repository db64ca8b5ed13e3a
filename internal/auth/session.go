package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionEventKind tells a sign-in from a sign-out.
type SessionEventKind string

const (
	SignedIn  SessionEventKind = "signed_in"
	SignedOut SessionEventKind = "signed_out"
)

// SessionEvent is delivered to subscribers whenever a user signs in or out.
type SessionEvent struct {
	Kind   SessionEventKind
	UserID uuid.UUID
	Method string
	At     time.Time
}

// Sessions fans session events out to subscribers.
// Subscribers run synchronously on the publishing goroutine and must not block.
type Sessions struct {
	log  *slog.Logger
	mu   sync.RWMutex
	next int
	subs map[int]func(SessionEvent)
}

// NewSessions creates an empty event hub.
func NewSessions(logger *slog.Logger) *Sessions {
	return &Sessions{
		log:  logger.With("component", "sessions"),
		subs: make(map[int]func(SessionEvent)),
	}
}

// Subscribe registers fn and returns a function that removes it.
// The returned function is safe to call more than once.
func (s *Sessions) Subscribe(fn func(SessionEvent)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Publish delivers ev to every current subscriber. A panicking subscriber
// is logged and does not stop delivery to the others.
func (s *Sessions) Publish(ctx context.Context, ev SessionEvent) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}

	s.mu.RLock()
	subs := make([]func(SessionEvent), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.RUnlock()

	for _, fn := range subs {
		s.deliver(ctx, fn, ev)
	}
}

func (s *Sessions) deliver(ctx context.Context, fn func(SessionEvent), ev SessionEvent) {
	defer func() {
		if r := recover(); r != nil {
			s.log.ErrorContext(ctx, "session subscriber panicked",
				slog.String("event", string(ev.Kind)),
				slog.Any("panic", r),
			)
		}
	}()
	fn(ev)
}

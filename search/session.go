package search

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/wikicopy"
)

// DefaultDebounce is the quiet period after the last keystroke before a
// search is issued.
const DefaultDebounce = 300 * time.Millisecond

// ResultSet is the candidate list published for a query.
type ResultSet struct {
	Query      string
	Candidates []wikicopy.SearchCandidate
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithDebounce sets the quiet period before a search fires.
func WithDebounce(d time.Duration) SessionOption {
	return func(s *Session) {
		s.debounce = d
	}
}

// WithOnResults registers a callback invoked every time the published
// results change. Calls never overlap and a superseded result set is not
// delivered. It may be called from a timer goroutine and must not call Input.
func WithOnResults(fn func(ResultSet)) SessionOption {
	return func(s *Session) {
		s.onResults = fn
	}
}

// Session debounces interactive query input and publishes only the results
// of the most recent query.
type Session struct {
	resolver  *Resolver
	debounce  time.Duration
	onResults func(ResultSet)

	ctx  context.Context
	stop context.CancelFunc

	mu       sync.Mutex
	gen      uint64
	timer    *time.Timer
	inflight context.CancelFunc
	current  ResultSet
	closed   bool

	// notifyMu serializes onResults so deliveries land in publish order.
	notifyMu sync.Mutex
}

// NewSession creates a Session that searches through resolver. Cancelling
// ctx has the same effect as Close.
func NewSession(ctx context.Context, resolver *Resolver, opts ...SessionOption) *Session {
	s := &Session{
		resolver: resolver,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ctx, s.stop = context.WithCancel(ctx)
	return s
}

// Input records the latest query text. Each call supersedes every earlier
// one: pending timers are stopped and in-flight searches cancelled.
func (s *Session) Input(query string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.gen++
	s.cancelLocked()

	if utf8.RuneCountInString(strings.TrimSpace(query)) < wikicopy.MinQueryLength {
		rs := ResultSet{Query: query}
		s.current = rs
		gen := s.gen
		s.mu.Unlock()
		s.notify(gen, rs)
		return
	}

	gen := s.gen
	s.timer = time.AfterFunc(s.debounce, func() {
		s.fire(gen, query)
	})
	s.mu.Unlock()
}

// Current returns the most recently published results.
func (s *Session) Current() ResultSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Close stops pending timers and cancels in-flight searches. Later calls to
// Input are ignored.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.gen++
	s.cancelLocked()
	s.stop()
}

func (s *Session) fire(gen uint64, query string) {
	s.mu.Lock()
	if gen != s.gen || s.closed {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(s.ctx)
	s.inflight = cancel
	s.mu.Unlock()

	candidates := s.resolver.Resolve(ctx, query)
	cancel()

	s.mu.Lock()
	if gen != s.gen || s.closed {
		s.mu.Unlock()
		return
	}
	s.inflight = nil
	rs := ResultSet{Query: query, Candidates: candidates}
	s.current = rs
	s.mu.Unlock()
	s.notify(gen, rs)
}

func (s *Session) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.inflight != nil {
		s.inflight()
		s.inflight = nil
	}
}

// notify delivers rs unless a newer generation has been published since.
func (s *Session) notify(gen uint64, rs ResultSet) {
	if s.onResults == nil {
		return
	}
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	stale := gen != s.gen
	s.mu.Unlock()
	if stale {
		return
	}
	s.onResults(rs)
}

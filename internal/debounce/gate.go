package debounce

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// DefaultMinQueryLength is the shortest trimmed query that reaches the search function.
const DefaultMinQueryLength = 3

// SearchFunc runs one search. It should honour ctx cancellation.
type SearchFunc[R any] func(ctx context.Context, query string) ([]R, error)

// GateConfig configures a SearchGate.
type GateConfig[R any] struct {
	Delay          time.Duration
	MinQueryLength int // defaults to DefaultMinQueryLength
	Search         SearchFunc[R]
	// OnResults receives every published result list. A cleared query
	// publishes an empty, non-nil list.
	OnResults func(query string, results []R)
	// OnError receives failures of the latest search. Optional.
	OnError func(query string, err error)
}

// SearchGate debounces query input and runs a search only for settled
// queries that are long enough. Short queries clear the results at once.
//
// Each settled or cleared query starts a new generation. Responses from an
// older generation are discarded, so a slow answer to an earlier query can
// never replace the results of a later one. Starting a new generation also
// cancels the context of the search still in flight.
//
// Callbacks run on internal goroutines and must not call Input or Close.
type SearchGate[R any] struct {
	cfg       GateConfig[R]
	debouncer *Debouncer[string]

	mu       sync.Mutex
	gen      uint64
	cancel   context.CancelFunc
	closed   bool
	inFlight sync.WaitGroup

	publishMu sync.Mutex
}

// NewSearchGate builds a gate from cfg.
func NewSearchGate[R any](cfg GateConfig[R]) *SearchGate[R] {
	if cfg.MinQueryLength <= 0 {
		cfg.MinQueryLength = DefaultMinQueryLength
	}
	g := &SearchGate[R]{cfg: cfg}
	g.debouncer = New(cfg.Delay, g.settled)
	return g
}

// Input feeds the current query text into the gate.
func (g *SearchGate[R]) Input(query string) {
	if utf8.RuneCountInString(strings.TrimSpace(query)) < g.cfg.MinQueryLength {
		g.debouncer.Cancel()
		g.clear(query)
		return
	}
	g.debouncer.Push(query)
}

// Flush runs the search for a pending query immediately and returns once its
// result has been published. It is a no-op when nothing is pending.
func (g *SearchGate[R]) Flush() {
	g.debouncer.Flush()
}

// Close drops any pending query, cancels the in-flight search and waits for it to return.
func (g *SearchGate[R]) Close() {
	g.debouncer.Stop()
	g.mu.Lock()
	g.closed = true
	g.gen++
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.mu.Unlock()
	g.inFlight.Wait()
}

func (g *SearchGate[R]) clear(query string) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.gen++
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.mu.Unlock()

	g.publishMu.Lock()
	defer g.publishMu.Unlock()
	g.cfg.OnResults(query, []R{})
}

func (g *SearchGate[R]) settled(query string) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.gen++
	gen := g.gen
	if g.cancel != nil {
		g.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	g.inFlight.Add(1)
	g.mu.Unlock()

	defer g.inFlight.Done()
	defer cancel()

	results, err := g.cfg.Search(ctx, query)

	g.publishMu.Lock()
	defer g.publishMu.Unlock()
	if !g.isCurrent(gen) {
		return
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		if g.cfg.OnError != nil {
			g.cfg.OnError(query, err)
		}
		return
	}
	if results == nil {
		results = []R{}
	}
	g.cfg.OnResults(query, results)
}

func (g *SearchGate[R]) isCurrent(gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return gen == g.gen
}

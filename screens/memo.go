package screens

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/stevenson0/Insta-clone/gateway"
)

// LazyState is the state of an on-demand fetch
type LazyState string

const (
	LazyIdle        LazyState = "idle"
	LazyLoading     LazyState = "loading"
	LazyReady       LazyState = "ready"
	LazyUnavailable LazyState = "unavailable"
)

// Memo runs an on-demand fetch at most once. Concurrent callers share the
// in-flight call and later callers get the stored result, whatever its
// outcome.
type Memo[T any] struct {
	mu     sync.Mutex
	state  LazyState
	result gateway.Result[T]
	group  singleflight.Group
}

// LazyView is the JSON form of a memo
type LazyView[T any] struct {
	State  LazyState          `json:"state"`
	Result *gateway.Result[T] `json:"result,omitempty"`
}

func (m *Memo[T]) doneLocked() (gateway.Result[T], bool) {
	if m.state == LazyReady || m.state == LazyUnavailable {
		return m.result, true
	}
	return gateway.Result[T]{}, false
}

func (m *Memo[T]) done() (gateway.Result[T], bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.doneLocked()
}

// start moves an unfinished memo to loading. A finished memo keeps its state
// and its stored result is returned.
func (m *Memo[T]) start() (gateway.Result[T], bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r, ok := m.doneLocked(); ok {
		return r, true
	}

	m.state = LazyLoading
	return gateway.Result[T]{}, false
}

func (m *Memo[T]) Get(ctx context.Context, fetch func(context.Context) gateway.Result[T]) gateway.Result[T] {
	if r, ok := m.start(); ok {
		return r
	}

	v, _, _ := m.group.Do("fetch", func() (any, error) {
		if r, ok := m.done(); ok {
			return r, nil
		}

		r := fetch(ctx)

		m.mu.Lock()
		m.result = r
		if r.Outcome == gateway.OutcomeUnavailable {
			m.state = LazyUnavailable
		} else {
			m.state = LazyReady
		}
		m.mu.Unlock()

		return r, nil
	})

	return v.(gateway.Result[T])
}

func (m *Memo[T]) State() LazyState {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == "" {
		return LazyIdle
	}
	return m.state
}

func (m *Memo[T]) View() LazyView[T] {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case LazyReady, LazyUnavailable:
		r := m.result
		return LazyView[T]{State: m.state, Result: &r}
	case "":
		return LazyView[T]{State: LazyIdle}
	}
	return LazyView[T]{State: m.state}
}

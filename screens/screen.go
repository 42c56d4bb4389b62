// Package screens holds the per-screen view state binders. A binder owns its
// state privately, loads it through the gateway on activation and serves
// snapshots to the HTTP layer.
package screens

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/stevenson0/Insta-clone/gateway"
)

type Kind string

const (
	KindHome     Kind = "home"
	KindSearch   Kind = "search"
	KindExplore  Kind = "explore"
	KindReels    Kind = "reels"
	KindProfile  Kind = "profile"
	KindMessages Kind = "messages"
	KindChat     Kind = "chat"
	KindWatch    Kind = "watch"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrBlankText     = errors.New("text must not be blank")
	ErrLoading       = errors.New("screen is still loading")
	ErrClosed        = errors.New("screen is closed")
	ErrParamRequired = errors.New("screen requires a parameter")
	ErrUnknownKind   = errors.New("unknown screen kind")
	ErrUnknownTab    = errors.New("unknown tab")
)

// Deps is everything a binder needs from the application root
type Deps struct {
	Gateway        *gateway.Gateway
	Logger         *zap.Logger
	PublicURL      string
	ChatReplyDelay time.Duration
}

type Screen interface {
	Kind() Kind
	// Context ends when the screen is closed
	Context() context.Context
	// Begin makes param the tracked parameter and returns the generation of
	// the new activation. It does not block.
	Begin(param string) (uint64, bool)
	// Load fetches the content of generation gen. It blocks until every load
	// is done and always leaves the loading state of a current generation.
	Load(ctx context.Context, gen uint64, param string)
	// Settled is closed once the latest activation finished
	Settled() <-chan struct{}
	Snapshot() any
	Close()
}

// Header is embedded in every snapshot
type Header struct {
	Kind    Kind   `json:"kind"`
	Param   string `json:"param,omitempty"`
	Loading bool   `json:"loading"`
}

// base is the loading/lifetime state shared by every binder. Results of an
// activation are only applied while it is still the latest one and the
// screen is open.
type base struct {
	mu      sync.RWMutex
	kind    Kind
	param   string
	loading bool
	gen     uint64
	closed  bool
	settled chan struct{}
	logger  *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
}

func newBase(kind Kind, logger *zap.Logger) base {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())

	// a screen is loading until its first activation finished
	return base{
		kind:    kind,
		loading: true,
		settled: make(chan struct{}),
		logger:  logger.With(zap.String("screen", string(kind))),
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (b *base) Kind() Kind {
	return b.kind
}

func (b *base) Context() context.Context {
	return b.ctx
}

func (b *base) Settled() <-chan struct{} {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.settled
}

// Begin starts a new activation and returns its generation
func (b *base) Begin(param string) (uint64, bool) {
	return b.begin(param, nil)
}

// begin bumps the generation and runs reset under the same lock
func (b *base) begin(param string, reset func()) (uint64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, false
	}

	b.gen++
	b.param = param
	b.loading = true

	if reset != nil {
		reset()
	}

	select {
	case <-b.settled:
	default:
		close(b.settled)
	}
	b.settled = make(chan struct{})

	return b.gen, true
}

// apply runs f under the write lock if gen is still current
func (b *base) apply(gen uint64, f func()) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed || gen != b.gen {
		b.logger.Debug("Dropping stale activation result", zap.Uint64("generation", gen))
		return false
	}

	f()
	return true
}

func (b *base) finish(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if gen != b.gen {
		return
	}

	b.loading = false

	select {
	case <-b.settled:
	default:
		close(b.settled)
	}
}

func (b *base) header() Header {
	return Header{Kind: b.kind, Param: b.param, Loading: b.loading}
}

func (b *base) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true
	b.cancel()

	select {
	case <-b.settled:
	default:
		close(b.settled)
	}
}

func (b *base) isClosed() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.closed
}

// Activate loads s for param and blocks until the load is done
func Activate(ctx context.Context, s Screen, param string) {
	if gen, ok := s.Begin(param); ok {
		s.Load(ctx, gen, param)
	}
}

func shareURL(publicURL, route, param string) string {
	return strings.TrimRight(publicURL, "/") + "/#/" + route + "/" + url.PathEscape(param)
}

// clone copies s so a snapshot never shares memory with live state
func clone[T any](s []T) []T {
	return append(make([]T, 0, len(s)), s...)
}

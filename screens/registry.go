package screens

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var factories = map[Kind]func(Deps) Screen{
	KindHome:     func(d Deps) Screen { return NewHome(d) },
	KindSearch:   func(d Deps) Screen { return NewSearch(d) },
	KindExplore:  func(d Deps) Screen { return NewExplore(d) },
	KindReels:    func(d Deps) Screen { return NewReels(d) },
	KindProfile:  func(d Deps) Screen { return NewProfile(d) },
	KindMessages: func(d Deps) Screen { return NewMessages(d) },
	KindChat:     func(d Deps) Screen { return NewChatRoom(d) },
	KindWatch:    func(d Deps) Screen { return NewWatch(d) },
}

// requiresParam lists kinds that cannot load without a route parameter
var requiresParam = map[Kind]bool{
	KindProfile: true,
	KindChat:    true,
	KindWatch:   true,
}

// Kinds lists every screen kind that can be mounted
func Kinds() []Kind {
	return []Kind{KindHome, KindSearch, KindExplore, KindReels, KindProfile, KindMessages, KindChat, KindWatch}
}

type mounted struct {
	screen   Screen
	lastSeen time.Time
}

// Mounted is the JSON envelope of a mounted screen
type Mounted struct {
	ID     string `json:"id"`
	Kind   Kind   `json:"kind"`
	Screen any    `json:"screen"`
}

// Registry keeps the mounted screen instances of every client. Instances live
// in memory only and are unmounted when idle for longer than the ttl.
type Registry struct {
	deps   Deps
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	screens map[string]*mounted

	wg   sync.WaitGroup
	stop chan struct{}
	once sync.Once
}

func NewRegistry(deps Deps, ttl time.Duration) *Registry {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Registry{
		deps:    deps,
		ttl:     ttl,
		logger:  logger,
		now:     time.Now,
		screens: map[string]*mounted{},
		stop:    make(chan struct{}),
	}
}

// Mount creates a screen and starts its activation in the background
func (r *Registry) Mount(kind Kind, param string) (string, Screen, error) {
	factory, ok := factories[kind]
	if !ok {
		return "", nil, ErrUnknownKind
	}

	if requiresParam[kind] && param == "" {
		return "", nil, ErrParamRequired
	}

	s := factory(r.deps)
	id := uuid.NewString()
	m := &mounted{screen: s}

	r.mu.Lock()
	m.lastSeen = r.now()
	r.screens[id] = m
	r.activateLocked(m, param)
	r.mu.Unlock()

	r.logger.Debug("Mounted screen", zap.String("id", id), zap.String("kind", string(kind)), zap.String("param", param))

	return id, s, nil
}

// Retarget re-activates a mounted screen for a new parameter
func (r *Registry) Retarget(id, param string) (Screen, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.screens[id]
	if !ok {
		return nil, ErrNotFound
	}

	if requiresParam[m.screen.Kind()] && param == "" {
		return nil, ErrParamRequired
	}

	m.lastSeen = r.now()
	r.activateLocked(m, param)

	return m.screen, nil
}

// activateLocked orders activations by the time they were requested. The
// generation is taken before the load goroutine starts, so a later call
// always wins over an earlier one still in flight.
func (r *Registry) activateLocked(m *mounted, param string) {
	s := m.screen

	gen, ok := s.Begin(param)
	if !ok {
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		s.Load(s.Context(), gen, param)
	}()
}

// Settle blocks until the latest activation of the screen finished or ctx
// ends
func (r *Registry) Settle(ctx context.Context, id string) error {
	r.mu.Lock()
	m, ok := r.screens[id]
	r.mu.Unlock()

	if !ok {
		return ErrNotFound
	}

	select {
	case <-m.screen.Settled():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Get returns a mounted screen and marks it as seen
func (r *Registry) Get(id string) (Screen, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.screens[id]
	if !ok {
		return nil, false
	}

	m.lastSeen = r.now()
	return m.screen, true
}

func (r *Registry) Unmount(id string) bool {
	r.mu.Lock()
	m, ok := r.screens[id]
	delete(r.screens, id)
	r.mu.Unlock()

	if !ok {
		return false
	}

	m.screen.Close()
	r.logger.Debug("Unmounted screen", zap.String("id", id))
	return true
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.screens)
}

// Sweep unmounts every screen idle for longer than the ttl and returns how
// many were removed.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}

	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	var expired []Screen
	for id, m := range r.screens {
		if m.lastSeen.Before(cutoff) {
			expired = append(expired, m.screen)
			delete(r.screens, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.Close()
	}

	if len(expired) > 0 {
		r.logger.Info("Unmounted idle screens", zap.Int("count", len(expired)))
	}

	return len(expired)
}

// Start runs the idle sweeper until ctx ends or Close is called
func (r *Registry) Start(ctx context.Context, every time.Duration) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-r.stop:
				return
			case <-ticker.C:
				r.Sweep()
			}
		}
	}()
}

// Close unmounts every screen and waits for background work to end
func (r *Registry) Close() {
	r.once.Do(func() {
		close(r.stop)
	})

	r.mu.Lock()
	all := r.screens
	r.screens = map[string]*mounted{}
	r.mu.Unlock()

	for _, m := range all {
		m.screen.Close()
	}

	r.wg.Wait()
}

package preferences

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// DefaultDark is the theme of a client that never chose one
const DefaultDark = true

// Themes holds the in-memory flag of every client seen since startup and
// writes every change through to the store. A failed write leaves the
// in-memory flag untouched.
type Themes struct {
	store  Store
	logger *zap.Logger

	mu    sync.Mutex
	cache map[string]bool
}

func NewThemes(store Store, logger *zap.Logger) *Themes {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Themes{
		store:  store,
		logger: logger,
		cache:  map[string]bool{},
	}
}

func (t *Themes) Get(ctx context.Context, clientID string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.loadLocked(ctx, clientID)
}

func (t *Themes) loadLocked(ctx context.Context, clientID string) (bool, error) {
	if dark, ok := t.cache[clientID]; ok {
		return dark, nil
	}

	dark, found, err := t.store.Get(ctx, clientID)
	if err != nil {
		return DefaultDark, err
	}

	if !found {
		dark = DefaultDark
	}

	t.cache[clientID] = dark
	return dark, nil
}

func (t *Themes) Set(ctx context.Context, clientID string, dark bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.Set(ctx, clientID, dark); err != nil {
		t.logger.Error("Failed to persist theme", zap.String("client", clientID), zap.Error(err))
		return err
	}

	t.cache[clientID] = dark
	return nil
}

// Toggle flips the flag of the client and returns the new value
func (t *Themes) Toggle(ctx context.Context, clientID string) (bool, error) {
	// the lock is held across the store round trip so concurrent toggles of
	// one client never lose a flip
	t.mu.Lock()
	defer t.mu.Unlock()

	dark, err := t.loadLocked(ctx, clientID)
	if err != nil {
		return dark, err
	}

	next := !dark
	if err := t.store.Set(ctx, clientID, next); err != nil {
		t.logger.Error("Failed to persist theme", zap.String("client", clientID), zap.Error(err))
		return dark, err
	}

	t.cache[clientID] = next
	return next, nil
}

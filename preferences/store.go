// Package preferences persists the dark mode flag of each client.
package preferences

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stevenson0/Insta-clone/types"
)

const (
	valueDark  = "dark"
	valueLight = "light"
)

// Store is the durable side of the theme flag. Get reports found=false when
// nothing was ever written for the client.
type Store interface {
	Get(ctx context.Context, clientID string) (dark bool, found bool, err error)
	Set(ctx context.Context, clientID string, dark bool) error
}

// RedisStore keeps one string key per client
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(clientID string) string {
	return "theme:" + clientID
}

func (s *RedisStore) Get(ctx context.Context, clientID string) (bool, bool, error) {
	v, err := s.client.Get(ctx, redisKey(clientID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("failed to read theme from redis: %w", err)
	}

	switch v {
	case valueDark:
		return true, true, nil
	case valueLight:
		return false, true, nil
	}

	return false, false, fmt.Errorf("unexpected theme value %q for client %s", v, clientID)
}

func (s *RedisStore) Set(ctx context.Context, clientID string, dark bool) error {
	v := valueLight
	if dark {
		v = valueDark
	}

	if err := s.client.Set(ctx, redisKey(clientID), v, 0).Err(); err != nil {
		return fmt.Errorf("failed to write theme to redis: %w", err)
	}
	return nil
}

// GormStore keeps one row per client in theme_preferences
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(ctx context.Context, clientID string) (bool, bool, error) {
	var pref types.ThemePreference

	err := s.db.WithContext(ctx).Where("client_id = ?", clientID).Take(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("failed to read theme preference: %w", err)
	}

	return pref.Dark, true, nil
}

func (s *GormStore) Set(ctx context.Context, clientID string, dark bool) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"dark", "updated_at"}),
	}).Create(&types.ThemePreference{ClientID: clientID, Dark: dark}).Error
	if err != nil {
		return fmt.Errorf("failed to write theme preference: %w", err)
	}
	return nil
}

// MemoryStore loses everything on restart
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]bool{}}
}

func (s *MemoryStore) Get(_ context.Context, clientID string) (bool, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dark, ok := s.values[clientID]
	return dark, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, clientID string, dark bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[clientID] = dark
	return nil
}

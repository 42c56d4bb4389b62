package preferences

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client), s
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	_, found, err := store.Get(ctx, "tab-1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "tab-1", false))

	v, err := mr.Get("theme:tab-1")
	require.NoError(t, err)
	assert.Equal(t, "light", v)

	dark, found, err := store.Get(ctx, "tab-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, dark)
}

func TestRedisStoreRejectsUnknownValue(t *testing.T) {
	store, mr := newRedisStore(t)
	require.NoError(t, mr.Set("theme:tab-1", "sepia"))

	_, _, err := store.Get(context.Background(), "tab-1")
	assert.Error(t, err)
}

func TestThemeSurvivesReload(t *testing.T) {
	store, _ := newRedisStore(t)
	ctx := context.Background()

	themes := NewThemes(store, nil)

	dark, err := themes.Get(ctx, "tab-1")
	require.NoError(t, err)
	assert.Equal(t, DefaultDark, dark)

	dark, err = themes.Toggle(ctx, "tab-1")
	require.NoError(t, err)
	assert.False(t, dark)

	reloaded := NewThemes(store, nil)
	dark, err = reloaded.Get(ctx, "tab-1")
	require.NoError(t, err)
	assert.False(t, dark)

	dark, err = reloaded.Toggle(ctx, "tab-1")
	require.NoError(t, err)
	assert.True(t, dark)

	dark, err = NewThemes(store, nil).Get(ctx, "tab-1")
	require.NoError(t, err)
	assert.True(t, dark)
}

func TestConcurrentTogglesKeepEveryFlip(t *testing.T) {
	themes := NewThemes(NewMemoryStore(), nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := themes.Toggle(ctx, "tab-1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	dark, err := themes.Get(ctx, "tab-1")
	require.NoError(t, err)
	assert.True(t, dark)
}

type failingStore struct {
	*MemoryStore
}

func (failingStore) Set(context.Context, string, bool) error {
	return errors.New("disk full")
}

func TestFailedWriteKeepsFlag(t *testing.T) {
	themes := NewThemes(failingStore{MemoryStore: NewMemoryStore()}, nil)
	ctx := context.Background()

	dark, err := themes.Toggle(ctx, "tab-1")
	assert.Error(t, err)
	assert.True(t, dark)

	dark, err = themes.Get(ctx, "tab-1")
	require.NoError(t, err)
	assert.True(t, dark)
}

func newGormStore(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	pool, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormStore(pool), mock
}

func TestGormStoreGet(t *testing.T) {
	store, mock := newGormStore(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "theme_preferences" WHERE client_id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"client_id", "dark"}).AddRow("tab-1", false))

	dark, found, err := store.Get(ctx, "tab-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, dark)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "theme_preferences" WHERE client_id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"client_id", "dark"}))

	_, found, err = store.Get(ctx, "tab-2")
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStoreSetUpserts(t *testing.T) {
	store, mock := newGormStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "theme_preferences"`) + `.*` +
		regexp.QuoteMeta(`ON CONFLICT ("client_id") DO UPDATE SET "dark"="excluded"."dark"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Set(context.Background(), "tab-1", true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

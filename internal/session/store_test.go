package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-analytics/internal/dataset"
)

func TestCreateAndGet(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	id := store.Create(&Session{Filename: "ventas.csv", Dataset: dataset.Sample()})
	require.NotEmpty(t, id)

	s, ok := store.Get(id)
	require.True(t, ok)
	assert.Equal(t, "ventas.csv", s.Filename)
	assert.Equal(t, 5, s.Dataset.Len())
	assert.Equal(t, 1, store.Len())
}

func TestCreateAssignsUniqueTokens(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	a := store.Create(&Session{})
	b := store.Create(&Session{})
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, store.Len())
}

func TestGetUnknownSession(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	id := store.Create(&Session{})

	store.Delete(id)
	_, ok := store.Get(id)
	assert.False(t, ok)

	// deleting again must not panic
	store.Delete(id)
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	stale := store.Create(&Session{})
	fresh := store.Create(&Session{})

	// age only the stale session
	store.mu.Lock()
	store.sessions[stale].LastSeen = time.Now().Add(-2 * time.Minute)
	store.mu.Unlock()

	evicted := store.Sweep(time.Now())
	assert.Equal(t, 1, evicted)

	_, ok := store.Get(stale)
	assert.False(t, ok)
	_, ok = store.Get(fresh)
	assert.True(t, ok)
}

func TestGetRefreshesIdleTimer(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	id := store.Create(&Session{})

	store.mu.Lock()
	store.sessions[id].LastSeen = time.Now().Add(-59 * time.Second)
	store.mu.Unlock()

	_, ok := store.Get(id)
	require.True(t, ok)

	evicted := store.Sweep(time.Now().Add(30 * time.Second))
	assert.Zero(t, evicted, "recently read session must survive the sweep")
}

func TestConcurrentAccess(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := store.Create(&Session{Dataset: dataset.Sample()})
			if _, ok := store.Get(id); !ok {
				t.Error("session vanished")
			}
			store.Delete(id)
		}()
	}
	wg.Wait()

	assert.Zero(t, store.Len())
}

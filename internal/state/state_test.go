package state

import (
	"errors"
	"sync"
	"testing"

	"github.com/rook-computer/badger/internal/badge"
	"github.com/stretchr/testify/assert"
)

func TestStoreLifecycle(t *testing.T) {
	store := NewStore()
	assert.Equal(t, BOOTING, store.Snapshot().Phase)

	store.SetBadge(badge.Badge{FirstName: "Mona Lisa"})
	snap := store.Snapshot()
	assert.Equal(t, LOADED, snap.Phase)
	assert.Equal(t, "Mona Lisa", snap.Badge.FirstName)

	store.SetPhase(RENDERED)
	store.SetPhase(IDLE)
	assert.Equal(t, IDLE, store.Snapshot().Phase)
}

func TestStoreSetError(t *testing.T) {
	store := NewStore()
	store.SetError(errors.New("read badge: permission denied"))

	snap := store.Snapshot()
	assert.Equal(t, ERROR, snap.Phase)
	assert.Equal(t, "read badge: permission denied", snap.Err)
}

func TestStoreRecordWakeConcurrent(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.RecordWake()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, store.Snapshot().Wakes)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "rendered", RENDERED.String())
	assert.Equal(t, "unknown", Phase(99).String())
}

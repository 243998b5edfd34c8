package state

import (
	"sync"

	"github.com/rook-computer/badger/internal/badge"
)

type Phase int

const (
	BOOTING Phase = iota
	LOADED
	RENDERED
	IDLE
	ERROR
)

func (p Phase) String() string {
	switch p {
	case BOOTING:
		return "booting"
	case LOADED:
		return "loaded"
	case RENDERED:
		return "rendered"
	case IDLE:
		return "idle"
	case ERROR:
		return "error"
	default:
		return "unknown"
	}
}

type State struct {
	Phase Phase
	Badge badge.Badge
	// Wakes counts button presses that woke the badge from halt.
	Wakes int
	Err   string
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: BOOTING}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	store.mu.Unlock()
}

func (store *Store) SetBadge(b badge.Badge) {
	store.mu.Lock()
	store.state.Badge = b
	store.state.Phase = LOADED
	store.mu.Unlock()
}

func (store *Store) RecordWake() {
	store.mu.Lock()
	store.state.Wakes++
	store.mu.Unlock()
}

func (store *Store) SetError(err error) {
	store.mu.Lock()
	store.state.Phase = ERROR
	if err != nil {
		store.state.Err = err.Error()
	}
	store.mu.Unlock()
}

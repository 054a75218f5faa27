package handler

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yumyai/metagame/pkg/model"
)

// GameSession is the game of one browser, identified by its cookie.
type GameSession struct {
	ID        string
	Game      model.Game
	CreatedAt time.Time
	UpdatedAt time.Time

	rng *rand.Rand
}

// GameSessionManager stores game sessions indexed by session ID. Events for
// one session are applied one at a time under the manager lock.
type GameSessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*GameSession
	seed     uint64
	now      func() time.Time
}

// NewGameSessionManager constructs a manager with no sessions. A zero seed
// gives every session its own random seed.
func NewGameSessionManager(seed uint64) *GameSessionManager {
	return &GameSessionManager{
		sessions: make(map[string]*GameSession),
		seed:     seed,
		now:      time.Now,
	}
}

// Open returns the session with id, or deals a new game under a fresh id
// when id is unknown. created tells the caller to hand out the new id.
func (m *GameSessionManager) Open(id string) (sid string, game model.Game, created bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess, ok := m.sessions[id]; ok {
		return sess.ID, sess.Game, false
	}

	now := m.now()
	sess := &GameSession{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
		rng:       m.newRand(),
	}
	sess.Game = model.Reduce(model.Game{}, model.NewGame{}, sess.rng)
	m.sessions[sess.ID] = sess

	return sess.ID, sess.Game, true
}

// GetGame fetches the current game of a session.
func (m *GameSessionManager) GetGame(id string) (model.Game, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[id]
	if !ok {
		return model.Game{}, false
	}
	return sess.Game, true
}

// Apply runs ev against the session's game and returns the state before and
// after it.
func (m *GameSessionManager) Apply(id string, ev model.Event) (before, after model.Game, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[id]
	if !ok {
		return model.Game{}, model.Game{}, false
	}

	before = sess.Game
	sess.Game = model.Reduce(sess.Game, ev, sess.rng)
	sess.UpdatedAt = m.now()
	return before, sess.Game, true
}

// Len is the number of live sessions.
func (m *GameSessionManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// SweepIdle removes sessions untouched for longer than maxIdle and returns
// their ids.
func (m *GameSessionManager) SweepIdle(maxIdle time.Duration) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-maxIdle)
	var evicted []string
	for id, sess := range m.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(m.sessions, id)
			evicted = append(evicted, id)
		}
	}
	return evicted
}

// RunSweeper calls SweepIdle every interval until ctx is done. onEvict, if
// set, is called for every removed session outside the manager lock.
func (m *GameSessionManager) RunSweeper(ctx context.Context, interval, maxIdle time.Duration, onEvict func(id string)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, id := range m.SweepIdle(maxIdle) {
				if onEvict != nil {
					onEvict(id)
				}
			}
		}
	}
}

func (m *GameSessionManager) newRand() *rand.Rand {
	if m.seed != 0 {
		return model.NewRand(m.seed)
	}
	return model.NewRand(newSeed())
}

func newSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err == nil {
		return binary.LittleEndian.Uint64(b[:])
	}
	return uint64(time.Now().UnixNano())
}

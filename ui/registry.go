package ui

import (
	"log"
	"sync"
	"time"

	"github.com/trikaloudis/aquomixlab-heatmaps/domain/core"
	"github.com/trikaloudis/aquomixlab-heatmaps/domain/heatmap"
	"github.com/trikaloudis/aquomixlab-heatmaps/domain/table"
)

// ViewState is the last configuration applied to a dataset, kept so the
// form re-renders with the user's choices. Each pipeline run still receives
// its own immutable copy.
type ViewState struct {
	Selection heatmap.Selection
	Transform heatmap.TransformConfig
	Render    heatmap.RenderConfig
}

// DatasetSession is one uploaded table held in memory for the lifetime of
// the visualization session. Nothing is written to disk.
type DatasetSession struct {
	ID        core.DatasetID
	Filename  string
	Table     *table.Table
	State     ViewState
	CreatedAt time.Time
	touchedAt time.Time
}

// SessionRegistry is the in-memory dataset store: TTL-swept, capped, and
// guarded by a RWMutex. It is the only state that outlives a single
// request/response cycle.
type SessionRegistry struct {
	mu         sync.RWMutex
	sessions   map[core.DatasetID]*DatasetSession
	ttl        time.Duration
	maxEntries int
}

// NewSessionRegistry creates a registry evicting sessions after ttl of
// inactivity and keeping at most maxEntries entries.
func NewSessionRegistry(ttl time.Duration, maxEntries int) *SessionRegistry {
	return &SessionRegistry{
		sessions:   make(map[core.DatasetID]*DatasetSession),
		ttl:        ttl,
		maxEntries: maxEntries,
	}
}

// Put stores a freshly uploaded table and returns its session.
func (r *SessionRegistry) Put(filename string, t *table.Table, state ViewState) *DatasetSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweepLocked()
	if len(r.sessions) >= r.maxEntries {
		r.evictOldestLocked()
	}

	now := time.Now()
	session := &DatasetSession{
		ID:        core.NewDatasetID(),
		Filename:  filename,
		Table:     t,
		State:     state,
		CreatedAt: now,
		touchedAt: now,
	}
	r.sessions[session.ID] = session
	log.Printf("[SessionRegistry] Stored dataset %s (%s, %d rows)", session.ID, filename, t.RowCount())
	return session
}

// Get returns a snapshot of the session for id, refreshing its TTL. The
// snapshot is taken under the lock so a concurrent UpdateState never races
// a handler reading State; the Table pointer is shared but read-only.
func (r *SessionRegistry) Get(id core.DatasetID) (*DatasetSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	if time.Since(session.touchedAt) > r.ttl {
		delete(r.sessions, id)
		return nil, false
	}
	session.touchedAt = time.Now()
	snapshot := *session
	return &snapshot, true
}

// UpdateState records the configuration last applied to a dataset.
func (r *SessionRegistry) UpdateState(id core.DatasetID, state ViewState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok := r.sessions[id]; ok {
		session.State = state
	}
}

// Len returns the live session count.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *SessionRegistry) sweepLocked() {
	cutoff := time.Now().Add(-r.ttl)
	for id, session := range r.sessions {
		if session.touchedAt.Before(cutoff) {
			delete(r.sessions, id)
		}
	}
}

func (r *SessionRegistry) evictOldestLocked() {
	var oldest core.DatasetID
	var oldestAt time.Time
	for id, session := range r.sessions {
		if oldest == "" || session.touchedAt.Before(oldestAt) {
			oldest, oldestAt = id, session.touchedAt
		}
	}
	if oldest != "" {
		log.Printf("[SessionRegistry] Evicting dataset %s (registry full)", oldest)
		delete(r.sessions, oldest)
	}
}

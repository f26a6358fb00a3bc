package sitesettings

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/vidnest/vidnest/internal/web/head"
)

// Status is the load status of a State.
type Status int32

const (
	// StatusLoading is set while a refresh is in flight.
	StatusLoading Status = iota
	// StatusLoaded is set once a refresh has been applied.
	StatusLoaded
)

func (s Status) String() string {
	if s == StatusLoaded {
		return "loaded"
	}

	return "loading"
}

// State is the application-scoped settings cache. It is built once at startup and handed to every consumer.
type State struct {
	svc   *Service
	shell []byte

	// generation is bumped by every refresh and every confirmed update.
	generation atomic.Uint64

	mu          sync.RWMutex
	lastRefresh uint64
	status      Status
	snapshot    Snapshot
	patched     []byte
	subscribers map[chan Snapshot]struct{}
}

// NewState creates a State in StatusLoading. shell is the HTML document whose head is kept in sync
// with the settings; it may be nil.
func NewState(svc *Service, shell []byte) *State {
	return &State{
		svc:         svc,
		shell:       shell,
		status:      StatusLoading,
		snapshot:    Snapshot{},
		patched:     shell,
		subscribers: make(map[chan Snapshot]struct{}),
	}
}

// Status returns the current load status.
func (s *State) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.status
}

// Snapshot returns a copy of the cached settings.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.Clone()
}

// Shell returns the HTML shell with the current settings applied to its head.
func (s *State) Shell() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.patched
}

// Refresh reloads every setting from the service. On failure, or when nothing is persisted, the
// defaults are used. A refresh that resolves after a newer one was started is discarded. A refresh
// that resolves after a confirmed update loads again, so the cache never goes back to older values.
func (s *State) Refresh(ctx context.Context) Snapshot {
	s.mu.Lock()
	gen := s.beginRefreshLocked()
	s.mu.Unlock()

	for {
		snap, err := s.svc.Load(ctx)

		switch {
		case err != nil:
			log.Error().Err(err).Msg("error loading settings, using defaults")

			snap = s.svc.Defaults()
		case len(snap) == 0:
			snap = s.svc.Defaults()
		}

		s.mu.Lock()

		switch {
		case gen == s.generation.Load():
			s.snapshot = snap
			s.status = StatusLoaded
			s.applyLocked()
			s.mu.Unlock()

			return snap.Clone()
		case gen != s.lastRefresh:
			s.mu.Unlock()
			log.Debug().Uint64("generation", gen).Msg("discarding stale settings refresh")

			return snap
		case ctx.Err() != nil:
			// the cache already holds the confirmed updates
			s.status = StatusLoaded
			s.mu.Unlock()

			return s.Snapshot()
		}

		// only updates happened meanwhile
		gen = s.beginRefreshLocked()
		s.mu.Unlock()
		log.Debug().Uint64("generation", gen).Msg("settings updated during refresh, loading again")
	}
}

// beginRefreshLocked starts a new generation owned by a refresh. s.mu must be held.
func (s *State) beginRefreshLocked() uint64 {
	gen := s.generation.Add(1)
	s.lastRefresh = gen
	s.status = StatusLoading

	return gen
}

// UpdateSetting persists one value and merges it into the cache once the service confirms it.
func (s *State) UpdateSetting(ctx context.Context, key string, value any) error {
	if err := s.svc.Set(ctx, key, value); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation.Add(1)
	s.snapshot = s.snapshot.Clone()
	s.snapshot[key] = value
	s.applyLocked()

	return nil
}

// UpdateSettings persists updates in order and merges them into the cache only when all succeeded.
func (s *State) UpdateSettings(ctx context.Context, updates ...Update) error {
	if err := s.svc.SetMany(ctx, updates...); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation.Add(1)
	s.snapshot = s.snapshot.Clone()
	for _, u := range updates {
		s.snapshot[u.Key] = u.Value
	}

	s.applyLocked()

	return nil
}

// DeleteSetting removes a persisted key and drops it from the cache once the service confirms it.
func (s *State) DeleteSetting(ctx context.Context, key string) (bool, error) {
	deleted, err := s.svc.Delete(ctx, key)
	if err != nil || !deleted {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation.Add(1)
	s.snapshot = s.snapshot.Clone()
	delete(s.snapshot, key)
	s.applyLocked()

	return true, nil
}

// Subscribe returns a channel receiving the latest snapshot after every change, and a cancel func.
// Slow receivers only ever see the most recent value.
func (s *State) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
	}
}

// applyLocked pushes the snapshot into the head and to subscribers. s.mu must be held.
func (s *State) applyLocked() {
	if s.shell != nil {
		patched, err := head.Patch(s.shell, FieldsFor(s.snapshot))
		if err != nil {
			log.Error().Err(err).Msg("error updating document head")
		} else {
			s.patched = patched
		}
	}

	for ch := range s.subscribers {
		select {
		case <-ch:
		default:
		}

		ch <- s.snapshot.Clone()
	}
}

// FieldsFor maps a snapshot onto head metadata.
func FieldsFor(snap Snapshot) head.Fields {
	title := snap.String(KeySiteTitle)
	if title == "" {
		title = snap.String(KeySiteName)
	}

	return head.Fields{
		Title:       title,
		Description: snap.String(KeyMetaDescription),
		Image:       snap.String(KeyMetaImage),
		OGTitle:     title,
		SiteName:    snap.String(KeySiteName),
		FaviconURL:  snap.String(KeyFaviconURL),
	}
}

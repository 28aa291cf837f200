package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/feischl/pumppanel/pkg/domain"
	"github.com/feischl/pumppanel/pkg/metrics"
)

//go:generate moq -out mocks/persister.go -pkg mocks -skip-ensure -fmt goimports . Persister
//go:generate moq -out mocks/backend.go -pkg mocks -skip-ensure -fmt goimports . Backend

// Persister reads and writes the serialized settings snapshot
type Persister interface {
	Snapshot(ctx context.Context) (string, error)
	SaveSnapshot(ctx context.Context, data string) error
}

// Backend reads and replaces settings on the remote controller
type Backend interface {
	GetSettings(ctx context.Context) (*domain.ControlSettings, error)
	PutSettings(ctx context.Context, settings domain.ControlSettings) error
}

// Store is the single source of truth for control settings. It merges the
// persisted snapshot over defaults at construction, coalesces bursts of edits
// into one debounced snapshot write, and pushes the bidding zone to the
// backend on demand. Persistence and sync failures never propagate to
// callers, they are logged and absorbed here.
type Store struct {
	persister Persister
	backend   Backend
	debounce  time.Duration
	metrics   *metrics.Metrics

	mu       sync.Mutex
	settings domain.ControlSettings
	extra    map[string]json.RawMessage // unknown snapshot fields, carried through writes
	timer    *time.Timer                // single pending-save slot

	syncing atomic.Bool
}

// New creates the store and loads the persisted snapshot merged over
// defaults. A missing or unreadable snapshot is not an error, the store
// starts from defaults.
func New(ctx context.Context, persister Persister, backend Backend, debounce time.Duration, m *metrics.Metrics) *Store {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	s := &Store{
		persister: persister,
		backend:   backend,
		debounce:  debounce,
		metrics:   m,
	}
	s.load(ctx)
	return s
}

// load merges the persisted snapshot over defaults, field by field. Any read
// or parse failure means "no snapshot".
func (s *Store) load(ctx context.Context) {
	s.settings = domain.DefaultSettings()
	s.extra = nil

	raw, err := s.persister.Snapshot(ctx)
	if err != nil {
		log.Printf("[WARN] failed to read settings snapshot, using defaults: %v", err)
		return
	}
	if raw == "" {
		return
	}

	var snap map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		log.Printf("[WARN] invalid settings snapshot, using defaults: %v", err)
		return
	}

	merged := domain.DefaultSettings()
	if err := json.Unmarshal([]byte(raw), &merged); err != nil {
		log.Printf("[WARN] settings snapshot doesn't match expected shape, using defaults: %v", err)
		return
	}
	s.settings = merged

	// keep fields we don't know about so they survive future writes
	for key := range knownFields() {
		delete(snap, key)
	}
	if len(snap) > 0 {
		s.extra = snap
	}
}

// Settings returns a copy of the current settings value
func (s *Store) Settings() domain.ControlSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSetting replaces exactly one field, producing a new settings value,
// and arms the debounced save. Field values are not validated against range
// constraints. A key outside the known settings shape is carried as an extra
// field. The only rejected input is a value that can't be applied to the
// field's type.
func (s *Store) UpdateSetting(key string, value any) error {
	data, err := json.Marshal(map[string]any{key: value})
	if err != nil {
		return fmt.Errorf("marshal value for %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if knownFields()[key] {
		updated := s.settings
		if err := json.Unmarshal(data, &updated); err != nil {
			return fmt.Errorf("apply %s: %w", key, err)
		}
		s.settings = updated
	} else {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return fmt.Errorf("apply %s: %w", key, err)
		}
		if s.extra == nil {
			s.extra = map[string]json.RawMessage{}
		}
		s.extra[key] = fields[key]
	}

	s.scheduleSaveLocked()
	return nil
}

// ResetToDefaults replaces the entire settings value with the hardcoded
// defaults and arms the debounced save like any other mutation
func (s *Store) ResetToDefaults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = domain.DefaultSettings()
	s.extra = nil
	s.scheduleSaveLocked()
}

// scheduleSaveLocked (re)arms the pending save, cancelling any previous one.
// Called with s.mu held.
func (s *Store) scheduleSaveLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.SaveSettings(context.Background())
	})
}

// SaveSettings serializes the current settings and writes the snapshot
// synchronously. A write failure is logged and swallowed, in-memory state is
// not affected.
func (s *Store) SaveSettings(ctx context.Context) {
	s.mu.Lock()
	data, err := s.serializeLocked()
	s.mu.Unlock()
	if err != nil {
		log.Printf("[WARN] failed to serialize settings: %v", err)
		s.metrics.SnapshotError()
		return
	}

	if err := s.persister.SaveSnapshot(ctx, data); err != nil {
		log.Printf("[WARN] failed to persist settings: %v", err)
		s.metrics.SnapshotError()
		return
	}
	s.metrics.SnapshotWrite()
	log.Printf("[DEBUG] settings snapshot saved")
}

// serializeLocked renders the settings plus retained extra fields as JSON.
// Called with s.mu held.
func (s *Store) serializeLocked() (string, error) {
	data, err := json.Marshal(s.settings)
	if err != nil {
		return "", fmt.Errorf("marshal settings: %w", err)
	}
	if len(s.extra) == 0 {
		return string(data), nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return "", fmt.Errorf("remarshal settings: %w", err)
	}
	for key, val := range s.extra {
		if _, ok := fields[key]; !ok {
			fields[key] = val
		}
	}
	merged, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("marshal merged settings: %w", err)
	}
	return string(merged), nil
}

// SyncWithBackend pushes the bidding zone to the backend: reads the remote
// settings, replaces the zone and writes them back. Overlapping calls are
// single-flight, a call arriving while a sync runs returns immediately.
// Failures are logged and swallowed, the busy flag clears on every path.
func (s *Store) SyncWithBackend(ctx context.Context) {
	if !s.syncing.CompareAndSwap(false, true) {
		log.Printf("[DEBUG] sync already in progress, skipping")
		return
	}
	defer s.syncing.Store(false)

	s.metrics.SyncStarted()
	zone := s.Settings().BiddingZone

	remote, err := s.backend.GetSettings(ctx)
	if err != nil {
		log.Printf("[WARN] sync: failed to read backend settings: %v", err)
		s.metrics.SyncFailed()
		return
	}

	remote.BiddingZone = zone
	if err := s.backend.PutSettings(ctx, *remote); err != nil {
		log.Printf("[WARN] sync: failed to push settings to backend: %v", err)
		s.metrics.SyncFailed()
		return
	}

	log.Printf("[INFO] pushed bidding zone %s to backend", zone)
}

// Syncing reports whether a backend sync is in flight
func (s *Store) Syncing() bool {
	return s.syncing.Load()
}

// Close cancels the pending save. If a save was pending its edits are
// flushed synchronously so a graceful shutdown doesn't drop them.
func (s *Store) Close() {
	s.mu.Lock()
	pending := s.timer != nil && s.timer.Stop()
	s.timer = nil
	s.mu.Unlock()

	if pending {
		s.SaveSettings(context.Background())
	}
}

// knownFields returns the JSON field names of the settings shape
func knownFields() map[string]bool {
	data, err := json.Marshal(domain.ControlSettings{})
	if err != nil {
		return map[string]bool{}
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return map[string]bool{}
	}
	known := make(map[string]bool, len(fields))
	for key := range fields {
		known[key] = true
	}
	return known
}

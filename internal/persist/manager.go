package persist

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/yuna/weekcard/internal/database"
	"github.com/yuna/weekcard/internal/database/repository"
	"github.com/yuna/weekcard/internal/sched"
	"github.com/yuna/weekcard/internal/schema"
)

// DefaultAutosaveDelay is the quiescence window before a burst of edits
// is written out.
const DefaultAutosaveDelay = 1000 * time.Millisecond

// Repo is the storage the manager writes through. Satisfied by
// repository.SnapshotRepo; tests substitute counting fakes.
type Repo interface {
	Get(ctx context.Context, templateID, profileID string) ([]byte, error)
	Put(ctx context.Context, templateID, profileID string, data []byte, now time.Time) error
	Delete(ctx context.Context, templateID, profileID string) error
}

// Manager persists one template instance's schedule. Writes are
// best-effort: a failed save is logged and dropped, never surfaced to the
// editing path. Reads are tolerant: anything unusable falls back to the
// caller's defaults.
type Manager struct {
	repo       Repo
	templateID string
	profileID  string
	schema     schema.Schema
	delay      time.Duration
	log        *zap.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending *Snapshot
}

// New builds a manager for one (template, profile) namespace.
func New(repo Repo, templateID, profileID string, s schema.Schema, delay time.Duration, log *zap.Logger) *Manager {
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		repo:       repo,
		templateID: templateID,
		profileID:  profileID,
		schema:     s,
		delay:      delay,
		log:        log,
	}
}

// Save writes a snapshot immediately. Best-effort: storage failures are
// logged and swallowed so an edit never fails because a disk did.
func (m *Manager) Save(ctx context.Context, snap Snapshot) {
	snap.Fingerprint = schema.Fingerprint(m.schema)
	data, err := json.Marshal(snap)
	if err != nil {
		m.log.Warn("snapshot encode failed, write dropped", zap.Error(err))
		return
	}
	if err := m.repo.Put(ctx, m.templateID, m.profileID, data, database.Now()); err != nil {
		m.log.Warn("snapshot write failed, state kept in memory only",
			zap.String("template", m.templateID), zap.Error(err))
	}
}

// Load restores the stored snapshot. Missing, unparseable or misshapen
// data yields def unchanged. A well-formed snapshot saved under a
// different schema fingerprint yields default cards but keeps the stored
// theme and meta: a theme choice stays valid across schema edits, card
// values do not.
func (m *Manager) Load(ctx context.Context, def Snapshot) Snapshot {
	data, err := m.repo.Get(ctx, m.templateID, m.profileID)
	if errors.Is(err, repository.ErrNotFound) {
		return def
	}
	if err != nil {
		m.log.Warn("snapshot read failed, using defaults", zap.Error(err))
		return def
	}

	snap, err := decodeSnapshot(data)
	if err != nil {
		m.log.Warn("stored snapshot unparseable, using defaults", zap.Error(err))
		return def
	}
	if err := checkShape(snap); err != nil {
		m.log.Warn("stored snapshot misshapen, using defaults", zap.Error(err))
		return def
	}

	active := schema.Fingerprint(m.schema)
	if snap.Fingerprint != active {
		m.log.Info("schema changed since last save, resetting cards",
			zap.String("template", m.templateID))
		return Snapshot{
			Cards:       sched.DefaultWeek(m.schema),
			Theme:       snap.Theme,
			Meta:        snap.Meta,
			Fingerprint: active,
		}
	}

	if err := checkValues(snap, m.schema); err != nil {
		m.log.Warn("stored snapshot has out-of-domain values, using defaults", zap.Error(err))
		return def
	}
	return snap
}

// Autosave schedules a debounced write. Each call cancels any pending
// write and restarts the quiescence window, so a burst of edits costs
// exactly one physical write.
func (m *Manager) Autosave(snap Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pending = &snap
	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(m.delay, m.firePending)
}

func (m *Manager) firePending() {
	m.mu.Lock()
	snap := m.pending
	m.pending = nil
	m.timer = nil
	m.mu.Unlock()

	if snap == nil {
		return
	}
	m.Save(context.Background(), *snap)
}

// Flush cancels any pending debounce and writes the latest snapshot
// synchronously. Called at session end so the last edit burst survives.
func (m *Manager) Flush(ctx context.Context) {
	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	snap := m.pending
	m.pending = nil
	m.mu.Unlock()

	if snap != nil {
		m.Save(ctx, *snap)
	}
}

// Clear drops the persisted entry and any pending autosave.
func (m *Manager) Clear(ctx context.Context) {
	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.pending = nil
	m.mu.Unlock()

	if err := m.repo.Delete(ctx, m.templateID, m.profileID); err != nil {
		m.log.Warn("snapshot delete failed", zap.Error(err))
	}
}

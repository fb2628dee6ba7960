package day

import (
	"context"
	"strings"
	"time"

	"github.com/javiermolinar/daygrid/internal/dateutil"
	"github.com/javiermolinar/daygrid/internal/logger"
)

// KeyPrefix prefixes every snapshot key.
const KeyPrefix = "planner_"

// Store is the key-value storage the planner persists snapshots in.
type Store interface {
	// Get returns the value stored under key, or nil if there is none.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Keys lists the stored keys starting with prefix, in ascending order.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Close releases any resources held by the store.
	Close() error
}

// StorageKey returns the key of date's snapshot: "planner_YYYY-MM-DD".
func StorageKey(date time.Time) string {
	return KeyPrefix + dateutil.Key(date)
}

// DateFromKey parses a snapshot key back into its date.
func DateFromKey(key string) (time.Time, bool) {
	rest, ok := strings.CutPrefix(key, KeyPrefix)
	if !ok || rest == "" {
		return time.Time{}, false
	}
	t, err := dateutil.ParseDate(rest)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Snapshots reads and writes day snapshots on a Store, best effort.
// Failures are logged and never returned: a failed read yields an empty
// snapshot, a failed write leaves the in-memory state as the only copy.
type Snapshots struct {
	store Store
}

// NewSnapshots wraps store.
func NewSnapshots(store Store) *Snapshots {
	return &Snapshots{store: store}
}

// Load returns date's stored snapshot, still in its stored format.
func (s *Snapshots) Load(ctx context.Context, date time.Time) RawSnapshot {
	key := StorageKey(date)
	if s == nil || s.store == nil {
		return RawSnapshot{}
	}

	data, err := s.store.Get(ctx, key)
	if err != nil {
		logger.Error("reading snapshot", "key", key, "err", err)
		return RawSnapshot{}
	}
	if data == nil {
		return RawSnapshot{}
	}

	raw, err := DecodeSnapshot(data)
	if err != nil {
		logger.Error("reading snapshot", "key", key, "err", err)
		return RawSnapshot{}
	}
	if raw.TimeBlocks.IsLegacy() {
		logger.Info("migrating legacy time blocks", "key", key, "entries", len(raw.TimeBlocks.Legacy))
	}
	return raw
}

// Save writes date's snapshot. It reports whether the write succeeded so
// callers can surface degraded durability, but it never fails loudly.
func (s *Snapshots) Save(ctx context.Context, date time.Time, snap Snapshot) bool {
	key := StorageKey(date)
	if s == nil || s.store == nil {
		return false
	}

	data, err := EncodeSnapshot(snap)
	if err != nil {
		logger.Error("saving snapshot", "key", key, "err", err)
		return false
	}
	if err := s.store.Set(ctx, key, data); err != nil {
		logger.Error("saving snapshot", "key", key, "err", err)
		return false
	}
	logger.Debug("saved snapshot", "key", key, "goals", len(snap.Goals), "blocks", len(snap.TimeBlocks))
	return true
}

// Dates lists every date that has a stored snapshot, oldest first.
func (s *Snapshots) Dates(ctx context.Context) []time.Time {
	if s == nil || s.store == nil {
		return nil
	}
	keys, err := s.store.Keys(ctx, KeyPrefix)
	if err != nil {
		logger.Error("listing snapshots", "err", err)
		return nil
	}
	dates := make([]time.Time, 0, len(keys))
	for _, k := range keys {
		if d, ok := DateFromKey(k); ok {
			dates = append(dates, d)
		}
	}
	return dates
}

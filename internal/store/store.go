// Package store provides a thin bbolt wrapper for pennyplot's local series
// store.
//
// Design philosophy: the store is an intentional data accumulator, not a
// cache. Series are written explicitly via `data import` (or the demo
// generator) and read back by chart commands. No TTL, no auto-invalidation —
// you own your data.
//
// Buckets:
//
//	series     — labeled point series keyed by lower-cased ID
//	categories — category breakdown sets keyed by lower-cased ID
//	_meta      — internal: schema version, created_at
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/pennyplot/pennyplot/internal/model"
)

// Current schema version. Bump when bucket layout or key format changes.
const schemaVersion = 1

// Bucket name constants.
var (
	bucketSeries     = []byte("series")
	bucketCategories = []byte("categories")
	bucketInternal   = []byte("_meta")
)

// AllBuckets lists every top-level bucket for stats and clear operations.
var AllBuckets = []string{"series", "categories"}

// Store wraps a bbolt database.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the bbolt database at path.
// Parent directories are created automatically.
// Runs schema migrations on every open.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating db directory: %w", err)
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening db %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration: %w", err)
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the filesystem path of the open database.
func (s *Store) Path() string {
	return s.db.Path()
}

// migrate ensures all buckets exist and schema is current.
func (s *Store) migrate() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketSeries, bucketCategories, bucketInternal} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("creating bucket %s: %w", name, err)
			}
		}
		meta := tx.Bucket(bucketInternal)
		if meta.Get([]byte("schema_version")) == nil {
			if err := meta.Put([]byte("schema_version"), []byte(fmt.Sprintf("%d", schemaVersion))); err != nil {
				return err
			}
			if err := meta.Put([]byte("created_at"), []byte(time.Now().UTC().Format(time.RFC3339))); err != nil {
				return err
			}
		}
		return nil
	})
}

// Key normalizes a series or category-set ID into its storage key.
func Key(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// ─── Series ───────────────────────────────────────────────────────────────────

// storedSeries is the on-disk envelope for a series entry.
type storedSeries struct {
	model.Series
	SavedAt time.Time `json:"saved_at"`
}

// PutSeries stores a series under its normalized ID, replacing any previous
// entry wholesale.
func (s *Store) PutSeries(series model.Series) error {
	if Key(series.ID) == "" {
		return fmt.Errorf("series has no ID")
	}
	data, err := json.Marshal(storedSeries{Series: series, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("encoding series: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSeries).Put([]byte(Key(series.ID)), data)
	})
}

// GetSeries retrieves a series by ID.
// Returns (series, true, nil) if found, (zero, false, nil) if not found.
func (s *Store) GetSeries(id string) (model.Series, bool, error) {
	var stored storedSeries
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketSeries).Get([]byte(Key(id)))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &stored)
	})
	if err != nil {
		return model.Series{}, false, err
	}
	return stored.Series, stored.ID != "", nil
}

// SeriesInfo summarizes one stored series for listings.
type SeriesInfo struct {
	ID      string    `json:"series_id"`
	Title   string    `json:"title,omitempty"`
	Points  int       `json:"points"`
	SavedAt time.Time `json:"saved_at"`
}

// ListSeries returns a summary of all stored series, sorted by ID.
func (s *Store) ListSeries() ([]SeriesInfo, error) {
	var infos []SeriesInfo
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSeries).ForEach(func(k, v []byte) error {
			var stored storedSeries
			if err := json.Unmarshal(v, &stored); err != nil {
				return err
			}
			infos = append(infos, SeriesInfo{
				ID:      stored.ID,
				Title:   stored.Title,
				Points:  len(stored.Points),
				SavedAt: stored.SavedAt,
			})
			return nil
		})
	})
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos, err
}

// DeleteSeries removes a series by ID. Deleting a missing ID is not an error.
func (s *Store) DeleteSeries(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSeries).Delete([]byte(Key(id)))
	})
}

// ─── Category sets ────────────────────────────────────────────────────────────

// storedCategories is the on-disk envelope for a category breakdown set.
type storedCategories struct {
	ID      string               `json:"id"`
	Items   []model.CategoryItem `json:"items"`
	SavedAt time.Time            `json:"saved_at"`
}

// PutCategories stores a category set under the given ID.
func (s *Store) PutCategories(id string, items []model.CategoryItem) error {
	if Key(id) == "" {
		return fmt.Errorf("category set has no ID")
	}
	data, err := json.Marshal(storedCategories{ID: Key(id), Items: items, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("encoding categories: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCategories).Put([]byte(Key(id)), data)
	})
}

// GetCategories retrieves a category set by ID.
func (s *Store) GetCategories(id string) ([]model.CategoryItem, bool, error) {
	var stored storedCategories
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketCategories).Get([]byte(Key(id)))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &stored)
	})
	if err != nil {
		return nil, false, err
	}
	return stored.Items, stored.ID != "", nil
}

// ─── Maintenance ──────────────────────────────────────────────────────────────

// BucketStats holds entry counts per bucket.
type BucketStats struct {
	Bucket  string `json:"bucket"`
	Entries int    `json:"entries"`
}

// Stats returns entry counts for all user-facing buckets.
func (s *Store) Stats() ([]BucketStats, error) {
	var stats []BucketStats
	err := s.db.View(func(tx *bolt.Tx) error {
		for _, name := range AllBuckets {
			b := tx.Bucket([]byte(name))
			if b == nil {
				continue
			}
			stats = append(stats, BucketStats{Bucket: name, Entries: b.Stats().KeyN})
		}
		return nil
	})
	return stats, err
}

// Clear empties the named bucket, or all user-facing buckets when name is
// empty. The _meta bucket is never cleared.
func (s *Store) Clear(name string) error {
	targets := AllBuckets
	if name != "" {
		found := false
		for _, b := range AllBuckets {
			if b == name {
				found = true
			}
		}
		if !found {
			return fmt.Errorf("unknown bucket %q (want one of %s)", name, strings.Join(AllBuckets, ", "))
		}
		targets = []string{name}
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, t := range targets {
			if err := tx.DeleteBucket([]byte(t)); err != nil {
				return err
			}
			if _, err := tx.CreateBucket([]byte(t)); err != nil {
				return err
			}
		}
		return nil
	})
}

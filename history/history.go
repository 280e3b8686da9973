// Package history keeps a local log of export runs in a bbolt database so
// past inventories can be traced without re-reading workbook files.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

var bucketRuns = []byte("runs")

// RunRecord summarizes one export run.
type RunRecord struct {
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"started_at"`
	Projects    []string  `json:"projects"`
	Mode        string    `json:"mode"` // "per-kind" or "asset"
	Output      string    `json:"output"`
	SheetCount  int       `json:"sheet_count"`
	RecordCount int       `json:"record_count"`
	Uploaded    bool      `json:"uploaded"`
	UploadError string    `json:"upload_error,omitempty"`
}

// Store persists run records. A nil *Store is valid and makes every method a
// no-op, which is how "history disabled" is represented.
type Store struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the history database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketRuns)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize history database: %w", err)
	}

	return &Store{db: db}, nil
}

// keyTimeFormat is fixed-width so keys sort chronologically and List can
// walk the bucket backwards for most-recent-first.
const keyTimeFormat = "2006-01-02T15:04:05.000000000Z"

// Append records one run.
func (s *Store) Append(rec RunRecord) error {
	if s == nil {
		return nil
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.StartedAt.IsZero() {
		rec.StartedAt = time.Now()
	}

	key := rec.StartedAt.UTC().Format(keyTimeFormat) + "/" + rec.ID
	value, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode run record: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketRuns).Put([]byte(key), value)
	})
}

// List returns up to limit runs, most recent first. limit <= 0 returns all.
func (s *Store) List(limit int) ([]RunRecord, error) {
	if s == nil {
		return nil, nil
	}

	var runs []RunRecord
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketRuns).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(runs) >= limit {
				break
			}
			var rec RunRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("failed to decode run record %s: %w", k, err)
			}
			runs = append(runs, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

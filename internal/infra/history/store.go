package history

import (
	"encoding/binary"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"

	"nexus/internal/domain"
)

var bucketHistory = []byte("history")

// Store persists interaction history in bbolt, keyed by bucket sequence so
// reads come back most-recent-first without a sort. An empty store is
// seeded with starter records so the browse state is never blank.
type Store struct {
	mu     sync.RWMutex
	db     *bolt.DB
	logger *zap.Logger
	closed bool
}

func NewStore(db *bolt.DB, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{db: db, logger: logger.Named("history")}
	if err := s.ensureSeeded(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureSeeded() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketHistory)
		if err != nil {
			return domain.E(domain.CodeUnavailable, "history.ensureSeeded", "create bucket", err)
		}
		if bucket.Stats().KeyN > 0 {
			return nil
		}
		for _, record := range seedRecords() {
			if err := putRecord(bucket, record); err != nil {
				return err
			}
		}
		return nil
	})
}

func seedRecords() []domain.HistoryRecord {
	now := time.Now()
	return []domain.HistoryRecord{
		{ID: "h2", Title: "Neon City Landscape", Kind: domain.HistoryImage, Tool: "Midjourney", Date: "5h ago", CreatedAt: now.Add(-5 * time.Hour)},
		{ID: "h1", Title: "Marketing Campaign Q3", Kind: domain.HistoryChat, Tool: "ChatGPT", Date: "2h ago", CreatedAt: now.Add(-2 * time.Hour)},
	}
}

func putRecord(bucket *bolt.Bucket, record domain.HistoryRecord) error {
	seq, err := bucket.NextSequence()
	if err != nil {
		return domain.E(domain.CodeUnavailable, "history.put", "next sequence", err)
	}
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	data, err := json.Marshal(record)
	if err != nil {
		return domain.E(domain.CodeInternal, "history.put", "marshal record", err)
	}
	return bucket.Put(key, data)
}

// Append stores a new record. A missing ID or timestamp is filled in.
func (s *Store) Append(record domain.HistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return domain.Wrap(domain.CodeUnavailable, "history.Append", domain.ErrStoreClosed)
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return putRecord(tx.Bucket(bucketHistory), record)
	})
}

// Recent returns up to limit records, newest first. limit <= 0 means all.
func (s *Store) Recent(limit int) ([]domain.HistoryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, domain.Wrap(domain.CodeUnavailable, "history.Recent", domain.ErrStoreClosed)
	}
	var records []domain.HistoryRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		cursor := tx.Bucket(bucketHistory).Cursor()
		for key, value := cursor.Last(); key != nil; key, value = cursor.Prev() {
			if limit > 0 && len(records) == limit {
				break
			}
			var record domain.HistoryRecord
			if err := json.Unmarshal(value, &record); err != nil {
				return domain.E(domain.CodeInternal, "history.Recent", "decode record", err)
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Close marks the store closed. The underlying DB is owned by the caller.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Package storage persists perft results in BadgerDB so repeated runs over
// the same position and depth are answered without regenerating the tree.
package storage

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/movegen-go/internal/errors"
)

const keyPrefix = "perft/"

// PerftRecord is the stored value for one position and depth.
type PerftRecord struct {
	Nodes    uint64    `json:"nodes"`
	Computed time.Time `json:"computed"`
}

// PerftStore wraps BadgerDB for persistent perft results.
type PerftStore struct {
	db *badger.DB
}

// Open opens (or creates) a store in dir.
func Open(dir string) (*PerftStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a store that lives only as long as the process.
func OpenInMemory() (*PerftStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*PerftStore, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrCacheUnavailable, err)
	}
	return &PerftStore{db: db}, nil
}

// Close closes the database.
func (s *PerftStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Key returns the database key for a position and depth. Only the first
// four FEN fields take part, so positions differing only in their clocks
// share an entry.
func Key(fen string, depth int) ([]byte, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, fmt.Errorf("cache key needs four FEN fields, got %d: %w", len(fields), errors.ErrInvalidFEN)
	}
	return []byte(keyPrefix + strings.Join(fields[:4], " ") + "/" + strconv.Itoa(depth)), nil
}

// Lookup returns the stored node count for a position and depth.
func (s *PerftStore) Lookup(fen string, depth int) (uint64, bool, error) {
	key, err := Key(fen, depth)
	if err != nil {
		return 0, false, err
	}

	var rec PerftRecord
	found := false
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return 0, false, err
	}
	return rec.Nodes, found, nil
}

// Save stores the node count for a position and depth, replacing any
// earlier value.
func (s *PerftStore) Save(fen string, depth int, nodes uint64) error {
	key, err := Key(fen, depth)
	if err != nil {
		return err
	}

	data, err := json.Marshal(PerftRecord{Nodes: nodes, Computed: time.Now()})
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, data)
	})
}

// Count returns the number of stored results.
func (s *PerftStore) Count() (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

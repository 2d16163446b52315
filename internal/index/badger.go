package index

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/chesstree-go/internal/errors"
)

// keyPrefix namespaces position records inside the database.
const keyPrefix = "pos/"

// maxConflictRetries bounds retries of a record update that lost a race
// with another writer.
const maxConflictRetries = 10

// BadgerStore is a Store backed by a badger database. Entries are stored as
// JSON values.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens or creates a store in dir.
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return openBadger(opts)
}

// OpenMemoryStore opens a store that lives only in memory.
func OpenMemoryStore() (*BadgerStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return openBadger(opts)
}

func openBadger(opts badger.Options) (*BadgerStore, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open index %q: %w", opts.Dir, err)
	}
	return &BadgerStore{db: db}, nil
}

// dbKey encodes a position key.
func dbKey(key uint64) []byte {
	return binary.BigEndian.AppendUint64([]byte(keyPrefix), key)
}

// Record implements Store. The read-modify-write runs in one transaction and
// is retried when a concurrent writer touched the same position.
func (s *BadgerStore) Record(key uint64, uci string, gameNum int) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		err = s.db.Update(func(txn *badger.Txn) error {
			entry, err := readEntry(txn, key)
			if err != nil && !errors.Is(err, errors.ErrNotFound) {
				return err
			}
			entry.add(uci, gameNum)

			data, err := json.Marshal(entry)
			if err != nil {
				return err
			}
			return txn.Set(dbKey(key), data)
		})
		if !errors.Is(err, badger.ErrConflict) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("record %s at %016x: %w", uci, key, err)
	}
	return nil
}

// Lookup implements Store.
func (s *BadgerStore) Lookup(key uint64) (Entry, error) {
	var entry Entry
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		entry, err = readEntry(txn, key)
		return err
	})
	return entry, err
}

// readEntry loads the entry for key inside txn.
func readEntry(txn *badger.Txn, key uint64) (Entry, error) {
	var entry Entry
	item, err := txn.Get(dbKey(key))
	if err == badger.ErrKeyNotFound {
		return entry, fmt.Errorf("position %016x: %w", key, errors.ErrNotFound)
	}
	if err != nil {
		return entry, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &entry)
	})
	return entry, err
}

// Len counts the positions in the store.
func (s *BadgerStore) Len() (int, error) {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

// Close closes the database
func (s *BadgerStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Package perftcache persists perft results in a BadgerDB directory so that
// deep counts only have to be computed once per position.
package perftcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Result is one stored perft run.
type Result struct {
	Nodes    uint64            `json:"nodes"`
	Divide   map[string]uint64 `json:"divide,omitempty"`
	Elapsed  time.Duration     `json:"elapsed"`
	Recorded time.Time         `json:"recorded"`
}

// Cache wraps BadgerDB for perft results.
type Cache struct {
	db *badger.DB
}

// Open opens (or creates) a cache in dir. Badger's own messages go to logger
// at warning level and above; a nil logger silences them.
func Open(dir string, logger *log.Logger) (*Cache, error) {
	opts := badger.DefaultOptions(dir)
	if logger != nil {
		opts.Logger = badgerLogger{logger}
	} else {
		opts.Logger = nil
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("perftcache: open %s: %w", dir, err)
	}
	return &Cache{db: db}, nil
}

// OpenInMemory returns a cache that lives only as long as the process.
func OpenInMemory() (*Cache, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("perftcache: open in memory: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Key builds the storage key. Clocks do not change perft counts, so only the
// first four FEN fields take part.
func Key(fen string, depth int) []byte {
	fields := strings.Fields(fen)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return []byte(fmt.Sprintf("perft/%d/%s", depth, strings.Join(fields, " ")))
}

// Get loads a stored result. The bool is false when nothing is stored.
func (c *Cache) Get(fen string, depth int) (Result, bool, error) {
	var (
		r     Result
		found bool
	)
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(Key(fen, depth))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &r)
		})
	})
	if err != nil {
		return Result{}, false, fmt.Errorf("perftcache: get: %w", err)
	}
	return r, found, nil
}

// Put stores r, replacing any earlier result for the same key.
func (c *Cache) Put(fen string, depth int, r Result) error {
	if r.Recorded.IsZero() {
		r.Recorded = time.Now()
	}
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(Key(fen, depth), data)
	})
}

// Len counts stored results.
func (c *Cache) Len() (int, error) {
	n := 0
	err := c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte("perft/")
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

// badgerLogger routes Badger's messages onto a standard logger, dropping
// info and debug chatter.
type badgerLogger struct {
	l *log.Logger
}

func (b badgerLogger) Errorf(format string, args ...interface{}) {
	b.l.Printf("badger error: "+format, args...)
}

func (b badgerLogger) Warningf(format string, args ...interface{}) {
	b.l.Printf("badger warning: "+format, args...)
}

func (badgerLogger) Infof(string, ...interface{})  {}
func (badgerLogger) Debugf(string, ...interface{}) {}

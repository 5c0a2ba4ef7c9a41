// Package snapshot persists periodic memkit Stats snapshots to a
// pebble instance, keyed by timestamp. This is the demo harness's own
// persisted state — the alloc package itself never touches a file.
package snapshot

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

// Entry is one persisted observation of an alloc.Stats instance.
type Entry struct {
	At             int64
	TotalAllocated int64
	RecordCount    int64
}

func encodeEntry(e Entry) []byte {
	buf := make([]byte, 8+8+8)
	binary.BigEndian.PutUint64(buf[0:8], uint64(e.At))
	binary.BigEndian.PutUint64(buf[8:16], uint64(e.TotalAllocated))
	binary.BigEndian.PutUint64(buf[16:24], uint64(e.RecordCount))
	return buf
}

func decodeEntry(b []byte) (Entry, error) {
	if len(b) != 24 {
		return Entry{}, fmt.Errorf("snapshot: invalid entry length %d", len(b))
	}
	return Entry{
		At:             int64(binary.BigEndian.Uint64(b[0:8])),
		TotalAllocated: int64(binary.BigEndian.Uint64(b[8:16])),
		RecordCount:    int64(binary.BigEndian.Uint64(b[16:24])),
	}, nil
}

// Store persists Stats snapshots keyed by their timestamp.
type Store struct {
	db *pebble.DB
}

// Open opens (or creates) a pebble instance rooted at dir.
func Open(dir string) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // snapshots must survive a crash between writes
	})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying pebble instance.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put persists e under a key derived from e.At.
func (s *Store) Put(e Entry) error {
	return s.db.Set(keyFor(e.At), encodeEntry(e), pebble.Sync)
}

// ScanSince iterates every entry recorded at or after since, oldest
// first.
func (s *Store) ScanSince(since int64, fn func(Entry) error) error {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: keyFor(since),
		UpperBound: []byte("snapshot/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		e, err := decodeEntry(iter.Value())
		if err != nil {
			return err
		}
		if err := fn(e); err != nil {
			return err
		}
	}
	return iter.Error()
}

func keyFor(at int64) []byte {
	return []byte(fmt.Sprintf("snapshot/%020d", at))
}

// Now exists so callers don't need to import "time" just to stamp an
// Entry.
func Now() int64 {
	return time.Now().UnixNano()
}

package store

import (
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/pebble"
)

// Pebble implements Store on a local PebbleDB directory. This is the
// device-local backend: state survives restarts but lives and dies with
// the machine.
type Pebble struct {
	db *pebble.DB
}

func OpenPebble(dir string) (*Pebble, error) {
	d, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("pebble open: %w", err)
	}
	return &Pebble{db: d}, nil
}

func (p *Pebble) Get(key string) ([]byte, error) {
	v, closer, err := p.db.Get([]byte(key))
	if err == pebble.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(v))
	copy(out, v)
	_ = closer.Close()
	return out, nil
}

func (p *Pebble) Set(key string, value []byte) error {
	// NoSync: the WAL still covers durability for a local store.
	return p.db.Set([]byte(key), value, pebble.NoSync)
}

func (p *Pebble) Delete(key string) error {
	return p.db.Delete([]byte(key), pebble.NoSync)
}

func (p *Pebble) Keys(prefix string) ([]string, error) {
	lower := []byte(prefix)
	upper := append(append([]byte(nil), lower...), 0xff)
	it, err := p.db.NewIter(&pebble.IterOptions{LowerBound: lower, UpperBound: upper})
	if err != nil {
		return nil, err
	}
	defer it.Close()
	var keys []string
	for it.First(); it.Valid(); it.Next() {
		k := append([]byte(nil), it.Key()...)
		keys = append(keys, string(k))
	}
	return keys, it.Error()
}

// Backup writes a consistent checkpoint of the store into dir. Used by
// the daily backup loop in main.
func (p *Pebble) Backup(dir string) error {
	return p.db.Checkpoint(filepath.Clean(dir))
}

func (p *Pebble) Close() error { return p.db.Close() }

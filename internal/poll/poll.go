// internal/poll/poll.go
package poll

import (
	"errors"
	"time"

	"github.com/tamzrod/modbus-sensorbridge/internal/mapping"
)

// Source abstracts the sensor access layer.
// The refresh loop depends on read-by-path only.
type Source interface {
	Read(path string) (float64, error)
}

// Store is the register sink the refresh loop writes into.
type Store interface {
	SetRegisters(addr uint16, words []uint16)
}

// Config is the minimal runtime config the refresher needs.
type Config struct {
	Interval time.Duration
	Entries  []mapping.Entry
}

// Refresher is a dumb, clock-driven sensor reader.
type Refresher struct {
	cfg    Config
	source Source
	store  Store
}

// New creates a refresher with immutable config.
func New(cfg Config, source Source, store Store) (*Refresher, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("poll: interval must be > 0")
	}
	if len(cfg.Entries) == 0 {
		return nil, errors.New("poll: at least one mapping entry required")
	}
	if source == nil {
		return nil, errors.New("poll: source required")
	}
	if store == nil {
		return nil, errors.New("poll: store required")
	}
	return &Refresher{cfg: cfg, source: source, store: store}, nil
}

// RefreshOnce performs exactly one refresh cycle.
// A failed read keeps the entry's stale register words and the cycle
// moves on to the next entry.
func (r *Refresher) RefreshOnce() Result {
	res := Result{At: time.Now()}

	for _, e := range r.cfg.Entries {
		v, err := r.source.Read(e.Path)
		if err != nil {
			res.Errors = append(res.Errors, EntryError{Entry: e, Err: err})
			continue
		}
		r.store.SetRegisters(e.Address, e.Enc.Encode(v))
		res.Refreshed++
	}

	return res
}

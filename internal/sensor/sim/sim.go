// internal/sensor/sim/sim.go
package sim

import (
	"hash/fnv"
	"math/rand"
	"sync"
)

// Source generates plausible sensor values without hardware.
// Each path gets a stable baseline derived from its name plus a small
// random walk, so consecutive reads look like a live measurement.
type Source struct {
	mu   sync.Mutex
	last map[string]float64
}

func New() *Source {
	return &Source{last: make(map[string]float64)}
}

// Read returns the next value of the path's random walk.
func (s *Source) Read(path string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.last[path]
	if !ok {
		v = baseline(path)
	}
	v += rand.Float64() - 0.5
	s.last[path] = v
	return v, nil
}

// baseline maps a path to a stable starting value in 0..99.
func baseline(path string) float64 {
	h := fnv.New32a()
	h.Write([]byte(path))
	return float64(h.Sum32() % 100)
}

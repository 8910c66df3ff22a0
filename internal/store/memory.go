package store

import (
	"errors"
	"sync"
	"time"

	"github.com/openmatrix/ledweather/internal/weather"
)

// ErrNotFound is returned when no reading is available yet.
var ErrNotFound = errors.New("no weather reading available")

// MemoryStore is a concurrency-safe in-memory history of readings for the
// panel's single location. The control loop appends via its OnReading hook;
// the HTTP API reads.
type MemoryStore struct {
	mu       sync.RWMutex
	readings []weather.Reading

	maxHistory int           // max number of readings (0 = unlimited)
	maxAge     time.Duration // max age of readings (0 = unlimited)
}

// NewMemoryStore creates a store with optional retention limits.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		maxHistory: maxHistory,
		maxAge:     maxAge,
	}
}

// Save appends a reading and enforces the count-based retention limit.
func (s *MemoryStore) Save(r weather.Reading) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.readings = append(s.readings, r)
	if s.maxHistory > 0 && len(s.readings) > s.maxHistory {
		over := len(s.readings) - s.maxHistory
		s.readings = s.readings[over:]
	}
}

// Latest returns the most recent reading.
func (s *MemoryStore) Latest() (weather.Reading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.readings) == 0 {
		return weather.Reading{}, ErrNotFound
	}
	return s.readings[len(s.readings)-1], nil
}

// Range returns all readings fetched between from and to (inclusive).
func (s *MemoryStore) Range(from, to time.Time) ([]weather.Reading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.readings) == 0 {
		return nil, ErrNotFound
	}

	var result []weather.Reading
	for _, r := range s.readings {
		if !r.FetchedAt.Before(from) && !r.FetchedAt.After(to) {
			result = append(result, r)
		}
	}
	if len(result) == 0 {
		return nil, ErrNotFound
	}
	return result, nil
}

// Prune drops readings older than the age limit. Run periodically so stale
// history decays even when no new readings arrive.
func (s *MemoryStore) Prune() int {
	if s.maxAge <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-s.maxAge)
	i := 0
	for ; i < len(s.readings); i++ {
		if !s.readings[i].FetchedAt.Before(cutoff) {
			break
		}
	}
	if i > 0 {
		s.readings = s.readings[i:]
	}
	return i
}

// Package feed holds the in-process availability and weather snapshots
// the monitor engine evaluates against. Snapshots arrive from whatever
// scrapes or polls the real booking site and weather provider; the core
// only ever sees already-fetched data, keyed by venue, date and slot.
package feed

import (
	"sort"
	"sync"
	"time"

	"courtwatch/internal/modules/monitor"
)

type slotKey struct {
	VenueID string
	Date    string // "2006-01-02"
	Slot    string // "HH:MM"
}

// Civil dates are stored at UTC midnight, but a value read back from
// postgres carries the session timezone. Normalize before rendering so
// the same date always yields the same key.
func keyFor(venueID string, date time.Time, slot string) slotKey {
	return slotKey{VenueID: venueID, Date: date.UTC().Format("2006-01-02"), Slot: slot}
}

// Store is the snapshot table. Safe for concurrent use; writes fire the
// onChange hook (wired to the engine's Poke) outside the lock.
type Store struct {
	mu       sync.RWMutex
	courts   map[slotKey][]int
	weather  map[slotKey]monitor.Observation
	onChange func()
}

func NewStore() *Store {
	return &Store{
		courts:  make(map[slotKey][]int),
		weather: make(map[slotKey]monitor.Observation),
	}
}

// OnAvailabilityChange registers a hook invoked after every availability
// write. Must be set before the store is shared.
func (s *Store) OnAvailabilityChange(fn func()) {
	s.onChange = fn
}

// SetAvailability replaces the free-court set for a slot.
func (s *Store) SetAvailability(venueID string, date time.Time, slot string, courts []int) {
	sorted := append([]int(nil), courts...)
	sort.Ints(sorted)

	s.mu.Lock()
	s.courts[keyFor(venueID, date, slot)] = sorted
	s.mu.Unlock()

	s.notifyChange()
}

// AvailableCourts returns the current free-court set, sorted ascending.
// Unknown slots return nil: no data, not "no courts".
func (s *Store) AvailableCourts(venueID string, date time.Time, slot string) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int(nil), s.courts[keyFor(venueID, date, slot)]...)
}

// Reserve removes a court taken by a confirmed booking from the snapshot.
func (s *Store) Reserve(venueID string, date time.Time, slot string, court int) {
	k := keyFor(venueID, date, slot)

	s.mu.Lock()
	var kept []int
	for _, c := range s.courts[k] {
		if c != court {
			kept = append(kept, c)
		}
	}
	s.courts[k] = kept
	s.mu.Unlock()
}

// Release returns a cancelled booking's court to the snapshot.
func (s *Store) Release(venueID string, date time.Time, slot string, court int) {
	k := keyFor(venueID, date, slot)

	s.mu.Lock()
	courts := s.courts[k]
	found := false
	for _, c := range courts {
		if c == court {
			found = true
			break
		}
	}
	if !found {
		courts = append(courts, court)
		sort.Ints(courts)
		s.courts[k] = courts
	}
	s.mu.Unlock()

	s.notifyChange()
}

// SetObservation replaces the weather reading for a slot.
func (s *Store) SetObservation(venueID string, date time.Time, slot string, obs monitor.Observation) {
	s.mu.Lock()
	s.weather[keyFor(venueID, date, slot)] = obs
	s.mu.Unlock()
}

// Observation returns the latest reading, nil when none was ingested.
func (s *Store) Observation(venueID string, date time.Time, slot string) *monitor.Observation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obs, ok := s.weather[keyFor(venueID, date, slot)]
	if !ok {
		return nil
	}
	cp := obs
	return &cp
}

func (s *Store) notifyChange() {
	if s.onChange != nil {
		s.onChange()
	}
}

package repository

import (
	"context"
	"roost/internal/domains/booking/engine"
	"roost/internal/domains/booking/model"
	"sync"
)

// memoryStore keeps reservations in process memory. Commits for the same
// property are serialized on a per-property lock, so the availability check
// and the insert happen atomically and two racing commits for overlapping
// nights cannot both succeed. Used as a lightweight store in tests and
// single-process deployments.
type memoryStore struct {
	mu       sync.Mutex
	locks    map[string]*sync.Mutex
	bookings map[string]model.Booking
}

var _ ReservationStore = (*memoryStore)(nil)

func NewMemoryStore() *memoryStore {
	return &memoryStore{
		locks:    make(map[string]*sync.Mutex),
		bookings: make(map[string]model.Booking),
	}
}

func (m *memoryStore) propertyLock(propertyID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.locks[propertyID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[propertyID] = lock
	}

	return lock
}

func (m *memoryStore) InsertBooking(_ context.Context, booking model.Booking) error {
	candidate := engine.DateRange{CheckIn: engine.Day(booking.CheckIn), CheckOut: engine.Day(booking.CheckOut)}
	if err := candidate.Validate(); err != nil {
		return err
	}

	lock := m.propertyLock(booking.PropertyID)
	lock.Lock()
	defer lock.Unlock()

	available, err := engine.IsAvailable(m.staysLocked(booking.PropertyID), candidate)
	if err != nil {
		return err
	}

	if !available {
		return ErrDateConflict
	}

	m.mu.Lock()
	m.bookings[booking.ID] = booking
	m.mu.Unlock()

	return nil
}

func (m *memoryStore) ListForProperty(_ context.Context, propertyID string) ([]engine.Stay, error) {
	lock := m.propertyLock(propertyID)
	lock.Lock()
	defer lock.Unlock()

	return m.staysLocked(propertyID), nil
}

// staysLocked must be called with the property lock held.
func (m *memoryStore) staysLocked(propertyID string) []engine.Stay {
	m.mu.Lock()
	defer m.mu.Unlock()

	stays := []engine.Stay{}

	for _, booking := range m.bookings {
		if booking.PropertyID != propertyID {
			continue
		}

		stays = append(stays, engine.Stay{
			Range:  engine.DateRange{CheckIn: engine.Day(booking.CheckIn), CheckOut: engine.Day(booking.CheckOut)},
			Status: booking.Status,
		})
	}

	return stays
}

// SetStatus updates a stored reservation's lifecycle status. Cancelling a
// reservation keeps the record and frees its nights for new commits.
func (m *memoryStore) SetStatus(_ context.Context, id, status string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	booking, ok := m.bookings[id]
	if !ok {
		return false
	}

	booking.Status = status
	m.bookings[id] = booking

	return true
}

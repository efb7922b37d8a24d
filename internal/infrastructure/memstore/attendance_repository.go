package memstore

import (
	"time"

	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
)

// AttendanceRepository implements repository.AttendanceRepository over the
// store.
type AttendanceRepository struct {
	store *Store
}

// NewAttendanceRepository builds the repository.
func NewAttendanceRepository(store *Store) *AttendanceRepository {
	return &AttendanceRepository{store: store}
}

// Create appends the record.
func (r *AttendanceRepository) Create(rec *entity.AttendanceRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *rec
	r.store.attendance = append(r.store.attendance, &cp)
	return nil
}

// Update overwrites the stored record with the same ID.
func (r *AttendanceRepository) Update(rec *entity.AttendanceRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, a := range r.store.attendance {
		if a.ID == rec.ID {
			cp := *rec
			r.store.attendance[i] = &cp
			return nil
		}
	}
	return nil
}

// GetByUserAndDate returns the user's record for that calendar day, or nil.
func (r *AttendanceRepository) GetByUserAndDate(userID string, date time.Time) (*entity.AttendanceRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, a := range r.store.attendance {
		if a.UserID == userID && sameDay(a.Date, date) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

// ListByUserMonth returns the user's records within a month, day order not
// guaranteed.
func (r *AttendanceRepository) ListByUserMonth(userID string, year int, month time.Month) ([]*entity.AttendanceRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []*entity.AttendanceRecord
	for _, a := range r.store.attendance {
		if a.UserID == userID && a.Date.Year() == year && a.Date.Month() == month {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

// CountByStatusOn counts records with the given status on a calendar day,
// across all users.
func (r *AttendanceRepository) CountByStatusOn(date time.Time, status string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	n := 0
	for _, a := range r.store.attendance {
		if a.Status == status && sameDay(a.Date, date) {
			n++
		}
	}
	return n, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

package memstore

import (
	"sort"
	"time"

	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
)

// PayrollRepository implements repository.PayrollRepository over the store.
type PayrollRepository struct {
	store *Store
}

// NewPayrollRepository builds the repository.
func NewPayrollRepository(store *Store) *PayrollRepository {
	return &PayrollRepository{store: store}
}

// Create appends the record.
func (r *PayrollRepository) Create(rec *entity.PayrollRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *rec
	r.store.payroll = append(r.store.payroll, &cp)
	return nil
}

// GetByID returns a copy of the record, or nil when absent.
func (r *PayrollRepository) GetByID(id string) (*entity.PayrollRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, p := range r.store.payroll {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// ListByUser returns the user's records, newest month first.
func (r *PayrollRepository) ListByUser(userID string) ([]*entity.PayrollRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []*entity.PayrollRecord
	for _, p := range r.store.payroll {
		if p.UserID == userID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].Month > out[j].Month
	})
	return out, nil
}

// ListForMonth returns every user's record for one month.
func (r *PayrollRepository) ListForMonth(year int, month time.Month) ([]*entity.PayrollRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []*entity.PayrollRecord
	for _, p := range r.store.payroll {
		if p.Year == year && p.Month == month {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

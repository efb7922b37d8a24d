package repository

import (
	"time"

	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
)

// PayrollRepository is the storage port for PayrollRecord.
//
// ListByUser returns records newest month first.
type PayrollRepository interface {
	Create(rec *entity.PayrollRecord) error
	GetByID(id string) (*entity.PayrollRecord, error)
	ListByUser(userID string) ([]*entity.PayrollRecord, error)
	ListForMonth(year int, month time.Month) ([]*entity.PayrollRecord, error)
}

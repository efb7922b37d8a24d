package repository

import (
	"time"

	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
)

// AttendanceRepository is the storage port for AttendanceRecord.
type AttendanceRepository interface {
	Create(rec *entity.AttendanceRecord) error
	Update(rec *entity.AttendanceRecord) error
	GetByUserAndDate(userID string, date time.Time) (*entity.AttendanceRecord, error)
	ListByUserMonth(userID string, year int, month time.Month) ([]*entity.AttendanceRecord, error)
	CountByStatusOn(date time.Time, status string) (int, error)
}

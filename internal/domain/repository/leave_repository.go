package repository

import "github.com/dayflow-hr/dayflow-api/internal/domain/entity"

// LeaveRepository is the storage port for LeaveRequest.
//
// Ordering contract: ListPending and ListDecided surface newer requests
// before older ones and are stable across calls; ListByUser returns the
// owner's requests oldest CreatedAt first, ties broken by insertion order.
type LeaveRepository interface {
	Create(req *entity.LeaveRequest) error
	GetByID(id string) (*entity.LeaveRequest, error)
	Update(req *entity.LeaveRequest) error
	ListPending() ([]*entity.LeaveRequest, error)
	ListDecided() ([]*entity.LeaveRequest, error)
	ListByUser(userID string) ([]*entity.LeaveRequest, error)
}

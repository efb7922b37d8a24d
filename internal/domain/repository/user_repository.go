package repository

import "github.com/dayflow-hr/dayflow-api/internal/domain/entity"

// UserRepository is the storage port for User (DIP). The in-memory store
// implements it; tests may substitute their own.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List() ([]*entity.User, error)
}

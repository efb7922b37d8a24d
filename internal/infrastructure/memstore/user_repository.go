package memstore

import "github.com/dayflow-hr/dayflow-api/internal/domain/entity"

// UserRepository implements repository.UserRepository over the store.
type UserRepository struct {
	store *Store
}

// NewUserRepository builds the repository.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create appends a user. No uniqueness checks: signup allows duplicate
// emails in this system.
func (r *UserRepository) Create(user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *user
	r.store.users = append(r.store.users, &cp)
	return nil
}

// GetByID returns a copy of the user, or nil when absent.
func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// FindByEmail returns a copy of the first user with an exact email match,
// or nil when absent.
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, u := range r.store.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Update overwrites the stored user with the same ID. Missing users are a
// no-op: the caller already held a copy, so absence means a logic error
// upstream, not a storage fault.
func (r *UserRepository) Update(user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, u := range r.store.users {
		if u.ID == user.ID {
			cp := *user
			r.store.users[i] = &cp
			return nil
		}
	}
	return nil
}

// List returns copies of all users in insertion order.
func (r *UserRepository) List() ([]*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	out := make([]*entity.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

package profile

import (
	"github.com/dayflow-hr/dayflow-api/internal/application/dto"
	"github.com/dayflow-hr/dayflow-api/internal/domain"
	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
	"github.com/dayflow-hr/dayflow-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ProfileUseCase self-service profile: read and update contact fields. Role,
// employee ID, department, and join date are immutable here.
type ProfileUseCase struct {
	users repository.UserRepository
}

// NewProfileUseCase builds the profile use case.
func NewProfileUseCase(users repository.UserRepository) *ProfileUseCase {
	return &ProfileUseCase{users: users}
}

// Get returns the user's own profile.
func (uc *ProfileUseCase) Get(userID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// Update changes the editable contact fields and returns the updated
// profile. Empty fields are written as given: clearing a phone number is a
// valid update.
func (uc *ProfileUseCase) Update(userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Phone = in.Phone
	user.Address = in.Address
	user.ProfilePicture = in.ProfilePicture
	if err := uc.users.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		EmployeeID:     u.EmployeeID,
		Role:           u.Role,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Department:     u.Department,
		Position:       u.Position,
		Phone:          u.Phone,
		Address:        u.Address,
		JoinDate:       u.JoinDate.Format(dateLayout),
		ProfilePicture: u.ProfilePicture,
	}
}

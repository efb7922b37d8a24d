package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dayflow-hr/dayflow-api/internal/application/dto"
	"github.com/dayflow-hr/dayflow-api/internal/domain"
	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
	"github.com/dayflow-hr/dayflow-api/internal/domain/repository"
	"github.com/dayflow-hr/dayflow-api/pkg/jwt"
)

const (
	minPasswordLen = 6
	dateLayout     = "2006-01-02"

	defaultDepartment = "Not Assigned"
	defaultPosition   = "New Employee"
)

// JWTConfig token generation settings.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase is the Session/Identity component: login, signup, logout, and
// the role→capability derivation.
//
// Authentication is simulated: login looks the account up by email and gates
// on password length only; the stored bcrypt hash is never compared. There
// is no real credential boundary in this application.
type AuthUseCase struct {
	users   repository.UserRepository
	session repository.SessionStore
	jwtCfg  JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(users repository.UserRepository, session repository.SessionStore, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, session: session, jwtCfg: jwtCfg}
}

// Login authenticates against the known accounts. It succeeds only when the
// email matches an existing account AND the password is at least six
// characters; every other combination fails with ErrInvalidCredentials.
// On success the store's active-user slot is set and a session token issued.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.SessionResponse, error) {
	if len(in.Password) < minPasswordLen {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.users.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	uc.session.SetActive(user.ID)

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		Token:        token,
		User:         *toUserResponse(user),
		Capabilities: capabilityNames(user.Role),
	}, nil
}

// Signup creates a new account and signs it in. All fields are required and
// the password must be at least six characters; there is no uniqueness check
// against existing emails or employee IDs.
//
// The role comes straight from the request. Letting the signer self-select
// "admin" is a demo shortcut inherited from the product; harden here before
// connecting a real authorization boundary.
func (uc *AuthUseCase) Signup(in dto.SignupRequest) (*dto.SessionResponse, error) {
	if in.Email == "" || in.EmployeeID == "" || in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrValidation
	}
	if len(in.Password) < minPasswordLen {
		return nil, domain.ErrValidation
	}
	if in.Role != entity.RoleAdmin && in.Role != entity.RoleEmployee {
		return nil, domain.ErrValidation
	}

	// The hash is stored for completeness but never verified at login.
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		EmployeeID:   in.EmployeeID,
		Role:         in.Role,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Department:   defaultDepartment,
		Position:     defaultPosition,
		JoinDate:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Status:       entity.StatusActive,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}

	uc.session.SetActive(user.ID)

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.SessionResponse{
		Token:        token,
		User:         *toUserResponse(user),
		Capabilities: capabilityNames(user.Role),
	}, nil
}

// Logout clears the active-user slot. It has no failure mode; the user
// record itself is untouched.
func (uc *AuthUseCase) Logout() {
	uc.session.ClearActive()
}

// CurrentUser returns the account the session slot points at, or nil when
// nobody is logged in.
func (uc *AuthUseCase) CurrentUser() (*entity.User, error) {
	id := uc.session.ActiveUserID()
	if id == "" {
		return nil, nil
	}
	return uc.users.GetByID(id)
}

// Me returns the active session's user and capabilities, or nil when nobody
// is signed in.
func (uc *AuthUseCase) Me() (*dto.MeResponse, error) {
	user, err := uc.CurrentUser()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &dto.MeResponse{
		User:         *toUserResponse(user),
		Capabilities: capabilityNames(user.Role),
	}, nil
}

// Capabilities reports the capability set for a role. Advisory only: the
// client uses it to decide what to render; route enforcement is middleware.
func (uc *AuthUseCase) Capabilities(role string) dto.CapabilitiesResponse {
	return dto.CapabilitiesResponse{
		Role:         role,
		Capabilities: capabilityNames(role),
	}
}

func capabilityNames(role string) []string {
	caps := entity.CapabilitiesForRole(role)
	names := make([]string, 0, len(caps))
	for _, c := range caps {
		names = append(names, string(c))
	}
	return names
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
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

package dto

// LoginRequest login input.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SignupRequest signup input. Every field is required; the role is chosen by
// the signer, there is no invite or approval flow.
type SignupRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	EmployeeID string `json:"employee_id" validate:"required"`
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Role       string `json:"role" validate:"required,oneof=admin employee"`
}

// UserResponse a user without credential material.
type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	EmployeeID     string `json:"employee_id"`
	Role           string `json:"role"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Department     string `json:"department"`
	Position       string `json:"position"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	JoinDate       string `json:"join_date"` // YYYY-MM-DD
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// SessionResponse login/signup output: token, user, and the capability set
// the client should render navigation from.
type SessionResponse struct {
	Token        string       `json:"token"`
	User         UserResponse `json:"user"`
	Capabilities []string     `json:"capabilities"`
}

// MeResponse the current session's user and capability set, without a token.
type MeResponse struct {
	User         UserResponse `json:"user"`
	Capabilities []string     `json:"capabilities"`
}

// CapabilitiesResponse capability set for the current role.
type CapabilitiesResponse struct {
	Role         string   `json:"role"`
	Capabilities []string `json:"capabilities"`
}

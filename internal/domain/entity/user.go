package entity

import "time"

// Valid roles for User. There is no promotion/demotion flow: a user's role
// is fixed at creation.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Employment statuses shown in the directory.
const (
	StatusActive  = "active"
	StatusOnLeave = "on-leave"
)

// User represents an account in the system.
type User struct {
	ID             string
	Email          string
	PasswordHash   string // bcrypt hash, stored at signup; login does not compare it (simulated auth)
	EmployeeID     string
	Role           string // admin, employee
	FirstName      string
	LastName       string
	Department     string
	Position       string
	Phone          string
	Address        string
	JoinDate       time.Time
	ProfilePicture string // optional
	Status         string // active, on-leave
}

// FullName returns the display name used on leave requests and payslips.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Initials returns the avatar initials, e.g. "Sarah Johnson" -> "SJ".
func (u *User) Initials() string {
	var b []byte
	if u.FirstName != "" {
		b = append(b, u.FirstName[0])
	}
	if u.LastName != "" {
		b = append(b, u.LastName[0])
	}
	return string(b)
}

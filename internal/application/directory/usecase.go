package directory

import (
	"sort"
	"strings"

	"github.com/dayflow-hr/dayflow-api/internal/application/dto"
	"github.com/dayflow-hr/dayflow-api/internal/domain/entity"
	"github.com/dayflow-hr/dayflow-api/internal/domain/repository"
)

// DirectoryUseCase serves the employee directory: filtered listings and
// headcount stats. Admin-only at the route level.
type DirectoryUseCase struct {
	users repository.UserRepository
}

// NewDirectoryUseCase builds the directory use case.
func NewDirectoryUseCase(users repository.UserRepository) *DirectoryUseCase {
	return &DirectoryUseCase{users: users}
}

// List returns employees matching the search term (case-insensitive match on
// name or email) and department filter. Empty or "All" disables a filter.
func (uc *DirectoryUseCase) List(search, department string) ([]dto.EmployeeDTO, error) {
	users, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(search))
	out := make([]dto.EmployeeDTO, 0, len(users))
	for _, u := range users {
		if q != "" &&
			!strings.Contains(strings.ToLower(u.FullName()), q) &&
			!strings.Contains(strings.ToLower(u.Email), q) {
			continue
		}
		if department != "" && department != "All" && u.Department != department {
			continue
		}
		out = append(out, toEmployeeDTO(u))
	}
	return out, nil
}

// Stats returns the headcount counters above the directory grid.
func (uc *DirectoryUseCase) Stats() (*dto.DirectoryStatsDTO, error) {
	users, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	stats := &dto.DirectoryStatsDTO{Total: len(users)}
	depts := map[string]struct{}{}
	for _, u := range users {
		switch u.Status {
		case entity.StatusActive:
			stats.Active++
		case entity.StatusOnLeave:
			stats.OnLeave++
		}
		if u.Department != "" {
			depts[u.Department] = struct{}{}
		}
	}
	stats.Departments = len(depts)
	return stats, nil
}

// Departments returns the distinct department names, sorted, for the filter
// row.
func (uc *DirectoryUseCase) Departments() ([]string, error) {
	users, err := uc.users.List()
	if err != nil {
		return nil, err
	}
	set := map[string]struct{}{}
	for _, u := range users {
		if u.Department != "" {
			set[u.Department] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Strings(out)
	return out, nil
}

func toEmployeeDTO(u *entity.User) dto.EmployeeDTO {
	return dto.EmployeeDTO{
		ID:         u.ID,
		Name:       u.FullName(),
		Initials:   u.Initials(),
		Email:      u.Email,
		Phone:      u.Phone,
		Department: u.Department,
		Position:   u.Position,
		Status:     u.Status,
	}
}

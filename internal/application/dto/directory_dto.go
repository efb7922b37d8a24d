package dto

// EmployeeDTO one directory card.
type EmployeeDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Initials   string `json:"initials"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Position   string `json:"position"`
	Status     string `json:"status"`
}

// DirectoryStatsDTO headcount stats above the employee grid.
type DirectoryStatsDTO struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	OnLeave     int `json:"on_leave"`
	Departments int `json:"departments"`
}

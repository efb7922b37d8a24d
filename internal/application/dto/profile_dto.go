package dto

// UpdateProfileRequest self-service contact fields. Role, employee ID, and
// department are not editable here.
type UpdateProfileRequest struct {
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	ProfilePicture string `json:"profile_picture"`
}

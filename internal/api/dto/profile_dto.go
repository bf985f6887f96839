package dto

// ProfileModerationRequest is the partial update payload for a profile.
// Absent fields are left untouched.
type ProfileModerationRequest struct {
	Status *string `json:"status,omitempty"`
	Type   *string `json:"type,omitempty"`
}

package domain

import (
	"fmt"
	"time"
)

// ProfileRole enumerates authorization roles for platform users.
type ProfileRole string

const (
	RoleAdmin        ProfileRole = "admin"
	RoleEntrepreneur ProfileRole = "entrepreneur"
	RoleBuyer        ProfileRole = "buyer"
)

// ProfileStatus enumerates account lifecycle states.
type ProfileStatus string

const (
	ProfileStatusActive    ProfileStatus = "active"
	ProfileStatusSuspended ProfileStatus = "suspended"
	ProfileStatusPending   ProfileStatus = "pending"
)

// ParseProfileStatus validates a raw status value at the boundary.
func ParseProfileStatus(raw string) (ProfileStatus, error) {
	switch ProfileStatus(raw) {
	case ProfileStatusActive, ProfileStatusSuspended, ProfileStatusPending:
		return ProfileStatus(raw), nil
	}
	return "", fmt.Errorf("unknown profile status %q", raw)
}

// ParseProfileRole validates a raw role value.
func ParseProfileRole(raw string) (ProfileRole, error) {
	switch ProfileRole(raw) {
	case RoleAdmin, RoleEntrepreneur, RoleBuyer:
		return ProfileRole(raw), nil
	}
	return "", fmt.Errorf("unknown profile role %q", raw)
}

// Profile is the authoritative user account record. The identifier is
// immutable; status and type are mutable through moderation only.
type Profile struct {
	ID           string
	FullName     string
	Email        string
	Phone        string
	PasswordHash string
	Role         ProfileRole
	Status       ProfileStatus
	Type         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProfileUpdate is a partial moderation update. Nil fields are left
// untouched by the write.
type ProfileUpdate struct {
	Status *ProfileStatus
	Type   *string
}

// IsEmpty reports whether the update carries no fields at all.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Status == nil && u.Type == nil
}

// SearchResult is the ephemeral directory-search projection of a profile.
// It is produced per query and never persisted.
type SearchResult struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

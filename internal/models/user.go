package models

import "time"

// Role defines the authorization level of a user.
type Role string

const (
	RoleMember     Role = "member"
	RoleSuperadmin Role = "superadmin"
)

// AccountStatus tracks a user's position in the admin-approval lifecycle.
type AccountStatus string

const (
	// StatusPending means the user has registered but has not yet been
	// reviewed by an admin.
	StatusPending AccountStatus = "pending"

	// StatusApproved means an admin has approved the registration.
	StatusApproved AccountStatus = "approved"

	// StatusRejected means the registration was turned down. There is no
	// path back from rejected; it is a permanent ban.
	StatusRejected AccountStatus = "rejected"

	// StatusSuspended means an approved account has been suspended. A
	// suspended user can be reactivated back to approved.
	StatusSuspended AccountStatus = "suspended"
)

// User represents a member of the network.
type User struct {
	ID           string        `gorm:"primaryKey;size:36" json:"id"`
	Email        string        `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string        `gorm:"size:255;not null" json:"-"`
	Role         Role          `gorm:"size:20;not null;default:'member';index" json:"role"`
	Status       AccountStatus `gorm:"size:20;not null;default:'pending';index" json:"status"`

	FirstName       string `gorm:"size:100;not null" json:"first_name"`
	LastName        string `gorm:"size:100;not null" json:"last_name"`
	GMCNumber       string `gorm:"size:20;uniqueIndex;not null" json:"gmc_number"`
	MedicalSchoolID string `gorm:"size:36;index" json:"medical_school_id"`
	GraduationYear  int    `gorm:"not null;index" json:"graduation_year"`
	Specialty       string `gorm:"size:100" json:"specialty"`
	CurrentPosition string `gorm:"size:255" json:"current_position"`
	Location        string `gorm:"size:255" json:"location"`
	Bio             string `gorm:"type:text" json:"bio"`
	ProfileImageURL string `gorm:"size:500" json:"profile_image_url"`

	EmailVerified bool       `gorm:"not null;default:false" json:"email_verified"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	LastLogin     time.Time  `json:"last_login"`
	ApprovedAt    *time.Time `json:"approved_at,omitempty"`
	ApprovedBy    *string    `gorm:"size:36" json:"approved_by,omitempty"`
}

// CanAccess is the single gating predicate for the application: superadmins
// always pass regardless of status, everyone else must be approved. Every
// access decision goes through here rather than re-checking role or status
// at the call site.
func (u *User) CanAccess() bool {
	return u.Role == RoleSuperadmin || u.Status == StatusApproved
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

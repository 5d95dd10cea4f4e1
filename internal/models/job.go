package models

import "time"

// JobType classifies a job listing.
type JobType string

const (
	JobTypePermanent  JobType = "permanent"
	JobTypeLocum      JobType = "locum"
	JobTypeFellowship JobType = "fellowship"
	JobTypeTraining   JobType = "training"
)

// Job is a position listing posted by a member.
type Job struct {
	ID                  string    `gorm:"primaryKey;size:36" json:"id"`
	UserID              string    `gorm:"size:36;not null;index" json:"user_id"`
	Title               string    `gorm:"size:255;not null" json:"title"`
	Hospital            string    `gorm:"size:255;not null" json:"hospital"`
	Department          string    `gorm:"size:255" json:"department"`
	Location            string    `gorm:"size:255" json:"location"`
	JobType             JobType   `gorm:"size:20;not null" json:"job_type"`
	Description         string    `gorm:"type:text" json:"description"`
	Requirements        string    `gorm:"type:text" json:"requirements"`
	SalaryRange         string    `gorm:"size:100" json:"salary_range"`
	ApplicationDeadline time.Time `json:"application_deadline"`
	ContactEmail        string    `gorm:"size:255" json:"contact_email"`
	IsActive            bool      `gorm:"not null;default:true" json:"is_active"`
	ViewsCount          int       `gorm:"not null;default:0" json:"views_count"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Open reports whether the listing is still accepting applications at t.
func (j *Job) Open(t time.Time) bool {
	return j.IsActive && t.Before(j.ApplicationDeadline)
}

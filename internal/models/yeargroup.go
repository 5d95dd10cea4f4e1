package models

import "time"

// Yeargroup groups graduates of one medical school by graduation year.
// The pair (MedicalSchoolID, GraduationYear) is the logical grouping key;
// the display metadata is denormalized onto the record. Yeargroups are
// created from seed data, not by user action.
type Yeargroup struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	MedicalSchoolID string    `gorm:"size:36;not null;index:idx_school_year" json:"medical_school_id"`
	GraduationYear  int       `gorm:"not null;index:idx_school_year" json:"graduation_year"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Description     string    `gorm:"type:text" json:"description"`
	CoverImageURL   string    `gorm:"size:500" json:"cover_image_url"`
	MemberCount     int       `gorm:"not null;default:0" json:"member_count"`
	CreatedAt       time.Time `json:"created_at"`
}

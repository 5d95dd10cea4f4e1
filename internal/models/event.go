package models

import (
	"time"

	"gorm.io/datatypes"
)

// RSVPStatus is a user's response to an event invitation.
type RSVPStatus string

const (
	RSVPAttending    RSVPStatus = "attending"
	RSVPMaybe        RSVPStatus = "maybe"
	RSVPNotAttending RSVPStatus = "not_attending"
)

// EventAttendee is one user's RSVP, keyed uniquely by UserID within an
// event. Re-RSVPing replaces the prior record rather than appending.
type EventAttendee struct {
	UserID      string     `json:"user_id"`
	Status      RSVPStatus `json:"status"`
	RespondedAt time.Time  `json:"responded_at"`
}

// Event is a yeargroup gathering with an RSVP list embedded on the record.
type Event struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	YeargroupID  string    `gorm:"size:36;not null;index" json:"yeargroup_id"`
	OrganizerID  string    `gorm:"size:36;not null" json:"organizer_id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	EventDate    time.Time `gorm:"index" json:"event_date"`
	Location     string    `gorm:"size:255" json:"location"`
	MaxAttendees int       `gorm:"not null;default:0" json:"max_attendees"`
	RSVPDeadline time.Time `json:"rsvp_deadline"`
	ImageURL     string    `gorm:"size:500" json:"image_url"`

	Attendees datatypes.JSONSlice[EventAttendee] `json:"attendees"`

	CreatedAt time.Time `json:"created_at"`
}

// Attendee returns the RSVP record for userID, or nil if they have not responded.
func (e *Event) Attendee(userID string) *EventAttendee {
	for i := range e.Attendees {
		if e.Attendees[i].UserID == userID {
			return &e.Attendees[i]
		}
	}
	return nil
}

// AttendingCount returns the number of confirmed attendees.
func (e *Event) AttendingCount() int {
	n := 0
	for _, a := range e.Attendees {
		if a.Status == RSVPAttending {
			n++
		}
	}
	return n
}

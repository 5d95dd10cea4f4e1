package models

import (
	"time"

	"gorm.io/datatypes"
)

// NotificationType identifies what kind of event a notification describes.
type NotificationType string

const (
	NotificationFriendRequest  NotificationType = "friend_request"
	NotificationPostLike       NotificationType = "post_like"
	NotificationComment        NotificationType = "comment"
	NotificationEventInvite    NotificationType = "event_invite"
	NotificationAdminApproval  NotificationType = "admin_approval"
	NotificationJobPosted      NotificationType = "job_posted"
	NotificationPropertyListed NotificationType = "property_listed"
)

// Notification is a typed per-user alert. Data carries a small JSON payload
// identifying the subject (post id, requesting user id, and so on).
type Notification struct {
	ID        string           `gorm:"primaryKey;size:36" json:"id"`
	UserID    string           `gorm:"size:36;not null;index" json:"user_id"`
	Type      NotificationType `gorm:"size:30;not null" json:"type"`
	Title     string           `gorm:"size:255;not null" json:"title"`
	Message   string           `gorm:"type:text" json:"message"`
	Data      datatypes.JSON   `gorm:"type:jsonb" json:"data,omitempty"`
	IsRead    bool             `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}

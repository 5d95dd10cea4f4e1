package models

import "time"

// FriendshipStatus defines the state of a relationship between two users.
type FriendshipStatus string

const (
	// FriendshipPending means a friend request has been sent but not yet accepted.
	FriendshipPending FriendshipStatus = "pending"

	// FriendshipAccepted means the request was accepted and the users are friends.
	FriendshipAccepted FriendshipStatus = "accepted"

	// FriendshipBlocked is a terminal moderation state for the pair.
	FriendshipBlocked FriendshipStatus = "blocked"
)

// Friendship represents the relationship between two users. It is stored
// directionally (UserID sent the request to FriendID) but the relation is
// symmetric: any "are these two friends" question must consider both
// orderings. Involves and OtherUser are the helpers for that; no caller
// should do directional lookups on its own.
type Friendship struct {
	ID          string           `gorm:"primaryKey;size:36" json:"id"`
	UserID      string           `gorm:"size:36;not null;index:idx_friendship_pair" json:"user_id"`
	FriendID    string           `gorm:"size:36;not null;index:idx_friendship_pair" json:"friend_id"`
	Status      FriendshipStatus `gorm:"size:20;not null" json:"status"`
	RequestedAt time.Time        `json:"requested_at"`
	AcceptedAt  *time.Time       `json:"accepted_at,omitempty"`
}

// Involves reports whether the friendship connects a and b, in either order.
func (f *Friendship) Involves(a, b string) bool {
	return (f.UserID == a && f.FriendID == b) || (f.UserID == b && f.FriendID == a)
}

// OtherUser returns the participant that is not userID.
func (f *Friendship) OtherUser(userID string) string {
	if f.UserID == userID {
		return f.FriendID
	}
	return f.UserID
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// Visibility controls which viewers a post is shown to.
type Visibility string

const (
	// VisibilityYeargroup limits a post to members of the author's yeargroup.
	VisibilityYeargroup Visibility = "yeargroup"

	// VisibilityFriends limits a post to the author's accepted friends.
	VisibilityFriends Visibility = "friends"

	// VisibilityPublic makes a post visible to every member.
	VisibilityPublic Visibility = "public"
)

// Post is a feed item owned by one user and attached to one yeargroup.
//
// LikedBy has set semantics: a user id appears at most once, and LikesCount
// always equals len(LikedBy). The two are only ever mutated together.
//
// Cursor is an auto-incremented global index that preserves the relative
// insertion order of posts, used to break CreatedAt ties in the feed.
type Post struct {
	ID          string     `gorm:"primaryKey;size:36" json:"id"`
	UserID      string     `gorm:"size:36;not null;index" json:"user_id"`
	YeargroupID string     `gorm:"size:36;not null;index" json:"yeargroup_id"`
	Content     string     `gorm:"type:text;not null" json:"content"`
	Visibility  Visibility `gorm:"size:20;not null;default:'yeargroup'" json:"visibility"`

	ImageURLs    datatypes.JSONSlice[string] `json:"image_urls"`
	DocumentURLs datatypes.JSONSlice[string] `json:"document_urls"`

	LikesCount    int                         `gorm:"not null;default:0" json:"likes_count"`
	CommentsCount int                         `gorm:"not null;default:0" json:"comments_count"`
	LikedBy       datatypes.JSONSlice[string] `json:"liked_by"`

	Cursor    int64     `gorm:"autoIncrement;uniqueIndex" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LikedByUser reports whether userID is in the post's like set.
func (p *Post) LikedByUser(userID string) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// Comment is an append-only reply attached to one post.
type Comment struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	PostID    string    `gorm:"size:36;not null;index" json:"post_id"`
	UserID    string    `gorm:"size:36;not null;index" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

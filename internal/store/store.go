// Package store defines the persistence boundary for the application. The
// core services only ever talk to these interfaces; the concrete backend is
// either the seeded in-memory store (demo mode and tests) or the gorm store
// over Postgres.
package store

import (
	"context"
	"errors"

	"myyeargroup/backend/internal/models"
)

// ErrNotFound is returned when a record does not exist. Implementations
// must return it (possibly wrapped) rather than a backend-specific error.
var ErrNotFound = errors.New("record not found")

// Store bundles the per-aggregate repositories.
type Store interface {
	Users() UserStore
	Yeargroups() YeargroupStore
	Posts() PostStore
	Comments() CommentStore
	Friendships() FriendshipStore
	Jobs() JobStore
	Properties() PropertyStore
	Events() EventStore
	Notifications() NotificationStore
}

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	ByID(ctx context.Context, id string) (*models.User, error)
	ByEmail(ctx context.Context, email string) (*models.User, error)
	// ByEmailOrGMC returns any user matching either field, used for the
	// combined duplicate-registration check.
	ByEmailOrGMC(ctx context.Context, email, gmcNumber string) (*models.User, error)
	Update(ctx context.Context, u *models.User) error
	List(ctx context.Context) ([]models.User, error)
}

type YeargroupStore interface {
	Create(ctx context.Context, yg *models.Yeargroup) error
	ByID(ctx context.Context, id string) (*models.Yeargroup, error)
	// BySchoolYear resolves the grouping key (school, graduation year) to a
	// yeargroup record.
	BySchoolYear(ctx context.Context, schoolID string, year int) (*models.Yeargroup, error)
	List(ctx context.Context) ([]models.Yeargroup, error)
}

type PostStore interface {
	Create(ctx context.Context, p *models.Post) error
	ByID(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, p *models.Post) error
	// List returns all posts in insertion order.
	List(ctx context.Context) ([]models.Post, error)
	ByYeargroup(ctx context.Context, yeargroupID string) ([]models.Post, error)
}

type CommentStore interface {
	Create(ctx context.Context, c *models.Comment) error
	// ByPost returns a post's comments in ascending creation order.
	ByPost(ctx context.Context, postID string) ([]models.Comment, error)
}

type FriendshipStore interface {
	Create(ctx context.Context, f *models.Friendship) error
	ByID(ctx context.Context, id string) (*models.Friendship, error)
	// ByPair returns the relationship between a and b regardless of which
	// side initiated it. This is the only sanctioned pair lookup.
	ByPair(ctx context.Context, a, b string) (*models.Friendship, error)
	ByUser(ctx context.Context, userID string) ([]models.Friendship, error)
	Update(ctx context.Context, f *models.Friendship) error
	Delete(ctx context.Context, id string) error
}

type JobStore interface {
	Create(ctx context.Context, j *models.Job) error
	ByID(ctx context.Context, id string) (*models.Job, error)
	Update(ctx context.Context, j *models.Job) error
	List(ctx context.Context) ([]models.Job, error)
}

type PropertyStore interface {
	Create(ctx context.Context, p *models.Property) error
	ByID(ctx context.Context, id string) (*models.Property, error)
	Update(ctx context.Context, p *models.Property) error
	List(ctx context.Context) ([]models.Property, error)
}

type EventStore interface {
	Create(ctx context.Context, e *models.Event) error
	ByID(ctx context.Context, id string) (*models.Event, error)
	Update(ctx context.Context, e *models.Event) error
	ByYeargroup(ctx context.Context, yeargroupID string) ([]models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
}

type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	ByID(ctx context.Context, id string) (*models.Notification, error)
	Update(ctx context.Context, n *models.Notification) error
	// ByUser returns a user's notifications, most recent first.
	ByUser(ctx context.Context, userID string) ([]models.Notification, error)
	DeleteByUser(ctx context.Context, userID string) error
}

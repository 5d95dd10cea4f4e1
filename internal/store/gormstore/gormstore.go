// Package gormstore implements store.Store over gorm/Postgres.
package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"myyeargroup/backend/internal/models"
	"myyeargroup/backend/internal/store"
)

// Store wraps a connected gorm.DB. Use database.Connect to obtain one with
// migrations applied.
type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Users() store.UserStore                 { return userStore{s.db} }
func (s *Store) Yeargroups() store.YeargroupStore       { return yeargroupStore{s.db} }
func (s *Store) Posts() store.PostStore                 { return postStore{s.db} }
func (s *Store) Comments() store.CommentStore           { return commentStore{s.db} }
func (s *Store) Friendships() store.FriendshipStore     { return friendshipStore{s.db} }
func (s *Store) Jobs() store.JobStore                   { return jobStore{s.db} }
func (s *Store) Properties() store.PropertyStore        { return propertyStore{s.db} }
func (s *Store) Events() store.EventStore               { return eventStore{s.db} }
func (s *Store) Notifications() store.NotificationStore { return notificationStore{s.db} }

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return err
}

func first[T any](ctx context.Context, db *gorm.DB, conds ...any) (*T, error) {
	var rec T
	if err := db.WithContext(ctx).First(&rec, conds...).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

type userStore struct{ db *gorm.DB }

func (u userStore) Create(ctx context.Context, rec *models.User) error {
	return u.db.WithContext(ctx).Create(rec).Error
}

func (u userStore) ByID(ctx context.Context, id string) (*models.User, error) {
	return first[models.User](ctx, u.db, "id = ?", id)
}

func (u userStore) ByEmail(ctx context.Context, email string) (*models.User, error) {
	return first[models.User](ctx, u.db, "email = ?", email)
}

func (u userStore) ByEmailOrGMC(ctx context.Context, email, gmcNumber string) (*models.User, error) {
	return first[models.User](ctx, u.db, "email = ? OR gmc_number = ?", email, gmcNumber)
}

func (u userStore) Update(ctx context.Context, rec *models.User) error {
	return u.db.WithContext(ctx).Save(rec).Error
}

func (u userStore) List(ctx context.Context) ([]models.User, error) {
	var recs []models.User
	err := u.db.WithContext(ctx).Order("created_at ASC").Find(&recs).Error
	return recs, err
}

type yeargroupStore struct{ db *gorm.DB }

func (y yeargroupStore) Create(ctx context.Context, rec *models.Yeargroup) error {
	return y.db.WithContext(ctx).Create(rec).Error
}

func (y yeargroupStore) ByID(ctx context.Context, id string) (*models.Yeargroup, error) {
	return first[models.Yeargroup](ctx, y.db, "id = ?", id)
}

func (y yeargroupStore) BySchoolYear(ctx context.Context, schoolID string, year int) (*models.Yeargroup, error) {
	return first[models.Yeargroup](ctx, y.db, "medical_school_id = ? AND graduation_year = ?", schoolID, year)
}

func (y yeargroupStore) List(ctx context.Context) ([]models.Yeargroup, error) {
	var recs []models.Yeargroup
	err := y.db.WithContext(ctx).Order("graduation_year DESC, name ASC").Find(&recs).Error
	return recs, err
}

type postStore struct{ db *gorm.DB }

func (p postStore) Create(ctx context.Context, rec *models.Post) error {
	return p.db.WithContext(ctx).Create(rec).Error
}

func (p postStore) ByID(ctx context.Context, id string) (*models.Post, error) {
	return first[models.Post](ctx, p.db, "id = ?", id)
}

func (p postStore) Update(ctx context.Context, rec *models.Post) error {
	return p.db.WithContext(ctx).Save(rec).Error
}

func (p postStore) List(ctx context.Context) ([]models.Post, error) {
	var recs []models.Post
	err := p.db.WithContext(ctx).Order("cursor ASC").Find(&recs).Error
	return recs, err
}

func (p postStore) ByYeargroup(ctx context.Context, yeargroupID string) ([]models.Post, error) {
	var recs []models.Post
	err := p.db.WithContext(ctx).Where("yeargroup_id = ?", yeargroupID).Order("cursor ASC").Find(&recs).Error
	return recs, err
}

type commentStore struct{ db *gorm.DB }

func (c commentStore) Create(ctx context.Context, rec *models.Comment) error {
	return c.db.WithContext(ctx).Create(rec).Error
}

func (c commentStore) ByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	var recs []models.Comment
	err := c.db.WithContext(ctx).Where("post_id = ?", postID).Order("created_at ASC").Find(&recs).Error
	return recs, err
}

type friendshipStore struct{ db *gorm.DB }

func (f friendshipStore) Create(ctx context.Context, rec *models.Friendship) error {
	return f.db.WithContext(ctx).Create(rec).Error
}

func (f friendshipStore) ByID(ctx context.Context, id string) (*models.Friendship, error) {
	return first[models.Friendship](ctx, f.db, "id = ?", id)
}

func (f friendshipStore) ByPair(ctx context.Context, a, b string) (*models.Friendship, error) {
	var rec models.Friendship
	err := f.db.WithContext(ctx).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)", a, b, b, a).
		First(&rec).Error
	if err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

func (f friendshipStore) ByUser(ctx context.Context, userID string) ([]models.Friendship, error) {
	var recs []models.Friendship
	err := f.db.WithContext(ctx).
		Where("user_id = ? OR friend_id = ?", userID, userID).
		Find(&recs).Error
	return recs, err
}

func (f friendshipStore) Update(ctx context.Context, rec *models.Friendship) error {
	return f.db.WithContext(ctx).Save(rec).Error
}

func (f friendshipStore) Delete(ctx context.Context, id string) error {
	result := f.db.WithContext(ctx).Delete(&models.Friendship{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

type jobStore struct{ db *gorm.DB }

func (j jobStore) Create(ctx context.Context, rec *models.Job) error {
	return j.db.WithContext(ctx).Create(rec).Error
}

func (j jobStore) ByID(ctx context.Context, id string) (*models.Job, error) {
	return first[models.Job](ctx, j.db, "id = ?", id)
}

func (j jobStore) Update(ctx context.Context, rec *models.Job) error {
	return j.db.WithContext(ctx).Save(rec).Error
}

func (j jobStore) List(ctx context.Context) ([]models.Job, error) {
	var recs []models.Job
	err := j.db.WithContext(ctx).Order("created_at DESC").Find(&recs).Error
	return recs, err
}

type propertyStore struct{ db *gorm.DB }

func (p propertyStore) Create(ctx context.Context, rec *models.Property) error {
	return p.db.WithContext(ctx).Create(rec).Error
}

func (p propertyStore) ByID(ctx context.Context, id string) (*models.Property, error) {
	return first[models.Property](ctx, p.db, "id = ?", id)
}

func (p propertyStore) Update(ctx context.Context, rec *models.Property) error {
	return p.db.WithContext(ctx).Save(rec).Error
}

func (p propertyStore) List(ctx context.Context) ([]models.Property, error) {
	var recs []models.Property
	err := p.db.WithContext(ctx).Order("created_at DESC").Find(&recs).Error
	return recs, err
}

type eventStore struct{ db *gorm.DB }

func (e eventStore) Create(ctx context.Context, rec *models.Event) error {
	return e.db.WithContext(ctx).Create(rec).Error
}

func (e eventStore) ByID(ctx context.Context, id string) (*models.Event, error) {
	return first[models.Event](ctx, e.db, "id = ?", id)
}

func (e eventStore) Update(ctx context.Context, rec *models.Event) error {
	return e.db.WithContext(ctx).Save(rec).Error
}

func (e eventStore) ByYeargroup(ctx context.Context, yeargroupID string) ([]models.Event, error) {
	var recs []models.Event
	err := e.db.WithContext(ctx).Where("yeargroup_id = ?", yeargroupID).Order("event_date ASC").Find(&recs).Error
	return recs, err
}

func (e eventStore) List(ctx context.Context) ([]models.Event, error) {
	var recs []models.Event
	err := e.db.WithContext(ctx).Order("event_date ASC").Find(&recs).Error
	return recs, err
}

type notificationStore struct{ db *gorm.DB }

func (n notificationStore) Create(ctx context.Context, rec *models.Notification) error {
	return n.db.WithContext(ctx).Create(rec).Error
}

func (n notificationStore) ByID(ctx context.Context, id string) (*models.Notification, error) {
	return first[models.Notification](ctx, n.db, "id = ?", id)
}

func (n notificationStore) Update(ctx context.Context, rec *models.Notification) error {
	return n.db.WithContext(ctx).Save(rec).Error
}

func (n notificationStore) ByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	var recs []models.Notification
	err := n.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&recs).Error
	return recs, err
}

func (n notificationStore) DeleteByUser(ctx context.Context, userID string) error {
	return n.db.WithContext(ctx).Delete(&models.Notification{}, "user_id = ?", userID).Error
}

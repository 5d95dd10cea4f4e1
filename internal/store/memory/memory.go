// Package memory implements store.Store over plain in-memory slices. It
// backs demo mode (seeded with the original mock data set) and the service
// tests. A single mutex serializes every operation; there is one logical
// writer at a time and records are copied on the way in and out so callers
// never alias store state.
package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"myyeargroup/backend/internal/models"
	"myyeargroup/backend/internal/store"
)

// Store holds every aggregate in insertion order.
type Store struct {
	mu sync.RWMutex

	cursor int64

	users         []models.User
	yeargroups    []models.Yeargroup
	posts         []models.Post
	comments      []models.Comment
	friendships   []models.Friendship
	jobs          []models.Job
	properties    []models.Property
	events        []models.Event
	notifications []models.Notification
}

var _ store.Store = (*Store)(nil)

// New returns an empty in-memory store.
func New() *Store {
	return &Store{}
}

func (s *Store) Users() store.UserStore                 { return userStore{s} }
func (s *Store) Yeargroups() store.YeargroupStore       { return yeargroupStore{s} }
func (s *Store) Posts() store.PostStore                 { return postStore{s} }
func (s *Store) Comments() store.CommentStore           { return commentStore{s} }
func (s *Store) Friendships() store.FriendshipStore     { return friendshipStore{s} }
func (s *Store) Jobs() store.JobStore                   { return jobStore{s} }
func (s *Store) Properties() store.PropertyStore        { return propertyStore{s} }
func (s *Store) Events() store.EventStore               { return eventStore{s} }
func (s *Store) Notifications() store.NotificationStore { return notificationStore{s} }

func clonePost(p models.Post) models.Post {
	p.ImageURLs = slices.Clone(p.ImageURLs)
	p.DocumentURLs = slices.Clone(p.DocumentURLs)
	p.LikedBy = slices.Clone(p.LikedBy)
	return p
}

func cloneProperty(p models.Property) models.Property {
	p.ImageURLs = slices.Clone(p.ImageURLs)
	p.Amenities = slices.Clone(p.Amenities)
	return p
}

func cloneEvent(e models.Event) models.Event {
	e.Attendees = slices.Clone(e.Attendees)
	return e
}

func cloneNotification(n models.Notification) models.Notification {
	n.Data = slices.Clone(n.Data)
	return n
}

// region --- users ---

type userStore struct{ s *Store }

func (u userStore) Create(_ context.Context, rec *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	u.s.users = append(u.s.users, *rec)
	return nil
}

func (u userStore) ByID(_ context.Context, id string) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for _, rec := range u.s.users {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, store.ErrNotFound
}

func (u userStore) ByEmail(_ context.Context, email string) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for _, rec := range u.s.users {
		if rec.Email == email {
			return &rec, nil
		}
	}
	return nil, store.ErrNotFound
}

func (u userStore) ByEmailOrGMC(_ context.Context, email, gmcNumber string) (*models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	for _, rec := range u.s.users {
		if rec.Email == email || rec.GMCNumber == gmcNumber {
			return &rec, nil
		}
	}
	return nil, store.ErrNotFound
}

func (u userStore) Update(_ context.Context, rec *models.User) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	for i := range u.s.users {
		if u.s.users[i].ID == rec.ID {
			u.s.users[i] = *rec
			return nil
		}
	}
	return store.ErrNotFound
}

func (u userStore) List(_ context.Context) ([]models.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()
	return slices.Clone(u.s.users), nil
}

// endregion

// region --- yeargroups ---

type yeargroupStore struct{ s *Store }

func (y yeargroupStore) Create(_ context.Context, rec *models.Yeargroup) error {
	y.s.mu.Lock()
	defer y.s.mu.Unlock()
	y.s.yeargroups = append(y.s.yeargroups, *rec)
	return nil
}

func (y yeargroupStore) ByID(_ context.Context, id string) (*models.Yeargroup, error) {
	y.s.mu.RLock()
	defer y.s.mu.RUnlock()
	for _, rec := range y.s.yeargroups {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, store.ErrNotFound
}

func (y yeargroupStore) BySchoolYear(_ context.Context, schoolID string, year int) (*models.Yeargroup, error) {
	y.s.mu.RLock()
	defer y.s.mu.RUnlock()
	for _, rec := range y.s.yeargroups {
		if rec.MedicalSchoolID == schoolID && rec.GraduationYear == year {
			return &rec, nil
		}
	}
	return nil, store.ErrNotFound
}

func (y yeargroupStore) List(_ context.Context) ([]models.Yeargroup, error) {
	y.s.mu.RLock()
	defer y.s.mu.RUnlock()
	return slices.Clone(y.s.yeargroups), nil
}

// endregion

// region --- posts ---

type postStore struct{ s *Store }

func (p postStore) Create(_ context.Context, rec *models.Post) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	p.s.cursor++
	rec.Cursor = p.s.cursor
	p.s.posts = append(p.s.posts, clonePost(*rec))
	return nil
}

func (p postStore) ByID(_ context.Context, id string) (*models.Post, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	for i := range p.s.posts {
		if p.s.posts[i].ID == id {
			rec := clonePost(p.s.posts[i])
			return &rec, nil
		}
	}
	return nil, store.ErrNotFound
}

func (p postStore) Update(_ context.Context, rec *models.Post) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	for i := range p.s.posts {
		if p.s.posts[i].ID == rec.ID {
			p.s.posts[i] = clonePost(*rec)
			return nil
		}
	}
	return store.ErrNotFound
}

func (p postStore) List(_ context.Context) ([]models.Post, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	out := make([]models.Post, 0, len(p.s.posts))
	for i := range p.s.posts {
		out = append(out, clonePost(p.s.posts[i]))
	}
	return out, nil
}

func (p postStore) ByYeargroup(_ context.Context, yeargroupID string) ([]models.Post, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	var out []models.Post
	for i := range p.s.posts {
		if p.s.posts[i].YeargroupID == yeargroupID {
			out = append(out, clonePost(p.s.posts[i]))
		}
	}
	return out, nil
}

// endregion

// region --- comments ---

type commentStore struct{ s *Store }

func (c commentStore) Create(_ context.Context, rec *models.Comment) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.s.comments = append(c.s.comments, *rec)
	return nil
}

func (c commentStore) ByPost(_ context.Context, postID string) ([]models.Comment, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()
	var out []models.Comment
	for _, rec := range c.s.comments {
		if rec.PostID == postID {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// endregion

// region --- friendships ---

type friendshipStore struct{ s *Store }

func (f friendshipStore) Create(_ context.Context, rec *models.Friendship) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.friendships = append(f.s.friendships, *rec)
	return nil
}

func (f friendshipStore) ByID(_ context.Context, id string) (*models.Friendship, error) {
	f.s.mu.RLock()
	defer f.s.mu.RUnlock()
	for _, rec := range f.s.friendships {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f friendshipStore) ByPair(_ context.Context, a, b string) (*models.Friendship, error) {
	f.s.mu.RLock()
	defer f.s.mu.RUnlock()
	for _, rec := range f.s.friendships {
		if rec.Involves(a, b) {
			return &rec, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f friendshipStore) ByUser(_ context.Context, userID string) ([]models.Friendship, error) {
	f.s.mu.RLock()
	defer f.s.mu.RUnlock()
	var out []models.Friendship
	for _, rec := range f.s.friendships {
		if rec.UserID == userID || rec.FriendID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f friendshipStore) Update(_ context.Context, rec *models.Friendship) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for i := range f.s.friendships {
		if f.s.friendships[i].ID == rec.ID {
			f.s.friendships[i] = *rec
			return nil
		}
	}
	return store.ErrNotFound
}

func (f friendshipStore) Delete(_ context.Context, id string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for i := range f.s.friendships {
		if f.s.friendships[i].ID == id {
			f.s.friendships = append(f.s.friendships[:i], f.s.friendships[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// endregion

// region --- jobs ---

type jobStore struct{ s *Store }

func (j jobStore) Create(_ context.Context, rec *models.Job) error {
	j.s.mu.Lock()
	defer j.s.mu.Unlock()
	j.s.jobs = append(j.s.jobs, *rec)
	return nil
}

func (j jobStore) ByID(_ context.Context, id string) (*models.Job, error) {
	j.s.mu.RLock()
	defer j.s.mu.RUnlock()
	for _, rec := range j.s.jobs {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, store.ErrNotFound
}

func (j jobStore) Update(_ context.Context, rec *models.Job) error {
	j.s.mu.Lock()
	defer j.s.mu.Unlock()
	for i := range j.s.jobs {
		if j.s.jobs[i].ID == rec.ID {
			j.s.jobs[i] = *rec
			return nil
		}
	}
	return store.ErrNotFound
}

func (j jobStore) List(_ context.Context) ([]models.Job, error) {
	j.s.mu.RLock()
	defer j.s.mu.RUnlock()
	return slices.Clone(j.s.jobs), nil
}

// endregion

// region --- properties ---

type propertyStore struct{ s *Store }

func (p propertyStore) Create(_ context.Context, rec *models.Property) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	p.s.properties = append(p.s.properties, cloneProperty(*rec))
	return nil
}

func (p propertyStore) ByID(_ context.Context, id string) (*models.Property, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	for i := range p.s.properties {
		if p.s.properties[i].ID == id {
			rec := cloneProperty(p.s.properties[i])
			return &rec, nil
		}
	}
	return nil, store.ErrNotFound
}

func (p propertyStore) Update(_ context.Context, rec *models.Property) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	for i := range p.s.properties {
		if p.s.properties[i].ID == rec.ID {
			p.s.properties[i] = cloneProperty(*rec)
			return nil
		}
	}
	return store.ErrNotFound
}

func (p propertyStore) List(_ context.Context) ([]models.Property, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()
	out := make([]models.Property, 0, len(p.s.properties))
	for i := range p.s.properties {
		out = append(out, cloneProperty(p.s.properties[i]))
	}
	return out, nil
}

// endregion

// region --- events ---

type eventStore struct{ s *Store }

func (e eventStore) Create(_ context.Context, rec *models.Event) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	e.s.events = append(e.s.events, cloneEvent(*rec))
	return nil
}

func (e eventStore) ByID(_ context.Context, id string) (*models.Event, error) {
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()
	for i := range e.s.events {
		if e.s.events[i].ID == id {
			rec := cloneEvent(e.s.events[i])
			return &rec, nil
		}
	}
	return nil, store.ErrNotFound
}

func (e eventStore) Update(_ context.Context, rec *models.Event) error {
	e.s.mu.Lock()
	defer e.s.mu.Unlock()
	for i := range e.s.events {
		if e.s.events[i].ID == rec.ID {
			e.s.events[i] = cloneEvent(*rec)
			return nil
		}
	}
	return store.ErrNotFound
}

func (e eventStore) ByYeargroup(_ context.Context, yeargroupID string) ([]models.Event, error) {
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()
	var out []models.Event
	for i := range e.s.events {
		if e.s.events[i].YeargroupID == yeargroupID {
			out = append(out, cloneEvent(e.s.events[i]))
		}
	}
	return out, nil
}

func (e eventStore) List(_ context.Context) ([]models.Event, error) {
	e.s.mu.RLock()
	defer e.s.mu.RUnlock()
	out := make([]models.Event, 0, len(e.s.events))
	for i := range e.s.events {
		out = append(out, cloneEvent(e.s.events[i]))
	}
	return out, nil
}

// endregion

// region --- notifications ---

type notificationStore struct{ s *Store }

func (n notificationStore) Create(_ context.Context, rec *models.Notification) error {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()
	n.s.notifications = append(n.s.notifications, cloneNotification(*rec))
	return nil
}

func (n notificationStore) ByID(_ context.Context, id string) (*models.Notification, error) {
	n.s.mu.RLock()
	defer n.s.mu.RUnlock()
	for i := range n.s.notifications {
		if n.s.notifications[i].ID == id {
			rec := cloneNotification(n.s.notifications[i])
			return &rec, nil
		}
	}
	return nil, store.ErrNotFound
}

func (n notificationStore) Update(_ context.Context, rec *models.Notification) error {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()
	for i := range n.s.notifications {
		if n.s.notifications[i].ID == rec.ID {
			n.s.notifications[i] = cloneNotification(*rec)
			return nil
		}
	}
	return store.ErrNotFound
}

func (n notificationStore) ByUser(_ context.Context, userID string) ([]models.Notification, error) {
	n.s.mu.RLock()
	defer n.s.mu.RUnlock()
	var out []models.Notification
	for i := range n.s.notifications {
		if n.s.notifications[i].UserID == userID {
			out = append(out, cloneNotification(n.s.notifications[i]))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (n notificationStore) DeleteByUser(_ context.Context, userID string) error {
	n.s.mu.Lock()
	defer n.s.mu.Unlock()
	kept := n.s.notifications[:0]
	for _, rec := range n.s.notifications {
		if rec.UserID != userID {
			kept = append(kept, rec)
		}
	}
	n.s.notifications = kept
	return nil
}

// endregion

package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"myyeargroup/backend/internal/models"
	"myyeargroup/backend/internal/store"
)

// ListingService manages the job board and property board. New listings
// are announced to the owner's accepted friends.
type ListingService struct {
	store         store.Store
	friendships   *FriendshipService
	notifications *NotificationService
	log           *zap.Logger
}

func NewListingService(s store.Store, f *FriendshipService, n *NotificationService, log *zap.Logger) *ListingService {
	return &ListingService{store: s, friendships: f, notifications: n, log: log}
}

// JobInput carries the job listing form fields.
type JobInput struct {
	Title               string
	Hospital            string
	Department          string
	Location            string
	JobType             models.JobType
	Description         string
	Requirements        string
	SalaryRange         string
	ApplicationDeadline time.Time
	ContactEmail        string
}

// CreateJob posts a job listing and announces it to the owner's friends.
func (s *ListingService) CreateJob(ctx context.Context, owner *models.User, in JobInput) (*models.Job, error) {
	now := time.Now()
	job := &models.Job{
		ID:                  uuid.NewString(),
		UserID:              owner.ID,
		Title:               in.Title,
		Hospital:            in.Hospital,
		Department:          in.Department,
		Location:            in.Location,
		JobType:             in.JobType,
		Description:         in.Description,
		Requirements:        in.Requirements,
		SalaryRange:         in.SalaryRange,
		ApplicationDeadline: in.ApplicationDeadline,
		ContactEmail:        in.ContactEmail,
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.store.Jobs().Create(ctx, job); err != nil {
		return nil, err
	}

	s.announceToFriends(ctx, owner, models.NotificationJobPosted,
		"New job posted",
		fmt.Sprintf("Dr. %s posted a job: %s at %s", owner.FullName(), job.Title, job.Hospital),
		map[string]string{"job_id": job.ID})
	return job, nil
}

// ActiveJobs returns open job listings, most recent first.
func (s *ListingService) ActiveJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.store.Jobs().List(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	open := jobs[:0]
	for _, j := range jobs {
		if j.Open(now) {
			open = append(open, j)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].CreatedAt.After(open[j].CreatedAt)
	})
	return open, nil
}

// Job fetches one listing and counts the view.
func (s *ListingService) Job(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.store.Jobs().ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	job.ViewsCount++
	if err := s.store.Jobs().Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// CloseJob deactivates a listing. Only the owner may close it.
func (s *ListingService) CloseJob(ctx context.Context, ownerID, jobID string) (*models.Job, error) {
	job, err := s.store.Jobs().ByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.UserID != ownerID {
		return nil, ErrNotOwner
	}
	if !job.IsActive {
		return job, nil
	}
	job.IsActive = false
	job.UpdatedAt = time.Now()
	if err := s.store.Jobs().Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// PropertyInput carries the property listing form fields.
type PropertyInput struct {
	Title           string
	Type            models.PropertyType
	Location        string
	Description     string
	Bedrooms        int
	Bathrooms       int
	Price           *int
	AvailableFrom   time.Time
	AvailableTo     time.Time
	ImageURLs       []string
	Amenities       []string
	SwapPreferences string
}

// CreateProperty posts a property listing and announces it to the owner's friends.
func (s *ListingService) CreateProperty(ctx context.Context, owner *models.User, in PropertyInput) (*models.Property, error) {
	now := time.Now()
	prop := &models.Property{
		ID:              uuid.NewString(),
		UserID:          owner.ID,
		Title:           in.Title,
		Type:            in.Type,
		Location:        in.Location,
		Description:     in.Description,
		Bedrooms:        in.Bedrooms,
		Bathrooms:       in.Bathrooms,
		Price:           in.Price,
		AvailableFrom:   in.AvailableFrom,
		AvailableTo:     in.AvailableTo,
		ImageURLs:       in.ImageURLs,
		Amenities:       in.Amenities,
		SwapPreferences: in.SwapPreferences,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.store.Properties().Create(ctx, prop); err != nil {
		return nil, err
	}

	s.announceToFriends(ctx, owner, models.NotificationPropertyListed,
		"New property listed",
		fmt.Sprintf("Dr. %s listed a property: %s", owner.FullName(), prop.Title),
		map[string]string{"property_id": prop.ID})
	return prop, nil
}

// ActiveProperties returns listings whose availability window is open,
// most recent first.
func (s *ListingService) ActiveProperties(ctx context.Context) ([]models.Property, error) {
	props, err := s.store.Properties().List(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	active := props[:0]
	for _, p := range props {
		if p.Available(now) {
			active = append(active, p)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].CreatedAt.After(active[j].CreatedAt)
	})
	return active, nil
}

// Property fetches one listing and counts the view.
func (s *ListingService) Property(ctx context.Context, id string) (*models.Property, error) {
	prop, err := s.store.Properties().ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	prop.ViewsCount++
	if err := s.store.Properties().Update(ctx, prop); err != nil {
		return nil, err
	}
	return prop, nil
}

// CloseProperty deactivates a listing. Only the owner may close it.
func (s *ListingService) CloseProperty(ctx context.Context, ownerID, propertyID string) (*models.Property, error) {
	prop, err := s.store.Properties().ByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if prop.UserID != ownerID {
		return nil, ErrNotOwner
	}
	if !prop.IsActive {
		return prop, nil
	}
	prop.IsActive = false
	prop.UpdatedAt = time.Now()
	if err := s.store.Properties().Update(ctx, prop); err != nil {
		return nil, err
	}
	return prop, nil
}

func (s *ListingService) announceToFriends(ctx context.Context, owner *models.User, ntype models.NotificationType, title, message string, data any) {
	friends, err := s.friendships.FriendsOf(ctx, owner.ID)
	if err != nil {
		s.log.Warn("listing announcement failed", zap.Error(err))
		return
	}
	for _, friend := range friends {
		if _, err := s.notifications.Notify(ctx, friend.ID, ntype, title, message, data); err != nil {
			s.log.Warn("listing announcement failed", zap.String("user_id", friend.ID), zap.Error(err))
		}
	}
}

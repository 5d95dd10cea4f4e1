package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"myyeargroup/backend/internal/hub"
	"myyeargroup/backend/internal/models"
	"myyeargroup/backend/internal/service"
	"myyeargroup/backend/internal/store"
	"myyeargroup/backend/internal/store/memory"
)

func newListings(t *testing.T, st store.Store) (*service.ListingService, *service.NotificationService) {
	t.Helper()
	log := zap.NewNop()
	notifications := service.NewNotificationService(st, hub.NewHub(), log)
	friendships := service.NewFriendshipService(st, notifications, log)
	return service.NewListingService(st, friendships, notifications, log), notifications
}

func TestCreateJobAnnouncesToFriends(t *testing.T) {
	st := memory.NewSeeded()
	listings, notifications := newListings(t, st)
	ctx := context.Background()

	owner, err := st.Users().ByID(ctx, "u1")
	require.NoError(t, err)

	job, err := listings.CreateJob(ctx, owner, service.JobInput{
		Title:               "Clinical Fellow in Cardiology",
		Hospital:            "St Bartholomew's Hospital",
		Location:            "London",
		JobType:             models.JobTypeFellowship,
		ApplicationDeadline: time.Now().Add(30 * 24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", job.UserID)
	assert.True(t, job.IsActive)

	// Sarah's accepted friends (u2 and u3) hear about the posting; the
	// pending pair u2-u5 does not reach Priya.
	for _, friendID := range []string{"u2", "u3"} {
		items, err := notifications.List(ctx, friendID)
		require.NoError(t, err)
		require.NotEmpty(t, items, friendID)
		assert.Equal(t, models.NotificationJobPosted, items[0].Type)
	}
	items, err := notifications.List(ctx, "u5")
	require.NoError(t, err)
	for _, n := range items {
		assert.NotEqual(t, models.NotificationJobPosted, n.Type)
	}
}

func TestActiveJobsFilterByDeadline(t *testing.T) {
	st := memory.NewSeeded()
	listings, _ := newListings(t, st)
	ctx := context.Background()

	owner, err := st.Users().ByID(ctx, "u2")
	require.NoError(t, err)

	open, err := listings.CreateJob(ctx, owner, service.JobInput{
		Title:               "Registrar in Orthopaedics",
		Hospital:            "Addenbrooke's Hospital",
		JobType:             models.JobTypeTraining,
		ApplicationDeadline: time.Now().Add(14 * 24 * time.Hour),
	})
	require.NoError(t, err)

	// The seeded listings all have past deadlines, so only the new one
	// shows up.
	jobs, err := listings.ActiveJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, open.ID, jobs[0].ID)
}

func TestJobViewCounting(t *testing.T) {
	st := memory.NewSeeded()
	listings, _ := newListings(t, st)
	ctx := context.Background()

	job, err := listings.Job(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, 157, job.ViewsCount)

	job, err = listings.Job(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, 158, job.ViewsCount)
}

func TestCloseJob(t *testing.T) {
	st := memory.NewSeeded()
	listings, _ := newListings(t, st)
	ctx := context.Background()

	// Only the owner may close a listing.
	_, err := listings.CloseJob(ctx, "u2", "j1")
	assert.ErrorIs(t, err, service.ErrNotOwner)

	job, err := listings.CloseJob(ctx, "u1", "j1")
	require.NoError(t, err)
	assert.False(t, job.IsActive)

	// Closing again is harmless.
	job, err = listings.CloseJob(ctx, "u1", "j1")
	require.NoError(t, err)
	assert.False(t, job.IsActive)
}

func TestCreatePropertyAnnouncesToFriends(t *testing.T) {
	st := memory.NewSeeded()
	listings, notifications := newListings(t, st)
	ctx := context.Background()

	owner, err := st.Users().ByID(ctx, "u3")
	require.NoError(t, err)

	price := 1950
	prop, err := listings.CreateProperty(ctx, owner, service.PropertyInput{
		Title:         "One-bed flat near GOSH",
		Type:          models.PropertyTypeRent,
		Location:      "London, WC1N",
		Bedrooms:      1,
		Bathrooms:     1,
		Price:         &price,
		AvailableFrom: time.Now().Add(7 * 24 * time.Hour),
		AvailableTo:   time.Now().Add(200 * 24 * time.Hour),
	})
	require.NoError(t, err)
	assert.True(t, prop.IsActive)
	require.NotNil(t, prop.Price)
	assert.Equal(t, 1950, *prop.Price)

	// Emily's only accepted friend is Sarah.
	items, err := notifications.List(ctx, "u1")
	require.NoError(t, err)
	require.NotEmpty(t, items)
	assert.Equal(t, models.NotificationPropertyListed, items[0].Type)
}

func TestActivePropertiesFilterByWindow(t *testing.T) {
	st := memory.NewSeeded()
	listings, _ := newListings(t, st)
	ctx := context.Background()

	owner, err := st.Users().ByID(ctx, "u5")
	require.NoError(t, err)

	current, err := listings.CreateProperty(ctx, owner, service.PropertyInput{
		Title:         "Room available in Oxford house share",
		Type:          models.PropertyTypeRent,
		Bedrooms:      1,
		Bathrooms:     1,
		AvailableFrom: time.Now().Add(-24 * time.Hour),
		AvailableTo:   time.Now().Add(90 * 24 * time.Hour),
	})
	require.NoError(t, err)

	// The seeded listings' windows have closed.
	props, err := listings.ActiveProperties(ctx)
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Equal(t, current.ID, props[0].ID)
}

func TestCloseProperty(t *testing.T) {
	st := memory.NewSeeded()
	listings, _ := newListings(t, st)
	ctx := context.Background()

	_, err := listings.CloseProperty(ctx, "u1", "prop2")
	assert.ErrorIs(t, err, service.ErrNotOwner)

	prop, err := listings.CloseProperty(ctx, "u3", "prop2")
	require.NoError(t, err)
	assert.False(t, prop.IsActive)
}

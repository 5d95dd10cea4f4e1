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

func newEvents(t *testing.T, st store.Store) (*service.EventService, *service.NotificationService) {
	t.Helper()
	log := zap.NewNop()
	notifications := service.NewNotificationService(st, hub.NewHub(), log)
	return service.NewEventService(st, notifications, log), notifications
}

func futureEvent(t *testing.T, st store.Store, events *service.EventService, maxAttendees int) *models.Event {
	t.Helper()
	ctx := context.Background()
	organizer, err := st.Users().ByID(ctx, "u1")
	require.NoError(t, err)

	event, err := events.Create(ctx, organizer, service.EventInput{
		YeargroupID:  "yg1",
		Title:        "Summer Social",
		Description:  "Drinks on the terrace.",
		EventDate:    time.Now().Add(30 * 24 * time.Hour),
		Location:     "London",
		MaxAttendees: maxAttendees,
		RSVPDeadline: time.Now().Add(14 * 24 * time.Hour),
	})
	require.NoError(t, err)
	return event
}

func TestCreateEventInvitesYeargroup(t *testing.T) {
	st := memory.NewSeeded()
	events, notifications := newEvents(t, st)
	ctx := context.Background()

	event := futureEvent(t, st, events, 0)
	assert.Equal(t, "u1", event.OrganizerID)
	assert.Empty(t, event.Attendees)

	// Priya shares the organizer's yeargroup and gets an invite.
	items, err := notifications.List(ctx, "u5")
	require.NoError(t, err)
	require.NotEmpty(t, items)
	assert.Equal(t, models.NotificationEventInvite, items[0].Type)

	// The organizer does not invite themselves, and other yeargroups stay
	// quiet.
	items, err = notifications.List(ctx, "u1")
	require.NoError(t, err)
	for _, n := range items {
		assert.NotEqual(t, models.NotificationEventInvite, n.Type)
	}
	items, err = notifications.List(ctx, "u2")
	require.NoError(t, err)
	for _, n := range items {
		assert.NotEqual(t, models.NotificationEventInvite, n.Type)
	}
}

func TestCreateEventUnknownYeargroup(t *testing.T) {
	st := memory.NewSeeded()
	events, _ := newEvents(t, st)
	ctx := context.Background()

	organizer, err := st.Users().ByID(ctx, "u1")
	require.NoError(t, err)

	_, err = events.Create(ctx, organizer, service.EventInput{
		YeargroupID:  "no-such-group",
		Title:        "Ghost Event",
		EventDate:    time.Now().Add(24 * time.Hour),
		RSVPDeadline: time.Now().Add(12 * time.Hour),
	})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRSVPReplacesPreviousResponse(t *testing.T) {
	st := memory.NewSeeded()
	events, _ := newEvents(t, st)
	ctx := context.Background()

	event := futureEvent(t, st, events, 0)

	event, err := events.RSVP(ctx, event.ID, "u5", models.RSVPAttending)
	require.NoError(t, err)
	require.Len(t, event.Attendees, 1)
	assert.Equal(t, models.RSVPAttending, event.Attendee("u5").Status)

	// A second answer replaces the first instead of stacking.
	event, err = events.RSVP(ctx, event.ID, "u5", models.RSVPMaybe)
	require.NoError(t, err)
	require.Len(t, event.Attendees, 1)
	assert.Equal(t, models.RSVPMaybe, event.Attendee("u5").Status)
	assert.Equal(t, 0, event.AttendingCount())
}

func TestRSVPDeadline(t *testing.T) {
	st := memory.NewSeeded()
	events, _ := newEvents(t, st)
	ctx := context.Background()

	// The seeded reunion's deadline has passed.
	_, err := events.RSVP(ctx, "e1", "u5", models.RSVPNotAttending)
	assert.ErrorIs(t, err, service.ErrRSVPClosed)
}

func TestRSVPCapacity(t *testing.T) {
	st := memory.NewSeeded()
	events, _ := newEvents(t, st)
	ctx := context.Background()

	event := futureEvent(t, st, events, 1)

	_, err := events.RSVP(ctx, event.ID, "u5", models.RSVPAttending)
	require.NoError(t, err)

	// Full: a second attendee is refused.
	_, err = events.RSVP(ctx, event.ID, "u2", models.RSVPAttending)
	assert.ErrorIs(t, err, service.ErrEventFull)

	// Non-attending answers are always allowed.
	full, err := events.RSVP(ctx, event.ID, "u2", models.RSVPMaybe)
	require.NoError(t, err)
	assert.Len(t, full.Attendees, 2)

	// An existing attendee restating "attending" is not a capacity change.
	_, err = events.RSVP(ctx, event.ID, "u5", models.RSVPAttending)
	require.NoError(t, err)

	// Stepping down frees the slot.
	_, err = events.RSVP(ctx, event.ID, "u5", models.RSVPNotAttending)
	require.NoError(t, err)
	_, err = events.RSVP(ctx, event.ID, "u2", models.RSVPAttending)
	require.NoError(t, err)
}

func TestUpcomingEvents(t *testing.T) {
	st := memory.NewSeeded()
	events, _ := newEvents(t, st)
	ctx := context.Background()

	// The seeded yg1 reunion is in the past and filtered out.
	upcoming, err := events.Upcoming(ctx, "yg1")
	require.NoError(t, err)
	assert.Empty(t, upcoming)

	later := futureEvent(t, st, events, 0)
	organizer, err := st.Users().ByID(ctx, "u1")
	require.NoError(t, err)
	sooner, err := events.Create(ctx, organizer, service.EventInput{
		YeargroupID:  "yg1",
		Title:        "Journal Club",
		EventDate:    time.Now().Add(7 * 24 * time.Hour),
		RSVPDeadline: time.Now().Add(5 * 24 * time.Hour),
	})
	require.NoError(t, err)

	upcoming, err = events.Upcoming(ctx, "yg1")
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, sooner.ID, upcoming[0].ID)
	assert.Equal(t, later.ID, upcoming[1].ID)
}

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

// EventService manages yeargroup events and their RSVP lists.
type EventService struct {
	store         store.Store
	notifications *NotificationService
	log           *zap.Logger
}

func NewEventService(s store.Store, n *NotificationService, log *zap.Logger) *EventService {
	return &EventService{store: s, notifications: n, log: log}
}

// EventInput carries the new-event form fields.
type EventInput struct {
	YeargroupID  string
	Title        string
	Description  string
	EventDate    time.Time
	Location     string
	MaxAttendees int
	RSVPDeadline time.Time
	ImageURL     string
}

// Create publishes an event into a yeargroup and invites its members.
func (s *EventService) Create(ctx context.Context, organizer *models.User, in EventInput) (*models.Event, error) {
	yg, err := s.store.Yeargroups().ByID(ctx, in.YeargroupID)
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:           uuid.NewString(),
		YeargroupID:  yg.ID,
		OrganizerID:  organizer.ID,
		Title:        in.Title,
		Description:  in.Description,
		EventDate:    in.EventDate,
		Location:     in.Location,
		MaxAttendees: in.MaxAttendees,
		RSVPDeadline: in.RSVPDeadline,
		ImageURL:     in.ImageURL,
		Attendees:    []models.EventAttendee{},
		CreatedAt:    time.Now(),
	}
	if err := s.store.Events().Create(ctx, event); err != nil {
		return nil, err
	}

	s.inviteYeargroup(ctx, organizer, yg, event)
	return event, nil
}

// inviteYeargroup notifies every approved member of the yeargroup except
// the organizer.
func (s *EventService) inviteYeargroup(ctx context.Context, organizer *models.User, yg *models.Yeargroup, event *models.Event) {
	users, err := s.store.Users().List(ctx)
	if err != nil {
		s.log.Warn("event invites failed", zap.Error(err))
		return
	}
	for _, u := range users {
		if u.ID == organizer.ID || u.Status != models.StatusApproved {
			continue
		}
		if u.MedicalSchoolID != yg.MedicalSchoolID || u.GraduationYear != yg.GraduationYear {
			continue
		}
		_, err := s.notifications.Notify(ctx, u.ID, models.NotificationEventInvite,
			"New yeargroup event",
			fmt.Sprintf("%s: %s", yg.Name, event.Title),
			map[string]string{"event_id": event.ID})
		if err != nil {
			s.log.Warn("event invite failed", zap.String("user_id", u.ID), zap.Error(err))
		}
	}
}

// Upcoming returns a yeargroup's events that have not yet happened,
// soonest first.
func (s *EventService) Upcoming(ctx context.Context, yeargroupID string) ([]models.Event, error) {
	events, err := s.store.Events().ByYeargroup(ctx, yeargroupID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	upcoming := events[:0]
	for _, e := range events {
		if e.EventDate.After(now) {
			upcoming = append(upcoming, e)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].EventDate.Before(upcoming[j].EventDate)
	})
	return upcoming, nil
}

// Event fetches one event by id.
func (s *EventService) Event(ctx context.Context, id string) (*models.Event, error) {
	return s.store.Events().ByID(ctx, id)
}

// RSVP records a user's response. Each user has at most one attendance
// record per event; responding again replaces the previous answer. The
// deadline closes all responses, and a change to "attending" is refused
// when the event is at capacity.
func (s *EventService) RSVP(ctx context.Context, eventID, userID string, status models.RSVPStatus) (*models.Event, error) {
	event, err := s.store.Events().ByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if now.After(event.RSVPDeadline) {
		return nil, ErrRSVPClosed
	}

	existing := event.Attendee(userID)
	if status == models.RSVPAttending {
		wasAttending := existing != nil && existing.Status == models.RSVPAttending
		if !wasAttending && event.MaxAttendees > 0 && event.AttendingCount() >= event.MaxAttendees {
			return nil, ErrEventFull
		}
	}

	record := models.EventAttendee{UserID: userID, Status: status, RespondedAt: now}
	if existing != nil {
		*existing = record
	} else {
		event.Attendees = append(event.Attendees, record)
	}

	if err := s.store.Events().Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

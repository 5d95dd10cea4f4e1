package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"myyeargroup/backend/internal/hub"
	"myyeargroup/backend/internal/models"
	"myyeargroup/backend/internal/store"
)

// NotificationService owns the per-user alert queue and pushes each new
// alert to the owner's open streams via the hub.
type NotificationService struct {
	store store.Store
	hub   *hub.Hub
	log   *zap.Logger
}

func NewNotificationService(s store.Store, h *hub.Hub, log *zap.Logger) *NotificationService {
	return &NotificationService{store: s, hub: h, log: log}
}

// Notify appends an unread notification for userID. The data payload is
// marshalled to JSON; a nil payload stores an empty one.
func (s *NotificationService) Notify(ctx context.Context, userID string, ntype models.NotificationType, title, message string, data any) (*models.Notification, error) {
	var raw datatypes.JSON
	if data != nil {
		b, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}
		raw = datatypes.JSON(b)
	}

	n := &models.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      ntype,
		Title:     title,
		Message:   message,
		Data:      raw,
		IsRead:    false,
		CreatedAt: time.Now(),
	}
	if err := s.store.Notifications().Create(ctx, n); err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Broadcast(userID, hub.Event{Type: "notification", Payload: n})
	}
	s.log.Debug("notification created",
		zap.String("user_id", userID),
		zap.String("type", string(ntype)))
	return n, nil
}

// NotifySuperadmins sends the same alert to every superadmin (the admin
// pool that reviews pending registrations).
func (s *NotificationService) NotifySuperadmins(ctx context.Context, ntype models.NotificationType, title, message string, data any) error {
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Role != models.RoleSuperadmin {
			continue
		}
		if _, err := s.Notify(ctx, u.ID, ntype, title, message, data); err != nil {
			return err
		}
	}
	return nil
}

// List returns a user's notifications, most recent first.
func (s *NotificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.store.Notifications().ByUser(ctx, userID)
}

// MarkRead flags a notification as read. It is idempotent and deliberately
// silent about unknown ids: marking something that is gone (or already
// read) is not a failure the caller can act on.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	n, err := s.store.Notifications().ByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	if n.IsRead {
		return nil
	}
	n.IsRead = true
	return s.store.Notifications().Update(ctx, n)
}

// MarkAllRead flags every unread notification of a user as read.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	list, err := s.store.Notifications().ByUser(ctx, userID)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].IsRead {
			continue
		}
		list[i].IsRead = true
		if err := s.store.Notifications().Update(ctx, &list[i]); err != nil {
			return err
		}
	}
	return nil
}

// ClearAll removes all notifications for a user.
func (s *NotificationService) ClearAll(ctx context.Context, userID string) error {
	return s.store.Notifications().DeleteByUser(ctx, userID)
}

// UnreadCount returns how many of a user's notifications are unread.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	list, err := s.store.Notifications().ByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range list {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

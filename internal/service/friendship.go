package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"myyeargroup/backend/internal/models"
	"myyeargroup/backend/internal/store"
)

// FriendshipService manages the symmetric friend graph. Relationships are
// stored directionally (requester -> recipient) but every query goes
// through the pair lookup, which checks both orderings.
type FriendshipService struct {
	store         store.Store
	notifications *NotificationService
	log           *zap.Logger
}

func NewFriendshipService(s store.Store, n *NotificationService, log *zap.Logger) *FriendshipService {
	return &FriendshipService{store: s, notifications: n, log: log}
}

// AreFriends reports whether a and b have an accepted friendship, in
// either direction. AreFriends(a, b) == AreFriends(b, a) always.
func (s *FriendshipService) AreFriends(ctx context.Context, a, b string) (bool, error) {
	f, err := s.store.Friendships().ByPair(ctx, a, b)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return f.Status == models.FriendshipAccepted, nil
}

// Relation returns the friendship status between two users, or nil when
// no relationship exists in either direction.
func (s *FriendshipService) Relation(ctx context.Context, a, b string) (*models.FriendshipStatus, error) {
	f, err := s.store.Friendships().ByPair(ctx, a, b)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &f.Status, nil
}

// SendRequest creates a pending friendship from the requester to toID and
// notifies the recipient. Any existing relationship between the pair —
// pending, accepted or blocked, in either direction — refuses a new request.
func (s *FriendshipService) SendRequest(ctx context.Context, from *models.User, toID string) (*models.Friendship, error) {
	if from.ID == toID {
		return nil, ErrSelfRequest
	}
	if _, err := s.store.Users().ByID(ctx, toID); err != nil {
		return nil, err
	}

	if _, err := s.store.Friendships().ByPair(ctx, from.ID, toID); err == nil {
		return nil, ErrAlreadyRequested
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	f := &models.Friendship{
		ID:          uuid.NewString(),
		UserID:      from.ID,
		FriendID:    toID,
		Status:      models.FriendshipPending,
		RequestedAt: time.Now(),
	}
	if err := s.store.Friendships().Create(ctx, f); err != nil {
		return nil, err
	}

	_, err := s.notifications.Notify(ctx, toID, models.NotificationFriendRequest,
		"New Friend Request",
		fmt.Sprintf("Dr. %s wants to connect with you", from.FullName()),
		map[string]string{"from_user_id": from.ID})
	if err != nil {
		s.log.Warn("friend request notification failed", zap.Error(err))
	}
	return f, nil
}

// Respond resolves a pending request. Accepting marks it accepted and
// stamps AcceptedAt; declining deletes the record outright — there is no
// declined state to revisit.
func (s *FriendshipService) Respond(ctx context.Context, friendshipID string, accept bool) (*models.Friendship, error) {
	f, err := s.store.Friendships().ByID(ctx, friendshipID)
	if err != nil {
		return nil, err
	}

	if !accept {
		if err := s.store.Friendships().Delete(ctx, f.ID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	now := time.Now()
	f.Status = models.FriendshipAccepted
	f.AcceptedAt = &now
	if err := s.store.Friendships().Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Block moves the relationship into the terminal blocked state.
func (s *FriendshipService) Block(ctx context.Context, friendshipID string) (*models.Friendship, error) {
	f, err := s.store.Friendships().ByID(ctx, friendshipID)
	if err != nil {
		return nil, err
	}
	f.Status = models.FriendshipBlocked
	if err := s.store.Friendships().Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// BlockUser blocks the relationship between the caller and userID, creating
// a blocked record when none exists between the pair.
func (s *FriendshipService) BlockUser(ctx context.Context, callerID, userID string) (*models.Friendship, error) {
	if callerID == userID {
		return nil, ErrSelfRequest
	}
	if _, err := s.store.Users().ByID(ctx, userID); err != nil {
		return nil, err
	}

	f, err := s.store.Friendships().ByPair(ctx, callerID, userID)
	if errors.Is(err, store.ErrNotFound) {
		f = &models.Friendship{
			ID:          uuid.NewString(),
			UserID:      callerID,
			FriendID:    userID,
			Status:      models.FriendshipBlocked,
			RequestedAt: time.Now(),
		}
		if err := s.store.Friendships().Create(ctx, f); err != nil {
			return nil, err
		}
		return f, nil
	}
	if err != nil {
		return nil, err
	}
	return s.Block(ctx, f.ID)
}

// PendingRequestFor returns the pending request between two users, used by
// the HTTP layer to resolve accept/decline calls addressed by user id.
func (s *FriendshipService) PendingRequestFor(ctx context.Context, requesterID, recipientID string) (*models.Friendship, error) {
	f, err := s.store.Friendships().ByPair(ctx, requesterID, recipientID)
	if err != nil {
		return nil, err
	}
	if f.Status != models.FriendshipPending || f.UserID != requesterID {
		return nil, store.ErrNotFound
	}
	return f, nil
}

// FriendsOf returns the users with an accepted friendship with userID.
func (s *FriendshipService) FriendsOf(ctx context.Context, userID string) ([]models.User, error) {
	relations, err := s.store.Friendships().ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var friends []models.User
	for _, f := range relations {
		if f.Status != models.FriendshipAccepted {
			continue
		}
		u, err := s.store.Users().ByID(ctx, f.OtherUser(userID))
		if err != nil {
			continue
		}
		friends = append(friends, *u)
	}
	return friends, nil
}

// IncomingRequests returns pending requests addressed to userID.
func (s *FriendshipService) IncomingRequests(ctx context.Context, userID string) ([]models.Friendship, error) {
	relations, err := s.store.Friendships().ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var pending []models.Friendship
	for _, f := range relations {
		if f.Status == models.FriendshipPending && f.FriendID == userID {
			pending = append(pending, f)
		}
	}
	return pending, nil
}

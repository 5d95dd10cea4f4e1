package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"myyeargroup/backend/internal/models"
	"myyeargroup/backend/internal/store"
)

// FeedService computes per-viewer feeds and owns post mutation (likes and
// comments). The like toggle serializes through a service mutex so the
// LikedBy set and LikesCount counter can never be observed out of sync.
type FeedService struct {
	store         store.Store
	friendships   *FriendshipService
	notifications *NotificationService
	log           *zap.Logger

	likeMu sync.Mutex
}

func NewFeedService(s store.Store, f *FriendshipService, n *NotificationService, log *zap.Logger) *FeedService {
	return &FeedService{store: s, friendships: f, notifications: n, log: log}
}

// Feed returns the posts the viewer is authorized to see, most recent
// first. A post is included when any of these holds:
//
//   - it is scoped to the viewer's own yeargroup (derived from the
//     viewer's school and graduation year);
//   - it is scoped to friends and the author is an accepted friend;
//   - it is public;
//   - the viewer wrote it, regardless of scope.
//
// The result is recomputed in full on every call. Ordering is descending
// CreatedAt with ties broken by insertion order.
func (s *FeedService) Feed(ctx context.Context, viewer *models.User) ([]models.Post, error) {
	posts, err := s.store.Posts().List(ctx)
	if err != nil {
		return nil, err
	}

	var viewerYeargroupID string
	yg, err := s.store.Yeargroups().BySchoolYear(ctx, viewer.MedicalSchoolID, viewer.GraduationYear)
	if err == nil {
		viewerYeargroupID = yg.ID
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	feed := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		visible, err := s.visibleTo(ctx, &p, viewer, viewerYeargroupID)
		if err != nil {
			return nil, err
		}
		if visible {
			feed = append(feed, p)
		}
	}

	// Posts arrive in insertion order; the stable sort keeps that order
	// for equal timestamps.
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})
	return feed, nil
}

func (s *FeedService) visibleTo(ctx context.Context, p *models.Post, viewer *models.User, viewerYeargroupID string) (bool, error) {
	if p.UserID == viewer.ID {
		return true, nil
	}
	switch p.Visibility {
	case models.VisibilityPublic:
		return true, nil
	case models.VisibilityYeargroup:
		return viewerYeargroupID != "" && p.YeargroupID == viewerYeargroupID, nil
	case models.VisibilityFriends:
		return s.friendships.AreFriends(ctx, viewer.ID, p.UserID)
	}
	return false, nil
}

// CreatePostInput carries the new-post form fields.
type CreatePostInput struct {
	Content      string
	Visibility   models.Visibility
	ImageURLs    []string
	DocumentURLs []string
}

// CreatePost publishes a post into the author's yeargroup.
func (s *FeedService) CreatePost(ctx context.Context, author *models.User, in CreatePostInput) (*models.Post, error) {
	yg, err := s.store.Yeargroups().BySchoolYear(ctx, author.MedicalSchoolID, author.GraduationYear)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrYeargroupNotFound
		}
		return nil, err
	}

	now := time.Now()
	post := &models.Post{
		ID:           uuid.NewString(),
		UserID:       author.ID,
		YeargroupID:  yg.ID,
		Content:      in.Content,
		Visibility:   in.Visibility,
		ImageURLs:    in.ImageURLs,
		DocumentURLs: in.DocumentURLs,
		LikedBy:      []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Posts().Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ToggleLike adds userID to the post's like set, or removes it if already
// present. LikedBy membership and LikesCount move in lockstep under one
// mutation; toggling twice restores the original state. Liking someone
// else's post notifies the author; unliking never does.
func (s *FeedService) ToggleLike(ctx context.Context, postID, userID string) (*models.Post, error) {
	s.likeMu.Lock()
	defer s.likeMu.Unlock()

	post, err := s.store.Posts().ByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	liked := false
	if post.LikedByUser(userID) {
		kept := post.LikedBy[:0]
		for _, id := range post.LikedBy {
			if id != userID {
				kept = append(kept, id)
			}
		}
		post.LikedBy = kept
		post.LikesCount--
	} else {
		post.LikedBy = append(post.LikedBy, userID)
		post.LikesCount++
		liked = true
	}
	post.UpdatedAt = time.Now()

	if err := s.store.Posts().Update(ctx, post); err != nil {
		return nil, err
	}

	if liked && post.UserID != userID {
		if liker, err := s.store.Users().ByID(ctx, userID); err == nil {
			_, nerr := s.notifications.Notify(ctx, post.UserID, models.NotificationPostLike,
				"Your post was liked",
				fmt.Sprintf("Dr. %s liked your post", liker.FullName()),
				map[string]string{"post_id": post.ID, "liked_by": userID})
			if nerr != nil {
				s.log.Warn("post like notification failed", zap.Error(nerr))
			}
		}
	}
	return post, nil
}

// AddComment appends a comment to a post and bumps the post's comment
// counter by exactly one. Commenting on someone else's post notifies the
// author.
func (s *FeedService) AddComment(ctx context.Context, postID, userID, content string) (*models.Comment, error) {
	post, err := s.store.Posts().ByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ID:        uuid.NewString(),
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := s.store.Comments().Create(ctx, comment); err != nil {
		return nil, err
	}

	post.CommentsCount++
	post.UpdatedAt = time.Now()
	if err := s.store.Posts().Update(ctx, post); err != nil {
		return nil, err
	}

	if post.UserID != userID {
		if author, err := s.store.Users().ByID(ctx, userID); err == nil {
			_, nerr := s.notifications.Notify(ctx, post.UserID, models.NotificationComment,
				"New comment on your post",
				fmt.Sprintf("Dr. %s commented on your post", author.FullName()),
				map[string]string{"post_id": post.ID, "comment_id": comment.ID})
			if nerr != nil {
				s.log.Warn("comment notification failed", zap.Error(nerr))
			}
		}
	}
	return comment, nil
}

// Comments returns a post's comments in the order they were written.
func (s *FeedService) Comments(ctx context.Context, postID string) ([]models.Comment, error) {
	if _, err := s.store.Posts().ByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.store.Comments().ByPost(ctx, postID)
}

// Post fetches a single post by id.
func (s *FeedService) Post(ctx context.Context, id string) (*models.Post, error) {
	return s.store.Posts().ByID(ctx, id)
}

// YeargroupPosts returns a yeargroup's posts, most recent first. Only
// yeargroup-scoped and public posts appear on the yeargroup page.
func (s *FeedService) YeargroupPosts(ctx context.Context, yeargroupID string) ([]models.Post, error) {
	posts, err := s.store.Posts().ByYeargroup(ctx, yeargroupID)
	if err != nil {
		return nil, err
	}
	filtered := posts[:0]
	for _, p := range posts {
		if p.Visibility != models.VisibilityFriends {
			filtered = append(filtered, p)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})
	return filtered, nil
}

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

type fixture struct {
	store         store.Store
	feed          *service.FeedService
	friendships   *service.FriendshipService
	notifications *service.NotificationService
}

func newFixture(t *testing.T, st store.Store) fixture {
	t.Helper()
	log := zap.NewNop()
	notifications := service.NewNotificationService(st, hub.NewHub(), log)
	friendships := service.NewFriendshipService(st, notifications, log)
	return fixture{
		store:         st,
		feed:          service.NewFeedService(st, friendships, notifications, log),
		friendships:   friendships,
		notifications: notifications,
	}
}

func postIDs(posts []models.Post) []string {
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}

func TestFeedVisibility(t *testing.T) {
	fx := newFixture(t, memory.NewSeeded())
	ctx := context.Background()

	// Sarah (u1) is in the Oxford 2018 yeargroup and friends with Emily
	// (u3), so she sees her own yeargroup post and Emily's friends-only
	// post, in reverse chronological order.
	u1, err := fx.store.Users().ByID(ctx, "u1")
	require.NoError(t, err)
	posts, err := fx.feed.Feed(ctx, u1)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, postIDs(posts))

	// Priya (u5) shares Sarah's yeargroup but has no accepted friends, so
	// the friends-only post stays hidden.
	u5, err := fx.store.Users().ByID(ctx, "u5")
	require.NoError(t, err)
	posts, err = fx.feed.Feed(ctx, u5)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, postIDs(posts))

	// The admin belongs to no seeded yeargroup and has no friends.
	admin, err := fx.store.Users().ByID(ctx, "admin1")
	require.NoError(t, err)
	posts, err = fx.feed.Feed(ctx, admin)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestFeedIncludesOwnAndPublicPosts(t *testing.T) {
	fx := newFixture(t, memory.NewSeeded())
	ctx := context.Background()

	u3, err := fx.store.Users().ByID(ctx, "u3")
	require.NoError(t, err)
	u5, err := fx.store.Users().ByID(ctx, "u5")
	require.NoError(t, err)

	// Authors always see their own posts, whatever the scope.
	posts, err := fx.feed.Feed(ctx, u3)
	require.NoError(t, err)
	assert.Contains(t, postIDs(posts), "p2")

	// A public post reaches members outside the author's yeargroup and
	// friend circle.
	public, err := fx.feed.CreatePost(ctx, u3, service.CreatePostInput{
		Content:    "Volunteers needed for the community health fair.",
		Visibility: models.VisibilityPublic,
	})
	require.NoError(t, err)

	posts, err = fx.feed.Feed(ctx, u5)
	require.NoError(t, err)
	assert.Contains(t, postIDs(posts), public.ID)
}

func TestFeedOrderingBreaksTiesByInsertion(t *testing.T) {
	st := memory.New()
	fx := newFixture(t, st)
	ctx := context.Background()

	viewer := models.User{
		ID: "v1", Email: "v1@nhs.uk", Role: models.RoleMember, Status: models.StatusApproved,
		MedicalSchoolID: "1", GraduationYear: 2018, EmailVerified: true,
	}
	seedUser(t, st, viewer)
	require.NoError(t, st.Yeargroups().Create(ctx, &models.Yeargroup{
		ID: "yg1", MedicalSchoolID: "1", GraduationYear: 2018, Name: "Class of 2018",
	}))

	older := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	for _, p := range []models.Post{
		{ID: "pa", UserID: "v1", YeargroupID: "yg1", Content: "a", Visibility: models.VisibilityYeargroup, CreatedAt: newer},
		{ID: "pb", UserID: "v1", YeargroupID: "yg1", Content: "b", Visibility: models.VisibilityYeargroup, CreatedAt: newer},
		{ID: "pc", UserID: "v1", YeargroupID: "yg1", Content: "c", Visibility: models.VisibilityYeargroup, CreatedAt: older},
	} {
		p := p
		require.NoError(t, st.Posts().Create(ctx, &p))
	}

	posts, err := fx.feed.Feed(ctx, &viewer)
	require.NoError(t, err)
	assert.Equal(t, []string{"pa", "pb", "pc"}, postIDs(posts))
}

func TestCreatePostRequiresYeargroup(t *testing.T) {
	fx := newFixture(t, memory.NewSeeded())
	ctx := context.Background()

	// The admin's school/year pair has no yeargroup.
	admin, err := fx.store.Users().ByID(ctx, "admin1")
	require.NoError(t, err)

	_, err = fx.feed.CreatePost(ctx, admin, service.CreatePostInput{Content: "hello"})
	assert.ErrorIs(t, err, service.ErrYeargroupNotFound)
}

func TestToggleLike(t *testing.T) {
	fx := newFixture(t, memory.NewSeeded())
	ctx := context.Background()

	requireLikeInvariant := func(p *models.Post) {
		t.Helper()
		require.Equal(t, p.LikesCount, len(p.LikedBy))
	}

	// u2 already likes p1; the toggle removes the like.
	post, err := fx.feed.ToggleLike(ctx, "p1", "u2")
	require.NoError(t, err)
	assert.Equal(t, 2, post.LikesCount)
	assert.False(t, post.LikedByUser("u2"))
	requireLikeInvariant(post)

	// Toggling again restores it.
	post, err = fx.feed.ToggleLike(ctx, "p1", "u2")
	require.NoError(t, err)
	assert.Equal(t, 3, post.LikesCount)
	assert.True(t, post.LikedByUser("u2"))
	requireLikeInvariant(post)

	_, err = fx.feed.ToggleLike(ctx, "no-such-post", "u2")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLikeNotifiesAuthorOnce(t *testing.T) {
	fx := newFixture(t, memory.NewSeeded())
	ctx := context.Background()

	before, err := fx.notifications.List(ctx, "u1")
	require.NoError(t, err)

	// A fresh like tells the author.
	_, err = fx.feed.ToggleLike(ctx, "p1", "u4")
	require.NoError(t, err)
	after, err := fx.notifications.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, models.NotificationPostLike, after[0].Type)

	// Removing the like is silent.
	_, err = fx.feed.ToggleLike(ctx, "p1", "u4")
	require.NoError(t, err)
	after, err = fx.notifications.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
}

func TestSelfLikeDoesNotNotify(t *testing.T) {
	fx := newFixture(t, memory.NewSeeded())
	ctx := context.Background()

	before, err := fx.notifications.List(ctx, "u1")
	require.NoError(t, err)

	_, err = fx.feed.ToggleLike(ctx, "p1", "u1")
	require.NoError(t, err)

	after, err := fx.notifications.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestAddComment(t *testing.T) {
	fx := newFixture(t, memory.NewSeeded())
	ctx := context.Background()

	comment, err := fx.feed.AddComment(ctx, "p3", "u5", "Well done Michael!")
	require.NoError(t, err)
	assert.Equal(t, "p3", comment.PostID)
	assert.Equal(t, "u5", comment.UserID)

	post, err := fx.feed.Post(ctx, "p3")
	require.NoError(t, err)
	assert.Equal(t, 2, post.CommentsCount)

	comments, err := fx.feed.Comments(ctx, "p3")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	// Comments stay in the order they were made.
	assert.Equal(t, comment.ID, comments[1].ID)

	// The author hears about the new comment.
	items, err := fx.notifications.List(ctx, "u2")
	require.NoError(t, err)
	require.NotEmpty(t, items)
	assert.Equal(t, models.NotificationComment, items[0].Type)
}

func TestYeargroupPostsExcludeFriendsScoped(t *testing.T) {
	fx := newFixture(t, memory.NewSeeded())
	ctx := context.Background()

	u3, err := fx.store.Users().ByID(ctx, "u3")
	require.NoError(t, err)

	// p2 is friends-scoped inside yg3; a yeargroup listing must not leak it.
	posts, err := fx.feed.YeargroupPosts(ctx, "yg3")
	require.NoError(t, err)
	assert.NotContains(t, postIDs(posts), "p2")

	open, err := fx.feed.CreatePost(ctx, u3, service.CreatePostInput{
		Content:    "Study group forming for the MRCPCH exam.",
		Visibility: models.VisibilityYeargroup,
	})
	require.NoError(t, err)

	posts, err = fx.feed.YeargroupPosts(ctx, "yg3")
	require.NoError(t, err)
	assert.Contains(t, postIDs(posts), open.ID)
}

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
	"myyeargroup/backend/internal/store/memory"
)

func TestNotifyPersistsAndPushes(t *testing.T) {
	st := memory.New()
	h := hub.NewHub()
	notifications := service.NewNotificationService(st, h, zap.NewNop())
	ctx := context.Background()

	client := make(hub.Client, 1)
	h.Subscribe("ux", client)
	defer h.Unsubscribe("ux", client)

	n, err := notifications.Notify(ctx, "ux", models.NotificationFriendRequest,
		"New Friend Request", "Dr. Jane Smith wants to connect with you",
		map[string]string{"from_user_id": "uy"})
	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)
	assert.False(t, n.IsRead)

	items, err := notifications.List(ctx, "ux")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, n.ID, items[0].ID)

	select {
	case msg := <-client:
		assert.Contains(t, string(msg), "notification")
		assert.Contains(t, string(msg), "New Friend Request")
	case <-time.After(time.Second):
		t.Fatal("no event pushed to the subscribed client")
	}
}

func TestMarkRead(t *testing.T) {
	st := memory.NewSeeded()
	notifications := service.NewNotificationService(st, hub.NewHub(), zap.NewNop())
	ctx := context.Background()

	count, err := notifications.UnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, notifications.MarkRead(ctx, "n1"))
	count, err = notifications.UnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Already-read and unknown ids both succeed without effect.
	require.NoError(t, notifications.MarkRead(ctx, "n1"))
	require.NoError(t, notifications.MarkRead(ctx, "no-such-notification"))
}

func TestMarkAllReadAndClear(t *testing.T) {
	st := memory.NewSeeded()
	h := hub.NewHub()
	notifications := service.NewNotificationService(st, h, zap.NewNop())
	ctx := context.Background()

	_, err := notifications.Notify(ctx, "u1", models.NotificationComment, "New comment", "Someone replied", nil)
	require.NoError(t, err)

	require.NoError(t, notifications.MarkAllRead(ctx, "u1"))
	count, err := notifications.UnreadCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// Clearing only touches the one user's inbox.
	require.NoError(t, notifications.ClearAll(ctx, "u1"))
	items, err := notifications.List(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = notifications.List(ctx, "admin1")
	require.NoError(t, err)
	assert.NotEmpty(t, items)
}

func TestListNewestFirst(t *testing.T) {
	st := memory.NewSeeded()
	notifications := service.NewNotificationService(st, hub.NewHub(), zap.NewNop())
	ctx := context.Background()

	items, err := notifications.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "n1", items[0].ID)
	assert.Equal(t, "n2", items[1].ID)
}

func TestNotifySuperadmins(t *testing.T) {
	st := memory.NewSeeded()
	notifications := service.NewNotificationService(st, hub.NewHub(), zap.NewNop())
	ctx := context.Background()

	before, err := notifications.List(ctx, "admin1")
	require.NoError(t, err)

	err = notifications.NotifySuperadmins(ctx, models.NotificationAdminApproval,
		"New Member Pending Approval", "Dr. Jane Smith (GMC1111111) has registered and needs approval", nil)
	require.NoError(t, err)

	after, err := notifications.List(ctx, "admin1")
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)

	// Ordinary members get nothing.
	items, err := notifications.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanAccess(t *testing.T) {
	cases := []struct {
		name   string
		role   Role
		status AccountStatus
		want   bool
	}{
		{"approved member", RoleMember, StatusApproved, true},
		{"pending member", RoleMember, StatusPending, false},
		{"rejected member", RoleMember, StatusRejected, false},
		{"suspended member", RoleMember, StatusSuspended, false},
		{"approved superadmin", RoleSuperadmin, StatusApproved, true},
		{"pending superadmin", RoleSuperadmin, StatusPending, true},
		{"suspended superadmin", RoleSuperadmin, StatusSuspended, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := User{Role: tc.role, Status: tc.status}
			assert.Equal(t, tc.want, u.CanAccess())
		})
	}
}

func TestFriendshipHelpers(t *testing.T) {
	f := Friendship{UserID: "a", FriendID: "b"}

	assert.True(t, f.Involves("a", "b"))
	assert.True(t, f.Involves("b", "a"))
	assert.False(t, f.Involves("a", "c"))

	assert.Equal(t, "b", f.OtherUser("a"))
	assert.Equal(t, "a", f.OtherUser("b"))
}

func TestJobOpen(t *testing.T) {
	deadline := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	j := Job{IsActive: true, ApplicationDeadline: deadline}

	assert.True(t, j.Open(deadline.Add(-time.Hour)))
	assert.False(t, j.Open(deadline))
	assert.False(t, j.Open(deadline.Add(time.Hour)))

	j.IsActive = false
	assert.False(t, j.Open(deadline.Add(-time.Hour)))
}

func TestPropertyAvailable(t *testing.T) {
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	p := Property{IsActive: true, AvailableFrom: from, AvailableTo: to}

	assert.False(t, p.Available(from.Add(-time.Hour)))
	assert.True(t, p.Available(from))
	assert.True(t, p.Available(from.Add(24*time.Hour)))
	assert.False(t, p.Available(to))
}

func TestEventAttendee(t *testing.T) {
	e := Event{Attendees: []EventAttendee{
		{UserID: "a", Status: RSVPAttending},
		{UserID: "b", Status: RSVPMaybe},
		{UserID: "c", Status: RSVPAttending},
	}}

	assert.Equal(t, 2, e.AttendingCount())
	assert.Nil(t, e.Attendee("missing"))
	if a := e.Attendee("b"); assert.NotNil(t, a) {
		assert.Equal(t, RSVPMaybe, a.Status)
	}
}

func TestPostLikedByUser(t *testing.T) {
	p := Post{LikedBy: []string{"a", "b"}}
	assert.True(t, p.LikedByUser("a"))
	assert.False(t, p.LikedByUser("c"))
}

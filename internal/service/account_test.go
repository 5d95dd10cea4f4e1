package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"myyeargroup/backend/internal/hub"
	"myyeargroup/backend/internal/models"
	"myyeargroup/backend/internal/service"
	"myyeargroup/backend/internal/store"
	"myyeargroup/backend/internal/store/memory"
)

func newAccounts(t *testing.T, st store.Store) (*service.AccountService, *service.NotificationService) {
	t.Helper()
	log := zap.NewNop()
	notifications := service.NewNotificationService(st, hub.NewHub(), log)
	return service.NewAccountService(st, notifications, log), notifications
}

func seedUser(t *testing.T, st store.Store, u models.User) {
	t.Helper()
	if u.PasswordHash == "" {
		h, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
		require.NoError(t, err)
		u.PasswordHash = string(h)
	}
	require.NoError(t, st.Users().Create(context.Background(), &u))
}

func TestAuthenticateSeededUser(t *testing.T) {
	st := memory.NewSeeded()
	accounts, _ := newAccounts(t, st)
	ctx := context.Background()

	before, err := st.Users().ByID(ctx, "u1")
	require.NoError(t, err)

	user, err := accounts.Authenticate(ctx, "sarah.johnson@nhs.uk", "password123")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.True(t, user.LastLogin.After(before.LastLogin))

	_, err = accounts.Authenticate(ctx, "sarah.johnson@nhs.uk", "wrong-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	_, err = accounts.Authenticate(ctx, "nobody@nhs.uk", "password123")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestAuthenticateCheckOrder(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		user     models.User
		wantErr  error
		wantUser bool
	}{
		{
			name:    "unverified email reported before suspension",
			user:    models.User{ID: "a1", Email: "a1@nhs.uk", Role: models.RoleMember, Status: models.StatusSuspended, EmailVerified: false},
			wantErr: service.ErrEmailUnverified,
		},
		{
			name:    "suspended",
			user:    models.User{ID: "a2", Email: "a2@nhs.uk", Role: models.RoleMember, Status: models.StatusSuspended, EmailVerified: true},
			wantErr: service.ErrAccountSuspended,
		},
		{
			name:    "rejected",
			user:    models.User{ID: "a3", Email: "a3@nhs.uk", Role: models.RoleMember, Status: models.StatusRejected, EmailVerified: true},
			wantErr: service.ErrRegistrationRejected,
		},
		{
			name:    "pending member",
			user:    models.User{ID: "a4", Email: "a4@nhs.uk", Role: models.RoleMember, Status: models.StatusPending, EmailVerified: true},
			wantErr: service.ErrPendingApproval,
		},
		{
			name:     "pending superadmin may log in",
			user:     models.User{ID: "a5", Email: "a5@nhs.uk", Role: models.RoleSuperadmin, Status: models.StatusPending, EmailVerified: true},
			wantUser: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := memory.New()
			accounts, _ := newAccounts(t, st)
			seedUser(t, st, tc.user)

			user, err := accounts.Authenticate(ctx, tc.user.Email, "password123")
			if tc.wantUser {
				require.NoError(t, err)
				assert.Equal(t, tc.user.ID, user.ID)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRegisterValidation(t *testing.T) {
	st := memory.NewSeeded()
	accounts, _ := newAccounts(t, st)
	ctx := context.Background()

	valid := service.RegisterInput{
		Email:           "jane.smith@nhs.uk",
		Password:        "password123",
		ConfirmPassword: "password123",
		FirstName:       "Jane",
		LastName:        "Smith",
		GMCNumber:       "GMC1111111",
		MedicalSchoolID: "1",
		GraduationYear:  2018,
		Specialty:       "Cardiology",
	}

	short := valid
	short.Password, short.ConfirmPassword = "short", "short"
	_, err := accounts.Register(ctx, short)
	assert.ErrorIs(t, err, service.ErrPasswordTooShort)

	mismatch := valid
	mismatch.ConfirmPassword = "password124"
	_, err = accounts.Register(ctx, mismatch)
	assert.ErrorIs(t, err, service.ErrPasswordMismatch)

	badGMC := valid
	badGMC.GMCNumber = "GMC1"
	_, err = accounts.Register(ctx, badGMC)
	assert.ErrorIs(t, err, service.ErrInvalidGMCNumber)

	dupEmail := valid
	dupEmail.Email = "sarah.johnson@nhs.uk"
	_, err = accounts.Register(ctx, dupEmail)
	assert.ErrorIs(t, err, service.ErrDuplicateAccount)

	dupGMC := valid
	dupGMC.GMCNumber = "GMC7891234"
	_, err = accounts.Register(ctx, dupGMC)
	assert.ErrorIs(t, err, service.ErrDuplicateAccount)

	// None of the failures above created an account.
	users, err := st.Users().List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 6)
}

func TestRegisterCreatesPendingAccount(t *testing.T) {
	st := memory.NewSeeded()
	accounts, notifications := newAccounts(t, st)
	ctx := context.Background()

	user, err := accounts.Register(ctx, service.RegisterInput{
		Email:           "jane.smith@nhs.uk",
		Password:        "password123",
		ConfirmPassword: "password123",
		FirstName:       "Jane",
		LastName:        "Smith",
		GMCNumber:       "GMC1111111",
		MedicalSchoolID: "1",
		GraduationYear:  2018,
		Specialty:       "Cardiology",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, user.Status)
	assert.Equal(t, models.RoleMember, user.Role)
	assert.False(t, user.CanAccess())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
	assert.NotEqual(t, "password123", user.PasswordHash)

	// The admin pool was told there is a registration waiting.
	items, err := notifications.List(ctx, "admin1")
	require.NoError(t, err)
	require.NotEmpty(t, items)
	assert.Equal(t, models.NotificationAdminApproval, items[0].Type)
	assert.Contains(t, items[0].Message, "Jane Smith")
}

func TestApprovalLifecycle(t *testing.T) {
	st := memory.NewSeeded()
	accounts, _ := newAccounts(t, st)
	ctx := context.Background()

	// u4 is the seeded pending member.
	user, err := accounts.Approve(ctx, "u4", "admin1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, user.Status)
	require.NotNil(t, user.ApprovedAt)
	require.NotNil(t, user.ApprovedBy)
	assert.Equal(t, "admin1", *user.ApprovedBy)
	assert.True(t, user.CanAccess())
	firstApproval := *user.ApprovedAt

	// Approving an approved account changes nothing.
	user, err = accounts.Approve(ctx, "u4", "admin1")
	require.NoError(t, err)
	assert.Equal(t, firstApproval, *user.ApprovedAt)

	user, err = accounts.Suspend(ctx, "u4")
	require.NoError(t, err)
	assert.Equal(t, models.StatusSuspended, user.Status)
	assert.False(t, user.CanAccess())

	// Suspending twice is harmless.
	_, err = accounts.Suspend(ctx, "u4")
	require.NoError(t, err)

	// Reactivation restores access without touching the approval record.
	user, err = accounts.Reactivate(ctx, "u4")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, user.Status)
	assert.Equal(t, firstApproval, *user.ApprovedAt)
	assert.True(t, user.CanAccess())
}

func TestInvalidTransitions(t *testing.T) {
	st := memory.NewSeeded()
	accounts, _ := newAccounts(t, st)
	ctx := context.Background()

	// Suspension only applies to approved accounts.
	_, err := accounts.Suspend(ctx, "u4")
	assert.ErrorIs(t, err, service.ErrInvalidTransition)

	// Reactivation only applies to suspended accounts.
	_, err = accounts.Reactivate(ctx, "u4")
	assert.ErrorIs(t, err, service.ErrInvalidTransition)

	// Rejection is terminal.
	user, err := accounts.Reject(ctx, "u4")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, user.Status)

	_, err = accounts.Approve(ctx, "u4", "admin1")
	assert.ErrorIs(t, err, service.ErrInvalidTransition)

	// Re-rejecting stays rejected without error.
	user, err = accounts.Reject(ctx, "u4")
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, user.Status)
}

func TestUpdateProfilePartial(t *testing.T) {
	st := memory.NewSeeded()
	accounts, _ := newAccounts(t, st)
	ctx := context.Background()

	bio := "Now leading the cath lab."
	user, err := accounts.UpdateProfile(ctx, "u1", service.ProfileUpdate{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, bio, user.Bio)
	assert.Equal(t, "Sarah", user.FirstName)
	assert.Equal(t, "Cardiology", user.Specialty)
}

func TestStats(t *testing.T) {
	st := memory.NewSeeded()
	accounts, _ := newAccounts(t, st)
	ctx := context.Background()

	stats, err := accounts.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 6, stats.TotalUsers)
	assert.Equal(t, 1, stats.PendingApprovals)
	// The superadmin is approved but not counted as an approved member.
	assert.Equal(t, 4, stats.ApprovedUsers)
	assert.Equal(t, 0, stats.RejectedUsers)
	assert.Equal(t, 0, stats.SuspendedUsers)
	assert.Equal(t, 3, stats.TotalYeargroups)

	_, err = accounts.Suspend(ctx, "u1")
	require.NoError(t, err)

	stats, err = accounts.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.ApprovedUsers)
	assert.Equal(t, 1, stats.SuspendedUsers)
}

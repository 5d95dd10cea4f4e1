package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"myyeargroup/backend/internal/models"
	"myyeargroup/backend/internal/store"
)

const minPasswordLength = 8

// GMC references are at least seven characters ("GMC" plus a number).
const minGMCLength = 7

// AccountService owns the registration and approval lifecycle: a user is
// created pending, an admin approves, rejects or later suspends them, and
// the CanAccess predicate derived from that state gates the application.
type AccountService struct {
	store         store.Store
	notifications *NotificationService
	log           *zap.Logger
}

func NewAccountService(s store.Store, n *NotificationService, log *zap.Logger) *AccountService {
	return &AccountService{store: s, notifications: n, log: log}
}

// Authenticate verifies credentials and the account state. The checks run
// in a fixed order — existence, email verification, suspension, rejection,
// pending — so the caller always gets the most precise failure first.
// On success LastLogin is updated and the fresh record returned.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.store.Users().ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, ErrEmailUnverified
	}
	if user.Status == models.StatusSuspended {
		return nil, ErrAccountSuspended
	}
	if user.Status == models.StatusRejected {
		return nil, ErrRegistrationRejected
	}
	if user.Status == models.StatusPending && user.Role != models.RoleSuperadmin {
		return nil, ErrPendingApproval
	}

	user.LastLogin = time.Now()
	if err := s.store.Users().Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user authenticated", zap.String("user_id", user.ID))
	return user, nil
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	GMCNumber       string
	MedicalSchoolID string
	GraduationYear  int
	Specialty       string
	CurrentPosition string
	Location        string
}

// Register creates a pending member account and alerts the superadmin pool
// that a registration is waiting for review. Email and GMC number must both
// be unused; a clash on either one is the same DuplicateAccount failure.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if len(in.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if len(in.GMCNumber) < minGMCLength {
		return nil, ErrInvalidGMCNumber
	}

	if _, err := s.store.Users().ByEmailOrGMC(ctx, in.Email, in.GMCNumber); err == nil {
		return nil, ErrDuplicateAccount
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:              uuid.NewString(),
		Email:           in.Email,
		PasswordHash:    string(hashed),
		Role:            models.RoleMember,
		Status:          models.StatusPending,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		GMCNumber:       in.GMCNumber,
		MedicalSchoolID: in.MedicalSchoolID,
		GraduationYear:  in.GraduationYear,
		Specialty:       in.Specialty,
		CurrentPosition: in.CurrentPosition,
		Location:        in.Location,
		ProfileImageURL: fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", in.FirstName),
		EmailVerified:   false,
		CreatedAt:       now,
		LastLogin:       now,
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, err
	}

	err = s.notifications.NotifySuperadmins(ctx, models.NotificationAdminApproval,
		"New Member Pending Approval",
		fmt.Sprintf("%s (%s) has registered and needs approval", user.FullName(), user.GMCNumber),
		map[string]string{"user_id": user.ID})
	if err != nil {
		s.log.Warn("admin approval notification failed", zap.Error(err))
	}

	s.log.Info("user registered", zap.String("user_id", user.ID), zap.String("email", user.Email))
	return user, nil
}

// VerifyEmail marks the user's email address as confirmed. Idempotent.
func (s *AccountService) VerifyEmail(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.store.Users().ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.EmailVerified {
		return user, nil
	}
	user.EmailVerified = true
	if err := s.store.Users().Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Approve moves a pending or suspended user to approved and records who
// approved them and when. Re-approving an approved user is a no-op and
// leaves ApprovedAt/ApprovedBy untouched.
func (s *AccountService) Approve(ctx context.Context, userID, approverID string) (*models.User, error) {
	user, err := s.store.Users().ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Status == models.StatusApproved {
		return user, nil
	}
	if user.Status != models.StatusPending && user.Status != models.StatusSuspended {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	user.Status = models.StatusApproved
	user.ApprovedAt = &now
	user.ApprovedBy = &approverID
	if err := s.store.Users().Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user approved", zap.String("user_id", userID), zap.String("approved_by", approverID))
	return user, nil
}

// Reject turns down a registration. Rejection is terminal: there is no
// path back to pending or approved. By convention this applies to pending
// users; the transition itself is not hard-blocked from other states.
func (s *AccountService) Reject(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.store.Users().ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Status == models.StatusRejected {
		return user, nil
	}

	user.Status = models.StatusRejected
	if err := s.store.Users().Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user rejected", zap.String("user_id", userID))
	return user, nil
}

// Suspend disables an approved account.
func (s *AccountService) Suspend(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.store.Users().ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Status == models.StatusSuspended {
		return user, nil
	}
	if user.Status != models.StatusApproved {
		return nil, ErrInvalidTransition
	}

	user.Status = models.StatusSuspended
	if err := s.store.Users().Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user suspended", zap.String("user_id", userID))
	return user, nil
}

// Reactivate restores a suspended account to approved. Unlike Approve it
// does not reset ApprovedAt/ApprovedBy — the original approval stands.
func (s *AccountService) Reactivate(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.store.Users().ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Status == models.StatusApproved {
		return user, nil
	}
	if user.Status != models.StatusSuspended {
		return nil, ErrInvalidTransition
	}

	user.Status = models.StatusApproved
	if err := s.store.Users().Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user reactivated", zap.String("user_id", userID))
	return user, nil
}

// ProfileUpdate carries the editable profile fields. Nil pointers leave
// the current value in place.
type ProfileUpdate struct {
	FirstName       *string
	LastName        *string
	Specialty       *string
	CurrentPosition *string
	Location        *string
	Bio             *string
	ProfileImageURL *string
}

// UpdateProfile applies a partial profile edit to the user's record.
func (s *AccountService) UpdateProfile(ctx context.Context, userID string, in ProfileUpdate) (*models.User, error) {
	user, err := s.store.Users().ByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&user.FirstName, in.FirstName)
	apply(&user.LastName, in.LastName)
	apply(&user.Specialty, in.Specialty)
	apply(&user.CurrentPosition, in.CurrentPosition)
	apply(&user.Location, in.Location)
	apply(&user.Bio, in.Bio)
	apply(&user.ProfileImageURL, in.ProfileImageURL)

	if err := s.store.Users().Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Stats is the admin dashboard view of the user table, recomputed from the
// current records on every call.
type Stats struct {
	TotalUsers       int `json:"total_users"`
	PendingApprovals int `json:"pending_approvals"`
	ApprovedUsers    int `json:"approved_users"`
	RejectedUsers    int `json:"rejected_users"`
	SuspendedUsers   int `json:"suspended_users"`
	TotalYeargroups  int `json:"total_yeargroups"`
}

// Stats counts users by status. Approved superadmins are not counted as
// approved members.
func (s *AccountService) Stats(ctx context.Context) (Stats, error) {
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return Stats{}, err
	}
	yeargroups, err := s.store.Yeargroups().List(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{TotalUsers: len(users), TotalYeargroups: len(yeargroups)}
	for _, u := range users {
		switch u.Status {
		case models.StatusPending:
			stats.PendingApprovals++
		case models.StatusApproved:
			if u.Role != models.RoleSuperadmin {
				stats.ApprovedUsers++
			}
		case models.StatusRejected:
			stats.RejectedUsers++
		case models.StatusSuspended:
			stats.SuspendedUsers++
		}
	}
	return stats, nil
}

// User fetches a user by id.
func (s *AccountService) User(ctx context.Context, id string) (*models.User, error) {
	return s.store.Users().ByID(ctx, id)
}

// Users returns all users (admin listing).
func (s *AccountService) Users(ctx context.Context) ([]models.User, error) {
	return s.store.Users().List(ctx)
}

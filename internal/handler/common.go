package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"myyeargroup/backend/internal/models"
	"myyeargroup/backend/internal/service"
	"myyeargroup/backend/internal/store"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// PublicUserResponse defines the structure for a user's public profile.
type PublicUserResponse struct {
	ID              string                   `json:"id"`
	FirstName       string                   `json:"first_name"`
	LastName        string                   `json:"last_name"`
	Specialty       string                   `json:"specialty"`
	CurrentPosition string                   `json:"current_position"`
	Location        string                   `json:"location"`
	Bio             string                   `json:"bio"`
	ProfileImageURL string                   `json:"profile_image_url"`
	GraduationYear  int                      `json:"graduation_year"`
	MedicalSchoolID string                   `json:"medical_school_id"`
	RelationStatus  *models.FriendshipStatus `json:"relation_status,omitempty"`
}

// PrivateUserResponse defines the structure for the authenticated user's own profile.
type PrivateUserResponse struct {
	ID              string               `json:"id"`
	Email           string               `json:"email"`
	Role            models.Role          `json:"role"`
	Status          models.AccountStatus `json:"status"`
	FirstName       string               `json:"first_name"`
	LastName        string               `json:"last_name"`
	GMCNumber       string               `json:"gmc_number"`
	MedicalSchoolID string               `json:"medical_school_id"`
	GraduationYear  int                  `json:"graduation_year"`
	Specialty       string               `json:"specialty"`
	CurrentPosition string               `json:"current_position"`
	Location        string               `json:"location"`
	Bio             string               `json:"bio"`
	ProfileImageURL string               `json:"profile_image_url"`
	EmailVerified   bool                 `json:"email_verified"`
	LastLogin       time.Time            `json:"last_login"`
	CreatedAt       time.Time            `json:"created_at"`
}

func newPublicUserResponse(u models.User) PublicUserResponse {
	return PublicUserResponse{
		ID:              u.ID,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Specialty:       u.Specialty,
		CurrentPosition: u.CurrentPosition,
		Location:        u.Location,
		Bio:             u.Bio,
		ProfileImageURL: u.ProfileImageURL,
		GraduationYear:  u.GraduationYear,
		MedicalSchoolID: u.MedicalSchoolID,
	}
}

func newPrivateUserResponse(u models.User) PrivateUserResponse {
	return PrivateUserResponse{
		ID:              u.ID,
		Email:           u.Email,
		Role:            u.Role,
		Status:          u.Status,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		GMCNumber:       u.GMCNumber,
		MedicalSchoolID: u.MedicalSchoolID,
		GraduationYear:  u.GraduationYear,
		Specialty:       u.Specialty,
		CurrentPosition: u.CurrentPosition,
		Location:        u.Location,
		Bio:             u.Bio,
		ProfileImageURL: u.ProfileImageURL,
		EmailVerified:   u.EmailVerified,
		LastLogin:       u.LastLogin,
		CreatedAt:       u.CreatedAt,
	}
}

// currentUserID returns the authenticated user id set by AuthMiddleware.
func currentUserID(c *gin.Context) string {
	v, _ := c.Get("userID")
	id, _ := v.(string)
	return id
}

// currentUser returns the user record loaded by the gate middleware, if present.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get("currentUser")
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}

// respondError maps a service error to its HTTP status and user-facing
// message. Every business-rule failure has one distinct message; callers
// stay in their prior state on any failure path.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, service.ErrEmailUnverified):
		c.JSON(http.StatusForbidden, gin.H{"error": "Please verify your email first"})
	case errors.Is(err, service.ErrAccountSuspended):
		c.JSON(http.StatusForbidden, gin.H{"error": "Your account has been suspended"})
	case errors.Is(err, service.ErrRegistrationRejected):
		c.JSON(http.StatusForbidden, gin.H{"error": "Your registration was not approved"})
	case errors.Is(err, service.ErrPendingApproval):
		c.JSON(http.StatusForbidden, gin.H{"error": "Your account is pending approval"})
	case errors.Is(err, service.ErrDuplicateAccount):
		c.JSON(http.StatusConflict, gin.H{"error": "User already exists with this email or GMC number"})
	case errors.Is(err, service.ErrPasswordMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
	case errors.Is(err, service.ErrPasswordTooShort):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters"})
	case errors.Is(err, service.ErrInvalidGMCNumber):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter a valid GMC number"})
	case errors.Is(err, service.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Invalid account status transition"})
	case errors.Is(err, service.ErrAlreadyRequested):
		c.JSON(http.StatusConflict, gin.H{"error": "A friend request already exists between these users"})
	case errors.Is(err, service.ErrSelfRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot send request to yourself"})
	case errors.Is(err, service.ErrYeargroupNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No yeargroup found for your school and graduation year"})
	case errors.Is(err, service.ErrRSVPClosed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "The RSVP deadline has passed"})
	case errors.Is(err, service.ErrEventFull):
		c.JSON(http.StatusConflict, gin.H{"error": "Event is full"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner can modify this listing"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

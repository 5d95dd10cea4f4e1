package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"myyeargroup/backend/internal/service"
)

// UserHandler serves member profiles and the member directory.
type UserHandler struct {
	accounts    *service.AccountService
	friendships *service.FriendshipService
}

func NewUserHandler(accounts *service.AccountService, friendships *service.FriendshipService) *UserHandler {
	return &UserHandler{accounts: accounts, friendships: friendships}
}

// UpdateProfileInput defines the editable profile fields; omitted fields are unchanged.
type UpdateProfileInput struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	Specialty       *string `json:"specialty"`
	CurrentPosition *string `json:"current_position"`
	Location        *string `json:"location"`
	Bio             *string `json:"bio"`
	ProfileImageURL *string `json:"profile_image_url"`
}

// GetMe godoc
// @Summary      Get current user's info
// @Description  Retrieves the private profile for the currently authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PrivateUserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	user, err := h.accounts.User(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPrivateUserResponse(*user))
}

// UpdateMe godoc
// @Summary      Update current user's profile
// @Description  Applies a partial edit to the authenticated user's profile.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body UpdateProfileInput true "Profile fields to change"
// @Success      200  {object}  PrivateUserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.accounts.UpdateProfile(c.Request.Context(), currentUserID(c), service.ProfileUpdate{
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Specialty:       input.Specialty,
		CurrentPosition: input.CurrentPosition,
		Location:        input.Location,
		Bio:             input.Bio,
		ProfileImageURL: input.ProfileImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPrivateUserResponse(*user))
}

// GetUserByID godoc
// @Summary      Get user by ID
// @Description  Retrieves the public profile for a specific user, including the relationship to the viewer.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  PublicUserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	viewerID := currentUserID(c)
	targetID := c.Param("id")

	if viewerID == targetID {
		h.GetMe(c)
		return
	}

	target, err := h.accounts.User(c.Request.Context(), targetID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := newPublicUserResponse(*target)
	if status, err := h.friendships.Relation(c.Request.Context(), viewerID, targetID); err == nil {
		resp.RelationStatus = status
	}
	c.JSON(http.StatusOK, resp)
}

// SearchUsers godoc
// @Summary      Search the member directory
// @Description  Searches approved members by name or specialty, with pagination.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        q     query     string  false  "Search query"
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(10)
// @Success      200   {object}  PaginatedResponse[PublicUserResponse]
// @Failure      401   {object}  ErrorResponse
// @Router       /users [get]
func (h *UserHandler) SearchUsers(c *gin.Context) {
	viewerID := currentUserID(c)
	query := strings.ToLower(c.Query("q"))
	page, limit := pageParams(c)

	users, err := h.accounts.Users(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	results := []PublicUserResponse{}
	for _, u := range users {
		// Only approved members appear in the directory, and never the viewer.
		if !u.CanAccess() || u.ID == viewerID {
			continue
		}
		if query != "" && !matchesQuery(u.FullName(), u.Specialty, u.Location, query) {
			continue
		}
		results = append(results, newPublicUserResponse(u))
	}

	c.JSON(http.StatusOK, Paginate(results, page, limit))
}

func matchesQuery(fields ...string) bool {
	query := fields[len(fields)-1]
	for _, f := range fields[:len(fields)-1] {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

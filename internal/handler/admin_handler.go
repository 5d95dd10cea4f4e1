package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myyeargroup/backend/internal/models"
	"myyeargroup/backend/internal/service"
)

// AdminHandler serves the superadmin approval queue and platform stats.
type AdminHandler struct {
	accounts *service.AccountService
}

func NewAdminHandler(accounts *service.AccountService) *AdminHandler {
	return &AdminHandler{accounts: accounts}
}

// ListUsers godoc
// @Summary      List users
// @Description  Returns every member account, optionally filtered by status.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Filter by account status"  Enums(pending, approved, rejected, suspended)
// @Param        page    query     int     false  "Page number" default(1)
// @Param        limit   query     int     false  "Items per page" default(10)
// @Success      200  {object}  PaginatedResponse[PrivateUserResponse]
// @Failure      403  {object}  ErrorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	status := models.AccountStatus(c.Query("status"))
	page, limit := pageParams(c)

	users, err := h.accounts.Users(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	results := []PrivateUserResponse{}
	for _, u := range users {
		if u.Role != models.RoleMember {
			continue
		}
		if status != "" && u.Status != status {
			continue
		}
		results = append(results, newPrivateUserResponse(u))
	}
	c.JSON(http.StatusOK, Paginate(results, page, limit))
}

// GetStats godoc
// @Summary      Get platform stats
// @Description  Returns member counts by status and the total number of yeargroups.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.Stats
// @Failure      403  {object}  ErrorResponse
// @Router       /admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.accounts.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ApproveUser godoc
// @Summary      Approve a registration
// @Description  Moves a pending or suspended account to approved and stamps who approved it. Approving an approved account succeeds without effect.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  PrivateUserResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /admin/users/{id}/approve [post]
func (h *AdminHandler) ApproveUser(c *gin.Context) {
	user, err := h.accounts.Approve(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPrivateUserResponse(*user))
}

// RejectUser godoc
// @Summary      Reject a registration
// @Description  Moves the account to the terminal rejected state.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  PrivateUserResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /admin/users/{id}/reject [post]
func (h *AdminHandler) RejectUser(c *gin.Context) {
	user, err := h.accounts.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPrivateUserResponse(*user))
}

// SuspendUser godoc
// @Summary      Suspend an account
// @Description  Moves an approved account to suspended. Suspending twice succeeds without effect.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  PrivateUserResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /admin/users/{id}/suspend [post]
func (h *AdminHandler) SuspendUser(c *gin.Context) {
	user, err := h.accounts.Suspend(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPrivateUserResponse(*user))
}

// ReactivateUser godoc
// @Summary      Reactivate a suspended account
// @Description  Returns a suspended account to approved. The original approval record is left untouched.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  PrivateUserResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /admin/users/{id}/reactivate [post]
func (h *AdminHandler) ReactivateUser(c *gin.Context) {
	user, err := h.accounts.Reactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPrivateUserResponse(*user))
}

// VerifyUserEmail godoc
// @Summary      Mark a user's email as verified
// @Description  Administrative override for members who cannot complete verification.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  PrivateUserResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /admin/users/{id}/verify-email [post]
func (h *AdminHandler) VerifyUserEmail(c *gin.Context) {
	user, err := h.accounts.VerifyEmail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPrivateUserResponse(*user))
}

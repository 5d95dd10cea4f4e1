package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myyeargroup/backend/internal/models"
	"myyeargroup/backend/internal/service"
	"myyeargroup/backend/internal/store"
)

// YeargroupHandler serves yeargroup listings, membership and scoped posts.
type YeargroupHandler struct {
	store store.Store
	feed  *service.FeedService
}

func NewYeargroupHandler(s store.Store, feed *service.FeedService) *YeargroupHandler {
	return &YeargroupHandler{store: s, feed: feed}
}

// ListYeargroups godoc
// @Summary      List yeargroups
// @Description  Returns every yeargroup known to the platform.
// @Tags         yeargroups
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Yeargroup
// @Failure      401  {object}  ErrorResponse
// @Router       /yeargroups [get]
func (h *YeargroupHandler) ListYeargroups(c *gin.Context) {
	groups, err := h.store.Yeargroups().List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GetYeargroup godoc
// @Summary      Get a yeargroup
// @Tags         yeargroups
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Yeargroup ID"
// @Success      200  {object}  models.Yeargroup
// @Failure      404  {object}  ErrorResponse
// @Router       /yeargroups/{id} [get]
func (h *YeargroupHandler) GetYeargroup(c *gin.Context) {
	yg, err := h.store.Yeargroups().ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, yg)
}

// ListMembers godoc
// @Summary      List a yeargroup's members
// @Description  Returns the approved members whose school and graduation year match the yeargroup.
// @Tags         yeargroups
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Yeargroup ID"
// @Success      200  {array}   PublicUserResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /yeargroups/{id}/members [get]
func (h *YeargroupHandler) ListMembers(c *gin.Context) {
	yg, err := h.store.Yeargroups().ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	users, err := h.store.Users().List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	members := []PublicUserResponse{}
	for _, u := range users {
		if u.Role != models.RoleMember || !u.CanAccess() {
			continue
		}
		if u.MedicalSchoolID == yg.MedicalSchoolID && u.GraduationYear == yg.GraduationYear {
			members = append(members, newPublicUserResponse(u))
		}
	}
	c.JSON(http.StatusOK, members)
}

// ListPosts godoc
// @Summary      List a yeargroup's posts
// @Description  Returns the yeargroup's posts, newest first. Friends-only posts are not included.
// @Tags         yeargroups
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Yeargroup ID"
// @Success      200  {array}   models.Post
// @Failure      404  {object}  ErrorResponse
// @Router       /yeargroups/{id}/posts [get]
func (h *YeargroupHandler) ListPosts(c *gin.Context) {
	if _, err := h.store.Yeargroups().ByID(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	posts, err := h.feed.YeargroupPosts(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

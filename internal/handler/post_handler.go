package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myyeargroup/backend/internal/models"
	"myyeargroup/backend/internal/service"
)

// PostHandler serves the feed and post interactions.
type PostHandler struct {
	feed     *service.FeedService
	accounts *service.AccountService
}

func NewPostHandler(feed *service.FeedService, accounts *service.AccountService) *PostHandler {
	return &PostHandler{feed: feed, accounts: accounts}
}

// CreatePostRequest defines the payload for publishing a post.
type CreatePostRequest struct {
	Content      string   `json:"content" binding:"required" example:"Great to see everyone at the reunion!"`
	Visibility   string   `json:"visibility" binding:"omitempty,oneof=yeargroup friends public"`
	ImageURLs    []string `json:"image_urls"`
	DocumentURLs []string `json:"document_urls"`
}

// CommentRequest defines the payload for commenting on a post.
type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// PostResponse is a feed item together with its author's public profile
// and whether the viewer has liked it.
type PostResponse struct {
	models.Post
	Author *PublicUserResponse `json:"author,omitempty"`
	Liked  bool                `json:"liked"`
}

// CommentResponse is a comment together with its author's public profile.
type CommentResponse struct {
	models.Comment
	Author *PublicUserResponse `json:"author,omitempty"`
}

func (h *PostHandler) postResponse(c *gin.Context, p models.Post, viewerID string) PostResponse {
	resp := PostResponse{Post: p, Liked: p.LikedByUser(viewerID)}
	if author, err := h.accounts.User(c.Request.Context(), p.UserID); err == nil {
		pub := newPublicUserResponse(*author)
		resp.Author = &pub
	}
	return resp
}

// GetFeed godoc
// @Summary      Get the personalised feed
// @Description  Returns the posts visible to the authenticated user, newest first.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   PostResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Router       /feed [get]
func (h *PostHandler) GetFeed(c *gin.Context) {
	viewer := currentUser(c)
	if viewer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	posts, err := h.feed.Feed(c.Request.Context(), viewer)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := []PostResponse{}
	for _, p := range posts {
		resp = append(resp, h.postResponse(c, p, viewer.ID))
	}
	c.JSON(http.StatusOK, resp)
}

// CreatePost godoc
// @Summary      Create a post
// @Description  Publishes a post into the authenticated user's yeargroup.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CreatePostRequest true "Post content"
// @Success      201  {object}  PostResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	author := currentUser(c)
	if author == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visibility := models.Visibility(input.Visibility)
	if visibility == "" {
		visibility = models.VisibilityYeargroup
	}

	post, err := h.feed.CreatePost(c.Request.Context(), author, service.CreatePostInput{
		Content:      input.Content,
		Visibility:   visibility,
		ImageURLs:    input.ImageURLs,
		DocumentURLs: input.DocumentURLs,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.postResponse(c, *post, author.ID))
}

// ToggleLike godoc
// @Summary      Toggle a like on a post
// @Description  Likes the post if the user has not liked it, removes the like otherwise.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  PostResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /posts/{id}/like [post]
func (h *PostHandler) ToggleLike(c *gin.Context) {
	viewerID := currentUserID(c)

	post, err := h.feed.ToggleLike(c.Request.Context(), c.Param("id"), viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.postResponse(c, *post, viewerID))
}

// ListComments godoc
// @Summary      List a post's comments
// @Description  Returns the post's comments in the order they were added.
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {array}   CommentResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /posts/{id}/comments [get]
func (h *PostHandler) ListComments(c *gin.Context) {
	comments, err := h.feed.Comments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := []CommentResponse{}
	for _, cm := range comments {
		item := CommentResponse{Comment: cm}
		if author, err := h.accounts.User(c.Request.Context(), cm.UserID); err == nil {
			pub := newPublicUserResponse(*author)
			item.Author = &pub
		}
		resp = append(resp, item)
	}
	c.JSON(http.StatusOK, resp)
}

// AddComment godoc
// @Summary      Comment on a post
// @Description  Appends a comment to the post and bumps its comment counter.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string          true  "Post ID"
// @Param        input body  CommentRequest  true  "Comment content"
// @Success      201  {object}  CommentResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /posts/{id}/comments [post]
func (h *PostHandler) AddComment(c *gin.Context) {
	var input CommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.feed.AddComment(c.Request.Context(), c.Param("id"), currentUserID(c), input.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := CommentResponse{Comment: *comment}
	if author, err := h.accounts.User(c.Request.Context(), comment.UserID); err == nil {
		pub := newPublicUserResponse(*author)
		resp.Author = &pub
	}
	c.JSON(http.StatusCreated, resp)
}

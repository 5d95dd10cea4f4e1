package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"myyeargroup/backend/internal/service"
)

// FriendshipHandler serves friend requests and the friend list.
type FriendshipHandler struct {
	friendships *service.FriendshipService
	accounts    *service.AccountService
}

func NewFriendshipHandler(friendships *service.FriendshipService, accounts *service.AccountService) *FriendshipHandler {
	return &FriendshipHandler{friendships: friendships, accounts: accounts}
}

// FriendRequestResponse describes a pending incoming request together with
// the requester's public profile.
type FriendRequestResponse struct {
	ID          string             `json:"id"`
	Requester   PublicUserResponse `json:"requester"`
	RequestedAt time.Time          `json:"requested_at"`
}

// SendRequest godoc
// @Summary      Send a friend request
// @Description  Sends a friend request to another member. Refused when any relationship already exists between the pair.
// @Tags         friendships
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Recipient user ID"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /users/{id}/request [post]
func (h *FriendshipHandler) SendRequest(c *gin.Context) {
	from := currentUser(c)
	if from == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	f, err := h.friendships.SendRequest(c.Request.Context(), from, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": f.ID, "status": string(f.Status)})
}

// AcceptRequest godoc
// @Summary      Accept a friend request
// @Description  Accepts the pending request sent by the user in the path.
// @Tags         friendships
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Requester user ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id}/accept [post]
func (h *FriendshipHandler) AcceptRequest(c *gin.Context) {
	h.respond(c, true)
}

// DeclineRequest godoc
// @Summary      Decline a friend request
// @Description  Declines the pending request sent by the user in the path. The request is removed, so it can be sent again later.
// @Tags         friendships
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Requester user ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id}/decline [post]
func (h *FriendshipHandler) DeclineRequest(c *gin.Context) {
	h.respond(c, false)
}

func (h *FriendshipHandler) respond(c *gin.Context, accept bool) {
	recipientID := currentUserID(c)
	requesterID := c.Param("id")

	pending, err := h.friendships.PendingRequestFor(c.Request.Context(), requesterID, recipientID)
	if err != nil {
		respondError(c, err)
		return
	}

	f, err := h.friendships.Respond(c.Request.Context(), pending.ID, accept)
	if err != nil {
		respondError(c, err)
		return
	}
	if f == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Friend request declined"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": f.ID, "status": string(f.Status)})
}

// BlockUser godoc
// @Summary      Block a user
// @Description  Blocks the relationship with the user in the path. Blocking is terminal: neither side can send a new friend request afterwards.
// @Tags         friendships
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID to block"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id}/block [post]
func (h *FriendshipHandler) BlockUser(c *gin.Context) {
	f, err := h.friendships.BlockUser(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": f.ID, "status": string(f.Status)})
}

// ListFriends godoc
// @Summary      List friends
// @Description  Returns the authenticated user's accepted friends.
// @Tags         friendships
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   PublicUserResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friends [get]
func (h *FriendshipHandler) ListFriends(c *gin.Context) {
	friends, err := h.friendships.FriendsOf(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := []PublicUserResponse{}
	for _, u := range friends {
		resp = append(resp, newPublicUserResponse(u))
	}
	c.JSON(http.StatusOK, resp)
}

// ListRequests godoc
// @Summary      List incoming friend requests
// @Description  Returns pending requests addressed to the authenticated user.
// @Tags         friendships
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   FriendRequestResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/requests [get]
func (h *FriendshipHandler) ListRequests(c *gin.Context) {
	pending, err := h.friendships.IncomingRequests(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := []FriendRequestResponse{}
	for _, f := range pending {
		requester, err := h.accounts.User(c.Request.Context(), f.UserID)
		if err != nil {
			continue
		}
		resp = append(resp, FriendRequestResponse{
			ID:          f.ID,
			Requester:   newPublicUserResponse(*requester),
			RequestedAt: f.RequestedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

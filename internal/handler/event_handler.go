package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"myyeargroup/backend/internal/models"
	"myyeargroup/backend/internal/service"
)

// EventHandler serves yeargroup events and RSVPs.
type EventHandler struct {
	events *service.EventService
}

func NewEventHandler(events *service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// CreateEventRequest defines the payload for publishing an event.
type CreateEventRequest struct {
	YeargroupID  string    `json:"yeargroup_id" binding:"required"`
	Title        string    `json:"title" binding:"required" example:"Class of 2015 Reunion"`
	Description  string    `json:"description"`
	EventDate    time.Time `json:"event_date" binding:"required"`
	Location     string    `json:"location"`
	MaxAttendees int       `json:"max_attendees" binding:"omitempty,min=1"`
	RSVPDeadline time.Time `json:"rsvp_deadline" binding:"required"`
	ImageURL     string    `json:"image_url"`
}

// RSVPRequest defines the payload for responding to an event.
type RSVPRequest struct {
	Status string `json:"status" binding:"required,oneof=attending maybe not_attending"`
}

// ListEvents godoc
// @Summary      List a yeargroup's upcoming events
// @Description  Returns events that have not yet taken place, soonest first.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Yeargroup ID"
// @Success      200  {array}   models.Event
// @Failure      401  {object}  ErrorResponse
// @Router       /yeargroups/{id}/events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.events.Upcoming(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEvent godoc
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  models.Event
// @Failure      404  {object}  ErrorResponse
// @Router       /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.events.Event(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// CreateEvent godoc
// @Summary      Create an event
// @Description  Publishes an event into a yeargroup and invites its members.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CreateEventRequest true "Event details"
// @Success      201  {object}  models.Event
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	organizer := currentUser(c)
	if organizer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input CreateEventRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.events.Create(c.Request.Context(), organizer, service.EventInput{
		YeargroupID:  input.YeargroupID,
		Title:        input.Title,
		Description:  input.Description,
		EventDate:    input.EventDate,
		Location:     input.Location,
		MaxAttendees: input.MaxAttendees,
		RSVPDeadline: input.RSVPDeadline,
		ImageURL:     input.ImageURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

// RSVP godoc
// @Summary      RSVP to an event
// @Description  Records the user's response. A second RSVP replaces the first. Attending is refused past the deadline or when the event is full.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string       true  "Event ID"
// @Param        input body  RSVPRequest  true  "RSVP status"
// @Success      200  {object}  models.Event
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /events/{id}/rsvp [post]
func (h *EventHandler) RSVP(c *gin.Context) {
	var input RSVPRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.events.RSVP(c.Request.Context(), c.Param("id"), currentUserID(c), models.RSVPStatus(input.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

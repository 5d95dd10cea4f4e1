package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"myyeargroup/backend/internal/models"
	"myyeargroup/backend/internal/service"
)

// PropertyHandler serves the property board (rentals and house swaps).
type PropertyHandler struct {
	listings *service.ListingService
}

func NewPropertyHandler(listings *service.ListingService) *PropertyHandler {
	return &PropertyHandler{listings: listings}
}

// CreatePropertyRequest defines the payload for posting a property listing.
// Price is required for rentals and ignored for swaps.
type CreatePropertyRequest struct {
	Title           string    `json:"title" binding:"required" example:"Two-bed flat near the Royal Infirmary"`
	Type            string    `json:"type" binding:"required,oneof=swap rent"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	Bedrooms        int       `json:"bedrooms" binding:"omitempty,min=1"`
	Bathrooms       int       `json:"bathrooms" binding:"omitempty,min=1"`
	Price           *int      `json:"price"`
	AvailableFrom   time.Time `json:"available_from" binding:"required"`
	AvailableTo     time.Time `json:"available_to" binding:"required"`
	ImageURLs       []string  `json:"image_urls"`
	Amenities       []string  `json:"amenities"`
	SwapPreferences string    `json:"swap_preferences"`
}

// ListProperties godoc
// @Summary      List active property listings
// @Description  Returns listings that are active and currently within their availability window.
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Property
// @Failure      401  {object}  ErrorResponse
// @Router       /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	props, err := h.listings.ActiveProperties(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, props)
}

// GetProperty godoc
// @Summary      Get a property listing
// @Description  Retrieves one listing and counts the view.
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Property ID"
// @Success      200  {object}  models.Property
// @Failure      404  {object}  ErrorResponse
// @Router       /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	prop, err := h.listings.Property(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prop)
}

// CreateProperty godoc
// @Summary      Post a property listing
// @Description  Creates a listing owned by the authenticated user and announces it to their friends.
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CreatePropertyRequest true "Property details"
// @Success      201  {object}  models.Property
// @Failure      400  {object}  ErrorResponse
// @Router       /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	owner := currentUser(c)
	if owner == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input CreatePropertyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prop, err := h.listings.CreateProperty(c.Request.Context(), owner, service.PropertyInput{
		Title:           input.Title,
		Type:            models.PropertyType(input.Type),
		Location:        input.Location,
		Description:     input.Description,
		Bedrooms:        input.Bedrooms,
		Bathrooms:       input.Bathrooms,
		Price:           input.Price,
		AvailableFrom:   input.AvailableFrom,
		AvailableTo:     input.AvailableTo,
		ImageURLs:       input.ImageURLs,
		Amenities:       input.Amenities,
		SwapPreferences: input.SwapPreferences,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, prop)
}

// CloseProperty godoc
// @Summary      Close a property listing
// @Description  Deactivates the listing. Only the owner may close it; closing twice is harmless.
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Property ID"
// @Success      200  {object}  models.Property
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /properties/{id}/close [post]
func (h *PropertyHandler) CloseProperty(c *gin.Context) {
	prop, err := h.listings.CloseProperty(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prop)
}

package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"myyeargroup/backend/internal/models"
	"myyeargroup/backend/internal/service"
)

// JobHandler serves the jobs board.
type JobHandler struct {
	listings *service.ListingService
}

func NewJobHandler(listings *service.ListingService) *JobHandler {
	return &JobHandler{listings: listings}
}

// CreateJobRequest defines the payload for posting a job listing.
type CreateJobRequest struct {
	Title               string    `json:"title" binding:"required" example:"Consultant Cardiologist"`
	Hospital            string    `json:"hospital" binding:"required"`
	Department          string    `json:"department"`
	Location            string    `json:"location"`
	JobType             string    `json:"job_type" binding:"required,oneof=permanent locum fellowship training"`
	Description         string    `json:"description"`
	Requirements        string    `json:"requirements"`
	SalaryRange         string    `json:"salary_range"`
	ApplicationDeadline time.Time `json:"application_deadline" binding:"required"`
	ContactEmail        string    `json:"contact_email" binding:"omitempty,email"`
}

// ListJobs godoc
// @Summary      List active job postings
// @Description  Returns listings that are active and whose application deadline has not passed.
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.Job
// @Failure      401  {object}  ErrorResponse
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.listings.ActiveJobs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob godoc
// @Summary      Get a job posting
// @Description  Retrieves one listing and counts the view.
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  models.Job
// @Failure      404  {object}  ErrorResponse
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.listings.Job(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob godoc
// @Summary      Post a job listing
// @Description  Creates a listing owned by the authenticated user and announces it to their friends.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CreateJobRequest true "Job details"
// @Success      201  {object}  models.Job
// @Failure      400  {object}  ErrorResponse
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	owner := currentUser(c)
	if owner == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input CreateJobRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.listings.CreateJob(c.Request.Context(), owner, service.JobInput{
		Title:               input.Title,
		Hospital:            input.Hospital,
		Department:          input.Department,
		Location:            input.Location,
		JobType:             models.JobType(input.JobType),
		Description:         input.Description,
		Requirements:        input.Requirements,
		SalaryRange:         input.SalaryRange,
		ApplicationDeadline: input.ApplicationDeadline,
		ContactEmail:        input.ContactEmail,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// CloseJob godoc
// @Summary      Close a job posting
// @Description  Deactivates the listing. Only the owner may close it; closing twice is harmless.
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  models.Job
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /jobs/{id}/close [post]
func (h *JobHandler) CloseJob(c *gin.Context) {
	job, err := h.listings.CloseJob(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

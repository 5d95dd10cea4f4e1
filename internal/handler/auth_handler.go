package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myyeargroup/backend/internal/service"
	"myyeargroup/backend/pkg/jwt"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	accounts *service.AccountService
}

func NewAuthHandler(accounts *service.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Email           string `json:"email" binding:"required,email" example:"jane.smith@nhs.uk"`
	Password        string `json:"password" binding:"required" example:"password123"`
	ConfirmPassword string `json:"confirm_password" binding:"required" example:"password123"`
	FirstName       string `json:"first_name" binding:"required" example:"Jane"`
	LastName        string `json:"last_name" binding:"required" example:"Smith"`
	GMCNumber       string `json:"gmc_number" binding:"required" example:"GMC1234567"`
	MedicalSchoolID string `json:"medical_school_id" binding:"required" example:"1"`
	GraduationYear  int    `json:"graduation_year" binding:"required" example:"2018"`
	Specialty       string `json:"specialty" binding:"required" example:"Cardiology"`
	CurrentPosition string `json:"current_position" example:"Consultant"`
	Location        string `json:"location" example:"London"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email" example:"sarah.johnson@nhs.uk"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginResponse carries the session token and the resolved user record.
type LoginResponse struct {
	Token string              `json:"token"`
	User  PrivateUserResponse `json:"user"`
}

// endregion

// Register godoc
// @Summary      Register a new member
// @Description  Creates a pending account awaiting admin approval and notifies the admin pool.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  PrivateUserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Email or GMC number already registered"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), service.RegisterInput{
		Email:           input.Email,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		GMCNumber:       input.GMCNumber,
		MedicalSchoolID: input.MedicalSchoolID,
		GraduationYear:  input.GraduationYear,
		Specialty:       input.Specialty,
		CurrentPosition: input.CurrentPosition,
		Location:        input.Location,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newPrivateUserResponse(*user))
}

// Login godoc
// @Summary      Log in a member
// @Description  Authenticates with email and password and returns a new token. Pending, rejected and suspended accounts get a distinct error each.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  LoginResponse
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      403  {object}  ErrorResponse "Account not allowed to log in"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.accounts.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, User: newPrivateUserResponse(*user)})
}

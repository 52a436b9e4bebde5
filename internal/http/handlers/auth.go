package handlers

import (
	"net/http"

	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/domain/models"
	"shraddhayatra/internal/http/middleware"
	"shraddhayatra/internal/repositories"
	"shraddhayatra/internal/services"
	"shraddhayatra/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Name = utils.NormalizeSpace(req.Name)
	phone := utils.NormalizePhone(req.Phone)
	if req.Name == "" || phone == "" || len(req.Password) < 6 {
		RespondError(c, http.StatusBadRequest, "name, phone and a password of at least 6 characters are required", nil)
		return
	}

	authRepo := repositories.AuthRepository{}
	if n, err := authRepo.CountByPhone(phone); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to check existing account", err)
		return
	} else if n > 0 {
		RespondError(c, http.StatusBadRequest, "this phone number is already registered", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	authUser := models.AuthUser{
		ID:           uuid.NewString(),
		Phone:        phone,
		PasswordHash: string(hash),
		Name:         req.Name,
	}
	if err := authRepo.Insert(authUser); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create account", err)
		return
	}

	// Resolve immediately so the profile row exists from the first session.
	profileSvc := services.ProfileService{RequestID: middleware.GetRequestID(c)}
	user, err := profileSvc.Resolve(authUser.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	token, err := middleware.NewToken(user.ID, user.Role)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create token", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registration successful! You are now logged in.",
		"token":   token,
		"user":    user,
	})
}

type loginRequest struct {
	Phone         string                `json:"phone"`
	Password      string                `json:"password"`
	PendingAction *domain.PendingAction `json:"pending_action"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	phone := utils.NormalizePhone(req.Phone)

	authRepo := repositories.AuthRepository{}
	authUser, err := authRepo.GetByPhone(phone)
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusUnauthorized, "Invalid phone number or password", nil)
		} else {
			RespondError(c, http.StatusInternalServerError, "failed to query account", err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(authUser.PasswordHash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "Invalid phone number or password", nil)
		return
	}

	profileSvc := services.ProfileService{RequestID: middleware.GetRequestID(c)}
	user, err := profileSvc.Resolve(authUser.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	token, err := middleware.NewToken(user.ID, user.Role)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create token", err)
		return
	}

	// Replay the destination recorded before the login wall.
	redirect := domain.PendingAction{View: "home"}
	if req.PendingAction != nil && req.PendingAction.View != "" {
		redirect = *req.PendingAction
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful!",
		"token":    token,
		"user":     user,
		"redirect": redirect,
	})
}

// POST /api/auth/logout
// Sessions are stateless tokens; the client discards its copy.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "You've been logged out."})
}

// GET /api/auth/session
func Session(c *gin.Context) {
	rc := middleware.RequestContext(c)
	profileSvc := services.ProfileService{RequestID: middleware.GetRequestID(c)}
	user, err := profileSvc.Resolve(rc.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type changePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// PUT /api/auth/password
func ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if len(req.NewPassword) < 6 {
		RespondError(c, http.StatusBadRequest, "password must be at least 6 characters", nil)
		return
	}

	rc := middleware.RequestContext(c)
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	authRepo := repositories.AuthRepository{}
	if err := authRepo.UpdatePassword(rc.UserID, string(hash)); err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully!"})
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/pkg/resp"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/services"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/utils"
	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
	Email           string `json:"email" binding:"required,email"`
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Age             *int   `json:"age" binding:"omitempty,min=0"`
	Gender          string `json:"gender"`
	DateOfBirth     string `json:"dateOfBirth"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type UpdateProfileRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Age         *int    `json:"age" binding:"omitempty,min=0"`
	Gender      *string `json:"gender"`
	DateOfBirth *string `json:"dateOfBirth"`
}

func (r *UpdateProfileRequest) updates() map[string]any {
	updates := map[string]any{}
	if r.FirstName != nil {
		updates["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		updates["last_name"] = *r.LastName
	}
	if r.Age != nil {
		updates["age"] = *r.Age
	}
	if r.Gender != nil {
		updates["gender"] = *r.Gender
	}
	if r.DateOfBirth != nil {
		updates["date_of_birth"] = *r.DateOfBirth
	}
	return updates
}

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Service: s}
}

// POST /api/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid registration data")
		return
	}

	user, token, err := a.Service.Register(services.RegisterInput{
		Username:    req.Username,
		Password:    req.Password,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Age:         req.Age,
		Gender:      req.Gender,
		DateOfBirth: req.DateOfBirth,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) || errors.Is(err, services.ErrUsernameTaken) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "token": token, "user": user})
}

// POST /api/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid login data")
		return
	}

	token, user, err := a.Service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "invalid credentials")
			return
		}
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "token": token, "user": user})
}

// POST /api/logout
//
// Bearer tokens carry no server-side state; the client discards its copy.
func (a *AuthController) Logout(c *gin.Context) {
	resp.OK(c, gin.H{"message": "logged out"})
}

// PATCH /api/user
func (a *AuthController) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid profile data")
		return
	}

	user, err := a.Service.UpdateProfile(utils.CurrentUserID(c), req.updates())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.Unauthorized(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

// GET /api/user
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Service.CurrentUser(utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.Unauthorized(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

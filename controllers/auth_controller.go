package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vlad3958/HotelBooking/services"
	"github.com/vlad3958/HotelBooking/utils"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type createUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

// Register creates a regular user account. Roles are never accepted here.
func (ac *AuthController) Register(c *gin.Context) {
	var payload registerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := ac.service.Register(payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered",
		"id":      user.ID,
		"email":   user.Email,
	})
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload loginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	token, err := ac.service.Login(payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// CreateUser lets an admin create accounts with an explicit role.
func (ac *AuthController) CreateUser(c *gin.Context) {
	var payload createUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := ac.service.CreateUser(payload.Email, payload.Password, payload.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "user created",
		"id":      user.ID,
		"email":   user.Email,
		"role":    user.Role,
	})
}

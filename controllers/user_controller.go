package controllers

import (
	"net/http"
	"strconv"

	"cyber-shop/models"
	"cyber-shop/repositories"
	"cyber-shop/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController() *UserController {
	return &UserController{
		userService: services.NewUserService(),
	}
}

// Register godoc
// @Summary Register new user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body models.RegisterRequest true "Credentials"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Router /api/user/register [post]
func (ctrl *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid registration payload", "error": err.Error()})
		return
	}

	user, err := ctrl.userService.Register(req)
	if err == services.ErrUsernameTaken {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed", "error": errorDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration successful", "user": user})
}

// Login godoc
// @Summary Log in
// @Tags Users
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/user/login [post]
func (ctrl *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid login payload", "error": err.Error()})
		return
	}

	resp, err := ctrl.userService.Login(req)
	if err == services.ErrUnknownUser || err == services.ErrWrongPassword {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed", "error": errorDetail(err)})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetUserByID godoc
// @Summary Get user profile
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Router /api/user/{id} [get]
func (ctrl *UserController) GetUserByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	user, err := ctrl.userService.GetByID(id)
	if err == repositories.ErrUserNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get user", "error": errorDetail(err)})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update user profile
// @Description Partial update; the token subject must match the target id
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body models.UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.User
// @Failure 403 {object} models.ErrorResponse
// @Router /api/user/{id} [put]
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	actingUserID := c.GetInt("user_id")

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user payload", "error": err.Error()})
		return
	}

	user, err := ctrl.userService.Update(id, actingUserID, req)
	switch err {
	case nil:
	case services.ErrNotAccountOwner:
		c.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
		return
	case repositories.ErrUserNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	case services.ErrUsernameTaken:
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user", "error": errorDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated", "user": user})
}

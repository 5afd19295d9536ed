package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobify/api/internal/apperror"
	"jobify/api/internal/middleware"
	"jobify/api/internal/models"
	"jobify/api/internal/repository"
	"jobify/api/internal/service"
)

// userResponse never carries the password hash.
type userResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	LastName string  `json:"lastName"`
	Email    string  `json:"email"`
	Location string  `json:"location"`
	Role     string  `json:"role"`
	Avatar   *string `json:"avatar,omitempty"`
}

func toUserResponse(user models.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Name:     user.Name,
		LastName: user.LastName,
		Email:    user.Email,
		Location: user.Location,
		Role:     string(user.Role),
		Avatar:   user.AvatarURL,
	}
}

func (h *HandlerSet) CurrentUser(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.Error(apperror.Unauthenticated("authentication required"))
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.Error(apperror.NotFound("user not found"))
		} else {
			c.Error(err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

type updateUserForm struct {
	Name     string `form:"name" binding:"required"`
	LastName string `form:"lastName" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Location string `form:"location" binding:"required"`
}

// UpdateUser takes a multipart form so the profile fields and an optional
// avatar image travel in one request. A password field is ignored if sent.
func (h *HandlerSet) UpdateUser(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.Error(apperror.Unauthenticated("authentication required"))
		return
	}

	var form updateUserForm
	if err := c.ShouldBind(&form); err != nil {
		c.Error(apperror.FromBinding(err))
		return
	}

	input := service.UpdateProfileInput{
		UserID:   identity.UserID,
		Name:     form.Name,
		LastName: form.LastName,
		Email:    form.Email,
		Location: form.Location,
	}
	if file, err := c.FormFile("avatar"); err == nil {
		input.Avatar = file
	}

	if err := h.profileService.Update(c.Request.Context(), input); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.Error(apperror.BadRequest("email already exists"))
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "update user"})
}

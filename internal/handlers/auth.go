package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobify/api/internal/apperror"
	"jobify/api/internal/service"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	LastName string `json:"lastName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Location string `json:"location" binding:"required"`
}

func (h *HandlerSet) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.FromBinding(err))
		return
	}

	_, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Password: req.Password,
		Location: req.Location,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.Error(apperror.BadRequest("email already exists"))
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "user created"})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.FromBinding(err))
		return
	}

	token, _, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.Error(apperror.Unauthenticated("invalid credentials"))
			return
		}
		c.Error(err)
		return
	}

	h.setSessionCookie(c, token, int(h.cfg.Security.SessionTTL.Seconds()))
	c.JSON(http.StatusCreated, gin.H{"msg": "user logged in"})
}

// Logout expires the client cookie and deny-lists the presented token so a
// replay of its raw value fails for the rest of its lifetime.
func (h *HandlerSet) Logout(c *gin.Context) {
	token, err := c.Cookie(h.cfg.Security.CookieName)
	if err != nil || token == "" {
		c.Error(apperror.Unauthenticated("No user is currently logged in"))
		return
	}

	name, err := h.authService.Logout(c.Request.Context(), token)
	if err != nil {
		c.Error(apperror.Unauthenticated("authentication invalid"))
		return
	}

	h.setSessionCookie(c, "logout", -1)
	c.JSON(http.StatusOK, gin.H{"msg": fmt.Sprintf("You are now logged out %s", name)})
}

func (h *HandlerSet) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetCookie(
		h.cfg.Security.CookieName,
		value,
		maxAge,
		"/",
		h.cfg.Security.CookieDomain,
		h.cfg.Production(),
		true,
	)
}

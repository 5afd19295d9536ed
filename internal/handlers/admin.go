package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppStats reports site-wide user and job counts. Admin only.
func (h *HandlerSet) AppStats(c *gin.Context) {
	users, err := h.users.Count(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	jobs, err := h.jobs.Count(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"jobs":  jobs,
	})
}

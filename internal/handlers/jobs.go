package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jobify/api/internal/apperror"
	"jobify/api/internal/ids"
	"jobify/api/internal/middleware"
	"jobify/api/internal/models"
	"jobify/api/internal/repository"
)

type jobRequest struct {
	Company     string `json:"company" binding:"required"`
	Position    string `json:"position" binding:"required"`
	JobLocation string `json:"jobLocation" binding:"required"`
	JobStatus   string `json:"jobStatus" binding:"required,oneof=pending interview declined"`
	JobType     string `json:"jobType" binding:"required,oneof=full-time part-time internship"`
}

type jobResponse struct {
	ID          string    `json:"id"`
	Company     string    `json:"company"`
	Position    string    `json:"position"`
	JobStatus   string    `json:"jobStatus"`
	JobType     string    `json:"jobType"`
	JobLocation string    `json:"jobLocation"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toJobResponse(job models.Job) jobResponse {
	return jobResponse{
		ID:          job.ID,
		Company:     job.Company,
		Position:    job.Position,
		JobStatus:   string(job.Status),
		JobType:     string(job.Type),
		JobLocation: job.Location,
		CreatedBy:   job.CreatedBy,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
}

func (h *HandlerSet) ListJobs(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.Error(apperror.Unauthenticated("authentication required"))
		return
	}

	filter := repository.JobFilter{
		OwnerID: identity.UserID,
		Search:  c.Query("search"),
		Status:  c.Query("jobStatus"),
		Type:    c.Query("jobType"),
		Sort:    c.Query("sortJob"),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = limit
	}

	page, err := h.jobService.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	jobs := make([]jobResponse, 0, len(page.Jobs))
	for _, job := range page.Jobs {
		jobs = append(jobs, toJobResponse(job))
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":        jobs,
		"totalJobs":   page.TotalJobs,
		"numOfPages":  page.NumOfPages,
		"currentPage": page.CurrentPage,
	})
}

func (h *HandlerSet) CreateJob(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.Error(apperror.Unauthenticated("authentication required"))
		return
	}

	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.FromBinding(err))
		return
	}

	job := models.Job{
		ID:        ids.New(),
		Company:   req.Company,
		Position:  req.Position,
		Status:    models.JobStatus(req.JobStatus),
		Type:      models.JobType(req.JobType),
		Location:  req.JobLocation,
		CreatedBy: identity.UserID,
	}

	if err := h.jobs.Create(c.Request.Context(), job); err != nil {
		c.Error(err)
		return
	}

	created, err := h.jobs.GetByID(c.Request.Context(), job.ID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"job": toJobResponse(created)})
}

// ownedJob loads a job and enforces the owner-or-admin rule for single-job
// routes.
func (h *HandlerSet) ownedJob(c *gin.Context) (models.Job, bool) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.Error(apperror.Unauthenticated("authentication required"))
		return models.Job{}, false
	}

	id := c.Param("id")
	job, err := h.jobs.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			c.Error(apperror.NotFound(fmt.Sprintf("no job with id : %s", id)))
		} else {
			c.Error(err)
		}
		return models.Job{}, false
	}

	if !identity.IsAdmin() && job.CreatedBy != identity.UserID {
		c.Error(apperror.Forbidden("not authorized to access this route"))
		return models.Job{}, false
	}

	return job, true
}

func (h *HandlerSet) GetJob(c *gin.Context) {
	job, ok := h.ownedJob(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": toJobResponse(job)})
}

func (h *HandlerSet) UpdateJob(c *gin.Context) {
	job, ok := h.ownedJob(c)
	if !ok {
		return
	}

	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.FromBinding(err))
		return
	}

	job.Company = req.Company
	job.Position = req.Position
	job.Status = models.JobStatus(req.JobStatus)
	job.Type = models.JobType(req.JobType)
	job.Location = req.JobLocation

	updated, err := h.jobs.Update(c.Request.Context(), job)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			c.Error(apperror.NotFound(fmt.Sprintf("no job with id : %s", job.ID)))
		} else {
			c.Error(err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "job modified", "job": toJobResponse(updated)})
}

func (h *HandlerSet) DeleteJob(c *gin.Context) {
	job, ok := h.ownedJob(c)
	if !ok {
		return
	}

	removed, err := h.jobs.Delete(c.Request.Context(), job.ID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			c.Error(apperror.NotFound(fmt.Sprintf("no job with id : %s", job.ID)))
		} else {
			c.Error(err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "job deleted", "job": toJobResponse(removed)})
}

func (h *HandlerSet) JobStats(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.Error(apperror.Unauthenticated("authentication required"))
		return
	}

	defaultStats, monthly, err := h.jobService.Stats(c.Request.Context(), identity.UserID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"defaultStats":        defaultStats,
		"monthlyApplications": monthly,
	})
}

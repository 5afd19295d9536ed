package models

import "time"

type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusInterview JobStatus = "interview"
	JobStatusDeclined  JobStatus = "declined"
)

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeInternship JobType = "internship"
)

type Job struct {
	ID        string
	Company   string
	Position  string
	Status    JobStatus
	Type      JobType
	Location  string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StatusCount is one row of the per-status aggregate for a single user.
type StatusCount struct {
	Status JobStatus
	Count  int
}

// MonthlyCount is one calendar-month bucket of job applications.
type MonthlyCount struct {
	Year  int
	Month time.Month
	Count int
}

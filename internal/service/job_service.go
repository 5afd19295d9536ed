package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"jobify/api/internal/models"
	"jobify/api/internal/repository"
)

const statsMonths = 6

type JobService struct {
	jobs *repository.JobRepository
	log  zerolog.Logger
}

func NewJobService(jobs *repository.JobRepository, log zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, log: log}
}

type JobPage struct {
	Jobs        []models.Job
	TotalJobs   int
	NumOfPages  int
	CurrentPage int
}

// List resolves a client parameter bag into one page of the caller's jobs
// plus total-count metadata.
func (s *JobService) List(ctx context.Context, filter repository.JobFilter) (JobPage, error) {
	filter = filter.Normalized()

	jobs, total, err := s.jobs.List(ctx, filter)
	if err != nil {
		return JobPage{}, err
	}

	return JobPage{
		Jobs:        jobs,
		TotalJobs:   total,
		NumOfPages:  repository.NumPages(total, filter.Limit),
		CurrentPage: filter.Page,
	}, nil
}

// DefaultStats carries per-status counts with explicit zeroes for statuses
// the user has no jobs in.
type DefaultStats struct {
	Pending   int `json:"pending"`
	Interview int `json:"interview"`
	Declined  int `json:"declined"`
}

type MonthlySummary struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Stats aggregates one user's jobs: counts per status, and the last six
// calendar months of application volume ordered oldest to newest for the
// client's chart.
func (s *JobService) Stats(ctx context.Context, userID string) (DefaultStats, []MonthlySummary, error) {
	statusCounts, err := s.jobs.StatusCounts(ctx, userID)
	if err != nil {
		return DefaultStats{}, nil, err
	}

	var stats DefaultStats
	for _, sc := range statusCounts {
		switch sc.Status {
		case models.JobStatusPending:
			stats.Pending = sc.Count
		case models.JobStatusInterview:
			stats.Interview = sc.Count
		case models.JobStatusDeclined:
			stats.Declined = sc.Count
		}
	}

	monthly, err := s.jobs.MonthlyCounts(ctx, userID, statsMonths)
	if err != nil {
		return DefaultStats{}, nil, err
	}

	return stats, monthlySummaries(monthly), nil
}

// monthlySummaries labels the buckets and reverses them so the most recent
// month lands at the end of the chart.
func monthlySummaries(monthly []models.MonthlyCount) []MonthlySummary {
	summaries := make([]MonthlySummary, 0, len(monthly))
	for i := len(monthly) - 1; i >= 0; i-- {
		summaries = append(summaries, MonthlySummary{
			Date:  monthLabel(monthly[i].Year, monthly[i].Month),
			Count: monthly[i].Count,
		})
	}
	return summaries
}

func monthLabel(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 06")
}

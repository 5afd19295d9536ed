package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobify/api/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

const jobColumns = `id, company, position, job_status, job_type, job_location, created_by, created_at, updated_at`

func scanJob(row pgx.Row) (models.Job, error) {
	var job models.Job
	err := row.Scan(
		&job.ID,
		&job.Company,
		&job.Position,
		&job.Status,
		&job.Type,
		&job.Location,
		&job.CreatedBy,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Job{}, ErrJobNotFound
	}
	return job, err
}

func (r *JobRepository) Create(ctx context.Context, job models.Job) error {
	const query = `
		INSERT INTO jobs (
			id, company, position, job_status, job_type, job_location, created_by, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		job.ID,
		job.Company,
		job.Position,
		job.Status,
		job.Type,
		job.Location,
		job.CreatedBy,
	)
	return err
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	return scanJob(r.pool.QueryRow(ctx, query, id))
}

// Update rewrites the mutable job fields. created_by is immutable after
// creation and is deliberately absent here.
func (r *JobRepository) Update(ctx context.Context, job models.Job) (models.Job, error) {
	query := `
		UPDATE jobs
		SET company = $2,
		    position = $3,
		    job_status = $4,
		    job_type = $5,
		    job_location = $6,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + jobColumns

	return scanJob(r.pool.QueryRow(ctx, query,
		job.ID,
		job.Company,
		job.Position,
		job.Status,
		job.Type,
		job.Location,
	))
}

func (r *JobRepository) Delete(ctx context.Context, id string) (models.Job, error) {
	query := `DELETE FROM jobs WHERE id = $1 RETURNING ` + jobColumns
	return scanJob(r.pool.QueryRow(ctx, query, id))
}

// List runs the filtered, sorted, paginated owner-scoped query plus the
// matching total count. The two queries are not snapshot-isolated; a write
// landing between them can skew the page count, which is accepted.
func (r *JobRepository) List(ctx context.Context, filter JobFilter) ([]models.Job, int, error) {
	filter = filter.Normalized()

	query, args := filter.listQuery()
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := make([]models.Job, 0, filter.Limit)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	countQuery, countArgs := filter.countQuery()
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *JobRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count)
	return count, err
}

// StatusCounts groups one user's jobs by status.
func (r *JobRepository) StatusCounts(ctx context.Context, ownerID string) ([]models.StatusCount, error) {
	const query = `
		SELECT job_status, COUNT(*)
		FROM jobs
		WHERE created_by = $1
		GROUP BY job_status
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.StatusCount
	for rows.Next() {
		var sc models.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}

// MonthlyCounts returns the most recent calendar-month buckets of one user's
// applications, newest first.
func (r *JobRepository) MonthlyCounts(ctx context.Context, ownerID string, months int) ([]models.MonthlyCount, error) {
	const query = `
		SELECT EXTRACT(YEAR FROM created_at)::int,
		       EXTRACT(MONTH FROM created_at)::int,
		       COUNT(*)
		FROM jobs
		WHERE created_by = $1
		GROUP BY 1, 2
		ORDER BY 1 DESC, 2 DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, ownerID, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.MonthlyCount
	for rows.Next() {
		var (
			year  int
			month int
			count int
		)
		if err := rows.Scan(&year, &month, &count); err != nil {
			return nil, err
		}
		counts = append(counts, models.MonthlyCount{Year: year, Month: time.Month(month), Count: count})
	}
	return counts, rows.Err()
}

// DeleteByOwner removes every job owned by a user. Used by the nightly demo
// account purge.
func (r *JobRepository) DeleteByOwner(ctx context.Context, ownerID string) (int, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE created_by = $1`, ownerID)
	if err != nil {
		return 0, err
	}
	return int(cmd.RowsAffected()), nil
}

package jobs

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new job.
func (r *PGRepo) Create(ctx context.Context, job Job) error {
	const query = `
INSERT INTO jobs (id, job_title, min_gpa, degree_requirements, job_description)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query,
		job.ID,
		job.JobTitle,
		job.MinGPA,
		job.DegreeRequirements,
		job.JobDescription,
	)
	return err
}

// GetByID returns a job by its ID.
func (r *PGRepo) GetByID(ctx context.Context, jobID string) (Job, error) {
	const query = `
SELECT id, job_title, min_gpa, degree_requirements, job_description
FROM jobs
WHERE id = $1
LIMIT 1`
	job, err := scanJob(r.DB.QueryRowContext(ctx, query, jobID))
	if errors.Is(err, sql.ErrNoRows) {
		return Job{}, ErrNotFound
	}
	return job, err
}

// List returns all jobs, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Job, error) {
	const query = `
SELECT id, job_title, min_gpa, degree_requirements, job_description
FROM jobs
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (Job, error) {
	var job Job
	var minGPA sql.NullFloat64
	var degreeRequirements sql.NullString
	var jobDescription sql.NullString
	if err := row.Scan(&job.ID, &job.JobTitle, &minGPA, &degreeRequirements, &jobDescription); err != nil {
		return Job{}, err
	}
	if minGPA.Valid {
		v := minGPA.Float64
		job.MinGPA = &v
	}
	job.DegreeRequirements = degreeRequirements.String
	job.JobDescription = jobDescription.String
	return job, nil
}

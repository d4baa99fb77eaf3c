package candidates

import (
	"context"
	"database/sql"
	"encoding/json"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new candidate.
func (r *PGRepo) Create(ctx context.Context, candidate Candidate) error {
	const query = `
INSERT INTO candidates (id, job_id, name, email, match_score, gpa, education, skills, total_experience, scoring_reason)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	skills, err := marshalSkills(candidate.Skills)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		candidate.ID,
		candidate.JobID,
		candidate.Name,
		candidate.Email,
		candidate.MatchScore,
		candidate.GPA,
		candidate.Education,
		skills,
		candidate.TotalExperience,
		candidate.ScoringReason,
	)
	return err
}

// ListByJob returns all candidates attached to the job.
func (r *PGRepo) ListByJob(ctx context.Context, jobID string) ([]Candidate, error) {
	const query = `
SELECT id, job_id, name, email, match_score, gpa, education, skills, total_experience, scoring_reason
FROM candidates
WHERE job_id = $1
ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCandidates(rows)
}

// Search returns candidates whose name, education, or any stored skill
// matches the query, case-insensitively.
func (r *PGRepo) Search(ctx context.Context, query string) ([]Candidate, error) {
	const q = `
SELECT id, job_id, name, email, match_score, gpa, education, skills, total_experience, scoring_reason
FROM candidates
WHERE name ILIKE '%' || $1 || '%'
   OR education ILIKE '%' || $1 || '%'
   OR EXISTS (
	SELECT 1 FROM jsonb_array_elements_text(skills) AS skill
	WHERE skill ILIKE '%' || $1 || '%'
   )
ORDER BY match_score DESC NULLS LAST`
	rows, err := r.DB.QueryContext(ctx, q, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCandidates(rows)
}

func scanCandidates(rows *sql.Rows) ([]Candidate, error) {
	out := []Candidate{}
	for rows.Next() {
		var c Candidate
		var matchScore sql.NullFloat64
		var gpa sql.NullFloat64
		var education sql.NullString
		var skills sql.NullString
		var totalExperience sql.NullFloat64
		var scoringReason sql.NullString
		if err := rows.Scan(
			&c.ID,
			&c.JobID,
			&c.Name,
			&c.Email,
			&matchScore,
			&gpa,
			&education,
			&skills,
			&totalExperience,
			&scoringReason,
		); err != nil {
			return nil, err
		}
		if matchScore.Valid {
			v := matchScore.Float64
			c.MatchScore = &v
		}
		if gpa.Valid {
			v := gpa.Float64
			c.GPA = &v
		}
		c.Education = education.String
		c.Skills = unmarshalSkills(skills)
		if totalExperience.Valid {
			v := totalExperience.Float64
			c.TotalExperience = &v
		}
		c.ScoringReason = scoringReason.String
		out = append(out, c)
	}
	return out, rows.Err()
}

func marshalSkills(skills []string) ([]byte, error) {
	if skills == nil {
		skills = []string{}
	}
	return json.Marshal(skills)
}

func unmarshalSkills(raw sql.NullString) []string {
	skills := []string{}
	if !raw.Valid || raw.String == "" {
		return skills
	}
	if err := json.Unmarshal([]byte(raw.String), &skills); err != nil {
		return []string{}
	}
	return skills
}

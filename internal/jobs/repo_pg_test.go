package jobs

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoListScansNullableFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	columns := []string{"id", "job_title", "min_gpa", "degree_requirements", "job_description"}
	rows := sqlmock.NewRows(columns).
		AddRow("job-1", "Data Engineer", 3.0, "S1 Computer Science", "Build pipelines").
		AddRow("job-2", "QA Engineer", nil, nil, nil)

	mock.ExpectQuery("SELECT (.+) FROM jobs").WillReturnRows(rows)

	repo := &PGRepo{DB: db}
	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(got))
	}
	if got[0].MinGPA == nil || *got[0].MinGPA != 3.0 {
		t.Fatalf("expected min gpa 3.0, got %v", got[0].MinGPA)
	}
	if got[1].MinGPA != nil {
		t.Fatalf("expected nil min gpa, got %v", *got[1].MinGPA)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

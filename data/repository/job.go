package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jarredbaird/express-jobly/data"
	"github.com/jarredbaird/express-jobly/data/fragment"
	"github.com/jarredbaird/express-jobly/ecode"
	"github.com/jarredbaird/express-jobly/logging/observes"
	"github.com/jarredbaird/express-jobly/structs"
	"go.opentelemetry.io/otel/attribute"
)

// jobNames maps job fields to columns.
var jobNames = fragment.Names{
	"companyHandle": "company_handle",
}

const jobColumns = `id, title, salary, equity, company_handle`

// JobRepositoryInterface defines the job data operations.
type JobRepositoryInterface interface {
	Create(ctx context.Context, body *structs.CreateJobBody) (*structs.Job, error)
	FindAll(ctx context.Context, conds []fragment.Condition) ([]*structs.Job, error)
	Get(ctx context.Context, id int) (*structs.Job, error)
	Update(ctx context.Context, id int, fields []fragment.Field) (*structs.Job, error)
	Remove(ctx context.Context, id int) error
	ListByCompany(ctx context.Context, handle string) ([]*structs.CompanyJob, error)
}

type jobRepository struct {
	data *data.Data
}

// NewJobRepository creates a new job repository.
func NewJobRepository(d *data.Data) JobRepositoryInterface {
	return &jobRepository{data: d}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (*structs.Job, error) {
	var (
		job    structs.Job
		salary sql.NullInt64
		equity sql.NullString
	)
	if err := row.Scan(&job.ID, &job.Title, &salary, &equity, &job.CompanyHandle); err != nil {
		return nil, err
	}
	job.Salary = intPtr(salary)
	job.Equity = stringPtr(equity)
	return &job, nil
}

func notFoundJob(id int) error {
	return ecode.New(ecode.NotFound, fmt.Sprintf("No job: %d", id))
}

// Create inserts a job and returns it with its generated id.
func (r *jobRepository) Create(ctx context.Context, body *structs.CreateJobBody) (job *structs.Job, err error) {
	ctx, span := observes.StartSpan(ctx, observes.LayerRepo, "Job.Create")
	defer func() { observes.EndSpan(span, err) }()

	row := r.data.DB().QueryRowContext(ctx,
		`INSERT INTO jobs (title, salary, equity, company_handle)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+jobColumns,
		body.Title, body.Salary, body.Equity, body.CompanyHandle,
	)
	job, err = scanJob(row)
	if err != nil {
		return nil, classify(err, "duplicate job")
	}
	return job, nil
}

// FindAll lists jobs matching every condition, ordered by title.
func (r *jobRepository) FindAll(ctx context.Context, conds []fragment.Condition) (jobs []*structs.Job, err error) {
	ctx, span := observes.StartSpan(ctx, observes.LayerRepo, "Job.FindAll",
		attribute.Int("conditions", len(conds)))
	defer func() { observes.EndSpan(span, err) }()

	query := `SELECT ` + jobColumns + ` FROM jobs`
	var args []any
	if len(conds) > 0 {
		where, err := fragment.Where(conds, jobNames)
		if err != nil {
			return nil, err
		}
		query += ` WHERE ` + where.Clause
		args = where.Values
	}
	query += ` ORDER BY title, id`

	rows, err := r.data.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs = []*structs.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// Get returns a single job.
func (r *jobRepository) Get(ctx context.Context, id int) (job *structs.Job, err error) {
	ctx, span := observes.StartSpan(ctx, observes.LayerRepo, "Job.Get", attribute.Int("id", id))
	defer func() { observes.EndSpan(span, err) }()

	row := r.data.DB().QueryRowContext(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	job, err = scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFoundJob(id)
	}
	return job, err
}

// Update applies a partial update. Fields set to nil null their column.
func (r *jobRepository) Update(ctx context.Context, id int, fields []fragment.Field) (job *structs.Job, err error) {
	ctx, span := observes.StartSpan(ctx, observes.LayerRepo, "Job.Update", attribute.Int("id", id))
	defer func() { observes.EndSpan(span, err) }()

	set, err := fragment.Update(fields, jobNames)
	if err != nil {
		return nil, err
	}

	row := r.data.DB().QueryRowContext(ctx,
		fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d RETURNING %s`, set.Clause, set.Next(), jobColumns),
		set.Args(id)...,
	)
	job, err = scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFoundJob(id)
	}
	if err != nil {
		return nil, classify(err, "duplicate job")
	}
	return job, nil
}

// Remove deletes a job.
func (r *jobRepository) Remove(ctx context.Context, id int) (err error) {
	ctx, span := observes.StartSpan(ctx, observes.LayerRepo, "Job.Remove", attribute.Int("id", id))
	defer func() { observes.EndSpan(span, err) }()

	var deleted int
	err = r.data.DB().QueryRowContext(ctx,
		`DELETE FROM jobs WHERE id = $1 RETURNING id`, id).Scan(&deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return notFoundJob(id)
	}
	return err
}

// ListByCompany returns the jobs of one company ordered by id.
func (r *jobRepository) ListByCompany(ctx context.Context, handle string) (jobs []*structs.CompanyJob, err error) {
	ctx, span := observes.StartSpan(ctx, observes.LayerRepo, "Job.ListByCompany",
		attribute.String("handle", handle))
	defer func() { observes.EndSpan(span, err) }()

	rows, err := r.data.DB().QueryContext(ctx,
		`SELECT id, title, salary, equity FROM jobs WHERE company_handle = $1 ORDER BY id`, handle)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs = []*structs.CompanyJob{}
	for rows.Next() {
		var (
			job    structs.CompanyJob
			salary sql.NullInt64
			equity sql.NullString
		)
		if err := rows.Scan(&job.ID, &job.Title, &salary, &equity); err != nil {
			return nil, err
		}
		job.Salary = intPtr(salary)
		job.Equity = stringPtr(equity)
		jobs = append(jobs, &job)
	}
	return jobs, rows.Err()
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func stringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

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

// companyNames maps company fields, including the bound field of the
// employee filters, to columns.
var companyNames = fragment.Names{
	"numEmployees": "num_employees",
	"employees":    "num_employees",
	"logoUrl":      "logo_url",
}

const companyColumns = `handle, name, description, num_employees, logo_url`

// CompanyRepositoryInterface defines the company data operations.
type CompanyRepositoryInterface interface {
	Create(ctx context.Context, company *structs.Company) (*structs.Company, error)
	FindAll(ctx context.Context, conds []fragment.Condition) ([]*structs.Company, error)
	Get(ctx context.Context, handle string) (*structs.Company, error)
	Update(ctx context.Context, handle string, fields []fragment.Field) (*structs.Company, error)
	Remove(ctx context.Context, handle string) error
}

type companyRepository struct {
	data *data.Data
}

// NewCompanyRepository creates a new company repository.
func NewCompanyRepository(d *data.Data) CompanyRepositoryInterface {
	return &companyRepository{data: d}
}

func scanCompany(row rowScanner) (*structs.Company, error) {
	var (
		c         structs.Company
		employees sql.NullInt64
		logo      sql.NullString
	)
	if err := row.Scan(&c.Handle, &c.Name, &c.Description, &employees, &logo); err != nil {
		return nil, err
	}
	c.NumEmployees = intPtr(employees)
	c.LogoURL = stringPtr(logo)
	return &c, nil
}

func notFoundCompany(handle string) error {
	return ecode.New(ecode.NotFound, fmt.Sprintf("No company: %s", handle))
}

func duplicateCompany(handle string) string {
	return fmt.Sprintf("Duplicate company: %s", handle)
}

// Create inserts a company. A taken handle or name is a Conflict.
func (r *companyRepository) Create(ctx context.Context, company *structs.Company) (c *structs.Company, err error) {
	ctx, span := observes.StartSpan(ctx, observes.LayerRepo, "Company.Create",
		attribute.String("handle", company.Handle))
	defer func() { observes.EndSpan(span, err) }()

	row := r.data.DB().QueryRowContext(ctx,
		`INSERT INTO companies (handle, name, description, num_employees, logo_url)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+companyColumns,
		company.Handle, company.Name, company.Description, company.NumEmployees, company.LogoURL,
	)
	c, err = scanCompany(row)
	if err != nil {
		return nil, classify(err, duplicateCompany(company.Handle))
	}
	return c, nil
}

// FindAll lists companies matching every condition, ordered by name.
func (r *companyRepository) FindAll(ctx context.Context, conds []fragment.Condition) (companies []*structs.Company, err error) {
	ctx, span := observes.StartSpan(ctx, observes.LayerRepo, "Company.FindAll",
		attribute.Int("conditions", len(conds)))
	defer func() { observes.EndSpan(span, err) }()

	query := `SELECT ` + companyColumns + ` FROM companies`
	var args []any
	if len(conds) > 0 {
		where, err := fragment.Where(conds, companyNames)
		if err != nil {
			return nil, err
		}
		query += ` WHERE ` + where.Clause
		args = where.Values
	}
	query += ` ORDER BY name`

	rows, err := r.data.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies = []*structs.Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// Get returns a single company.
func (r *companyRepository) Get(ctx context.Context, handle string) (c *structs.Company, err error) {
	ctx, span := observes.StartSpan(ctx, observes.LayerRepo, "Company.Get",
		attribute.String("handle", handle))
	defer func() { observes.EndSpan(span, err) }()

	row := r.data.DB().QueryRowContext(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE handle = $1`, handle)
	c, err = scanCompany(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFoundCompany(handle)
	}
	return c, err
}

// Update applies a partial update. The handle itself cannot change.
func (r *companyRepository) Update(ctx context.Context, handle string, fields []fragment.Field) (c *structs.Company, err error) {
	ctx, span := observes.StartSpan(ctx, observes.LayerRepo, "Company.Update",
		attribute.String("handle", handle))
	defer func() { observes.EndSpan(span, err) }()

	set, err := fragment.Update(fields, companyNames)
	if err != nil {
		return nil, err
	}

	row := r.data.DB().QueryRowContext(ctx,
		fmt.Sprintf(`UPDATE companies SET %s WHERE handle = $%d RETURNING %s`, set.Clause, set.Next(), companyColumns),
		set.Args(handle)...,
	)
	c, err = scanCompany(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFoundCompany(handle)
	}
	if err != nil {
		return nil, classify(err, duplicateCompany(handle))
	}
	return c, nil
}

// Remove deletes a company. Its jobs go with it through the foreign key
// cascade.
func (r *companyRepository) Remove(ctx context.Context, handle string) (err error) {
	ctx, span := observes.StartSpan(ctx, observes.LayerRepo, "Company.Remove",
		attribute.String("handle", handle))
	defer func() { observes.EndSpan(span, err) }()

	var deleted string
	err = r.data.DB().QueryRowContext(ctx,
		`DELETE FROM companies WHERE handle = $1 RETURNING handle`, handle).Scan(&deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return notFoundCompany(handle)
	}
	return err
}

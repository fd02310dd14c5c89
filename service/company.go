package service

import (
	"context"
	"strings"

	"github.com/gosimple/slug"
	"github.com/jarredbaird/express-jobly/data/repository"
	"github.com/jarredbaird/express-jobly/ecode"
	"github.com/jarredbaird/express-jobly/structs"
)

// maxHandleLen is the width of the handle column.
const maxHandleLen = 25

// CompanyServiceInterface is the company business API used by the handlers.
type CompanyServiceInterface interface {
	Create(ctx context.Context, body *structs.CreateCompanyBody) (*structs.Company, error)
	List(ctx context.Context, filter *structs.CompanyFilter) ([]*structs.Company, error)
	Get(ctx context.Context, handle string) (*structs.CompanyDetail, error)
	Update(ctx context.Context, handle string, body *structs.UpdateCompanyBody) (*structs.Company, error)
	Delete(ctx context.Context, handle string) error
}

type companyService struct {
	company repository.CompanyRepositoryInterface
	job     repository.JobRepositoryInterface
}

// NewCompanyService creates a new company service.
func NewCompanyService(company repository.CompanyRepositoryInterface, job repository.JobRepositoryInterface) CompanyServiceInterface {
	return &companyService{company: company, job: job}
}

// Handle derives a company handle from its name, e.g. "Acme Corp" becomes
// "acme-corp".
func Handle(name string) string {
	h := slug.Make(name)
	if len(h) > maxHandleLen {
		h = strings.TrimRight(h[:maxHandleLen], "-")
	}
	return h
}

// Create creates a company, deriving the handle from the name when absent.
func (s *companyService) Create(ctx context.Context, body *structs.CreateCompanyBody) (*structs.Company, error) {
	handle := strings.ToLower(body.Handle)
	if handle == "" {
		handle = Handle(body.Name)
	}
	if handle == "" {
		return nil, ecode.New(ecode.ParamErr, "cannot derive a handle from name")
	}

	return s.company.Create(ctx, &structs.Company{
		Handle:       handle,
		Name:         body.Name,
		Description:  body.Description,
		NumEmployees: body.NumEmployees,
		LogoURL:      body.LogoURL,
	})
}

// List returns the companies matching the filter.
func (s *companyService) List(ctx context.Context, filter *structs.CompanyFilter) ([]*structs.Company, error) {
	if filter == nil {
		filter = &structs.CompanyFilter{}
	}
	if err := filter.Check(); err != nil {
		return nil, err
	}
	return s.company.FindAll(ctx, filter.Conditions())
}

// Get returns a company with its jobs.
func (s *companyService) Get(ctx context.Context, handle string) (*structs.CompanyDetail, error) {
	company, err := s.company.Get(ctx, handle)
	if err != nil {
		return nil, err
	}
	jobs, err := s.job.ListByCompany(ctx, handle)
	if err != nil {
		return nil, err
	}
	return &structs.CompanyDetail{Company: *company, Jobs: jobs}, nil
}

// Update applies the supplied members of body.
func (s *companyService) Update(ctx context.Context, handle string, body *structs.UpdateCompanyBody) (*structs.Company, error) {
	fields, err := body.Fields()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ecode.New(ecode.ParamErr, "no data to update")
	}
	return s.company.Update(ctx, handle, fields)
}

// Delete removes a company.
func (s *companyService) Delete(ctx context.Context, handle string) error {
	return s.company.Remove(ctx, handle)
}

// Package service holds the business rules between handlers and
// repositories.
package service

import (
	"github.com/google/wire"
	"github.com/jarredbaird/express-jobly/data/repository"
)

// Service aggregates all business logic services.
type Service struct {
	Job     JobServiceInterface
	Company CompanyServiceInterface
}

// New creates a new service instance with all sub-services initialized.
func New(job repository.JobRepositoryInterface, company repository.CompanyRepositoryInterface) *Service {
	return &Service{
		Job:     NewJobService(job),
		Company: NewCompanyService(company, job),
	}
}

// ProviderSet is the wire provider set for the service layer.
var ProviderSet = wire.NewSet(New)

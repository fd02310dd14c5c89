package repository

import "github.com/google/wire"

// ProviderSet is the wire provider set for the repositories.
var ProviderSet = wire.NewSet(NewJobRepository, NewCompanyRepository)

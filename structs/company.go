package structs

import (
	"github.com/jarredbaird/express-jobly/data/fragment"
	"github.com/jarredbaird/express-jobly/ecode"
)

// Company is an employer.
type Company struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees"`
	LogoURL      *string `json:"logoUrl"`
}

// CompanyDetail is a company with its jobs.
type CompanyDetail struct {
	Company
	Jobs []*CompanyJob `json:"jobs"`
}

// CreateCompanyBody is the payload of POST /companies. An omitted handle is
// derived from the name.
type CreateCompanyBody struct {
	Handle       string  `json:"handle" binding:"omitempty,max=25"`
	Name         string  `json:"name" binding:"required,min=1"`
	Description  string  `json:"description"`
	NumEmployees *int    `json:"numEmployees" binding:"omitnil,min=0"`
	LogoURL      *string `json:"logoUrl" binding:"omitnil,url"`
}

// UpdateCompanyBody is the payload of PATCH /companies/:handle.
type UpdateCompanyBody struct {
	Name         Nullable[string] `json:"name" binding:"omitnil,min=1"`
	Description  Nullable[string] `json:"description"`
	NumEmployees Nullable[int]    `json:"numEmployees" binding:"omitnil,min=0"`
	LogoURL      Nullable[string] `json:"logoUrl" binding:"omitnil,url"`
}

// Fields lists the supplied members as update assignments.
func (b *UpdateCompanyBody) Fields() ([]fragment.Field, error) {
	if b.Name.Set && !b.Name.Valid {
		return nil, ecode.New(ecode.ParamErr, "name cannot be null")
	}
	if b.Description.Set && !b.Description.Valid {
		return nil, ecode.New(ecode.ParamErr, "description cannot be null")
	}

	var fields []fragment.Field
	if b.Name.Set {
		fields = append(fields, fragment.Field{Name: "name", Value: b.Name.Any()})
	}
	if b.Description.Set {
		fields = append(fields, fragment.Field{Name: "description", Value: b.Description.Any()})
	}
	if b.NumEmployees.Set {
		fields = append(fields, fragment.Field{Name: "numEmployees", Value: b.NumEmployees.Any()})
	}
	if b.LogoURL.Set {
		fields = append(fields, fragment.Field{Name: "logoUrl", Value: b.LogoURL.Any()})
	}
	return fields, nil
}

// CompanyFilter holds the recognized GET /companies query parameters.
type CompanyFilter struct {
	Name         string `form:"name" url:"name,omitempty"`
	MinEmployees *int   `form:"minEmployees" url:"minEmployees,omitempty" binding:"omitnil,min=0"`
	MaxEmployees *int   `form:"maxEmployees" url:"maxEmployees,omitempty" binding:"omitnil,min=0"`
}

// Check rejects ranges whose lower bound exceeds the upper one.
func (f *CompanyFilter) Check() error {
	if f.MinEmployees != nil && f.MaxEmployees != nil && *f.MinEmployees > *f.MaxEmployees {
		return ecode.New(ecode.ParamErr, "minEmployees cannot be greater than maxEmployees")
	}
	return nil
}

// Conditions converts the supplied parameters into where conditions.
func (f *CompanyFilter) Conditions() []fragment.Condition {
	var conds []fragment.Condition
	if f.Name != "" {
		conds = append(conds, fragment.ConditionFor("name", f.Name))
	}
	if f.MinEmployees != nil {
		conds = append(conds, fragment.ConditionFor("minEmployees", *f.MinEmployees))
	}
	if f.MaxEmployees != nil {
		conds = append(conds, fragment.ConditionFor("maxEmployees", *f.MaxEmployees))
	}
	return conds
}

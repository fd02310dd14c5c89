package structs

import (
	"github.com/jarredbaird/express-jobly/data/fragment"
	"github.com/jarredbaird/express-jobly/ecode"
)

// Job is a position offered by a company.
type Job struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Salary        *int    `json:"salary"`
	Equity        *string `json:"equity"`
	CompanyHandle string  `json:"companyHandle"`
}

// CompanyJob is a job as listed under its company.
type CompanyJob struct {
	ID     int     `json:"id"`
	Title  string  `json:"title"`
	Salary *int    `json:"salary"`
	Equity *string `json:"equity"`
}

// CreateJobBody is the payload of POST /jobs.
type CreateJobBody struct {
	Title         string  `json:"title" binding:"required,min=1"`
	Salary        *int    `json:"salary" binding:"omitnil,min=0"`
	Equity        *string `json:"equity" binding:"omitnil,equity"`
	CompanyHandle string  `json:"companyHandle" binding:"required,min=1,max=25"`
}

// UpdateJobBody is the payload of PATCH /jobs/:id. The id and company of a
// job cannot be changed.
type UpdateJobBody struct {
	Title  Nullable[string] `json:"title" binding:"omitnil,min=1"`
	Salary Nullable[int]    `json:"salary" binding:"omitnil,min=0"`
	Equity Nullable[string] `json:"equity" binding:"omitnil,equity"`
}

// Fields lists the supplied members as update assignments, in declaration
// order.
func (b *UpdateJobBody) Fields() ([]fragment.Field, error) {
	if b.Title.Set && !b.Title.Valid {
		return nil, ecode.New(ecode.ParamErr, "title cannot be null")
	}

	var fields []fragment.Field
	if b.Title.Set {
		fields = append(fields, fragment.Field{Name: "title", Value: b.Title.Any()})
	}
	if b.Salary.Set {
		fields = append(fields, fragment.Field{Name: "salary", Value: b.Salary.Any()})
	}
	if b.Equity.Set {
		fields = append(fields, fragment.Field{Name: "equity", Value: b.Equity.Any()})
	}
	return fields, nil
}

// JobFilter holds the recognized GET /jobs query parameters.
type JobFilter struct {
	Title     string   `form:"title" url:"title,omitempty"`
	MinSalary *int     `form:"minSalary" url:"minSalary,omitempty" binding:"omitnil,min=0"`
	MaxSalary *int     `form:"maxSalary" url:"maxSalary,omitempty" binding:"omitnil,min=0"`
	MinEquity *float64 `form:"minEquity" url:"minEquity,omitempty" binding:"omitnil,min=0,max=1"`
	MaxEquity *float64 `form:"maxEquity" url:"maxEquity,omitempty" binding:"omitnil,min=0,max=1"`
}

// Check rejects ranges whose lower bound exceeds the upper one.
func (f *JobFilter) Check() error {
	if f.MinSalary != nil && f.MaxSalary != nil && *f.MinSalary > *f.MaxSalary {
		return ecode.New(ecode.ParamErr, "minSalary cannot be greater than maxSalary")
	}
	if f.MinEquity != nil && f.MaxEquity != nil && *f.MinEquity > *f.MaxEquity {
		return ecode.New(ecode.ParamErr, "minEquity cannot be greater than maxEquity")
	}
	return nil
}

// Conditions converts the supplied parameters into where conditions.
func (f *JobFilter) Conditions() []fragment.Condition {
	var conds []fragment.Condition
	if f.Title != "" {
		conds = append(conds, fragment.ConditionFor("title", f.Title))
	}
	if f.MinSalary != nil {
		conds = append(conds, fragment.ConditionFor("minSalary", *f.MinSalary))
	}
	if f.MaxSalary != nil {
		conds = append(conds, fragment.ConditionFor("maxSalary", *f.MaxSalary))
	}
	if f.MinEquity != nil {
		conds = append(conds, fragment.ConditionFor("minEquity", *f.MinEquity))
	}
	if f.MaxEquity != nil {
		conds = append(conds, fragment.ConditionFor("maxEquity", *f.MaxEquity))
	}
	return conds
}

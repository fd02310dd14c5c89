package repository

import (
	"context"
	"testing"

	"github.com/jarredbaird/express-jobly/data/datatest"
	"github.com/jarredbaird/express-jobly/data/fragment"
	"github.com/jarredbaird/express-jobly/ecode"
	"github.com/jarredbaird/express-jobly/structs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func titles(jobs []*structs.Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.Title
	}
	return out
}

func TestJobCreate(t *testing.T) {
	d, _ := datatest.Seeded(t)
	repo := NewJobRepository(d)

	job, err := repo.Create(context.Background(), &structs.CreateJobBody{
		Title: "new", Salary: ptr(500), Equity: ptr("0.5"), CompanyHandle: "c1",
	})
	require.NoError(t, err)
	assert.NotZero(t, job.ID)
	assert.Equal(t, "new", job.Title)
	assert.Equal(t, 500, *job.Salary)
	assert.Equal(t, "0.5", *job.Equity)
	assert.Equal(t, "c1", job.CompanyHandle)

	got, err := repo.Get(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Equal(t, job, got)
}

func TestJobCreateNullables(t *testing.T) {
	d, _ := datatest.Seeded(t)
	job, err := NewJobRepository(d).Create(context.Background(), &structs.CreateJobBody{Title: "bare", CompanyHandle: "c2"})
	require.NoError(t, err)
	assert.Nil(t, job.Salary)
	assert.Nil(t, job.Equity)
}

func TestJobCreateUnknownCompany(t *testing.T) {
	d, _ := datatest.Seeded(t)
	_, err := NewJobRepository(d).Create(context.Background(), &structs.CreateJobBody{Title: "x", CompanyHandle: "nope"})
	assert.True(t, ecode.Is(err, ecode.ParamErr))
}

func TestJobFindAll(t *testing.T) {
	d, _ := datatest.Seeded(t)
	repo := NewJobRepository(d)
	ctx := context.Background()

	tests := []struct {
		name  string
		conds []fragment.Condition
		want  []string
	}{
		{"no filter", nil, []string{"j1", "j2", "j3"}},
		{"exact salary band", []fragment.Condition{
			fragment.ConditionFor("minSalary", 100000),
			fragment.ConditionFor("maxSalary", 100000),
		}, []string{"j1"}},
		{"title and max salary", []fragment.Condition{
			fragment.ConditionFor("title", "j1"),
			fragment.ConditionFor("maxSalary", 100000),
		}, []string{"j1"}},
		{"min salary is a lower bound", []fragment.Condition{
			fragment.ConditionFor("minSalary", 200000),
		}, []string{"j2", "j3"}},
		{"min equity above all", []fragment.Condition{
			fragment.ConditionFor("minEquity", 0.5),
		}, []string{}},
		{"max equity", []fragment.Condition{
			fragment.ConditionFor("maxEquity", 0.2),
		}, []string{"j1", "j2"}},
		{"title case insensitive", []fragment.Condition{
			fragment.ConditionFor("title", "J1"),
		}, []string{"j1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jobs, err := repo.FindAll(ctx, tt.conds)
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(jobs))
		})
	}
}

func TestJobGetNotFound(t *testing.T) {
	d, _ := datatest.Seeded(t)
	_, err := NewJobRepository(d).Get(context.Background(), 0)
	assert.True(t, ecode.Is(err, ecode.NotFound))
}

func TestJobUpdate(t *testing.T) {
	d, ids := datatest.Seeded(t)
	repo := NewJobRepository(d)
	ctx := context.Background()

	job, err := repo.Update(ctx, ids[0], []fragment.Field{
		{Name: "title", Value: "New"},
		{Name: "equity", Value: nil},
	})
	require.NoError(t, err)
	assert.Equal(t, "New", job.Title)
	assert.Nil(t, job.Equity)
	assert.Equal(t, 100000, *job.Salary)
	assert.Equal(t, "c1", job.CompanyHandle)

	stored, err := repo.Get(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, job, stored)
}

func TestJobUpdateErrors(t *testing.T) {
	d, ids := datatest.Seeded(t)
	repo := NewJobRepository(d)
	ctx := context.Background()

	_, err := repo.Update(ctx, 0, []fragment.Field{{Name: "title", Value: "x"}})
	assert.True(t, ecode.Is(err, ecode.NotFound))

	_, err = repo.Update(ctx, ids[0], nil)
	assert.True(t, ecode.Is(err, ecode.ParamErr))
}

func TestJobRemove(t *testing.T) {
	d, ids := datatest.Seeded(t)
	repo := NewJobRepository(d)
	ctx := context.Background()

	require.NoError(t, repo.Remove(ctx, ids[0]))
	_, err := repo.Get(ctx, ids[0])
	assert.True(t, ecode.Is(err, ecode.NotFound))

	assert.True(t, ecode.Is(repo.Remove(ctx, ids[0]), ecode.NotFound))
}

func TestJobListByCompany(t *testing.T) {
	d, ids := datatest.Seeded(t)
	jobs, err := NewJobRepository(d).ListByCompany(context.Background(), "c2")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, ids[1], jobs[0].ID)
	assert.Equal(t, "0.2", *jobs[0].Equity)

	none, err := NewJobRepository(d).ListByCompany(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestJobFindAllMissingTable(t *testing.T) {
	d, _ := datatest.Seeded(t)
	_, err := d.DB().Exec(`DROP TABLE jobs`)
	require.NoError(t, err)

	_, err = NewJobRepository(d).FindAll(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, ecode.ServerErr, ecode.CodeOf(err))
}

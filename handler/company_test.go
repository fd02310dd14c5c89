package handler

import (
	"net/http"
	"testing"

	"github.com/jarredbaird/express-jobly/structs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type companyBody struct {
	Company structs.CompanyDetail `json:"company"`
}

type companiesBody struct {
	Companies []structs.Company `json:"companies"`
}

func TestCreateCompany(t *testing.T) {
	f := setup(t)
	newCompany := map[string]any{
		"handle":       "new",
		"name":         "New",
		"description":  "DescNew",
		"numEmployees": 10,
		"logoUrl":      "http://new.img",
	}

	w := f.do(http.MethodPost, "/companies", newCompany, f.user)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = f.do(http.MethodPost, "/companies", newCompany, f.admin)
	require.Equal(t, http.StatusCreated, w.Code)
	company := decode[companyBody](t, w).Company
	assert.Equal(t, "new", company.Handle)
	assert.Equal(t, 10, *company.NumEmployees)

	t.Run("duplicate", func(t *testing.T) {
		w := f.do(http.MethodPost, "/companies", newCompany, f.admin)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("derived handle", func(t *testing.T) {
		w := f.do(http.MethodPost, "/companies", map[string]any{"name": "Acme Corp"}, f.admin)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "acme-corp", decode[companyBody](t, w).Company.Handle)
	})

	t.Run("invalid logo", func(t *testing.T) {
		w := f.do(http.MethodPost, "/companies", map[string]any{"name": "Bad", "logoUrl": "not-a-url"}, f.admin)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[map[string]any](t, w)["errors"], "logoUrl")
	})
}

func TestListCompanies(t *testing.T) {
	f := setup(t)

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"c1", "c2", "c3"}},
		{"name=C2", []string{"c2"}},
		{"minEmployees=2", []string{"c2", "c3"}},
		{"maxEmployees=2", []string{"c1", "c2"}},
		{"minEmployees=2&maxEmployees=2", []string{"c2"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := f.do(http.MethodGet, "/companies?"+tt.query, nil, "")
			require.Equal(t, http.StatusOK, w.Code)

			handles := []string{}
			for _, c := range decode[companiesBody](t, w).Companies {
				handles = append(handles, c.Handle)
			}
			assert.Equal(t, tt.want, handles)
		})
	}

	for _, q := range []string{"nope=1", "minEmployees=3&maxEmployees=1"} {
		w := f.do(http.MethodGet, "/companies?"+q, nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestGetCompany(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodGet, "/companies/c1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	company := decode[companyBody](t, w).Company
	assert.Equal(t, "C1", company.Name)
	require.Len(t, company.Jobs, 1)
	assert.Equal(t, f.jobIDs[0], company.Jobs[0].ID)
	assert.Equal(t, "j1", company.Jobs[0].Title)

	w = f.do(http.MethodGet, "/companies/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCompany(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodPatch, "/companies/c1", map[string]any{"name": "C1-new", "logoUrl": nil}, f.admin)
	require.Equal(t, http.StatusOK, w.Code)
	company := decode[companyBody](t, w).Company
	assert.Equal(t, "C1-new", company.Name)
	assert.Nil(t, company.LogoURL)
	assert.Equal(t, "Desc1", company.Description)

	w = f.do(http.MethodPatch, "/companies/c1", map[string]any{"handle": "c1-new"}, f.admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodPatch, "/companies/c1", map[string]any{"name": nil}, f.admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodPatch, "/companies/nope", map[string]any{"name": "x"}, f.admin)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(http.MethodPatch, "/companies/c1", map[string]any{"name": "x"}, f.user)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteCompany(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodDelete, "/companies/c1", nil, f.admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]any{"deleted": "c1"}, decode[map[string]any](t, w))

	w = f.do(http.MethodGet, "/jobs?title=j1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[jobsBody](t, w).Jobs)

	w = f.do(http.MethodDelete, "/companies/c1", nil, f.admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

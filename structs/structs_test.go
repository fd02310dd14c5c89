package structs

import (
	"encoding/json"
	"testing"

	"github.com/jarredbaird/express-jobly/data/fragment"
	"github.com/jarredbaird/express-jobly/ecode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNullableUnmarshal(t *testing.T) {
	var body UpdateJobBody
	require.NoError(t, json.Unmarshal([]byte(`{"salary":null,"equity":"0.5"}`), &body))

	assert.False(t, body.Title.Set)
	assert.True(t, body.Salary.Set)
	assert.False(t, body.Salary.Valid)
	assert.Nil(t, body.Salary.Any())
	assert.Equal(t, Of("0.5"), body.Equity)
}

func TestNullableMarshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A Nullable[int] `json:"a"`
		B Nullable[int] `json:"b"`
	}{A: Of(3), B: Null[int]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3,"b":null}`, string(out))
}

func TestUpdateJobFields(t *testing.T) {
	body := UpdateJobBody{Title: Of("New"), Equity: Null[string]()}
	fields, err := body.Fields()
	require.NoError(t, err)
	assert.Equal(t, []fragment.Field{
		{Name: "title", Value: "New"},
		{Name: "equity", Value: nil},
	}, fields)

	empty, err := (&UpdateJobBody{}).Fields()
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUpdateJobNullTitle(t *testing.T) {
	_, err := (&UpdateJobBody{Title: Null[string]()}).Fields()
	assert.True(t, ecode.Is(err, ecode.ParamErr))
}

func TestUpdateCompanyFields(t *testing.T) {
	body := UpdateCompanyBody{NumEmployees: Of(10), LogoURL: Null[string]()}
	fields, err := body.Fields()
	require.NoError(t, err)
	assert.Equal(t, []fragment.Field{
		{Name: "numEmployees", Value: 10},
		{Name: "logoUrl", Value: nil},
	}, fields)

	_, err = (&UpdateCompanyBody{Description: Null[string]()}).Fields()
	assert.Error(t, err)
}

func TestJobFilterConditions(t *testing.T) {
	f := JobFilter{Title: "j1", MinSalary: ptr(100), MaxEquity: ptr(0.5)}
	assert.Equal(t, []fragment.Condition{
		{Kind: fragment.Contains, Name: "title", Value: "j1"},
		{Kind: fragment.Min, Name: "salary", Value: 100},
		{Kind: fragment.Max, Name: "equity", Value: 0.5},
	}, f.Conditions())

	assert.Empty(t, (&JobFilter{}).Conditions())
}

func TestJobFilterCheck(t *testing.T) {
	assert.NoError(t, (&JobFilter{MinSalary: ptr(1), MaxSalary: ptr(1)}).Check())
	assert.Error(t, (&JobFilter{MinSalary: ptr(2), MaxSalary: ptr(1)}).Check())
	assert.Error(t, (&JobFilter{MinEquity: ptr(0.5), MaxEquity: ptr(0.1)}).Check())
}

func TestCompanyFilter(t *testing.T) {
	f := CompanyFilter{Name: "c", MinEmployees: ptr(2), MaxEmployees: ptr(3)}
	assert.NoError(t, f.Check())
	assert.Equal(t, []fragment.Condition{
		{Kind: fragment.Contains, Name: "name", Value: "c"},
		{Kind: fragment.Min, Name: "employees", Value: 2},
		{Kind: fragment.Max, Name: "employees", Value: 3},
	}, f.Conditions())

	f.MinEmployees = ptr(4)
	assert.True(t, ecode.Is(f.Check(), ecode.ParamErr))
}

package validator

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/jarredbaird/express-jobly/structs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCreateJobBody(t *testing.T) {
	tests := []struct {
		name   string
		body   structs.CreateJobBody
		failed []string
	}{
		{"valid", structs.CreateJobBody{Title: "j", Salary: ptr(10), Equity: ptr("0.5"), CompanyHandle: "c1"}, nil},
		{"nullable members omitted", structs.CreateJobBody{Title: "j", CompanyHandle: "c1"}, nil},
		{"missing handle", structs.CreateJobBody{Title: "j"}, []string{"companyHandle"}},
		{"negative salary", structs.CreateJobBody{Title: "j", Salary: ptr(-1), CompanyHandle: "c1"}, []string{"salary"}},
		{"bad equity", structs.CreateJobBody{Title: "j", Equity: ptr("not-equity-value"), CompanyHandle: "c1"}, []string{"equity"}},
		{"equity above one", structs.CreateJobBody{Title: "j", Equity: ptr("1.5"), CompanyHandle: "c1"}, []string{"equity"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(&tt.body)
			if tt.failed == nil {
				assert.Empty(t, errs)
				return
			}
			for _, f := range tt.failed {
				assert.Contains(t, errs, f)
			}
		})
	}
}

func TestUpdateJobBodyNullable(t *testing.T) {
	var body structs.UpdateJobBody
	require.NoError(t, json.Unmarshal([]byte(`{"salary":null,"equity":"0.9"}`), &body))
	assert.Empty(t, ValidateStruct(&body))

	require.NoError(t, json.Unmarshal([]byte(`{"equity":"2"}`), &body))
	errs := ValidateStruct(&body)
	assert.Equal(t, "The field 'equity' must be a decimal between 0 and 1.", errs["equity"])

	body = structs.UpdateJobBody{}
	require.NoError(t, json.Unmarshal([]byte(`{"salary":-5}`), &body))
	assert.Equal(t, "The field 'salary' must be at least 0.", ValidateStruct(&body)["salary"])
}

func TestCompanyLogoURL(t *testing.T) {
	body := structs.CreateCompanyBody{Name: "Acme", LogoURL: ptr("not a url")}
	assert.Contains(t, ValidateStruct(&body), "logoUrl")

	body.LogoURL = ptr("http://acme.img")
	assert.Empty(t, ValidateStruct(&body))
}

func TestUnknownKeys(t *testing.T) {
	q := url.Values{"title": {"j"}, "minSalary": {"1"}, "zeta": {"x"}, "alpha": {"y"}}
	assert.Equal(t, []string{"alpha", "zeta"}, UnknownKeys(q, &structs.JobFilter{}))
	assert.Empty(t, UnknownKeys(url.Values{"name": {"c"}}, structs.CompanyFilter{}))
}

func TestMessagesIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, Messages(assert.AnError))
}

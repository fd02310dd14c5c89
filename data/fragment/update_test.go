package fragment

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jarredbaird/express-jobly/ecode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateMapsColumnNames(t *testing.T) {
	frag, err := Update([]Field{{Name: "numEmployees", Value: 100}}, Names{"numEmployees": "num_employees"})
	require.NoError(t, err)

	assert.Equal(t, `"num_employees"=$1`, frag.Clause)
	assert.Equal(t, []any{100}, frag.Values)
	assert.Equal(t, 2, frag.Next())
}

func TestUpdateFallsBackToFieldName(t *testing.T) {
	frag, err := Update([]Field{
		{Name: "title", Value: "New"},
		{Name: "salary", Value: nil},
		{Name: "companyHandle", Value: "c3"},
	}, Names{"companyHandle": "company_handle"})
	require.NoError(t, err)

	assert.Equal(t, `"title"=$1, "salary"=$2, "company_handle"=$3`, frag.Clause)
	assert.Equal(t, []any{"New", nil, "c3"}, frag.Values)
}

func TestUpdateEmpty(t *testing.T) {
	_, err := Update(nil, Names{})
	require.Error(t, err)
	assert.Equal(t, ecode.ParamErr, ecode.CodeOf(err))
	assert.Equal(t, ErrNoUpdateData, ecode.MessageOf(err))

	_, err = UpdateMap(map[string]any{}, nil)
	assert.True(t, ecode.Is(err, ecode.ParamErr))
}

func TestUpdatePlaceholdersMatchValues(t *testing.T) {
	for n := 1; n <= 12; n++ {
		fields := make([]Field, n)
		for i := range fields {
			fields[i] = Field{Name: fmt.Sprintf("f%d", i), Value: i}
		}

		frag, err := Update(fields, nil)
		require.NoError(t, err)

		parts := strings.Split(frag.Clause, ", ")
		require.Len(t, parts, len(frag.Values))
		for k := 1; k <= n; k++ {
			assert.Equal(t, fmt.Sprintf(`"f%d"=$%d`, k-1, k), parts[k-1])
			assert.Equal(t, k-1, frag.Values[k-1])
		}
	}
}

func TestUpdateMapSortsKeys(t *testing.T) {
	frag, err := UpdateMap(map[string]any{"title": "x", "equity": "0.2", "salary": 5}, nil)
	require.NoError(t, err)

	assert.Equal(t, `"equity"=$1, "salary"=$2, "title"=$3`, frag.Clause)
	assert.Equal(t, []any{"0.2", 5, "x"}, frag.Values)
}

func TestFragmentArgs(t *testing.T) {
	frag, err := Update([]Field{{Name: "title", Value: "x"}}, nil)
	require.NoError(t, err)

	assert.Equal(t, []any{"x", 42}, frag.Args(42))
	assert.Equal(t, []any{"x"}, frag.Values)
}

func TestQuoteEscapes(t *testing.T) {
	assert.Equal(t, `"we""ird"`, quote(`we"ird`))
}

package version

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Contains(t, info.String(), "Version: "+Version)
}

func TestInfoJSON(t *testing.T) {
	s, err := Info{Version: "1.2.3", Revision: "abc1234"}.JSON()
	require.NoError(t, err)

	var out map[string]string
	require.NoError(t, json.Unmarshal([]byte(s), &out))
	assert.Equal(t, "1.2.3", out["version"])
	assert.Equal(t, "abc1234", out["revision"])
}

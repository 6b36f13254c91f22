package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildVersionInfo(t *testing.T) {
	stamped := func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Version: "v1.4.0"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
			},
		}, true
	}
	missing := func() (*debug.BuildInfo, bool) { return nil, false }

	tests := []struct {
		name       string
		version    string
		read       func() (*debug.BuildInfo, bool)
		wantVer    string
		wantCommit string
	}{
		{"configured version wins", "2.0.0", stamped, "2.0.0", "abc123"},
		{"module version as fallback", "", stamped, "v1.4.0", "abc123"},
		{"no build info", "", missing, defaultVersion, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := buildVersionInfo(tt.version, tt.read)
			assert.Equal(t, tt.wantVer, info.Version)
			assert.Equal(t, tt.wantCommit, info.GitCommit)
			assert.Equal(t, runtime.Version(), info.GoVersion)
		})
	}
}

func TestHandleVersion(t *testing.T) {
	w := httptest.NewRecorder()
	HandleVersion("9.9.9").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var info VersionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "9.9.9", info.Version)
}

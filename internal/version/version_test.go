package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hal9000y/gmail-send-mcp/internal/version"
)

func TestString(t *testing.T) {
	s := version.String()

	assert.Contains(t, s, version.Version)
	assert.Contains(t, s, version.ReleaseDate)
}

func TestInfo(t *testing.T) {
	info := version.Info()

	assert.Equal(t, version.Name, info["name"])
	assert.Equal(t, version.Version, info["version"])
	assert.Equal(t, version.ReleaseDate, info["release_date"])
	assert.Equal(t, version.Description, info["description"])

	features, ok := info["features"].([]string)
	require.True(t, ok)
	assert.NotEmpty(t, features)
}

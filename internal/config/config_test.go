package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Env(t *testing.T) {
	t.Setenv("XIBO_MCP_CONFIG", "")
	t.Setenv("CMS_URL", "https://cms.example.com")
	t.Setenv("CMS_CLIENT_ID", "abc")
	t.Setenv("CMS_CLIENT_SECRET", "shh")
	t.Setenv("CMS_REQUESTS_PER_SECOND", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://cms.example.com", cfg.CMSURL)
	assert.Equal(t, "abc", cfg.ClientID)
	assert.Equal(t, 2.5, cfg.RequestsPerSecond)
	assert.True(t, cfg.HasCMS())
	assert.Equal(t, "https://cms.example.com/api/", cfg.APIURL())
	assert.Equal(t, "https://cms.example.com/api/authorize/access_token", cfg.TokenURL())
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cmsUrl: https://file.example.com\nclientId: from-file\nuploadDir: /srv/uploads\n"), 0o644))

	t.Setenv("XIBO_MCP_CONFIG", path)
	t.Setenv("CMS_URL", "https://env.example.com")
	t.Setenv("CMS_CLIENT_ID", "")
	t.Setenv("CMS_CLIENT_SECRET", "")
	t.Setenv("CMS_REQUESTS_PER_SECOND", "")

	cfg, err := Load()
	require.NoError(t, err)

	// Environment wins over the file; file fills the rest.
	assert.Equal(t, "https://env.example.com", cfg.CMSURL)
	assert.Equal(t, "from-file", cfg.ClientID)
	assert.Equal(t, "/srv/uploads", cfg.UploadDir)
}

func TestLoad_MissingURL(t *testing.T) {
	t.Setenv("XIBO_MCP_CONFIG", "")
	t.Setenv("CMS_URL", "")
	t.Setenv("CMS_CLIENT_ID", "")
	t.Setenv("CMS_CLIENT_SECRET", "")
	t.Setenv("CMS_REQUESTS_PER_SECOND", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.HasCMS())
}

func TestLoad_BadRate(t *testing.T) {
	t.Setenv("XIBO_MCP_CONFIG", "")
	t.Setenv("CMS_REQUESTS_PER_SECOND", "fast")

	_, err := Load()
	require.Error(t, err)
}

// Package config loads the process-wide configuration. Values are read
// once at startup and treated as read-only for the lifetime of the
// process; tools never mutate them.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"sigs.k8s.io/yaml"
)

// Config holds the CMS connection settings and local directory paths.
type Config struct {
	// CMSURL is the CMS root, e.g. "https://cms.example.com". It may be
	// empty; tools then report a configuration failure instead of
	// calling out.
	CMSURL string `json:"cmsUrl"`

	// OAuth2 client-credentials material for the CMS API.
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`

	// Local directories for uploads, downloads and generated files.
	UploadDir    string `json:"uploadDir"`
	DownloadDir  string `json:"downloadDir"`
	GeneratedDir string `json:"generatedDir"`

	// RequestsPerSecond caps outgoing CMS requests when positive.
	RequestsPerSecond float64 `json:"requestsPerSecond"`
}

// Load reads configuration from the optional YAML file named by
// XIBO_MCP_CONFIG, then applies environment variable overrides.
func Load() (*Config, error) {
	cfg := &Config{}

	if path := os.Getenv("XIBO_MCP_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	setString(&cfg.CMSURL, "CMS_URL")
	setString(&cfg.ClientID, "CMS_CLIENT_ID")
	setString(&cfg.ClientSecret, "CMS_CLIENT_SECRET")
	setString(&cfg.UploadDir, "CMS_UPLOAD_DIR")
	setString(&cfg.DownloadDir, "CMS_DOWNLOAD_DIR")
	setString(&cfg.GeneratedDir, "CMS_GENERATED_DIR")

	if v := os.Getenv("CMS_REQUESTS_PER_SECOND"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("CMS_REQUESTS_PER_SECOND: %w", err)
		}
		cfg.RequestsPerSecond = rps
	}

	return cfg, nil
}

// HasCMS reports whether a CMS URL is configured.
func (c *Config) HasCMS() bool {
	return c.CMSURL != ""
}

// APIURL returns the CMS API root with a trailing slash.
func (c *Config) APIURL() string {
	return strings.TrimRight(c.CMSURL, "/") + "/api/"
}

// TokenURL returns the OAuth2 token endpoint of the CMS.
func (c *Config) TokenURL() string {
	return strings.TrimRight(c.CMSURL, "/") + "/api/authorize/access_token"
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

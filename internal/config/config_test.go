package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		check   func(*testing.T, *Config)
		wantErr string
	}{
		{
			name: "empty config gets defaults",
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultMaxBodySize, c.Fetch.MaxBodySize)
				assert.Equal(t, DefaultDisplayFormat, c.Display.Format)
				assert.Equal(t, DefaultDateLayout, c.Display.DateLayout)
				assert.Equal(t, DefaultLogLevel, c.Logging.Level)
				assert.Equal(t, DefaultLogFormat, c.Logging.Format)
			},
		},
		{
			name: "negative timeout reset",
			modify: func(c *Config) {
				c.Fetch.Timeout = -time.Second
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, DefaultFetchTimeout, c.Fetch.Timeout)
			},
		},
		{
			name: "positive timeout kept",
			modify: func(c *Config) {
				c.Fetch.Timeout = 5 * time.Second
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, 5*time.Second, c.Fetch.Timeout)
			},
		},
		{
			name: "format normalized",
			modify: func(c *Config) {
				c.Display.Format = " JSON "
			},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, FormatJSON, c.Display.Format)
			},
		},
		{
			name: "unknown format rejected",
			modify: func(c *Config) {
				c.Display.Format = "xml"
			},
			wantErr: "invalid display.format",
		},
		{
			name: "bad body size rejected",
			modify: func(c *Config) {
				c.Fetch.MaxBodySize = "lots"
			},
			wantErr: "invalid fetch.max_body_size",
		},
		{
			name: "zero body size rejected",
			modify: func(c *Config) {
				c.Fetch.MaxBodySize = "0"
			},
			wantErr: "greater than zero",
		},
		{
			name: "overflowing body size rejected",
			modify: func(c *Config) {
				c.Fetch.MaxBodySize = "99999999999GB"
			},
			wantErr: "size too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			if tt.modify != nil {
				tt.modify(cfg)
			}
			err := cfg.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg)
	assert.Equal(t, DefaultFetchTimeout, cfg.Fetch.Timeout)
	assert.Empty(t, cfg.Fetch.ProxyURL)
	assert.False(t, cfg.Fetch.InsecureSkipVerify)
	assert.Equal(t, int64(10<<20), cfg.Fetch.MaxBodyBytes())
	assert.Equal(t, FormatCard, cfg.Display.Format)
	assert.Equal(t, DefaultDateLayout, cfg.Display.DateLayout)
	assert.NoError(t, cfg.Validate())
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		wantErr  bool
	}{
		{"1024", 1024, false},
		{"512B", 512, false},
		{"4KB", 4 << 10, false},
		{"10MB", 10 << 20, false},
		{" 1gb ", 1 << 30, false},
		{"", 0, true},
		{"MB", 0, true},
		{"ten", 0, true},
		{"-1MB", 0, true},
		{"8589934591GB", 8589934591 << 30, false},
		{"8589934592GB", 0, true},
		{"99999999999GB", 0, true},
		{"9223372036854775807KB", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, err := ParseSize(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestFetchConfig_MaxBodyBytesFallback(t *testing.T) {
	assert.Equal(t, int64(10<<20), FetchConfig{MaxBodySize: "garbage"}.MaxBodyBytes())
	assert.Equal(t, int64(1<<20), FetchConfig{MaxBodySize: "1MB"}.MaxBodyBytes())
}

func TestIsValidFormat(t *testing.T) {
	for _, f := range ValidFormats {
		assert.True(t, IsValidFormat(f))
	}
	assert.False(t, IsValidFormat("html"))
}

func TestConfigDir(t *testing.T) {
	assert.True(t, strings.HasSuffix(ConfigDir(), ".siteview"))
	assert.Equal(t, filepath.Join(ConfigDir(), "config.yaml"), ConfigFilePath())
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { os.Chdir(originalWd) })
	t.Setenv("HOME", tmpDir)
	return tmpDir
}

func TestLoadWithViper_NoConfigFile(t *testing.T) {
	chdirTemp(t)

	cfg, err := LoadWithViper(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, FormatCard, cfg.Display.Format)
	assert.Equal(t, DefaultMaxBodySize, cfg.Fetch.MaxBodySize)
}

func TestLoadWithViper_ConfigInWorkingDir(t *testing.T) {
	dir := chdirTemp(t)
	content := `
fetch:
  timeout: 15s
  insecure_skip_verify: true
display:
  format: yaml
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644))

	cfg, err := LoadWithViper(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.Fetch.Timeout)
	assert.True(t, cfg.Fetch.InsecureSkipVerify)
	assert.Equal(t, FormatYAML, cfg.Display.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadWithViper_ExplicitFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  date_layout: \"02 Jan 2006\"\n"), 0644))

	cfg, err := LoadWithViper(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "02 Jan 2006", cfg.Display.DateLayout)
}

func TestLoadWithViper_ExplicitFileMissing(t *testing.T) {
	dir := chdirTemp(t)

	cfg, err := LoadWithViper(viper.New(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadWithViper_InvalidYAML(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("invalid: yaml: content: ["), 0644))

	cfg, err := LoadWithViper(viper.New(), "")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadWithViper_InvalidFormat(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("display:\n  format: xml\n"), 0644))

	_, err := LoadWithViper(viper.New(), "")
	assert.ErrorContains(t, err, "invalid display.format")
}

func TestLoadWithViper_Environment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SITEVIEW_DISPLAY_FORMAT", "json")
	t.Setenv("SITEVIEW_FETCH_TIMEOUT", "3s")

	cfg, err := LoadWithViper(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, FormatJSON, cfg.Display.Format)
	assert.Equal(t, 3*time.Second, cfg.Fetch.Timeout)
}

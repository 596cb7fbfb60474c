package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfig_Defaults(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, ",", config.CSV.Delimiter)
	assert.False(t, config.CSV.IncludeHeaders)
	assert.Equal(t, 6, config.Output.Precision)
	assert.Equal(t, "csv", config.Output.Format)
	assert.Equal(t, "Charges", config.Output.SheetName)
	assert.False(t, config.Parser.SniffContent)
	assert.False(t, config.Parser.MergeDuplicateCycles)
	assert.Equal(t, 2000, config.Chart.MaxPoints)
	assert.Equal(t, 8.0, config.Chart.WidthInches)
	assert.Equal(t, 4.5, config.Chart.HeightInches)
}

func TestDefault(t *testing.T) {
	config := Default()
	assert.Equal(t, 6, config.Output.Precision)
	assert.Equal(t, ',', config.CSV.Comma())
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())

	testEnvVars := map[string]string{
		"CHARGE_LOG_LEVEL":                     "debug",
		"CHARGE_LOG_FORMAT":                    "json",
		"CHARGE_CSV_DELIMITER":                 ";",
		"CHARGE_CSV_INCLUDE_HEADERS":           "true",
		"CHARGE_OUTPUT_PRECISION":              "3",
		"CHARGE_OUTPUT_FORMAT":                 "xlsx",
		"CHARGE_PARSER_SNIFF_CONTENT":          "true",
		"CHARGE_PARSER_MERGE_DUPLICATE_CYCLES": "true",
		"CHARGE_CHART_MAX_POINTS":              "500",
	}
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, ";", config.CSV.Delimiter)
	assert.Equal(t, ';', config.CSV.Comma())
	assert.True(t, config.CSV.IncludeHeaders)
	assert.Equal(t, 3, config.Output.Precision)
	assert.Equal(t, "xlsx", config.Output.Format)
	assert.True(t, config.Parser.SniffContent)
	assert.True(t, config.Parser.MergeDuplicateCycles)
	assert.Equal(t, 500, config.Chart.MaxPoints)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	clearTestEnvVars(t)
	tempDir := t.TempDir()

	configContent := `
log:
  level: "warn"
  format: "json"
csv:
  delimiter: "|"
output:
  precision: 4
  sheet_name: "Run 7"
chart:
  width_inches: 10
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600))
	chdir(t, tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "|", config.CSV.Delimiter)
	assert.Equal(t, 4, config.Output.Precision)
	assert.Equal(t, "Run 7", config.Output.SheetName)
	assert.Equal(t, 10.0, config.Chart.WidthInches)
	assert.Equal(t, 4.5, config.Chart.HeightInches)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	clearTestEnvVars(t)
	tempDir := t.TempDir()

	configContent := `
log:
  level: "warn"
csv:
  delimiter: "|"
output:
  precision: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(configContent), 0600))

	t.Setenv("CHARGE_LOG_LEVEL", "error")
	t.Setenv("CHARGE_OUTPUT_PRECISION", "8")
	chdir(t, tempDir)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, "|", config.CSV.Delimiter)
	assert.Equal(t, 8, config.Output.Precision)
}

func TestInitializeConfig_InvalidFile(t *testing.T) {
	clearTestEnvVars(t)
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte("log: [unterminated"), 0600))
	chdir(t, tempDir)

	_, err := InitializeConfig()
	assert.Error(t, err)
}

func TestInitializeConfig_InvalidValue(t *testing.T) {
	clearTestEnvVars(t)
	chdir(t, t.TempDir())
	t.Setenv("CHARGE_OUTPUT_PRECISION", "20")

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.precision must be between 0 and 12")
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name:         "invalid log level",
			modifyConfig: func(c *Config) { c.Log.Level = "invalid" },
			expectError:  "invalid log level",
		},
		{
			name:         "invalid log format",
			modifyConfig: func(c *Config) { c.Log.Format = "xml" },
			expectError:  "invalid log.format",
		},
		{
			name:         "invalid CSV delimiter",
			modifyConfig: func(c *Config) { c.CSV.Delimiter = "abc" },
			expectError:  "csv.delimiter must be a single character",
		},
		{
			name:         "negative precision",
			modifyConfig: func(c *Config) { c.Output.Precision = -1 },
			expectError:  "output.precision must be between 0 and 12",
		},
		{
			name:         "unknown output format",
			modifyConfig: func(c *Config) { c.Output.Format = "pdf" },
			expectError:  "invalid output.format",
		},
		{
			name:         "empty sheet name",
			modifyConfig: func(c *Config) { c.Output.SheetName = "" },
			expectError:  "output.sheet_name",
		},
		{
			name:         "zero chart width",
			modifyConfig: func(c *Config) { c.Chart.WidthInches = 0 },
			expectError:  "chart.width_inches",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
		want   logrus.Level
		json   bool
	}{
		{name: "text format info level", level: "info", format: "text", want: logrus.InfoLevel},
		{name: "json format debug level", level: "debug", format: "json", want: logrus.DebugLevel, json: true},
		{name: "bad level falls back", level: "loud", format: "text", want: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Default()
			config.Log.Level = tt.level
			config.Log.Format = tt.format

			logger := ConfigureLoggingFromConfig(config)
			assert.Equal(t, tt.want, logger.GetLevel())
			_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.json, isJSON)
			assert.NotNil(t, NewLogger(config))
		})
	}
}

func TestLoadEnv(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)
	assert.Equal(t, "", LoadEnv(nil))

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ".env"), []byte("CHARGE_TEST_FROM_DOTENV=loaded\n"), 0600))
	t.Setenv("CHARGE_TEST_FROM_DOTENV", "")
	require.NoError(t, os.Unsetenv("CHARGE_TEST_FROM_DOTENV"))

	assert.Equal(t, ".env", LoadEnv(nil))
	assert.Equal(t, "loaded", GetEnv("CHARGE_TEST_FROM_DOTENV", "missing"))
	assert.Equal(t, "fallback", GetEnv("CHARGE_TEST_NEVER_SET", "fallback"))
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(originalDir))
	})
}

// clearTestEnvVars unsets overrides so tests see only what they set; t.Setenv
// restores the previous values afterwards.
func clearTestEnvVars(t *testing.T) {
	envVars := []string{
		"CHARGE_LOG_LEVEL",
		"CHARGE_LOG_FORMAT",
		"CHARGE_CSV_DELIMITER",
		"CHARGE_CSV_INCLUDE_HEADERS",
		"CHARGE_OUTPUT_PRECISION",
		"CHARGE_OUTPUT_FORMAT",
		"CHARGE_OUTPUT_SHEET_NAME",
		"CHARGE_PARSER_SNIFF_CONTENT",
		"CHARGE_PARSER_MERGE_DUPLICATE_CYCLES",
		"CHARGE_CHART_MAX_POINTS",
		"CHARGE_CHART_WIDTH_INCHES",
		"CHARGE_CHART_HEIGHT_INCHES",
	}

	for _, envVar := range envVars {
		t.Setenv(envVar, "")
		require.NoError(t, os.Unsetenv(envVar))
	}
}

package config

import (
	"testing"
	"time"

	"gocontrast/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "CONTRAST_OUTPUT_FORMAT", "CONTRAST_PRETTY",
		"CONTRAST_MAX_CONCURRENT", "CONTRAST_BATCH_TIMEOUT", "DESIGN_SHEET", "DESIGN_JSON_PATH"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "INFO", cfg.Log.Level)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.True(t, cfg.Output.Pretty)
	assert.Equal(t, 4, cfg.Batch.MaxConcurrent)
	assert.Equal(t, 30*time.Second, cfg.Batch.Timeout)
	assert.Equal(t, "Sheet1", cfg.Design.Sheet)
	assert.Equal(t, "columns", cfg.Design.JSONPath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CONTRAST_OUTPUT_FORMAT", "TEXT")
	t.Setenv("CONTRAST_PRETTY", "false")
	t.Setenv("CONTRAST_MAX_CONCURRENT", "16")
	t.Setenv("CONTRAST_BATCH_TIMEOUT", "2m")
	t.Setenv("DESIGN_SHEET", "design")
	t.Setenv("DESIGN_JSON_PATH", "runs.0.regressors")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", cfg.Log.Level)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.False(t, cfg.Output.Pretty)
	assert.Equal(t, 16, cfg.Batch.MaxConcurrent)
	assert.Equal(t, 2*time.Minute, cfg.Batch.Timeout)
	assert.Equal(t, "design", cfg.Design.Sheet)
	assert.Equal(t, "runs.0.regressors", cfg.Design.JSONPath)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"LOG_LEVEL":               "VERBOSE",
		"CONTRAST_OUTPUT_FORMAT":  "yaml",
		"CONTRAST_MAX_CONCURRENT": "0",
		"CONTRAST_BATCH_TIMEOUT":  "-1s",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			cfg, err := Load()
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
		})
	}
}

func TestUnparsableNumbersFallBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CONTRAST_OUTPUT_FORMAT", "")
	t.Setenv("CONTRAST_MAX_CONCURRENT", "many")
	t.Setenv("CONTRAST_BATCH_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Batch.MaxConcurrent)
	assert.Equal(t, 30*time.Second, cfg.Batch.Timeout)
}

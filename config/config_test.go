package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("ML_SERVICE_URL", "")
	t.Setenv("UPLOAD_DIR", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "farmtwin.db", cfg.DBPath)
	assert.Equal(t, "historical_uploads", cfg.UploadDir)
	// unset means the mock prediction client is used
	assert.Empty(t, cfg.MLServiceURL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("ML_SERVICE_URL", "http://ml.internal:5000/api")

	cfg := Load()
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "http://ml.internal:5000/api", cfg.MLServiceURL)
}

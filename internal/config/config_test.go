package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(EnvBackendURL, "")
	testChdir(t, dir)
	return dir
}

func TestSaveConfigCreatesDirectories(t *testing.T) {
	isolate(t)

	cfg := Config{BackendURL: "http://backend:3001"}
	require.NoError(t, cfg.Save())

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "http://localhost:3001", cfg.BackendURL)
	assert.Equal(t, 5*time.Second, cfg.HealthTimeout)
	assert.Equal(t, 10*time.Second, cfg.CallTimeout)
}

func TestSaveLoadRoundtripWithAllFields(t *testing.T) {
	isolate(t)

	original := Config{
		BackendURL:         "https://calls.example.com",
		HealthTimeout:      2 * time.Second,
		CallTimeout:        20 * time.Second,
		DefaultDoctorID:    "dr_sarah_123",
		DefaultDoctorName:  "Sarah",
		DefaultPatientID:   "7",
		DefaultPatientName: "Ahmed Khan",
	}
	require.NoError(t, original.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &original, loaded)
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(Path()), 0700))
	require.NoError(t, os.WriteFile(Path(), []byte("backend_url: http://10.0.0.5:3001\ncall_timeout: 30s\n"), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:3001", cfg.BackendURL)
	assert.Equal(t, 30*time.Second, cfg.CallTimeout)
	assert.Equal(t, 5*time.Second, cfg.HealthTimeout)
	assert.Equal(t, "184", cfg.DefaultDoctorID)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(Path()), 0700))
	require.NoError(t, os.WriteFile(Path(), []byte("backend_url: [\n"), 0600))

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)
	require.NoError(t, (&Config{BackendURL: "http://file:3001"}).Save())
	t.Setenv(EnvBackendURL, "http://env:3001")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://env:3001", cfg.BackendURL)
}

func TestDotEnvFileIsRead(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.Unsetenv(EnvBackendURL))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvBackendURL+"=http://dotenv:3001\n"), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://dotenv:3001", cfg.BackendURL)
}

func TestValidateRejectsBadURL(t *testing.T) {
	for _, raw := range []string{"localhost:3001", "ftp://x", "http://"} {
		err := (&Config{BackendURL: raw}).Validate()
		assert.Error(t, err, raw)
	}
	assert.NoError(t, (&Config{BackendURL: "http://localhost:3001"}).Validate())
}

func TestLoadFileIgnoresEnvOverride(t *testing.T) {
	isolate(t)
	require.NoError(t, (&Config{BackendURL: "http://stored:3001"}).Save())
	t.Setenv(EnvBackendURL, "http://env:3001")

	stored, err := LoadFile()
	require.NoError(t, err)
	assert.Equal(t, "http://stored:3001", stored.BackendURL)
	assert.Equal(t, "184", stored.DefaultDoctorID)

	effective, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://env:3001", effective.BackendURL)
}

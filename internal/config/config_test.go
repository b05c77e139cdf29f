package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, CipherAESGCM, cfg.Cipher)
	assert.Equal(t, DefaultCacheID, cfg.CacheID)
}

func TestMergeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := "backend: sqlite\ncipher: chacha20poly1305\ncache_id: cache1\ndevice_id: d1\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	cfg := Default()
	require.NoError(t, cfg.mergeFile(path))
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, CipherChaCha20, cfg.Cipher)
	assert.Equal(t, "cache1", cfg.CacheID)
	assert.Equal(t, "d1", cfg.DeviceID)
	assert.Empty(t, cfg.AccountID)
}

func TestMergeFile_Errors(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.mergeFile(filepath.Join(t.TempDir(), "missing.yaml")))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: [unclosed"), 0o600))
	assert.Error(t, cfg.mergeFile(path))
}

func TestMergeEnv_OverridesNonEmpty(t *testing.T) {
	env := map[string]string{
		"IAPSTORE_PRIVATE_KEY": "k",
		"IAPSTORE_ACCOUNT_ID":  " a1 ",
		"IAPSTORE_BACKEND":     "",
	}
	cfg := Default()
	cfg.mergeEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	assert.Equal(t, "k", cfg.PrivateKey)
	assert.Equal(t, "a1", cfg.AccountID)
	assert.Equal(t, BackendFile, cfg.Backend)
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("IAPSTORE_DEVICE_ID=dotenv-device\n"), 0o600))
	t.Setenv("IAPSTORE_DEVICE_ID", "")
	require.NoError(t, os.Unsetenv("IAPSTORE_DEVICE_ID"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "dotenv-device", cfg.DeviceID)
}

func TestLoad_EnvBeatsDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("IAPSTORE_CIPHER=aes-gcm\n"), 0o600))
	t.Setenv("IAPSTORE_CIPHER", "chacha20poly1305")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, CipherChaCha20, cfg.Cipher)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Backend = "s3"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownBackend)

	cfg = Default()
	cfg.Cipher = "des"
	assert.ErrorIs(t, cfg.Validate(), ErrUnknownCipher)

	cfg = Default()
	cfg.CacheID = " "
	assert.ErrorIs(t, cfg.Validate(), ErrMissingCacheID)
}

func TestOverlayAndResolveHome(t *testing.T) {
	cfg := Default()
	cfg.Overlay(Config{Home: "/tmp/x", CacheID: ""})
	assert.Equal(t, "/tmp/x", cfg.Home)
	assert.Equal(t, DefaultCacheID, cfg.CacheID)
	require.NoError(t, cfg.ResolveHome())
	assert.Equal(t, "/tmp/x", cfg.Home)
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

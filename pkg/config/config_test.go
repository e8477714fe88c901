package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("既定値が入る", func(t *testing.T) {
		t.Setenv("IDEASPARK_API_KEY", "key")

		c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.Equal(t, "key", c.APIKey)
		assert.Empty(t, c.Model, "モデルの既定値はgenerator側に任せる")
		assert.Nil(t, c.Seed)
		assert.Equal(t, 60*time.Second, c.Timeout)
		assert.False(t, c.CompressImage)
		assert.Equal(t, 75, c.CompressQuality)
	})

	t.Run("APIキーはGEMINI_API_KEYにフォールバックする", func(t *testing.T) {
		t.Setenv("IDEASPARK_API_KEY", "")
		t.Setenv("GEMINI_API_KEY", "gemini-key")

		c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.Equal(t, "gemini-key", c.APIKey)
	})

	t.Run(".envファイルから読み込める", func(t *testing.T) {
		t.Setenv("IDEASPARK_API_KEY", "")
		t.Setenv("IDEASPARK_TIMEOUT", "")
		os.Unsetenv("IDEASPARK_API_KEY")
		os.Unsetenv("IDEASPARK_TIMEOUT")

		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("IDEASPARK_API_KEY=from-file\nIDEASPARK_TIMEOUT=5s\n"), 0o600))

		c, err := Load(envFile)
		require.NoError(t, err)
		assert.Equal(t, "from-file", c.APIKey)
		assert.Equal(t, 5*time.Second, c.Timeout)
	})

	t.Run("Seedを指定できる", func(t *testing.T) {
		t.Setenv("IDEASPARK_SEED", "42")

		c, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		require.NotNil(t, c.Seed)
		assert.Equal(t, int32(42), *c.Seed)
	})

	t.Run("不正な値はエラー", func(t *testing.T) {
		t.Setenv("IDEASPARK_TIMEOUT", "soon")

		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.Error(t, err)
	})
}

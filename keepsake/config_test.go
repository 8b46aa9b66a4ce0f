package keepsake

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempConfigFile(t *testing.T) string {
	dir, err := ioutil.TempDir("", "keepsake")
	require.NoError(t, err)

	oldConfigFile := configFile
	configFile = filepath.Join(dir, "keepsake.yml")
	t.Cleanup(func() {
		configFile = oldConfigFile
		os.RemoveAll(dir)
	})
	return configFile
}

func TestReadConfigDefaults(t *testing.T) {
	useTempConfigFile(t)

	config := ReadConfig()
	assert.Equal(t, DefaultConfig(), config)
}

func TestReadConfigFromFile(t *testing.T) {
	path := useTempConfigFile(t)
	yml := "screenWidth: 1280\nscreenHeight: 720\nfullscreen: true\nmusic: false\n"
	require.NoError(t, ioutil.WriteFile(path, []byte(yml), 0644))

	config := ReadConfig()
	assert.Equal(t, 1280.0, config.ScreenWidth)
	assert.Equal(t, 720.0, config.ScreenHeight)
	assert.True(t, config.Fullscreen)
	assert.False(t, config.Music)
}

func TestReadConfigBadFileFallsBack(t *testing.T) {
	path := useTempConfigFile(t)
	require.NoError(t, ioutil.WriteFile(path, []byte("{{{"), 0644))

	assert.Equal(t, DefaultConfig(), ReadConfig())
}

func TestReadConfigNonsenseWindowSize(t *testing.T) {
	path := useTempConfigFile(t)
	require.NoError(t, ioutil.WriteFile(path, []byte("screenWidth: -4\nmusic: true\n"), 0644))

	config := ReadConfig()
	assert.Equal(t, DefaultConfig().ScreenWidth, config.ScreenWidth)
	assert.Equal(t, DefaultConfig().ScreenHeight, config.ScreenHeight)
	assert.True(t, config.Music)
}

package keepsake

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempSaveFile(t *testing.T) string {
	dir, err := ioutil.TempDir("", "keepsake")
	require.NoError(t, err)

	oldSaveFile := saveFile
	saveFile = filepath.Join(dir, "savegame.yml")
	t.Cleanup(func() {
		saveFile = oldSaveFile
		os.RemoveAll(dir)
	})
	return saveFile
}

func TestReadLocalDataWithoutFile(t *testing.T) {
	useTempSaveFile(t)

	_, ok := ReadLocalData()
	assert.False(t, ok)
}

func TestLocalDataRoundTrip(t *testing.T) {
	useTempSaveFile(t)

	data := LocalData{
		Story: StoryProgress{
			Flags:      map[string]bool{"vinyl_night": true},
			Comfort:    7,
			SceneKey:   "playlist",
			PlayerName: "You",
		},
	}
	require.NoError(t, data.WriteToFile())

	loaded, ok := ReadLocalData()
	require.True(t, ok)
	assert.Equal(t, data.Story, loaded.Story)
}

func TestReadLocalDataGarbageFile(t *testing.T) {
	path := useTempSaveFile(t)
	require.NoError(t, ioutil.WriteFile(path, []byte("\t:not yaml ["), 0644))

	_, ok := ReadLocalData()
	assert.False(t, ok)
}

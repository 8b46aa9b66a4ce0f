package keepsake

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorySceneTableIsWellFormed(t *testing.T) {
	assert.NoError(t, validateStoryScenes(buildStoryScenes()))
}

func TestValidateStoryScenesCatchesDanglingChoice(t *testing.T) {
	scenes := map[string]storyScene{
		"intro": {
			key:     "intro",
			choices: []storyChoice{{key: "a", text: "go", next: "nowhere"}},
		},
	}
	assert.Error(t, validateStoryScenes(scenes))

	assert.Error(t, validateStoryScenes(map[string]storyScene{
		"lobby": {key: "lobby"},
	}), "missing intro scene")
}

func TestComfortIsClamped(t *testing.T) {
	run, err := NewStoryRun(NewStoryProgress())
	require.NoError(t, err)

	adjustComfort(+20)(run)
	assert.Equal(t, comfortMax, run.progress.Comfort)

	adjustComfort(-20)(run)
	assert.Equal(t, comfortMin, run.progress.Comfort)
}

func TestComfortGateHidesChoices(t *testing.T) {
	progress := NewStoryProgress()
	progress.SceneKey = "talk"
	progress.Comfort = 5

	run, err := NewStoryRun(progress)
	require.NoError(t, err)

	for _, ch := range run.Choices() {
		assert.NotEqual(t, "walk", ch.next, "walk needs comfort 6")
	}

	run.progress.Comfort = 6
	found := false
	for _, ch := range run.Choices() {
		if ch.next == "walk" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestStoryWalkthroughToEnding(t *testing.T) {
	run, err := NewStoryRun(NewStoryProgress())
	require.NoError(t, err)

	require.True(t, run.ChooseKey("a")) // intro -> talk, comfort 6
	assert.Equal(t, "talk", run.progress.SceneKey)
	assert.Equal(t, 6, run.progress.Comfort)

	require.True(t, run.ChooseKey("b")) // talk -> playlist
	require.True(t, run.ChooseKey("b")) // playlist -> future, sets flag
	assert.True(t, run.progress.Flags["vinyl_night"])

	require.True(t, run.ChooseKey("a")) // future -> ending_gentle
	assert.Equal(t, "ending_gentle", run.progress.SceneKey)

	require.True(t, run.ChooseKey("q"))
	assert.True(t, run.Done())
}

func TestStoryBackPopsHistory(t *testing.T) {
	run, err := NewStoryRun(NewStoryProgress())
	require.NoError(t, err)

	require.True(t, run.ChooseKey("a")) // intro -> talk
	require.True(t, run.ChooseKey("m")) // talk -> menu
	require.True(t, run.ChooseKey("b")) // back
	assert.Equal(t, "talk", run.progress.SceneKey)
}

func TestStoryChooseSelected(t *testing.T) {
	run, err := NewStoryRun(NewStoryProgress())
	require.NoError(t, err)

	run.MoveSelection(1)
	run.MoveSelection(1)
	run.ChooseSelected() // third choice: tea
	assert.Equal(t, "tea", run.progress.SceneKey)
	assert.Equal(t, 0, run.selection)
}

func TestStoryUnknownHotkeyIgnored(t *testing.T) {
	run, err := NewStoryRun(NewStoryProgress())
	require.NoError(t, err)

	assert.False(t, run.ChooseKey("z"))
	assert.Equal(t, "intro", run.progress.SceneKey)
}

func TestStorySaveAndLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "keepsake")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	oldSaveFile := saveFile
	saveFile = filepath.Join(dir, "savegame.yml")
	defer func() { saveFile = oldSaveFile }()

	run, err := NewStoryRun(NewStoryProgress())
	require.NoError(t, err)
	require.True(t, run.ChooseKey("a")) // talk, comfort 6

	saveStory(run)
	assert.Equal(t, "Saved.", run.notice)

	require.True(t, run.ChooseKey("b")) // playlist
	loadStory(run)
	assert.Equal(t, "Loaded.", run.notice)
	assert.Equal(t, "talk", run.progress.SceneKey)
	assert.Equal(t, 6, run.progress.Comfort)
	assert.Empty(t, run.history)
}

func TestStoryLoadWithoutSave(t *testing.T) {
	oldSaveFile := saveFile
	saveFile = filepath.Join(os.TempDir(), "keepsake-definitely-missing.yml")
	defer func() { saveFile = oldSaveFile }()

	run, err := NewStoryRun(NewStoryProgress())
	require.NoError(t, err)

	loadStory(run)
	assert.Equal(t, "No save found.", run.notice)
}

func TestStoryRestart(t *testing.T) {
	run, err := NewStoryRun(NewStoryProgress())
	require.NoError(t, err)

	require.True(t, run.ChooseKey("a"))
	run.progress.SceneKey = "ending_gentle"
	require.True(t, run.ChooseKey("r"))

	assert.Equal(t, "intro", run.progress.SceneKey)
	assert.Equal(t, 5, run.progress.Comfort)
	assert.Empty(t, run.history)
}

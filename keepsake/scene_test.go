package keepsake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStage captures everything a scene player does to it.
type recordingStage struct {
	image        string
	dialogue     string
	cues         []string
	showContinue bool
}

func (s *recordingStage) SetImage(name string)    { s.image = name }
func (s *recordingStage) SetDialogue(text string) { s.dialogue = text }
func (s *recordingStage) PlayCue(name string)     { s.cues = append(s.cues, name) }
func (s *recordingStage) ShowContinue(show bool)  { s.showContinue = show }

func threeScenes() sceneChain {
	return sceneChain{
		{image: "a.png", dialogue: "first", sound: "cue-a", next: 1},
		{image: "b.png", dialogue: "second", sound: "cue-b", next: 2},
		{image: "c.png", dialogue: "third", sound: "cue-c", next: sceneEnd},
	}
}

func TestSceneChainValidate(t *testing.T) {
	assert.NoError(t, threeScenes().validate())
	assert.NoError(t, birthdayCard.validate())

	assert.Error(t, sceneChain{}.validate())

	dangling := sceneChain{
		{dialogue: "x", next: 3},
		{dialogue: "y", next: sceneEnd},
	}
	assert.Error(t, dangling.validate())

	cyclic := sceneChain{
		{dialogue: "x", next: 1},
		{dialogue: "y", next: 0},
	}
	assert.Error(t, cyclic.validate())

	selfLoop := sceneChain{{dialogue: "x", next: 0}}
	assert.Error(t, selfLoop.validate())
}

func TestScenePlayerWalk(t *testing.T) {
	stage := &recordingStage{}
	player, err := NewScenePlayer(threeScenes(), stage)
	require.NoError(t, err)

	// Inert until started.
	player.Advance()
	assert.Empty(t, stage.cues)

	player.Start()
	assert.Equal(t, "a.png", stage.image)
	assert.Equal(t, "first", stage.dialogue)
	assert.Equal(t, []string{"cue-a"}, stage.cues)
	assert.True(t, stage.showContinue)

	player.Advance()
	assert.Equal(t, "b.png", stage.image)
	assert.Equal(t, "second", stage.dialogue)
	assert.True(t, stage.showContinue)

	// chainLength-1 activations reach the terminal scene; the continue
	// control is hidden exactly there and the epilogue is appended.
	player.Advance()
	assert.Equal(t, "c.png", stage.image)
	assert.Equal(t, "third\n"+sceneEpilogue, stage.dialogue)
	assert.False(t, stage.showContinue)
	assert.True(t, player.Finished())

	// Strictly forward: no replay, no further advances.
	player.Advance()
	assert.Equal(t, "c.png", stage.image)
	assert.Equal(t, []string{"cue-a", "cue-b", "cue-c"}, stage.cues)
}

func TestShowSceneIdempotentExceptSound(t *testing.T) {
	stage := &recordingStage{}
	player, err := NewScenePlayer(threeScenes(), stage)
	require.NoError(t, err)

	player.showScene(1)
	image, dialogue := stage.image, stage.dialogue
	player.showScene(1)

	assert.Equal(t, image, stage.image)
	assert.Equal(t, dialogue, stage.dialogue)
	// Sound is not idempotent: it replays on every call.
	assert.Equal(t, []string{"cue-b", "cue-b"}, stage.cues)
}

func TestScenePlayerRejectsBrokenChain(t *testing.T) {
	_, err := NewScenePlayer(sceneChain{{next: 7}}, &recordingStage{})
	assert.Error(t, err)
}

func TestStartIsOneShot(t *testing.T) {
	stage := &recordingStage{}
	player, err := NewScenePlayer(threeScenes(), stage)
	require.NoError(t, err)

	player.Start()
	player.Advance()
	player.Start() // must not rewind to the first scene
	assert.Equal(t, "b.png", stage.image)
}

package keepsake

import (
	"fmt"

	"github.com/raffis-code/keepsake/sliceextra"
)

// Reserved next-keys understood by the story runner rather than the scene
// table.
const storyQuit = "quit"
const storyBack = "back"
const storyStay = "stay"

var storyReservedKeys = []string{storyQuit, storyBack, storyStay}

const storyStartScene = "intro"

const comfortMin = 0
const comfortMax = 10

// StoryProgress is everything that persists about a playthrough. It is what
// gets written to the save file, so the fields are exported for yaml.
type StoryProgress struct {
	Flags      map[string]bool `yaml:"flags"`
	Comfort    int             `yaml:"comfort"`
	SceneKey   string          `yaml:"sceneKey"`
	PlayerName string          `yaml:"playerName"`
}

func NewStoryProgress() StoryProgress {
	return StoryProgress{
		Flags:      map[string]bool{},
		Comfort:    5,
		SceneKey:   storyStartScene,
		PlayerName: "You",
	}
}

type storyChoice struct {
	key      string
	text     string
	next     string
	effect   func(run *storyRun)
	requires func(p *StoryProgress) bool
}

type storyScene struct {
	key     string
	title   string
	body    string
	choices []storyChoice
}

// ----- Effects & conditions -----

func setFlag(flag string) func(*storyRun) {
	return func(run *storyRun) {
		run.progress.Flags[flag] = true
	}
}

func adjustComfort(delta int) func(*storyRun) {
	return func(run *storyRun) {
		c := run.progress.Comfort + delta
		if c < comfortMin {
			c = comfortMin
		}
		if c > comfortMax {
			c = comfortMax
		}
		run.progress.Comfort = c
	}
}

func requiresFlag(flag string) func(*StoryProgress) bool {
	return func(p *StoryProgress) bool {
		return p.Flags[flag]
	}
}

func requiresComfortAtLeast(n int) func(*StoryProgress) bool {
	return func(p *StoryProgress) bool {
		return p.Comfort >= n
	}
}

// validateStoryScenes rejects a scene table with a choice that leads
// nowhere. Unlike the card chain, the story graph may branch and loop back
// on purpose, so only the targets are checked.
func validateStoryScenes(scenes map[string]storyScene) error {
	if _, ok := scenes[storyStartScene]; !ok {
		return fmt.Errorf("story has no %q scene", storyStartScene)
	}
	for key, s := range scenes {
		for _, ch := range s.choices {
			if sliceextra.Contains(storyReservedKeys, ch.next) {
				continue
			}
			if _, ok := scenes[ch.next]; !ok {
				return fmt.Errorf("scene %q choice [%s] points at missing scene %q", key, ch.key, ch.next)
			}
		}
	}
	return nil
}

// storyRun is one playthrough: the scene table, the player's progress, and
// a history stack so the in-story menu can go back.
type storyRun struct {
	scenes   map[string]storyScene
	progress StoryProgress
	history  []string

	selection int
	notice    string
	done      bool
}

func NewStoryRun(progress StoryProgress) (*storyRun, error) {
	scenes := buildStoryScenes()
	if err := validateStoryScenes(scenes); err != nil {
		return nil, err
	}
	if _, ok := scenes[progress.SceneKey]; !ok {
		// A save from an older build may name a scene that no longer
		// exists. Start over rather than strand the player.
		fmt.Printf("[Story] save points at unknown scene %q, restarting\n", progress.SceneKey)
		progress.SceneKey = storyStartScene
	}
	return &storyRun{scenes: scenes, progress: progress}, nil
}

func (run *storyRun) Scene() storyScene {
	return run.scenes[run.progress.SceneKey]
}

// Choices are the scene's choices with unmet requirement gates filtered
// out.
func (run *storyRun) Choices() []storyChoice {
	scene := run.Scene()
	choices := make([]storyChoice, 0, len(scene.choices))
	for _, ch := range scene.choices {
		if ch.requires != nil && !ch.requires(&run.progress) {
			continue
		}
		choices = append(choices, ch)
	}
	return choices
}

func (run *storyRun) MoveSelection(delta int) {
	choices := run.Choices()
	if len(choices) == 0 {
		return
	}
	run.selection = (run.selection + delta) % len(choices)
	if run.selection < 0 {
		run.selection += len(choices)
	}
}

// ChooseKey picks a choice by its hotkey. Returns false when no visible
// choice has that key.
func (run *storyRun) ChooseKey(key string) bool {
	for _, ch := range run.Choices() {
		if ch.key == key {
			run.apply(ch)
			return true
		}
	}
	return false
}

// ChooseSelected applies the currently highlighted choice.
func (run *storyRun) ChooseSelected() {
	choices := run.Choices()
	if len(choices) == 0 {
		return
	}
	if run.selection >= len(choices) {
		run.selection = len(choices) - 1
	}
	run.apply(choices[run.selection])
}

func (run *storyRun) apply(choice storyChoice) {
	run.notice = ""
	if choice.effect != nil {
		choice.effect(run)
	}

	switch choice.next {
	case storyQuit:
		run.done = true
	case storyStay:
		// The effect did all the work (save, load, meter check). Stay put.
		run.selection = 0
	case storyBack:
		if n := len(run.history); n > 0 {
			run.progress.SceneKey = run.history[n-1]
			run.history = run.history[:n-1]
		} else {
			run.notice = "No previous scene."
		}
		run.selection = 0
	default:
		run.history = append(run.history, run.progress.SceneKey)
		run.progress.SceneKey = choice.next
		run.selection = 0
	}
}

func (run *storyRun) Done() bool {
	return run.done
}

package keepsake

import "fmt"

// sceneEnd marks a scene with no successor.
const sceneEnd = -1

// sceneEpilogue is the one fixed closing line appended to the dialogue of
// the terminal scene. It is never part of the scene's own dialogue.
const sceneEpilogue = "The End. Happy birthday, Raffi."

// scene is one step of a card: a portrait, a dialogue line and a sound cue,
// plus the index of the scene that follows (or sceneEnd).
type scene struct {
	image    string
	dialogue string
	sound    string
	next     int
}

type sceneChain []scene

// validate walks the chain from the first scene and rejects anything that
// could trap the player: a next index out of range, or a cycle. A
// well-formed chain reaches exactly one terminal scene from the start.
func (c sceneChain) validate() error {
	if len(c) == 0 {
		return fmt.Errorf("scene chain is empty")
	}
	visited := make([]bool, len(c))
	at := 0
	for {
		if visited[at] {
			return fmt.Errorf("scene chain loops back to scene %d", at)
		}
		visited[at] = true
		next := c[at].next
		if next == sceneEnd {
			return nil
		}
		if next < 0 || next >= len(c) {
			return fmt.Errorf("scene %d points at missing scene %d", at, next)
		}
		at = next
	}
}

// Stage is everything a scene player needs from its surroundings: somewhere
// to put a portrait and a dialogue line, a way to fire a sound cue, and a
// continue control it can show or hide. The pixel-backed implementation
// lives in stage.go; tests substitute their own.
type Stage interface {
	SetImage(name string)
	SetDialogue(text string)
	PlayCue(name string)
	ShowContinue(show bool)
}

// scenePlayer walks a scene chain strictly forward, one scene visible at a
// time. It is inert until Start, and advances only on Advance calls made
// while the continue control is armed.
type scenePlayer struct {
	chain  sceneChain
	stage  Stage
	cursor int

	started bool
	armed   bool
}

func NewScenePlayer(chain sceneChain, stage Stage) (*scenePlayer, error) {
	if err := chain.validate(); err != nil {
		return nil, err
	}
	return &scenePlayer{chain: chain, stage: stage}, nil
}

func (p *scenePlayer) Start() {
	if p.started {
		return
	}
	p.started = true
	p.showScene(0)
}

// Advance moves to the next scene. A single activation of the continue
// control maps to a single call; calls while unarmed (not started, or at
// the terminal scene) do nothing.
func (p *scenePlayer) Advance() {
	if !p.armed {
		return
	}
	p.showScene(p.chain[p.cursor].next)
}

func (p *scenePlayer) showScene(index int) {
	p.cursor = index
	s := p.chain[index]

	dialogue := s.dialogue
	if s.next == sceneEnd {
		dialogue += "\n" + sceneEpilogue
	}

	p.stage.SetImage(s.image)
	p.stage.SetDialogue(dialogue)
	p.stage.PlayCue(s.sound)

	p.armed = s.next != sceneEnd
	p.stage.ShowContinue(p.armed)
}

func (p *scenePlayer) Finished() bool {
	return p.started && !p.armed
}

package keepsake

// cardStage is the production Stage: it holds what the card view should be
// showing and fires cues at the sound manager. The draw pass reads it every
// frame; nothing here touches the window directly.
type cardStage struct {
	image        string
	dialogue     string
	showContinue bool
}

func NewCardStage() *cardStage {
	return new(cardStage)
}

func (s *cardStage) SetImage(name string) {
	s.image = name
}

func (s *cardStage) SetDialogue(text string) {
	s.dialogue = text
}

func (s *cardStage) PlayCue(name string) {
	// Fire and forget. Overlapping playback is fine, and a missing cue is
	// logged inside PlaySound without disturbing the card.
	PlaySound(name)
}

func (s *cardStage) ShowContinue(show bool) {
	s.showContinue = show
}

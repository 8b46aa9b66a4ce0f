package keepsake

import "time"

// Typewriter tick cadence. These are part of the feel of the status line:
// changing them changes the perceived animation speed.
const typewriterTypeTick = 100 * time.Millisecond
const typewriterDeleteTick = 50 * time.Millisecond
const typewriterHold = 2000 * time.Millisecond

// typewriter cycles through a fixed list of status lines, typing each one
// out a rune at a time, holding, then deleting it and moving to the next.
// It never terminates; it runs for as long as Update keeps being called.
type typewriter struct {
	messages     [][]rune
	messageIndex int
	charIndex    int
	deleting     bool

	started  bool
	nextTick time.Time
}

func NewTypewriter(messages []string) *typewriter {
	t := new(typewriter)
	t.messages = make([][]rune, len(messages))
	for i, m := range messages {
		t.messages[i] = []rune(m)
	}
	return t
}

// Start arms the first tick. The driver does nothing until started.
func (t *typewriter) Start(now time.Time) {
	if t.started || len(t.messages) == 0 {
		return
	}
	t.started = true
	t.nextTick = now.Add(typewriterTypeTick)
}

// Update processes every tick that has come due at now. Ticks fire strictly
// sequentially; each one schedules the next before the following fires.
func (t *typewriter) Update(now time.Time) {
	if !t.started {
		return
	}
	for !now.Before(t.nextTick) {
		t.nextTick = t.nextTick.Add(t.tick())
	}
}

// tick advances the state machine by one step and returns the delay until
// the next tick. A typing tick with room appends one rune. A typing tick at
// the end of the message flips to deleting and holds. A deleting tick
// removes one rune and, on emptying the line, moves to the next message.
func (t *typewriter) tick() time.Duration {
	message := t.messages[t.messageIndex]

	if t.deleting {
		if t.charIndex > 0 {
			t.charIndex--
		}
		if t.charIndex == 0 {
			t.deleting = false
			t.messageIndex = (t.messageIndex + 1) % len(t.messages)
		}
		return typewriterDeleteTick
	}

	if t.charIndex < len(message) {
		t.charIndex++
		return typewriterTypeTick
	}

	t.deleting = true
	return typewriterHold
}

// Line is the currently visible prefix of the current message.
func (t *typewriter) Line() string {
	if len(t.messages) == 0 {
		return ""
	}
	return string(t.messages[t.messageIndex][:t.charIndex])
}

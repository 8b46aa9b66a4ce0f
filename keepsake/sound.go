package keepsake

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// Audio is strictly best-effort: a cue that can't load or play is logged
// and skipped, and the card or story carries on without it.

type soundEffect struct {
	buffer *beep.Buffer
	volume float64
}

var soundEffects = map[string]*soundEffect{}
var musicStreamers = map[string]beep.StreamSeekCloser{}

var audioReady = false

func prepareStreamer(file string) (beep.StreamSeekCloser, *beep.Format, error) {
	sound, err := os.Open(file)
	if err != nil {
		return nil, nil, err
	}

	streamer, format, err := mp3.Decode(sound)
	if err != nil {
		sound.Close()
		return nil, nil, err
	}

	return streamer, &format, nil
}

func prepareBuffer(file string) (*beep.Buffer, *beep.Format, error) {
	sound, err := os.Open(file)
	if err != nil {
		return nil, nil, err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext := filepath.Ext(file); ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(sound)
	case ".wav":
		streamer, format, err = wav.Decode(sound)
	default:
		sound.Close()
		return nil, nil, fmt.Errorf("unsupported file extension: %s", ext)
	}

	if err != nil {
		sound.Close()
		return nil, nil, err
	}
	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	streamer.Close()

	return buffer, &format, nil
}

func loadEffect(name string, file string, volume float64) *beep.Format {
	buffer, format, err := prepareBuffer(file)
	if err != nil {
		fmt.Printf("[Sound] %s unavailable: %v\n", name, err)
		return nil
	}
	soundEffects[name] = &soundEffect{
		buffer: buffer,
		volume: volume,
	}
	return format
}

func loadSong(name string, file string) *beep.Format {
	streamer, format, err := prepareStreamer(file)
	if err != nil {
		fmt.Printf("[Sound] song %s unavailable: %v\n", name, err)
		return nil
	}
	musicStreamers[name] = streamer
	return format
}

// InitAudio loads every cue and song the app knows about and brings up the
// speaker. With no sound directory at all, the app stays silent and
// everything else still works.
func InitAudio() {
	var format *beep.Format
	note := func(f *beep.Format) {
		if format == nil {
			format = f
		}
	}

	note(loadEffect("menu/step", "sound/menu-step.wav", -0.9))
	note(loadEffect("menu/confirm", "sound/menu-confirm.wav", -0.9))

	note(loadEffect("card/knock", "sound/knock.wav", -0.8))
	note(loadEffect("card/fanfare", "sound/fanfare.wav", -0.7))
	note(loadEffect("card/cheer", "sound/cheer.wav", -0.7))

	note(loadSong("menu", "sound/music-menu.mp3"))
	note(loadSong("card", "sound/music-card.mp3"))
	note(loadSong("story", "sound/music-story.mp3"))

	if format == nil {
		fmt.Printf("[Sound] no audio files found, continuing without sound\n")
		return
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		fmt.Printf("[Sound] speaker init failed, continuing without sound: %v\n", err)
		return
	}
	audioReady = true
}

func PlaySound(soundName string) {
	if !audioReady {
		return
	}
	soundEffect, ok := soundEffects[soundName]
	if !ok {
		fmt.Printf("[Sound] unknown sound: %s\n", soundName)
		return
	}

	sound := soundEffect.buffer.Streamer(0, soundEffect.buffer.Len())

	volume := &effects.Volume{
		Streamer: sound,
		Base:     10,
		Volume:   soundEffect.volume,
		Silent:   false,
	}

	speaker.Play(volume)
}

func PlaySong(songName string) {
	if !audioReady {
		return
	}
	s, ok := musicStreamers[songName]
	if !ok {
		fmt.Printf("[Sound] unknown song: %s\n", songName)
		return
	}

	speaker.Clear()
	if err := s.Seek(0); err != nil {
		fmt.Printf("[Sound] could not rewind song %s: %v\n", songName, err)
		return
	}
	speaker.Play(s)
}

// updateMusic restarts the current song once it runs out.
func updateMusic(songName string) {
	if !audioReady {
		return
	}
	s, ok := musicStreamers[songName]
	if !ok {
		return
	}
	if s.Position() == s.Len() {
		PlaySong(songName)
	}
}

func StopMusic() {
	if !audioReady {
		return
	}
	speaker.Clear()
}

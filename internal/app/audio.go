package app

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioManager plays the four game sound effects. Each effect loads
// from a .wav file when one exists and otherwise falls back to a
// synthesized beep, so the game runs with no assets on disk.
type AudioManager struct {
	ctx         *audio.Context
	pellet      []byte
	powerPellet []byte
	ghostEaten  []byte
	death       []byte
}

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

// Audio is opt-in: set PACMAN_ENABLE_AUDIO=1 to get a real context.
// PACMAN_DISABLE_AUDIO=1 wins when both are set.
func getAudioContext() *audio.Context {
	if os.Getenv("PACMAN_DISABLE_AUDIO") == "1" || os.Getenv("PACMAN_ENABLE_AUDIO") != "1" {
		return nil
	}
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(44100)
	})
	return audioCtx
}

func NewAudioManager(soundsDir string) *AudioManager {
	if soundsDir == "" {
		soundsDir = "assets/sounds"
	}
	return &AudioManager{
		ctx:         getAudioContext(),
		pellet:      loadOrSynth(soundsDir, "pellet.wav", 60, 880),
		powerPellet: loadOrSynth(soundsDir, "power.wav", 150, 660),
		ghostEaten:  loadOrSynth(soundsDir, "ghost.wav", 200, 440),
		death:       loadOrSynth(soundsDir, "death.wav", 400, 220),
	}
}

func loadOrSynth(dir, file string, durationMs int, freq float64) []byte {
	if b, err := os.ReadFile(filepath.Join(dir, file)); err == nil {
		return b
	}
	return synthBeepWAV(44100, durationMs, freq)
}

func (am *AudioManager) play(raw []byte) {
	if am == nil || am.ctx == nil || len(raw) == 0 {
		return
	}
	// Decode from bytes each time so plays can overlap.
	stream, err := wav.Decode(am.ctx, bytes.NewReader(raw))
	if err != nil {
		return
	}
	p, err := audio.NewPlayer(am.ctx, stream)
	if err != nil {
		return
	}
	p.Play()
}

func (am *AudioManager) PlayPellet()      { am.play(am.pellet) }
func (am *AudioManager) PlayPowerPellet() { am.play(am.powerPellet) }
func (am *AudioManager) PlayGhostEaten()  { am.play(am.ghostEaten) }
func (am *AudioManager) PlayDeath()       { am.play(am.death) }

// synthBeepWAV builds a minimal 16-bit PCM mono WAV of a sine beep.
func synthBeepWAV(sampleRate, durationMs int, freq float64) []byte {
	numSamples := sampleRate * durationMs / 1000
	dataSize := numSamples * 2
	buf := make([]byte, 44+dataSize)

	copy(buf[0:4], "RIFF")
	putLE32(buf[4:8], uint32(len(buf)-8))
	copy(buf[8:12], "WAVE")
	copy(buf[12:16], "fmt ")
	putLE32(buf[16:20], 16) // PCM chunk size
	putLE16(buf[20:22], 1)  // PCM format
	putLE16(buf[22:24], 1)  // mono
	putLE32(buf[24:28], uint32(sampleRate))
	putLE32(buf[28:32], uint32(sampleRate*2)) // byte rate
	putLE16(buf[32:34], 2)                    // block align
	putLE16(buf[34:36], 16)                   // bits per sample
	copy(buf[36:40], "data")
	putLE32(buf[40:44], uint32(dataSize))

	const amp = 0.25
	for i := 0; i < numSamples; i++ {
		t := float64(i) / float64(sampleRate)
		v := int16(math.Sin(2*math.Pi*freq*t) * 32767.0 * amp)
		buf[44+i*2] = byte(v)
		buf[44+i*2+1] = byte(v >> 8)
	}
	return buf
}

func putLE16(b []byte, v uint16) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func putLE32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

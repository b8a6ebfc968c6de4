package termrender

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/phanxgames/bounce"
)

const (
	sampleRate   = beep.SampleRate(44100)
	blipDuration = 40 * time.Millisecond
)

// Blip pitches: walls sound lower than a corner.
const (
	blipWallFreq   = 440.0
	blipCornerFreq = 880.0
)

// blip is a sine tone with a linear fade-out.
type blip struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// newBlip creates a streamer playing freq for d.
func newBlip(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &blip{freq: freq, duration: rate.N(d), rate: rate}
}

func (b *blip) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.position >= b.duration {
			return i, i > 0
		}
		env := 1 - float64(b.position)/float64(b.duration)
		val := math.Sin(2*math.Pi*b.phase) * env * 0.5

		samples[i][0] = val
		samples[i][1] = val

		b.phase += b.freq / float64(b.rate)
		b.phase -= math.Floor(b.phase)
		b.position++
	}
	return len(samples), true
}

func (b *blip) Err() error { return nil }

// Blipper plays a short tone on every bounce.
type Blipper struct {
	rate beep.SampleRate
}

// NewBlipper initializes the speaker. Callers treat an error as "no sound".
func NewBlipper() (*Blipper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Blipper{rate: sampleRate}, nil
}

// Play sounds the blip for hit. Matches Screensaver.OnBounce.
func (b *Blipper) Play(hit bounce.Hit) {
	speaker.Play(newBlip(blipFreq(hit), blipDuration, b.rate))
}

// Close releases the audio device.
func (b *Blipper) Close() {
	speaker.Close()
}

func blipFreq(hit bounce.Hit) float64 {
	if hit.Corner() {
		return blipCornerFreq
	}
	return blipWallFreq
}

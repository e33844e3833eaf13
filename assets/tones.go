package assets

import (
	"encoding/binary"
	"math"
	"time"

	cfg "github.com/automoto/megagolem/config"
)

// ToneCache renders sound effects as square-wave tones and caches the PCM.
// Output is 16-bit little-endian stereo, the format ebiten's audio players read.
type ToneCache struct {
	sampleRate int
	cache      map[cfg.SoundID][]byte
}

func NewToneCache(sampleRate int) *ToneCache {
	return &ToneCache{
		sampleRate: sampleRate,
		cache:      make(map[cfg.SoundID][]byte),
	}
}

// PCM returns the rendered bytes for id, or nil for a sound with no notes.
func (c *ToneCache) PCM(id cfg.SoundID) []byte {
	if pcm, ok := c.cache[id]; ok {
		return pcm
	}
	notes := cfg.Sound.Notes[id]
	if len(notes) == 0 {
		return nil
	}
	pcm := RenderNotes(notes, c.sampleRate)
	c.cache[id] = pcm
	return pcm
}

// Preload renders every configured sound.
func (c *ToneCache) Preload() {
	for id := range cfg.Sound.Notes {
		c.PCM(id)
	}
}

// RenderNotes plays notes back to back. Each note fades out linearly so
// consecutive notes don't click.
func RenderNotes(notes []cfg.Note, sampleRate int) []byte {
	total := 0
	for _, n := range notes {
		total += samplesFor(n.Duration, sampleRate)
	}

	buf := make([]byte, 0, total*4)
	var frame [4]byte
	for _, n := range notes {
		count := samplesFor(n.Duration, sampleRate)
		for i := range count {
			t := float64(i) / float64(sampleRate)
			v := 0.0
			if n.Frequency > 0 && math.Sin(2*math.Pi*n.Frequency*t) >= 0 {
				v = 1
			} else if n.Frequency > 0 {
				v = -1
			}
			v *= 1 - float64(i)/float64(count)
			s := int16(v * math.MaxInt16 * 0.5)
			binary.LittleEndian.PutUint16(frame[0:], uint16(s))
			binary.LittleEndian.PutUint16(frame[2:], uint16(s))
			buf = append(buf, frame[:]...)
		}
	}
	return buf
}

func samplesFor(d time.Duration, sampleRate int) int {
	return int(math.Round(d.Seconds() * float64(sampleRate)))
}

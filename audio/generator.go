package audio

import (
	"math"
	"time"

	"github.com/lixenwraith/vi-countdown/parameter"
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// sineOscillator generates a unit sine wave
func sineOscillator(freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(parameter.AudioSampleRate)

	for i := 0; i < samples; i++ {
		buf[i] = math.Sin(2 * math.Pi * phase)

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attack, release time.Duration) {
	total := len(buf)
	attackSamples := durationToSamples(attack)
	releaseSamples := durationToSamples(release)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixFloatBuffers adds b into a (in place), extending a if needed
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// concatFloatBuffers appends every buffer in order
func concatFloatBuffers(parts ...floatBuffer) floatBuffer {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	result := make(floatBuffer, 0, n)
	for _, p := range parts {
		result = append(result, p...)
	}
	return result
}

// normalize scales buf in place so its peak magnitude equals peak
func normalize(buf floatBuffer, peak float64) {
	maxAbs := 0.0
	for _, v := range buf {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}
	if maxAbs == 0 {
		return
	}
	scale := peak / maxAbs
	for i := range buf {
		buf[i] *= scale
	}
}

// durationToSamples converts duration to sample count
func durationToSamples(d time.Duration) int {
	return int(d.Seconds() * float64(parameter.AudioSampleRate))
}

// generateChimeNote is a bell tone: fundamental plus octave overtone with a faster tail
func generateChimeNote(freq float64) floatBuffer {
	samples := durationToSamples(parameter.ChimeNoteDuration)

	fund := sineOscillator(freq, samples)
	applyEnvelope(fund, parameter.ChimeAttack, parameter.ChimeFundamentalTail)

	over := sineOscillator(freq*2, samples)
	applyEnvelope(over, parameter.ChimeAttack, parameter.ChimeOvertoneTail)

	// Mix 70% fundamental + 30% overtone
	return mixFloatBuffers(fund, over, 0.3/0.7)
}

// generateChimeSound renders the descending time-up chime at ChimeVolume peak
func generateChimeSound() floatBuffer {
	gap := make(floatBuffer, durationToSamples(parameter.ChimeNoteGap))

	parts := make([]floatBuffer, 0, len(parameter.ChimeNotes)*2)
	for i, freq := range parameter.ChimeNotes {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, generateChimeNote(freq))
	}

	buf := concatFloatBuffers(parts...)
	normalize(buf, parameter.ChimeVolume)
	return buf
}

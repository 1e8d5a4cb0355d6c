// Package signal generates deterministic test signals for exercising the
// stretching and measurement packages. All generators return freshly
// allocated buffers.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-vecmath"
)

// Sine generates a sine tone of freqHz at the given sample rate.
func Sine(freqHz, amplitude, sampleRate float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: sine samples must be > 0: %d", samples)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("signal: sine sample rate must be > 0: %f", sampleRate)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// Step generates a signal that is `amplitude` for the first onset samples
// and zero afterwards.
func Step(amplitude float64, samples, onset int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: step samples must be > 0: %d", samples)
	}
	if onset < 0 || onset > samples {
		return nil, fmt.Errorf("signal: step onset must be in [0, %d]: %d", samples, onset)
	}

	out := make([]float64, samples)
	for i := 0; i < onset; i++ {
		out[i] = amplitude
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude]
// from the given seed.
func WhiteNoise(amplitude float64, samples int, seed int64) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Normalize scales data to the target peak amplitude and returns a new
// slice. A silent input is returned as an all-zero copy.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("signal: normalize input must not be empty")
	}
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f", targetPeak)
	}

	out := make([]float64, len(data))
	peak := vecmath.MaxAbs(data)
	if peak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/peak)
	return out, nil
}

package pitch

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// minSamples is the smallest signal the estimator accepts; shorter inputs
// have too few spectral bins for a meaningful peak.
const minSamples = 32

// DominantFrequency estimates the frequency in Hz of the strongest spectral
// component of signal sampled at sampleRate.
//
// The signal is Hann-windowed and zero-padded to the next power of two
// before the FFT. The returned frequency is refined below bin resolution by
// parabolic interpolation around the peak bin.
func DominantFrequency(signal []float64, sampleRate float64) (float64, error) {
	if len(signal) < minSamples {
		return 0, fmt.Errorf("pitch: signal must have at least %d samples: %d", minSamples, len(signal))
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("pitch: sample rate must be positive and finite: %f", sampleRate)
	}

	fftSize := nextPowerOf2(len(signal))

	in := make([]complex128, fftSize)
	denom := float64(len(signal) - 1)
	for i, v := range signal {
		w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/denom)
		in[i] = complex(v*w, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("pitch: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, fmt.Errorf("pitch: forward FFT failed: %w", err)
	}

	half := fftSize / 2
	re := make([]float64, half)
	im := make([]float64, half)
	for i := 0; i < half; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, half)
	vecmath.Magnitude(mag, re, im)

	// Skip DC; the strongest remaining bin is the dominant component.
	peak := 1
	for i := 2; i < half; i++ {
		if mag[i] > mag[peak] {
			peak = i
		}
	}

	binHz := sampleRate / float64(fftSize)
	return (float64(peak) + peakOffset(mag, peak)) * binHz, nil
}

// peakOffset refines the peak bin location by fitting a parabola through
// the log magnitudes of the peak and its neighbors. Returns a fractional
// bin offset in (-0.5, 0.5), or 0 when interpolation is not possible.
func peakOffset(mag []float64, peak int) float64 {
	if peak < 1 || peak >= len(mag)-1 {
		return 0
	}
	if mag[peak-1] <= 0 || mag[peak] <= 0 || mag[peak+1] <= 0 {
		return 0
	}

	a := math.Log(mag[peak-1])
	b := math.Log(mag[peak])
	c := math.Log(mag[peak+1])

	den := a - 2*b + c
	if den == 0 {
		return 0
	}
	return 0.5 * (a - c) / den
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size *= 2
	}
	return size
}

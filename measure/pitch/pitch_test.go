package pitch

import (
	"math"
	"testing"

	"github.com/tnn1t1s/rcy/dsp/signal"
)

func TestDominantFrequencyRejectsInvalidInput(t *testing.T) {
	if _, err := DominantFrequency(make([]float64, 8), 48000); err == nil {
		t.Fatal("DominantFrequency() with short signal expected error")
	}

	long := make([]float64, 1024)
	for _, sr := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := DominantFrequency(long, sr); err == nil {
			t.Fatalf("DominantFrequency(sampleRate=%v) expected error", sr)
		}
	}
}

func TestDominantFrequencyPureTones(t *testing.T) {
	cases := []struct {
		freq       float64
		sampleRate float64
		samples    int
	}{
		{440, 48000, 4096},
		{1000, 48000, 8192},
		{261.63, 44100, 4096},
		{440, 48000, 4000}, // non-power-of-two length, zero-padded
	}

	for _, tc := range cases {
		tone, err := signal.Sine(tc.freq, 0.8, tc.sampleRate, tc.samples)
		if err != nil {
			t.Fatalf("Sine() error = %v", err)
		}

		got, err := DominantFrequency(tone, tc.sampleRate)
		if err != nil {
			t.Fatalf("DominantFrequency() error = %v", err)
		}

		if math.Abs(got-tc.freq) > 0.5 {
			t.Fatalf("DominantFrequency(%g Hz @ %g) = %g, want within 0.5 Hz",
				tc.freq, tc.sampleRate, got)
		}
	}
}

func TestPeakOffsetBounds(t *testing.T) {
	// Edge bins and non-positive magnitudes fall back to no offset.
	mag := []float64{1, 2, 3, 2, 1}

	if got := peakOffset(mag, 0); got != 0 {
		t.Fatalf("peakOffset(edge) = %g, want 0", got)
	}
	if got := peakOffset(mag, len(mag)-1); got != 0 {
		t.Fatalf("peakOffset(edge) = %g, want 0", got)
	}

	// Symmetric neighbors put the true peak exactly on the bin.
	if got := peakOffset(mag, 2); got != 0 {
		t.Fatalf("peakOffset(symmetric) = %g, want 0", got)
	}

	withZero := []float64{0, 2, 0}
	if got := peakOffset(withZero, 1); got != 0 {
		t.Fatalf("peakOffset(zero neighbor) = %g, want 0", got)
	}
}

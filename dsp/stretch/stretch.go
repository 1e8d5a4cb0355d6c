package stretch

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Default grain geometry, in samples. At 44.1 kHz this is roughly an
// 11.6 ms grain with a 2.9 ms crossfade.
const (
	DefaultGrainSize = 512
	DefaultOverlap   = 128
)

// Stretcher performs grain-based time stretching with a fixed grain
// geometry.
//
// The geometry is validated once at construction and immutable afterwards,
// so a single Stretcher may be shared across goroutines; each Process call
// works on its own freshly allocated output buffer.
type Stretcher struct {
	grainSize int
	overlap   int
}

// NewStretcher creates a Stretcher with the given grain size and overlap,
// both in samples. grainSize must be positive and overlap must satisfy
// 0 <= overlap < grainSize so the grain hop stays positive.
func NewStretcher(grainSize, overlap int) (*Stretcher, error) {
	if grainSize <= 0 {
		return nil, fmt.Errorf("%w: grain size must be > 0: %d", ErrInvalidParameters, grainSize)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("%w: overlap must be >= 0: %d", ErrInvalidParameters, overlap)
	}
	if overlap >= grainSize {
		return nil, fmt.Errorf("%w: overlap must be smaller than grain size: overlap=%d grain=%d",
			ErrInvalidParameters, overlap, grainSize)
	}
	return &Stretcher{grainSize: grainSize, overlap: overlap}, nil
}

// GrainSize returns the grain length in samples.
func (s *Stretcher) GrainSize() int { return s.grainSize }

// Overlap returns the number of samples shared between consecutive grains.
func (s *Stretcher) Overlap() int { return s.overlap }

// Hop returns the input advance between consecutive grain starts.
func (s *Stretcher) Hop() int { return s.grainSize - s.overlap }

// NumGrains returns how many grains Process extracts from an input of
// inputLen samples. Inputs shorter than one grain are rejected with
// ErrInputTooShort.
func (s *Stretcher) NumGrains(inputLen int) (int, error) {
	if inputLen < s.grainSize {
		return 0, fmt.Errorf("%w: input=%d grain=%d", ErrInputTooShort, inputLen, s.grainSize)
	}
	return (inputLen-s.grainSize)/s.Hop() + 1, nil
}

// OutputLen returns the output length Process allocates for an input of
// inputLen samples at the given stretch factor.
func (s *Stretcher) OutputLen(inputLen int, stretchFactor float64) int {
	return truncScale(inputLen, stretchFactor)
}

// Process time-stretches input by stretchFactor and returns a new output
// sequence of length floor(len(input)*stretchFactor). Factors above 1
// lengthen, factors below 1 shorten; pitch is unaffected.
//
// Each grain is copied from its original position, placed at that position
// scaled by the stretch factor using overlap-add, and crossfaded against
// the previously accumulated samples across the overlap region. Grain
// samples that would land past the end of the output are silently dropped.
// The input is never mutated.
func (s *Stretcher) Process(input []float64, stretchFactor float64) ([]float64, error) {
	if !isFinitePositive(stretchFactor) {
		return nil, fmt.Errorf("%w: stretch factor must be positive and finite: %f",
			ErrInvalidParameters, stretchFactor)
	}

	numGrains, err := s.NumGrains(len(input))
	if err != nil {
		return nil, err
	}

	output := make([]float64, truncScale(len(input), stretchFactor))
	hop := s.Hop()
	cursor := 0

	for i := 0; i < numGrains; i++ {
		grain := input[i*hop : i*hop+s.grainSize]

		// Placement derives from the grain's unstretched timeline
		// position; scaling that position is what dilates time.
		start := truncScale(cursor, stretchFactor)

		if n := min(s.grainSize, len(output)-start); n > 0 {
			vecmath.AddBlockInPlace(output[start:start+n], grain[:n])
		}

		// Smooth the junction against the previous grain's tail using
		// this grain's leading samples as the fade-in target.
		if i > 0 && start-s.overlap >= 0 {
			ApplyCrossfade(output, grain, start-s.overlap, s.overlap)
		}

		cursor += hop
	}

	return output, nil
}

// TimeStretchGrains time-stretches input by stretchFactor using the default
// grain geometry (DefaultGrainSize, DefaultOverlap).
func TimeStretchGrains(input []float64, stretchFactor float64) ([]float64, error) {
	return TimeStretchGrainsWith(input, stretchFactor, DefaultGrainSize, DefaultOverlap)
}

// TimeStretchGrainsWith is a one-shot variant of Stretcher.Process with
// explicit grain geometry.
func TimeStretchGrainsWith(input []float64, stretchFactor float64, grainSize, overlap int) ([]float64, error) {
	s, err := NewStretcher(grainSize, overlap)
	if err != nil {
		return nil, err
	}
	return s.Process(input, stretchFactor)
}

func isFinitePositive(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

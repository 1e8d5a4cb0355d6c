// Package stretch provides grain-based time stretching of mono float64
// sample sequences.
//
// The algorithm slices the input into short overlapping grains, places each
// grain at its stretched output position using overlap-add, and linearly
// crossfades every overlap junction to avoid clicks. Duration changes by the
// stretch factor; the local waveform inside each grain is untouched.
//
// For one-shot use with the default grain geometry:
//
//	out, err := stretch.TimeStretchGrains(input, 1.5)
//
// For repeated processing with custom geometry, create a reusable Stretcher:
//
//	s, err := stretch.NewStretcher(1024, 256)
//	out, err := s.Process(input, 0.8)
//
// A Stretcher is immutable after construction and safe for concurrent use;
// every call allocates and returns a fresh output buffer and never mutates
// its input.
//
// The package operates on whole signals in memory. It performs no I/O,
// carries no sample-rate metadata, and does not resample or pitch-shift.
package stretch

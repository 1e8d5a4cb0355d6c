// Package pitch estimates the dominant frequency of a time-domain signal.
//
// The estimator applies a Hann window, takes a forward FFT, scans the
// magnitude spectrum for its strongest bin, and refines the peak location
// with parabolic interpolation on log magnitudes. It is a measurement tool
// for verifying tone content of generated and processed signals, not a
// pitch tracker for polyphonic material.
package pitch

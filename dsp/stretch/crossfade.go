package stretch

// ApplyCrossfade linearly fades fadeLength samples of grain into output
// starting at index start. For each i in [0, fadeLength) the weight is
// i/fadeLength, so output[start+i] becomes
//
//	output[start+i]*(1-w) + grain[i]*w.
//
// The ramp is asymmetric: index 0 keeps the existing output sample
// untouched (weight 0) and the final index reaches weight
// (fadeLength-1)/fadeLength, never a full replacement. fadeLength 0 is a
// no-op.
//
// Callers must guarantee start >= 0, start+fadeLength <= len(output), and
// fadeLength <= len(grain); Stretcher.Process establishes these bounds
// before every call. The blend is not idempotent, so apply it at most once
// per overlap region.
func ApplyCrossfade(output, grain []float64, start, fadeLength int) {
	for i := 0; i < fadeLength; i++ {
		w := float64(i) / float64(fadeLength)
		output[start+i] = output[start+i]*(1-w) + grain[i]*w
	}
}

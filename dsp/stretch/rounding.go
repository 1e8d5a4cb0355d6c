package stretch

// truncScale maps a non-negative sample count or position onto the
// stretched timeline by multiplying with factor and truncating toward
// zero. Output length, grain count scaling, and per-grain placement all
// share this single rounding policy so its semantics are pinned in one
// place rather than re-derived at each call site.
func truncScale(n int, factor float64) int {
	return int(float64(n) * factor)
}

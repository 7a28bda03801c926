package vmath

// --- Integer helpers ---

// AbsInt returns absolute value
func AbsInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// MinInt returns the smaller of a and b
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// FloorTo rounds x down to a multiple of unit (x >= 0)
func FloorTo(x, unit int) int {
	if unit <= 0 {
		return x
	}
	return x / unit * unit
}

// SnapInt rounds x to the nearest multiple of unit, halves away from zero
func SnapInt(x, unit int) int {
	if unit <= 1 {
		return x
	}
	if x < 0 {
		return -SnapInt(-x, unit)
	}
	return (x + unit/2) / unit * unit
}

// --- Randomness ---

// FastRand is a xorshift64 generator, deterministic per seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// IntRange returns a value in [lo, hi], both inclusive
func (r *FastRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Sign returns -1 or 1 with equal probability
func (r *FastRand) Sign() int {
	if r.Next()&1 == 0 {
		return -1
	}
	return 1
}

// GridPoint returns a random multiple of unit in [lo, hi)
func (r *FastRand) GridPoint(lo, hi, unit int) int {
	if unit <= 0 || hi <= lo {
		return lo
	}
	n := (hi - lo + unit - 1) / unit
	return lo + r.Intn(n)*unit
}

package dice

import "time"

// RNG is a xorshift64 generator, deterministic for a given seed and not safe for concurrent use
type RNG struct {
	state uint64
}

// NewRNG seeds from the clock
func NewRNG() *RNG {
	return Seeded(uint64(time.Now().UnixNano()))
}

// Seeded creates a reproducible generator
func Seeded(seed uint64) *RNG {
	// splitmix64 scatters small seeds across the state
	z := seed + 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	z ^= z >> 31
	if z == 0 {
		z = 1
	}
	return &RNG{state: z}
}

func (r *RNG) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), 0 when n <= 0
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Range returns a value in [lo, hi), lo when hi <= lo
func (r *RNG) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo)
}

// Float64 returns a value in [0, 1)
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Chance returns true with probability p
func (r *RNG) Chance(p float64) bool {
	return r.Float64() < p
}

// RollDice sums n rolls of a die-sided die
func (r *RNG) RollDice(n, die int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += r.Range(1, die+1)
	}
	return total
}

// Roll rolls d including its bonus
func (r *RNG) Roll(d DiceType) int {
	return r.RollDice(d.N, d.Die) + d.Bonus
}

// RollString parses and rolls s, e.g. "2d6+1"
func (r *RNG) RollString(s string) (int, error) {
	d, err := ParseDice(s)
	if err != nil {
		return 0, err
	}
	return r.Roll(d), nil
}

// RandomSliceIndex picks an index into a slice of length n, false when n <= 0
func (r *RNG) RandomSliceIndex(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	return r.Intn(n), true
}

// RandomEntry picks an element of s
func RandomEntry[T any](r *RNG, s []T) (T, bool) {
	i, ok := r.RandomSliceIndex(len(s))
	if !ok {
		var zero T
		return zero, false
	}
	return s[i], true
}

// Shuffle permutes s in place (Fisher-Yates)
func Shuffle[T any](r *RNG, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

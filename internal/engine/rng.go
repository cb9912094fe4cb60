package engine

// defaultSeed replaces a zero seed, which would lock xorshift at zero.
const defaultSeed uint64 = 88172645463325252

// RNG is a deterministic pseudo-random number generator (xorshift64).
// Two generators with the same seed and call order produce the same sequence,
// which lets a level's generation and playback spawn identical tiles.
type RNG struct {
	seed  uint64
	state uint64
	draws uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *RNG {
	r := &RNG{seed: seed}
	r.Reset()
	return r
}

// Seed returns the seed the generator was created with.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// Draws returns how many values have been drawn since the last reset.
func (r *RNG) Draws() uint64 {
	return r.draws
}

// Reset rewinds the generator to its seed.
func (r *RNG) Reset() {
	r.state = r.seed
	if r.state == 0 {
		r.state = defaultSeed
	}
	r.draws = 0
}

// Clone returns an independent generator at the same position.
func (r *RNG) Clone() *RNG {
	c := *r
	return &c
}

// Next returns the next random uint64.
func (r *RNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	r.draws++
	return r.state
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

package utils

import "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// NewRand returns a PCG generator seeded deterministically from seed, so the same
// seed always replays the same deal and the same rollouts.
func NewRand(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seeds draws n child seeds from rng in order.
func Seeds(rng *rand.Rand, n int) []int64 {
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = rng.Int64()
	}
	return seeds
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

package camp

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
)

// defaultSeed stands in for an unset Config.Seed.
const defaultSeed = 1

// Weather streams. Each PCG word is hashed from the seed and its own lane.
const (
	laneChill byte = iota
	laneGust
)

// weatherRNG returns the generator the weather system draws chill from. The
// same seed always yields the same sequence, so recorded sessions replay.
func weatherRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	// #nosec G404
	return rand.New(rand.NewPCG(weatherWord(seed, laneChill), weatherWord(seed, laneGust)))
}

func weatherWord(seed int64, lane byte) uint64 {
	var buf [9]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(seed))
	buf[8] = lane
	h := fnv.New64a()
	_, _ = h.Write([]byte("camp/weather"))
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

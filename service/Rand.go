package service

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
)

// RandomSource is a math/rand generator that can be reseeded from
// crypto/rand after a collision.
type RandomSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

var UidRand = NewRandomSource()

func NewRandomSource() *RandomSource {
	source := &RandomSource{}
	source.RenewSeed()
	return source
}

func (s *RandomSource) RenewSeed() {
	var seed [8]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic(err)
	}

	s.mu.Lock()
	s.rnd = rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(seed[:]))))
	s.mu.Unlock()
}

// Int63n returns a value in [0, n).
func (s *RandomSource) Int63n(n int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Int63n(n)
}

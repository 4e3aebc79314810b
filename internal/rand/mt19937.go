// Package rand provides the 32-bit Mersenne Twister used to drive needle drops.
// The generator follows the reference MT19937 of Matsumoto and Nishimura, so a
// given seed always yields the same stream on every platform.
package rand

import (
	cryptorand "crypto/rand"
	"encoding/binary"
)

const (
	mtN        = 624
	mtM        = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000
)

// MT19937 is a 32-bit Mersenne Twister. It satisfies math/rand/v2.Source.
type MT19937 struct {
	mt  [mtN]uint32
	mti int
}

// NewMT19937 creates a new Mersenne Twister with the given seed.
func NewMT19937(seed uint32) *MT19937 {
	mt := &MT19937{}
	mt.Seed(seed)
	return mt
}

// NewFromEntropy creates a Mersenne Twister seeded from the platform entropy
// source. The seed is returned so the stream can be replayed.
func NewFromEntropy() (*MT19937, uint32) {
	seed := EntropySeed()
	return NewMT19937(seed), seed
}

// EntropySeed reads a 32-bit seed from the operating system's entropy source.
func EntropySeed() uint32 {
	var buf [4]byte
	// crypto/rand.Read never returns an error; it aborts the program instead.
	_, _ = cryptorand.Read(buf[:])
	return binary.LittleEndian.Uint32(buf[:])
}

// Seed resets the generator state from seed.
func (mt *MT19937) Seed(seed uint32) {
	mt.mt[0] = seed
	for i := 1; i < mtN; i++ {
		mt.mt[i] = 1812433253*(mt.mt[i-1]^(mt.mt[i-1]>>30)) + uint32(i)
	}
	mt.mti = mtN
}

// twist regenerates the full block of mtN words.
func (mt *MT19937) twist() {
	mag01 := [2]uint32{0, matrixA}
	var y uint32
	var kk int
	for kk = 0; kk < mtN-mtM; kk++ {
		y = (mt.mt[kk] & upperMask) | (mt.mt[kk+1] & lowerMask)
		mt.mt[kk] = mt.mt[kk+mtM] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < mtN-1; kk++ {
		y = (mt.mt[kk] & upperMask) | (mt.mt[kk+1] & lowerMask)
		mt.mt[kk] = mt.mt[kk+(mtM-mtN)] ^ (y >> 1) ^ mag01[y&1]
	}
	y = (mt.mt[mtN-1] & upperMask) | (mt.mt[0] & lowerMask)
	mt.mt[mtN-1] = mt.mt[mtM-1] ^ (y >> 1) ^ mag01[y&1]
	mt.mti = 0
}

// Uint32 returns the next tempered 32-bit output.
func (mt *MT19937) Uint32() uint32 {
	if mt.mti >= mtN {
		mt.twist()
	}

	y := mt.mt[mt.mti]
	mt.mti++

	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18

	return y
}

// Uint64 joins two consecutive outputs, high word first.
func (mt *MT19937) Uint64() uint64 {
	hi := uint64(mt.Uint32())
	lo := uint64(mt.Uint32())
	return hi<<32 | lo
}

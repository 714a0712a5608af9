package datagen

import (
	"encoding/hex"
	"math/rand"
)

func GenRandomByteArray(r *rand.Rand, length uint64) []byte {
	newBytes := make([]byte, length)
	r.Read(newBytes)
	return newBytes
}

func GenRandomHexStr(r *rand.Rand, length uint64) string {
	randBytes := GenRandomByteArray(r, length)
	return hex.EncodeToString(randBytes)
}

func OneInN(r *rand.Rand, n int) bool {
	return RandomInt(r, n) == 0
}

func RandomInt(r *rand.Rand, rng int) uint64 {
	return uint64(r.Intn(rng))
}

// RandomIntInRange returns an int in [min, max).
func RandomIntInRange(r *rand.Rand, min, max int) int {
	return r.Intn(max-min) + min
}

func RandomIntOtherThan(r *rand.Rand, x int, rng int) uint64 {
	if rng == 1 && x == 0 {
		panic("There is no other int")
	}
	res := RandomInt(r, rng)
	for res == uint64(x) {
		res = RandomInt(r, rng)
	}
	return res
}

// GenRandomLabel returns a printable ASCII string of the given length.
func GenRandomLabel(r *rand.Rand, length int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789-"
	b := make([]byte, length)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}

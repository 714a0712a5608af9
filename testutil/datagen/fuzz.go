package datagen

import (
	"math/rand"
	"testing"
	"time"
)

// AddRandomSeedsToFuzzer seeds f with num random int64 values. Fuzz targets
// build their *rand.Rand from the seed, so a failing input replays exactly.
func AddRandomSeedsToFuzzer(f *testing.F, num uint) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := uint(0); i < num; i++ {
		f.Add(r.Int63())
	}
}

package datagen

import (
	"bytes"
	"math/rand"
	"sort"

	storetypes "github.com/babylonchain/chainkit/store/types"
)

// GenRandomKVPairs returns n pairs with distinct non-empty keys of at most
// maxKeyLen bytes, sorted by key.
func GenRandomKVPairs(r *rand.Rand, n int, maxKeyLen int) []storetypes.KVPair {
	seen := make(map[string]bool, n)
	pairs := make([]storetypes.KVPair, 0, n)
	for len(pairs) < n {
		key := GenRandomByteArray(r, uint64(RandomIntInRange(r, 1, maxKeyLen+1)))
		if seen[string(key)] {
			continue
		}
		seen[string(key)] = true
		value := GenRandomByteArray(r, RandomInt(r, 64)+1)
		pairs = append(pairs, storetypes.KVPair{Key: key, Value: value})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return bytes.Compare(pairs[i].Key, pairs[j].Key) < 0
	})
	return pairs
}

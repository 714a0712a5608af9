package datagen

import (
	"math/rand"
	"time"

	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
)

// GenRandomTMHeader returns a header at height with random hashes and a
// time in the last year.
func GenRandomTMHeader(r *rand.Rand, chainID string, height uint64) tmproto.Header {
	return tmproto.Header{
		ChainID:        chainID,
		Height:         int64(height),
		Time:           time.Now().Add(-time.Duration(RandomInt(r, 365*24)) * time.Hour).UTC(),
		LastCommitHash: GenRandomByteArray(r, 32),
		AppHash:        GenRandomByteArray(r, 32),
	}
}

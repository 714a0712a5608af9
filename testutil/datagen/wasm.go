package datagen

import (
	"math/rand"

	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/wasm/engine/kvvm"
)

// GenRandomWasmCode returns a valid kvvm code blob of size bytes.
func GenRandomWasmCode(r *rand.Rand, size int) []byte {
	header := kvvm.Header()
	if size < len(header) {
		size = len(header)
	}
	return append(header, GenRandomByteArray(r, uint64(size-len(header)))...)
}

// GenRandomContractState returns n distinct instantiate pairs.
func GenRandomContractState(r *rand.Rand, n int) map[string]string {
	state := make(map[string]string, n)
	for len(state) < n {
		state[GenRandomHexStr(r, 8)] = GenRandomHexStr(r, RandomInt(r, 16)+1)
	}
	return state
}

func GenRandomContractAddress(r *rand.Rand) sdk.AccAddress {
	return sdk.AccAddress(GenRandomByteArray(r, sdk.ContractAddrLen))
}

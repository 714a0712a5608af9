package datagen

import (
	"math/rand"

	"github.com/tendermint/tendermint/crypto/ed25519"

	sdk "github.com/babylonchain/chainkit/types"
	authtypes "github.com/babylonchain/chainkit/x/auth/types"
)

// GenRandomPrivKey derives an ed25519 key from r.
func GenRandomPrivKey(r *rand.Rand) ed25519.PrivKey {
	return ed25519.GenPrivKeyFromSecret(GenRandomByteArray(r, 32))
}

func GenRandomAccAddress(r *rand.Rand) sdk.AccAddress {
	return sdk.AccAddress(GenRandomByteArray(r, sdk.AddrLen))
}

// GenRandomAccount returns an account bound to a fresh key.
func GenRandomAccount(r *rand.Rand, accNum uint64) (*authtypes.BaseAccount, ed25519.PrivKey) {
	privKey := GenRandomPrivKey(r)
	pk := privKey.PubKey().Bytes()
	acc := authtypes.NewBaseAccount(authtypes.AddressFromPubKey(pk), accNum)
	acc.PubKey = pk
	acc.Sequence = RandomInt(r, 100)
	return acc, privKey
}

// GenRandomAccounts returns n genesis accounts numbered from 0.
func GenRandomAccounts(r *rand.Rand, n int) ([]*authtypes.BaseAccount, []ed25519.PrivKey) {
	accs := make([]*authtypes.BaseAccount, n)
	keys := make([]ed25519.PrivKey, n)
	for i := 0; i < n; i++ {
		accs[i], keys[i] = GenRandomAccount(r, uint64(i))
	}
	return accs, keys
}

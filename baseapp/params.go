package baseapp

import (
	"fmt"

	abci "github.com/tendermint/tendermint/abci/types"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"

	sdk "github.com/babylonchain/chainkit/types"
)

// Paramspace is the params subspace holding consensus params.
const Paramspace = "baseapp"

// Parameter store keys for all the consensus parameter types.
var (
	ParamStoreKeyBlockParams     = []byte("BlockParams")
	ParamStoreKeyEvidenceParams  = []byte("EvidenceParams")
	ParamStoreKeyValidatorParams = []byte("ValidatorParams")
)

// ParamStore keeps the consensus params in state.
type ParamStore interface {
	Get(ctx sdk.QueryableContext, key []byte, ptr interface{}) error
	Has(ctx sdk.QueryableContext, key []byte) (bool, error)
	Set(ctx sdk.MutableContext, key []byte, value interface{}) error
}

// GetConsensusParams returns the consensus params stored in the state ctx
// reads, or nil without a param store.
func (app *BaseApp) GetConsensusParams(ctx sdk.QueryableContext) (*abci.ConsensusParams, error) {
	if app.paramStore == nil {
		return nil, nil
	}

	cp := new(abci.ConsensusParams)

	if ok, err := app.paramStore.Has(ctx, ParamStoreKeyBlockParams); err != nil {
		return nil, err
	} else if ok {
		var bp abci.BlockParams
		if err := app.paramStore.Get(ctx, ParamStoreKeyBlockParams, &bp); err != nil {
			return nil, err
		}
		cp.Block = &bp
	}

	if ok, err := app.paramStore.Has(ctx, ParamStoreKeyEvidenceParams); err != nil {
		return nil, err
	} else if ok {
		var ep tmproto.EvidenceParams
		if err := app.paramStore.Get(ctx, ParamStoreKeyEvidenceParams, &ep); err != nil {
			return nil, err
		}
		cp.Evidence = &ep
	}

	if ok, err := app.paramStore.Has(ctx, ParamStoreKeyValidatorParams); err != nil {
		return nil, err
	} else if ok {
		var vp tmproto.ValidatorParams
		if err := app.paramStore.Get(ctx, ParamStoreKeyValidatorParams, &vp); err != nil {
			return nil, err
		}
		cp.Validator = &vp
	}

	return cp, nil
}

// StoreConsensusParams persists the consensus params set at genesis.
func (app *BaseApp) StoreConsensusParams(ctx sdk.MutableContext, cp *abci.ConsensusParams) error {
	if app.paramStore == nil {
		return fmt.Errorf("cannot store consensus params without a param store")
	}
	if cp == nil {
		return nil
	}

	if cp.Block != nil {
		if err := app.paramStore.Set(ctx, ParamStoreKeyBlockParams, cp.Block); err != nil {
			return err
		}
	}
	if cp.Evidence != nil {
		if err := app.paramStore.Set(ctx, ParamStoreKeyEvidenceParams, cp.Evidence); err != nil {
			return err
		}
	}
	if cp.Validator != nil {
		if err := app.paramStore.Set(ctx, ParamStoreKeyValidatorParams, cp.Validator); err != nil {
			return err
		}
	}
	// the version params are not stored, Tendermint rejects changing them
	return nil
}

// getMaximumBlockGas returns the block gas limit, 0 meaning unlimited.
func (app *BaseApp) getMaximumBlockGas(ctx sdk.QueryableContext) (uint64, error) {
	cp, err := app.GetConsensusParams(ctx)
	if err != nil || cp == nil || cp.Block == nil {
		return 0, err
	}

	maxGas := cp.Block.MaxGas
	switch {
	case maxGas < -1:
		return 0, fmt.Errorf("invalid maximum block gas: %d", maxGas)
	case maxGas == 0 || maxGas == -1:
		return 0, nil
	default:
		return uint64(maxGas), nil
	}
}

package types

import (
	"errors"
	"fmt"

	abci "github.com/tendermint/tendermint/abci/types"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"

	"github.com/babylonchain/chainkit/baseapp"
)

// ConsensusParamsKeyTable returns the key table of the baseapp subspace,
// which holds the consensus params.
func ConsensusParamsKeyTable() KeyTable {
	return NewKeyTable(
		NewParamSetPair(baseapp.ParamStoreKeyBlockParams, abci.BlockParams{}, ValidateBlockParams),
		NewParamSetPair(baseapp.ParamStoreKeyEvidenceParams, tmproto.EvidenceParams{}, ValidateEvidenceParams),
		NewParamSetPair(baseapp.ParamStoreKeyValidatorParams, tmproto.ValidatorParams{}, ValidateValidatorParams),
	)
}

// ValidateBlockParams defines a stateless validation on BlockParams.
func ValidateBlockParams(i interface{}) error {
	v, ok := i.(abci.BlockParams)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}

	if v.MaxBytes <= 0 {
		return fmt.Errorf("block maximum bytes must be positive: %d", v.MaxBytes)
	}

	if v.MaxGas < -1 {
		return fmt.Errorf("block maximum gas must be greater than or equal to -1: %d", v.MaxGas)
	}

	return nil
}

// ValidateEvidenceParams defines a stateless validation on EvidenceParams.
func ValidateEvidenceParams(i interface{}) error {
	v, ok := i.(tmproto.EvidenceParams)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}

	if v.MaxAgeNumBlocks <= 0 {
		return fmt.Errorf("evidence maximum age in blocks must be positive: %d", v.MaxAgeNumBlocks)
	}

	if v.MaxAgeDuration <= 0 {
		return fmt.Errorf("evidence maximum age time duration must be positive: %v", v.MaxAgeDuration)
	}

	if v.MaxBytes < 0 {
		return fmt.Errorf("maximum evidence bytes must be non-negative: %v", v.MaxBytes)
	}

	return nil
}

// ValidateValidatorParams defines a stateless validation on ValidatorParams.
func ValidateValidatorParams(i interface{}) error {
	v, ok := i.(tmproto.ValidatorParams)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", i)
	}

	if len(v.PubKeyTypes) == 0 {
		return errors.New("validator allowed pubkey types must not be empty")
	}

	return nil
}

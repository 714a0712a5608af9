package mint

import (
	"encoding/json"
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/babylonchain/chainkit/codec"
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/types/module"
	"github.com/babylonchain/chainkit/x/mint/keeper"
	"github.com/babylonchain/chainkit/x/mint/types"
)

var (
	_ module.AppModule    = AppModule{}
	_ module.HasMsgs      = AppModule{}
	_ module.HasQueries   = AppModule{}
	_ module.BeginBlocker = AppModule{}
)

// AppModuleBasic implements the AppModuleBasic interface for the mint module.
type AppModuleBasic struct{}

func (AppModuleBasic) Name() string { return types.ModuleName }

// DefaultGenesis returns the mint module's default genesis state.
func (AppModuleBasic) DefaultGenesis(cdc codec.JSONCodec) json.RawMessage {
	return cdc.MustMarshalJSON(types.DefaultGenesis())
}

// ValidateGenesis performs genesis state validation for the mint module.
func (AppModuleBasic) ValidateGenesis(cdc codec.JSONCodec, bz json.RawMessage) error {
	var genState types.GenesisState
	if err := cdc.UnmarshalJSON(bz, &genState); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}
	return genState.Validate()
}

// AppModule implements the AppModule interface for the mint module.
type AppModule struct {
	AppModuleBasic

	keeper keeper.Keeper
}

func NewAppModule(k keeper.Keeper) AppModule {
	return AppModule{keeper: k}
}

// InitGenesis performs the mint module's genesis initialization.
func (am AppModule) InitGenesis(ctx *sdk.InitContext, cdc codec.JSONCodec, bz json.RawMessage) ([]abci.ValidatorUpdate, error) {
	var genState types.GenesisState
	if err := cdc.UnmarshalJSON(bz, &genState); err != nil {
		return nil, err
	}
	if err := genState.Validate(); err != nil {
		return nil, err
	}
	return nil, am.keeper.InitGenesis(ctx, genState)
}

// ExportGenesis returns the mint module's exported genesis state as raw JSON bytes.
func (am AppModule) ExportGenesis(ctx *sdk.QueryContext, cdc codec.JSONCodec) (json.RawMessage, error) {
	gs, err := am.keeper.ExportGenesis(ctx)
	if err != nil {
		return nil, err
	}
	return cdc.MarshalJSON(gs)
}

// BeginBlock returns the begin blocker for the mint module.
func (am AppModule) BeginBlock(ctx *sdk.BlockContext, _ abci.RequestBeginBlock) error {
	return BeginBlocker(ctx, am.keeper)
}

func (am AppModule) Msgs() []sdk.Msg {
	return []sdk.Msg{&types.MsgUpdateParams{}}
}

func (am AppModule) HandleMsg(ctx *sdk.TxContext, msg sdk.Msg) error {
	switch msg := msg.(type) {
	case *types.MsgUpdateParams:
		return am.keeper.UpdateParams(ctx, msg)
	default:
		return sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized %s message type: %T", types.ModuleName, msg)
	}
}

func (am AppModule) QueryRoutes() map[string]module.QueryRoute {
	return map[string]module.QueryRoute{
		types.QueryPathParams: {
			NewRequest: func() proto.Message { return &types.QueryParamsRequest{} },
			Handler: func(ctx *sdk.QueryContext, req proto.Message) (proto.Message, error) {
				return am.keeper.Params(ctx, req.(*types.QueryParamsRequest))
			},
		},
		types.QueryPathInflation: {
			NewRequest: func() proto.Message { return &types.QueryInflationRequest{} },
			Handler: func(ctx *sdk.QueryContext, req proto.Message) (proto.Message, error) {
				return am.keeper.Inflation(ctx, req.(*types.QueryInflationRequest))
			},
		},
		types.QueryPathAnnualProvisions: {
			NewRequest: func() proto.Message { return &types.QueryAnnualProvisionsRequest{} },
			Handler: func(ctx *sdk.QueryContext, req proto.Message) (proto.Message, error) {
				return am.keeper.AnnualProvisions(ctx, req.(*types.QueryAnnualProvisionsRequest))
			},
		},
	}
}

package auth

import (
	"encoding/json"
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/babylonchain/chainkit/codec"
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/types/module"
	"github.com/babylonchain/chainkit/x/auth/keeper"
	"github.com/babylonchain/chainkit/x/auth/types"
)

var (
	_ module.AppModule  = AppModule{}
	_ module.HasMsgs    = AppModule{}
	_ module.HasQueries = AppModule{}
)

// AppModuleBasic implements the AppModuleBasic interface for the auth module.
type AppModuleBasic struct{}

func (AppModuleBasic) Name() string { return types.ModuleName }

// DefaultGenesis returns the auth module's default genesis state.
func (AppModuleBasic) DefaultGenesis(cdc codec.JSONCodec) json.RawMessage {
	return cdc.MustMarshalJSON(types.DefaultGenesis())
}

// ValidateGenesis performs genesis state validation for the auth module.
func (AppModuleBasic) ValidateGenesis(cdc codec.JSONCodec, bz json.RawMessage) error {
	var genState types.GenesisState
	if err := cdc.UnmarshalJSON(bz, &genState); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}
	return genState.Validate()
}

// AppModule implements the AppModule interface for the auth module.
type AppModule struct {
	AppModuleBasic

	keeper keeper.AccountKeeper
}

func NewAppModule(k keeper.AccountKeeper) AppModule {
	return AppModule{keeper: k}
}

// InitGenesis performs the auth module's genesis initialization.
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

// ExportGenesis returns the auth module's exported genesis state as raw JSON bytes.
func (am AppModule) ExportGenesis(ctx *sdk.QueryContext, cdc codec.JSONCodec) (json.RawMessage, error) {
	gs, err := am.keeper.ExportGenesis(ctx)
	if err != nil {
		return nil, err
	}
	return cdc.MarshalJSON(gs)
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
		types.QueryPathAccount: {
			NewRequest: func() proto.Message { return &types.QueryAccountRequest{} },
			Handler: func(ctx *sdk.QueryContext, req proto.Message) (proto.Message, error) {
				return am.keeper.Account(ctx, req.(*types.QueryAccountRequest))
			},
		},
		types.QueryPathAccounts: {
			NewRequest: func() proto.Message { return &types.QueryAccountsRequest{} },
			Handler: func(ctx *sdk.QueryContext, req proto.Message) (proto.Message, error) {
				return am.keeper.Accounts(ctx, req.(*types.QueryAccountsRequest))
			},
		},
		types.QueryPathParams: {
			NewRequest: func() proto.Message { return &types.QueryParamsRequest{} },
			Handler: func(ctx *sdk.QueryContext, req proto.Message) (proto.Message, error) {
				return am.keeper.Params(ctx, req.(*types.QueryParamsRequest))
			},
		},
	}
}

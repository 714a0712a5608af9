package params

import (
	"encoding/json"

	"github.com/gogo/protobuf/proto"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/babylonchain/chainkit/codec"
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/types/module"
	"github.com/babylonchain/chainkit/x/params/keeper"
	"github.com/babylonchain/chainkit/x/params/types"
)

var (
	_ module.AppModule  = AppModule{}
	_ module.HasQueries = AppModule{}
)

// AppModuleBasic is the stateless part of the params module.
type AppModuleBasic struct{}

func (AppModuleBasic) Name() string { return types.ModuleName }

func (AppModuleBasic) DefaultGenesis(cdc codec.JSONCodec) json.RawMessage {
	return cdc.MustMarshalJSON(&types.GenesisState{})
}

func (AppModuleBasic) ValidateGenesis(cdc codec.JSONCodec, bz json.RawMessage) error {
	var gs types.GenesisState
	return cdc.UnmarshalJSON(bz, &gs)
}

// AppModule serves raw parameter queries.
type AppModule struct {
	AppModuleBasic

	keeper keeper.Keeper
}

func NewAppModule(k keeper.Keeper) AppModule {
	return AppModule{keeper: k}
}

func (am AppModule) InitGenesis(_ *sdk.InitContext, _ codec.JSONCodec, _ json.RawMessage) ([]abci.ValidatorUpdate, error) {
	return nil, nil
}

func (am AppModule) ExportGenesis(_ *sdk.QueryContext, cdc codec.JSONCodec) (json.RawMessage, error) {
	return cdc.MarshalJSON(&types.GenesisState{})
}

func (am AppModule) QueryRoutes() map[string]module.QueryRoute {
	return map[string]module.QueryRoute{
		types.QueryPathParams: {
			NewRequest: func() proto.Message { return &types.QueryParamsRequest{} },
			Handler: func(ctx *sdk.QueryContext, req proto.Message) (proto.Message, error) {
				return am.keeper.Params(ctx, req.(*types.QueryParamsRequest))
			},
		},
		types.QueryPathSubspaces: {
			NewRequest: func() proto.Message { return &types.QuerySubspacesRequest{} },
			Handler: func(ctx *sdk.QueryContext, req proto.Message) (proto.Message, error) {
				return am.keeper.Subspaces(ctx, req.(*types.QuerySubspacesRequest))
			},
		},
	}
}

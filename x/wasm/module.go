package wasm

import (
	"encoding/json"
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/babylonchain/chainkit/codec"
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/types/module"
	"github.com/babylonchain/chainkit/x/wasm/keeper"
	"github.com/babylonchain/chainkit/x/wasm/types"
)

var (
	_ module.AppModule  = AppModule{}
	_ module.HasMsgs    = AppModule{}
	_ module.HasQueries = AppModule{}
	_ module.EndBlocker = AppModule{}
)

// AppModuleBasic implements the AppModuleBasic interface for the wasm module.
type AppModuleBasic struct{}

func (AppModuleBasic) Name() string { return types.ModuleName }

// DefaultGenesis returns the wasm module's default genesis state.
func (AppModuleBasic) DefaultGenesis(cdc codec.JSONCodec) json.RawMessage {
	return cdc.MustMarshalJSON(types.DefaultGenesis())
}

// ValidateGenesis performs genesis state validation for the wasm module.
func (AppModuleBasic) ValidateGenesis(cdc codec.JSONCodec, bz json.RawMessage) error {
	var genState types.GenesisState
	if err := cdc.UnmarshalJSON(bz, &genState); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}
	return genState.Validate()
}

// AppModule implements the AppModule interface for the wasm module.
type AppModule struct {
	AppModuleBasic

	keeper    keeper.Keeper
	msgServer types.MsgServer
}

func NewAppModule(k keeper.Keeper) AppModule {
	return AppModule{
		keeper:    k,
		msgServer: keeper.NewMsgServerImpl(k),
	}
}

// InitGenesis performs the wasm module's genesis initialization.
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

// ExportGenesis returns the wasm module's exported genesis state as raw JSON bytes.
func (am AppModule) ExportGenesis(ctx *sdk.QueryContext, cdc codec.JSONCodec) (json.RawMessage, error) {
	gs, err := am.keeper.ExportGenesis(ctx)
	if err != nil {
		return nil, err
	}
	return cdc.MarshalJSON(gs)
}

// EndBlock hands the params of the block to the engine.
func (am AppModule) EndBlock(ctx *sdk.BlockContext, _ abci.RequestEndBlock) ([]abci.ValidatorUpdate, error) {
	return nil, am.keeper.EndBlocker(ctx)
}

func (am AppModule) Msgs() []sdk.Msg {
	return []sdk.Msg{
		&types.MsgStoreCode{},
		&types.MsgInstantiateContract{},
		&types.MsgExecuteContract{},
		&types.MsgMigrateContract{},
		&types.MsgUpdateAdmin{},
		&types.MsgClearAdmin{},
		&types.MsgUpdateParams{},
	}
}

func (am AppModule) HandleMsg(ctx *sdk.TxContext, msg sdk.Msg) error {
	var err error
	switch msg := msg.(type) {
	case *types.MsgStoreCode:
		_, err = am.msgServer.StoreCode(ctx, msg)
	case *types.MsgInstantiateContract:
		_, err = am.msgServer.InstantiateContract(ctx, msg)
	case *types.MsgExecuteContract:
		_, err = am.msgServer.ExecuteContract(ctx, msg)
	case *types.MsgMigrateContract:
		_, err = am.msgServer.MigrateContract(ctx, msg)
	case *types.MsgUpdateAdmin:
		err = am.msgServer.UpdateAdmin(ctx, msg)
	case *types.MsgClearAdmin:
		err = am.msgServer.ClearAdmin(ctx, msg)
	case *types.MsgUpdateParams:
		err = am.msgServer.UpdateParams(ctx, msg)
	default:
		err = sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized %s message type: %T", types.ModuleName, msg)
	}
	return err
}

func (am AppModule) QueryRoutes() map[string]module.QueryRoute {
	k := am.keeper
	return map[string]module.QueryRoute{
		types.QueryPathContractInfo: {
			NewRequest: func() proto.Message { return &types.QueryContractInfoRequest{} },
			Handler: func(ctx *sdk.QueryContext, req proto.Message) (proto.Message, error) {
				return k.ContractInfo(ctx, req.(*types.QueryContractInfoRequest))
			},
		},
		types.QueryPathContractsByCode: {
			NewRequest: func() proto.Message { return &types.QueryContractsByCodeRequest{} },
			Handler: func(ctx *sdk.QueryContext, req proto.Message) (proto.Message, error) {
				return k.ContractsByCode(ctx, req.(*types.QueryContractsByCodeRequest))
			},
		},
		types.QueryPathRawContractState: {
			NewRequest: func() proto.Message { return &types.QueryRawContractStateRequest{} },
			Handler: func(ctx *sdk.QueryContext, req proto.Message) (proto.Message, error) {
				return k.RawContractState(ctx, req.(*types.QueryRawContractStateRequest))
			},
		},
		types.QueryPathSmartContractState: {
			NewRequest: func() proto.Message { return &types.QuerySmartContractStateRequest{} },
			Handler: func(ctx *sdk.QueryContext, req proto.Message) (proto.Message, error) {
				return k.SmartContractState(ctx, req.(*types.QuerySmartContractStateRequest))
			},
		},
		types.QueryPathCode: {
			NewRequest: func() proto.Message { return &types.QueryCodeRequest{} },
			Handler: func(ctx *sdk.QueryContext, req proto.Message) (proto.Message, error) {
				return k.Code(ctx, req.(*types.QueryCodeRequest))
			},
		},
		types.QueryPathCodes: {
			NewRequest: func() proto.Message { return &types.QueryCodesRequest{} },
			Handler: func(ctx *sdk.QueryContext, req proto.Message) (proto.Message, error) {
				return k.Codes(ctx, req.(*types.QueryCodesRequest))
			},
		},
		types.QueryPathParams: {
			NewRequest: func() proto.Message { return &types.QueryParamsRequest{} },
			Handler: func(ctx *sdk.QueryContext, req proto.Message) (proto.Message, error) {
				return k.Params(ctx, req.(*types.QueryParamsRequest))
			},
		},
	}
}

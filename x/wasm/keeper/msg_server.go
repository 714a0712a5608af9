package keeper

import (
	"encoding/hex"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/wasm/types"
)

type msgServer struct {
	Keeper
}

var _ types.MsgServer = msgServer{}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

func (m msgServer) StoreCode(ctx *sdk.TxContext, msg *types.MsgStoreCode) (*types.MsgStoreCodeResponse, error) {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}

	codeID, checksum, err := m.Keeper.StoreCode(ctx, sender, msg.WASMByteCode, msg.InstantiatePermission)
	if err != nil {
		return nil, err
	}

	pushMessageEvent(ctx, msg.Sender)
	ctx.PushEvent(sdk.NewEvent(types.EventTypeStoreCode,
		codeIDAttribute(codeID),
		sdk.NewAttribute(types.AttributeKeyChecksum, hex.EncodeToString(checksum)),
	))
	return &types.MsgStoreCodeResponse{CodeID: codeID, Checksum: checksum}, nil
}

func (m msgServer) InstantiateContract(ctx *sdk.TxContext, msg *types.MsgInstantiateContract) (*types.MsgInstantiateContractResponse, error) {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}
	var admin sdk.AccAddress
	if msg.Admin != "" {
		if admin, err = sdk.AccAddressFromBech32(msg.Admin); err != nil {
			return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
		}
	}

	pushMessageEvent(ctx, msg.Sender)
	contractAddr, data, err := m.Keeper.Instantiate(ctx, msg.CodeID, sender, admin, msg.Msg, msg.Label)
	if err != nil {
		return nil, err
	}
	return &types.MsgInstantiateContractResponse{Address: contractAddr.String(), Data: data}, nil
}

func (m msgServer) ExecuteContract(ctx *sdk.TxContext, msg *types.MsgExecuteContract) (*types.MsgExecuteContractResponse, error) {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}
	contractAddr, err := sdk.AccAddressFromBech32(msg.Contract)
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "contract")
	}

	pushMessageEvent(ctx, msg.Sender)
	data, err := m.Keeper.Execute(ctx, contractAddr, sender, msg.Msg)
	if err != nil {
		return nil, err
	}
	return &types.MsgExecuteContractResponse{Data: data}, nil
}

func (m msgServer) MigrateContract(ctx *sdk.TxContext, msg *types.MsgMigrateContract) (*types.MsgMigrateContractResponse, error) {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}
	contractAddr, err := sdk.AccAddressFromBech32(msg.Contract)
	if err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "contract")
	}

	pushMessageEvent(ctx, msg.Sender)
	data, err := m.Keeper.Migrate(ctx, contractAddr, sender, msg.CodeID, msg.Msg)
	if err != nil {
		return nil, err
	}
	return &types.MsgMigrateContractResponse{Data: data}, nil
}

func (m msgServer) UpdateAdmin(ctx *sdk.TxContext, msg *types.MsgUpdateAdmin) error {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}
	contractAddr, err := sdk.AccAddressFromBech32(msg.Contract)
	if err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "contract")
	}
	newAdmin, err := sdk.AccAddressFromBech32(msg.NewAdmin)
	if err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "new admin")
	}

	pushMessageEvent(ctx, msg.Sender)
	return m.Keeper.UpdateContractAdmin(ctx, contractAddr, sender, newAdmin)
}

func (m msgServer) ClearAdmin(ctx *sdk.TxContext, msg *types.MsgClearAdmin) error {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, err.Error())
	}
	contractAddr, err := sdk.AccAddressFromBech32(msg.Contract)
	if err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "contract")
	}

	pushMessageEvent(ctx, msg.Sender)
	return m.Keeper.UpdateContractAdmin(ctx, contractAddr, sender, nil)
}

// UpdateParams updates the params
func (m msgServer) UpdateParams(ctx *sdk.TxContext, req *types.MsgUpdateParams) error {
	if m.authority != req.Authority {
		return sdkerrors.Wrapf(types.ErrUnauthorized, "invalid authority; expected %s, got %s", m.authority, req.Authority)
	}
	if req.Params == nil {
		return sdkerrors.Wrap(types.ErrInvalidRequest, "params cannot be empty")
	}

	if err := m.SetParams(ctx, *req.Params); err != nil {
		return err
	}

	ctx.PushEvent(sdk.NewEvent(types.EventTypeUpdateParams,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(types.AttributeKeyAuthority, req.Authority),
	))
	return nil
}

func pushMessageEvent(ctx *sdk.TxContext, sender string) {
	ctx.PushEvent(sdk.NewEvent(sdk.EventTypeMessage,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
		sdk.NewAttribute(sdk.AttributeKeySender, sender),
	))
}

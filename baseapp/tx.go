package baseapp

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/crypto/tmhash"

	"github.com/babylonchain/chainkit/codec"
	"github.com/babylonchain/chainkit/store/cachemulti"
	storetypes "github.com/babylonchain/chainkit/store/types"
	sdk "github.com/babylonchain/chainkit/types"
)

// GasInfo reports the gas of one transaction.
type GasInfo struct {
	GasWanted uint64
	GasUsed   uint64
}

// Result is the outcome of a transaction.
type Result struct {
	Log    string
	Events []abci.Event
}

// SimulationResponse is returned by the /app/simulate query.
type SimulationResponse struct {
	GasWanted uint64 `protobuf:"varint,1,opt,name=gas_wanted,json=gasWanted,proto3" json:"gas_wanted,omitempty"`
	GasUsed   uint64 `protobuf:"varint,2,opt,name=gas_used,json=gasUsed,proto3" json:"gas_used,omitempty"`
	Log       string `protobuf:"bytes,3,opt,name=log,proto3" json:"log,omitempty"`
}

func (m *SimulationResponse) Reset()                { *m = SimulationResponse{} }
func (m *SimulationResponse) String() string        { return proto.CompactTextString(m) }
func (*SimulationResponse) ProtoMessage()           {}
func (*SimulationResponse) XXX_MessageName() string { return "chainkit.baseapp.v1.SimulationResponse" }

// Simulate runs txBytes against the check state without writing anything.
func (app *BaseApp) Simulate(txBytes []byte) (GasInfo, *Result, error) {
	return app.runTx(sdk.ExecModeSimulate, txBytes)
}

func validateBasicTxMsgs(msgs []sdk.Msg) error {
	if len(msgs) == 0 {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "must contain at least one message")
	}

	for _, msg := range msgs {
		if err := msg.ValidateBasic(); err != nil {
			return err
		}
	}
	return nil
}

// runTx decodes and executes a transaction in mode.
//
// The ante checks run under their own checkpoint: if they fail nothing the
// transaction wrote is kept. Every message runs under a checkpoint nested
// in one covering all messages, so a failing message reverts the writes and
// events of every message while the ante writes persist. Check mode stops
// after the ante checks and writes them to the check state. Simulation never
// writes. In deliver mode the gas used is charged to the block before the
// writes reach the deliver state.
func (app *BaseApp) runTx(mode sdk.ExecMode, txBytes []byte) (gInfo GasInfo, result *Result, err error) {
	var (
		txIndex uint32
		txHash  [32]byte
	)
	if mode == sdk.ExecModeDeliver {
		txIndex = app.txIndex
		app.txIndex++
		copy(txHash[:], tmhash.Sum(txBytes))

		if app.blockGasMeter.IsOutOfGas() {
			return gInfo, nil, sdkerrors.Wrap(sdkerrors.ErrOutOfGas, "no block gas left to run tx")
		}
	}

	tx, err := app.txDecoder(txBytes)
	if err != nil {
		return gInfo, nil, err
	}
	feeTx, ok := tx.(sdk.FeeTx)
	if !ok {
		return gInfo, nil, sdkerrors.Wrap(sdkerrors.ErrTxDecode, "transaction does not declare its gas")
	}
	gInfo.GasWanted = feeTx.GetGas()

	if err := validateBasicTxMsgs(tx.GetMsgs()); err != nil {
		return gInfo, nil, err
	}

	var gasMeter storetypes.GasMeter
	if mode == sdk.ExecModeSimulate {
		gasMeter = storetypes.NewInfiniteGasMeter()
	} else {
		gasMeter = storetypes.NewGasMeter(feeTx.GetGas())
	}
	defer func() {
		gInfo.GasUsed = gasMeter.GasConsumedToLimit()
	}()

	st := app.getState(mode)
	msCache := st.ms.CacheMultiStore()

	var ctx *sdk.TxContext
	if mode == sdk.ExecModeSimulate {
		ctx = sdk.NewSimulateTxContext(msCache, st.header, gasMeter, app.logger)
	} else {
		ctx = sdk.NewTxContext(msCache, st.header, gasMeter, txIndex, txHash, mode, app.logger)
	}

	anteCp := ctx.Checkpoint()
	if err := app.handler.RunAnteChecks(ctx, tx); err != nil {
		if rerr := ctx.RevertToCheckpoint(anteCp); rerr != nil {
			panic(rerr)
		}
		return gInfo, nil, err
	}
	if err := ctx.CommitCheckpoint(anteCp); err != nil {
		panic(err)
	}

	if ctx.IsCheckTx() {
		if err := app.writeCheckState(msCache); err != nil {
			return gInfo, nil, err
		}
		return gInfo, &Result{Events: ctx.EventsDrain()}, nil
	}

	msgErr := app.runMsgs(ctx, tx.GetMsgs())
	result = &Result{Events: ctx.EventsDrain()}

	if mode == sdk.ExecModeDeliver {
		if err := app.blockGasMeter.ConsumeGas(gasMeter.GasConsumedToLimit(), "block gas meter"); err != nil {
			return gInfo, nil, err
		}
		if err := msCache.Write(); err != nil {
			return gInfo, nil, err
		}
	}

	if msgErr != nil {
		return gInfo, result, msgErr
	}
	return gInfo, result, nil
}

// runMsgs executes msgs in order. If one fails, the writes and events of
// all of them are reverted.
func (app *BaseApp) runMsgs(ctx *sdk.TxContext, msgs []sdk.Msg) error {
	msgsCp := ctx.Checkpoint()

	for i, msg := range msgs {
		cp := ctx.Checkpoint()

		ctx.PushEvent(sdk.NewEvent(sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyAction, codec.MsgTypeURL(msg)),
		))
		if err := app.handler.Msg(ctx, msg); err != nil {
			if rerr := ctx.RevertToCheckpoint(cp); rerr != nil {
				panic(rerr)
			}
			if rerr := ctx.RevertToCheckpoint(msgsCp); rerr != nil {
				panic(rerr)
			}
			return sdkerrors.Wrapf(err, "failed to execute message; message index: %d", i)
		}

		if err := ctx.CommitCheckpoint(cp); err != nil {
			panic(err)
		}
	}

	return ctx.CommitCheckpoint(msgsCp)
}

func (app *BaseApp) getState(mode sdk.ExecMode) *state {
	if mode == sdk.ExecModeDeliver {
		return app.deliverState
	}

	app.checkMtx.Lock()
	defer app.checkMtx.Unlock()
	return app.checkState
}

func (app *BaseApp) writeCheckState(msCache *cachemulti.Store) error {
	app.checkMtx.Lock()
	defer app.checkMtx.Unlock()
	return msCache.Write()
}

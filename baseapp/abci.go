package baseapp

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"
	abci "github.com/tendermint/tendermint/abci/types"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"

	storetypes "github.com/babylonchain/chainkit/store/types"
	"github.com/babylonchain/chainkit/telemetry"
	sdk "github.com/babylonchain/chainkit/types"
)

// Info returns the latest committed height and app hash.
func (app *BaseApp) Info(req abci.RequestInfo) abci.ResponseInfo {
	lastCommitID := app.cms.LastCommitID()

	return abci.ResponseInfo{
		Data:             app.name,
		Version:          app.version,
		AppVersion:       app.appVersion,
		LastBlockHeight:  lastCommitID.Version,
		LastBlockAppHash: lastCommitID.Hash,
	}
}

// InitChain runs the genesis of every module. Its writes stay pending in
// the deliver state and are committed with the first block.
func (app *BaseApp) InitChain(req abci.RequestInitChain) (res abci.ResponseInitChain) {
	if req.InitialHeight > 1 {
		panic(fmt.Sprintf("initial height %d is not supported, chains start at height 1", req.InitialHeight))
	}

	app.chainID = req.ChainId
	initHeader := tmproto.Header{ChainID: req.ChainId, Time: req.Time}
	app.setDeliverState(initHeader)
	app.setCheckState(initHeader)

	ctx := sdk.NewInitContext(app.deliverState.ms, req.ChainId, req.Time, app.logger)

	if req.ConsensusParams != nil && app.paramStore != nil {
		if err := app.StoreConsensusParams(ctx, req.ConsensusParams); err != nil {
			panic(fmt.Errorf("store consensus params: %w", err))
		}
	}

	genesis := map[string]json.RawMessage{}
	if len(req.AppStateBytes) > 0 {
		if err := json.Unmarshal(req.AppStateBytes, &genesis); err != nil {
			panic(fmt.Errorf("decode app state: %w", err))
		}
	}

	validators, err := app.handler.InitGenesis(ctx, genesis)
	if err != nil {
		panic(fmt.Errorf("init genesis: %w", err))
	}

	app.logger.Info("initialized chain", "chain_id", req.ChainId, "modules", sortedModules(genesis))
	return abci.ResponseInitChain{
		ConsensusParams: req.ConsensusParams,
		Validators:      validators,
		AppHash:         app.cms.LastCommitID().Hash,
	}
}

// BeginBlock opens the block. Genesis writes, if any, remain in the deliver
// state.
func (app *BaseApp) BeginBlock(req abci.RequestBeginBlock) (res abci.ResponseBeginBlock) {
	if err := app.validateHeight(req); err != nil {
		panic(err)
	}

	if app.deliverState == nil {
		app.setDeliverState(req.Header)
	} else {
		app.deliverState.header = req.Header
	}

	ctx := sdk.NewBlockContext(app.deliverState.ms, req.Header, app.logger)

	maxGas, err := app.getMaximumBlockGas(ctx)
	if err != nil {
		panic(err)
	}
	if maxGas > 0 {
		app.blockGasMeter = storetypes.NewGasMeter(maxGas)
	} else {
		app.blockGasMeter = storetypes.NewInfiniteGasMeter()
	}
	app.txIndex = 0

	if err := app.handler.BeginBlock(ctx, req); err != nil {
		panic(fmt.Errorf("begin block %d: %w", req.Header.Height, err))
	}

	return abci.ResponseBeginBlock{Events: ctx.EventsDrain()}
}

func (app *BaseApp) validateHeight(req abci.RequestBeginBlock) error {
	if req.Header.Height < 1 {
		return fmt.Errorf("invalid height: %d", req.Header.Height)
	}

	expectedHeight := app.LastBlockHeight() + 1
	if req.Header.Height != expectedHeight {
		return fmt.Errorf("invalid height: %d; expected: %d", req.Header.Height, expectedHeight)
	}
	return nil
}

// CheckTx runs the ante checks of a transaction against the check state.
// Messages are not executed.
func (app *BaseApp) CheckTx(req abci.RequestCheckTx) abci.ResponseCheckTx {
	var mode sdk.ExecMode
	switch req.Type {
	case abci.CheckTxType_New:
		mode = sdk.ExecModeCheck
	case abci.CheckTxType_Recheck:
		mode = sdk.ExecModeReCheck
	default:
		panic(fmt.Sprintf("unknown CheckTx type: %s", req.Type))
	}

	gInfo, result, err := app.runTx(mode, req.Tx)
	app.recordTx(mode, gInfo, err)
	if err != nil {
		codespace, code, log := sdkerrors.ABCIInfo(err, false)
		res := abci.ResponseCheckTx{
			Codespace: codespace,
			Code:      code,
			Log:       log,
			GasWanted: int64(gInfo.GasWanted),
			GasUsed:   int64(gInfo.GasUsed),
		}
		if result != nil {
			res.Events = result.Events
		}
		return res
	}

	return abci.ResponseCheckTx{
		GasWanted: int64(gInfo.GasWanted),
		GasUsed:   int64(gInfo.GasUsed),
		Log:       result.Log,
		Events:    result.Events,
	}
}

// DeliverTx executes a transaction of the current block.
func (app *BaseApp) DeliverTx(req abci.RequestDeliverTx) abci.ResponseDeliverTx {
	gInfo, result, err := app.runTx(sdk.ExecModeDeliver, req.Tx)
	app.recordTx(sdk.ExecModeDeliver, gInfo, err)
	if err != nil {
		codespace, code, log := sdkerrors.ABCIInfo(err, false)
		res := abci.ResponseDeliverTx{
			Codespace: codespace,
			Code:      code,
			Log:       log,
			GasWanted: int64(gInfo.GasWanted),
			GasUsed:   int64(gInfo.GasUsed),
		}
		if result != nil {
			res.Events = result.Events
		}
		return res
	}

	return abci.ResponseDeliverTx{
		GasWanted: int64(gInfo.GasWanted),
		GasUsed:   int64(gInfo.GasUsed),
		Log:       result.Log,
		Events:    result.Events,
	}
}

func (app *BaseApp) recordTx(mode sdk.ExecMode, gInfo GasInfo, err error) {
	if app.metrics == nil {
		return
	}
	codespace, _, _ := sdkerrors.ABCIInfo(err, false)
	app.metrics.TxCounter.WithLabelValues(mode.String(), telemetry.Result(err), codespace).Inc()
	app.metrics.TxGasUsed.WithLabelValues(mode.String()).Observe(float64(gInfo.GasUsed))
}

// EndBlock closes the block and reports validator and consensus param
// updates.
func (app *BaseApp) EndBlock(req abci.RequestEndBlock) (res abci.ResponseEndBlock) {
	ctx := sdk.NewBlockContext(app.deliverState.ms, app.deliverState.header, app.logger)

	validators, err := app.handler.EndBlock(ctx, req)
	if err != nil {
		panic(fmt.Errorf("end block %d: %w", req.Height, err))
	}

	cp, err := app.GetConsensusParams(ctx)
	if err != nil {
		panic(err)
	}

	return abci.ResponseEndBlock{
		ValidatorUpdates:      validators,
		ConsensusParamUpdates: cp,
		Events:                ctx.EventsDrain(),
	}
}

// Commit writes the deliver state, commits a new height and resets the
// check state on top of it.
func (app *BaseApp) Commit() abci.ResponseCommit {
	start := time.Now()
	header := app.deliverState.header

	if err := app.deliverState.ms.Write(); err != nil {
		panic(fmt.Errorf("write block %d: %w", header.Height, err))
	}
	commitID, err := app.cms.Commit(header.Time)
	if err != nil {
		panic(fmt.Errorf("commit block %d: %w", header.Height, err))
	}
	app.logger.Info("commit synced", "height", commitID.Version, "commit", fmt.Sprintf("%X", commitID.Hash))

	app.setCheckState(header)
	app.deliverState = nil

	if app.metrics != nil {
		telemetry.MeasureSince(app.metrics.CommitHistogram, start)
		app.metrics.BlockHeight.Set(float64(commitID.Version))
	}

	return abci.ResponseCommit{Data: commitID.Hash}
}

// Query serves app, store and module queries from committed state.
func (app *BaseApp) Query(req abci.RequestQuery) (res abci.ResponseQuery) {
	if app.metrics != nil {
		defer func() {
			result := telemetry.ResultOK
			if res.Code != 0 {
				result = telemetry.ResultErr
			}
			app.metrics.QueryCounter.WithLabelValues(req.Path, result).Inc()
		}()
	}

	if req.Height < 0 {
		return queryResult(sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "cannot query with height < 0"))
	}
	if req.Prove {
		return queryResult(sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "proofs are not supported"))
	}

	path := splitPath(req.Path)
	if len(path) == 0 {
		return queryResult(sdkerrors.Wrap(sdkerrors.ErrUnknownRequest, "no query path provided"))
	}

	switch path[0] {
	case "app":
		return app.handleQueryApp(path, req)
	case "store":
		return app.handleQueryStore(path, req)
	default:
		return app.handleQueryModule(req)
	}
}

func (app *BaseApp) handleQueryApp(path []string, req abci.RequestQuery) abci.ResponseQuery {
	if len(path) < 2 {
		return queryResult(sdkerrors.Wrap(sdkerrors.ErrUnknownRequest, "expected second parameter to be either 'simulate' or 'version'"))
	}

	switch path[1] {
	case "simulate":
		gInfo, result, err := app.Simulate(req.Data)
		if err != nil {
			return queryResult(sdkerrors.Wrap(err, "failed to simulate tx"))
		}
		bz, err := proto.Marshal(&SimulationResponse{
			GasWanted: gInfo.GasWanted,
			GasUsed:   gInfo.GasUsed,
			Log:       result.Log,
		})
		if err != nil {
			return queryResult(sdkerrors.Wrap(err, "failed to encode simulation response"))
		}
		return abci.ResponseQuery{
			Height: app.LastBlockHeight(),
			Value:  bz,
		}

	case "version":
		return abci.ResponseQuery{
			Height: app.LastBlockHeight(),
			Value:  []byte(app.version),
		}

	default:
		return queryResult(sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unknown query: %s", path))
	}
}

// handleQueryStore serves /store/<name>/key with the raw value of key
// req.Data in namespace <name>.
func (app *BaseApp) handleQueryStore(path []string, req abci.RequestQuery) abci.ResponseQuery {
	if len(path) != 3 || path[2] != "key" {
		return queryResult(sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "expected /store/<name>/key, got %s", req.Path))
	}
	key, ok := app.keys.Key(path[1])
	if !ok {
		return queryResult(sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "no such store: %s", path[1]))
	}
	if len(req.Data) == 0 {
		return queryResult(sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "query cannot be zero length"))
	}

	ctx, err := app.CreateQueryContext(req.Height)
	if err != nil {
		return queryResult(err)
	}
	value, err := ctx.KVStore(key).Get(req.Data)
	if err != nil {
		return queryResult(err)
	}
	return abci.ResponseQuery{
		Height: ctx.Height(),
		Key:    req.Data,
		Value:  value,
	}
}

func (app *BaseApp) handleQueryModule(req abci.RequestQuery) abci.ResponseQuery {
	ctx, err := app.CreateQueryContext(req.Height)
	if err != nil {
		return queryResult(err)
	}

	bz, err := app.handler.Query(ctx, req)
	if err != nil {
		res := queryResult(err)
		res.Height = ctx.Height()
		return res
	}
	return abci.ResponseQuery{
		Height: ctx.Height(),
		Value:  bz,
	}
}

func queryResult(err error) abci.ResponseQuery {
	space, code, log := sdkerrors.ABCIInfo(err, false)
	return abci.ResponseQuery{
		Codespace: space,
		Code:      code,
		Log:       log,
	}
}

// splitPath splits a query path by "/", dropping empty components.
func splitPath(requestPath string) (path []string) {
	for _, part := range strings.Split(requestPath, "/") {
		if part != "" {
			path = append(path, part)
		}
	}
	return path
}

// sortedModules returns the keys of genesis in order, for logging.
func sortedModules(genesis map[string]json.RawMessage) []string {
	names := make([]string, 0, len(genesis))
	for name := range genesis {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

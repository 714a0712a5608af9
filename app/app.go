package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cosmos/cosmos-sdk/version"
	"github.com/spf13/cast"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"

	"github.com/babylonchain/chainkit/baseapp"
	"github.com/babylonchain/chainkit/codec"
	storetypes "github.com/babylonchain/chainkit/store/types"
	"github.com/babylonchain/chainkit/telemetry"
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/types/module"
	"github.com/babylonchain/chainkit/x/auth"
	authkeeper "github.com/babylonchain/chainkit/x/auth/keeper"
	authtypes "github.com/babylonchain/chainkit/x/auth/types"
	"github.com/babylonchain/chainkit/x/mint"
	mintkeeper "github.com/babylonchain/chainkit/x/mint/keeper"
	minttypes "github.com/babylonchain/chainkit/x/mint/types"
	"github.com/babylonchain/chainkit/x/params"
	paramskeeper "github.com/babylonchain/chainkit/x/params/keeper"
	paramstypes "github.com/babylonchain/chainkit/x/params/types"
	"github.com/babylonchain/chainkit/x/wasm"
	"github.com/babylonchain/chainkit/x/wasm/engine/kvvm"
	wasmkeeper "github.com/babylonchain/chainkit/x/wasm/keeper"
	wasmtypes "github.com/babylonchain/chainkit/x/wasm/types"
)

const appName = "ChainApp"

var (
	// DefaultNodeHome default home directories for the application daemon
	DefaultNodeHome string

	// ModuleBasics defines the module BasicManager is in charge of setting up basic,
	// non-dependant module elements, such as genesis verification.
	ModuleBasics = module.NewBasicManager(
		params.AppModuleBasic{},
		auth.AppModuleBasic{},
		wasm.AppModuleBasic{},
		mint.AppModuleBasic{},
	)
)

var _ baseapp.ABCIHandler = (*module.Manager)(nil)

// ChainApp extends an ABCI application, but with most of its parameters exported.
// They are exported for convenience in creating helper functions.
type ChainApp struct {
	*baseapp.BaseApp

	cdc       *codec.ProtoCodec
	txEncoder sdk.TxEncoder
	cfg       Config

	// keepers
	ParamsKeeper  paramskeeper.Keeper
	AccountKeeper authkeeper.AccountKeeper
	WasmKeeper    wasmkeeper.Keeper
	MintKeeper    mintkeeper.Keeper

	WasmEngine *kvvm.Engine
	Metrics    *telemetry.Metrics

	// the module manager
	mm *module.Manager
}

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	DefaultNodeHome = filepath.Join(userHomeDir, ".chaind")
}

// NewChainApp returns the application over db, loaded at its latest height.
func NewChainApp(
	logger log.Logger, db dbm.DB, appOpts AppOptions, baseAppOptions ...func(*baseapp.BaseApp),
) (*ChainApp, error) {
	cfg := ParseConfig(appOpts)
	encodingConfig := MakeEncodingConfig()
	cdc := encodingConfig.Codec

	keys, err := storetypes.NewKeyTable(
		paramstypes.StoreKey,
		authtypes.StoreKey,
		wasmtypes.StoreKey,
		minttypes.StoreKey,
	)
	if err != nil {
		return nil, err
	}

	app := &ChainApp{
		cdc:       cdc,
		txEncoder: encodingConfig.TxEncoder,
		cfg:       cfg,
		Metrics:   telemetry.NewMetrics(),
	}

	app.ParamsKeeper = initParamsKeeper(cdc, keys.MustKey(paramstypes.StoreKey))

	app.AccountKeeper = authkeeper.NewAccountKeeper(
		cdc,
		keys.MustKey(authtypes.StoreKey),
		app.GetSubspace(authtypes.ModuleName),
		cfg.Authority,
	)

	// the cache is resized to the memory cache size param once it is loaded
	app.WasmEngine, err = kvvm.NewFromParams(wasmtypes.DefaultParams())
	if err != nil {
		return nil, fmt.Errorf("create wasm engine: %w", err)
	}
	app.WasmEngine.SetMetrics(app.Metrics)
	app.WasmKeeper = wasmkeeper.NewKeeper(
		cdc,
		keys.MustKey(wasmtypes.StoreKey),
		app.GetSubspace(wasmtypes.ModuleName),
		app.WasmEngine,
		cfg.Authority,
	)

	app.MintKeeper = mintkeeper.NewKeeper(
		cdc,
		keys.MustKey(minttypes.StoreKey),
		app.GetSubspace(minttypes.ModuleName),
		cfg.Authority,
	)

	app.mm = module.NewManager(
		cdc,
		params.NewAppModule(app.ParamsKeeper),
		auth.NewAppModule(app.AccountKeeper),
		wasm.NewAppModule(app.WasmKeeper),
		mint.NewAppModule(app.MintKeeper),
	)
	// params has no state of its own, auth must exist before contracts are
	// instantiated at genesis
	app.mm.SetOrderInitGenesis(
		paramstypes.ModuleName,
		authtypes.ModuleName,
		wasmtypes.ModuleName,
		minttypes.ModuleName,
	)
	app.mm.SetOrderExportGenesis(
		paramstypes.ModuleName,
		authtypes.ModuleName,
		wasmtypes.ModuleName,
		minttypes.ModuleName,
	)
	app.mm.SetOrderBeginBlockers(minttypes.ModuleName)

	anteHandler, err := NewAnteHandler(cfg, app.AccountKeeper)
	if err != nil {
		return nil, err
	}
	app.mm.SetAnteHandler(anteHandler)

	pruning, err := cfg.PruningOptions()
	if err != nil {
		return nil, err
	}
	options := []func(*baseapp.BaseApp){
		baseapp.SetPruning(pruning),
		baseapp.SetIAVLCacheSize(cfg.IAVLCacheSize),
		baseapp.SetVersion(version.Version),
		baseapp.SetParamStore(app.GetSubspace(baseapp.Paramspace).WithKeyTable(paramstypes.ConsensusParamsKeyTable())),
		baseapp.SetMetrics(app.Metrics),
	}
	if chainID := cast.ToString(appOpts.Get(FlagChainID)); chainID != "" {
		options = append(options, baseapp.SetChainID(chainID))
	}
	options = append(options, baseAppOptions...)

	bApp, err := baseapp.NewBaseApp(appName, logger, db, keys, encodingConfig.TxDecoder, app.mm, options...)
	if err != nil {
		return nil, err
	}
	app.BaseApp = bApp

	// a restarted node sizes the engine from the committed params
	if app.LastBlockHeight() > 0 {
		ctx, err := app.CreateQueryContext(0)
		if err != nil {
			return nil, err
		}
		if err := app.WasmKeeper.InitializeEngine(ctx); err != nil {
			return nil, fmt.Errorf("initialize wasm engine: %w", err)
		}
	}

	return app, nil
}

// AppCodec returns ChainApp's app codec.
func (app *ChainApp) AppCodec() codec.Codec {
	return app.cdc
}

// TxEncoder returns the encoder of the transaction wire format.
func (app *ChainApp) TxEncoder() sdk.TxEncoder {
	return app.txEncoder
}

// Config returns the node local configuration the app was built with.
func (app *ChainApp) Config() Config {
	return app.cfg
}

// ModuleManager returns the handler BaseApp drives.
func (app *ChainApp) ModuleManager() *module.Manager {
	return app.mm
}

// GetSubspace returns a param subspace for a given module name.
func (app *ChainApp) GetSubspace(moduleName string) paramstypes.Subspace {
	subspace, _ := app.ParamsKeeper.GetSubspace(moduleName)
	return subspace
}

// DefaultGenesis returns the default app state of every module.
func (app *ChainApp) DefaultGenesis() GenesisState {
	return NewDefaultGenesisState(app.cdc)
}

// ExportedApp is the state of the app at one height.
type ExportedApp struct {
	AppState        json.RawMessage
	Height          int64
	ConsensusParams *abci.ConsensusParams
}

// ExportAppStateAndValidators exports the state committed at height, 0
// meaning the latest height.
func (app *ChainApp) ExportAppStateAndValidators(height int64) (ExportedApp, error) {
	ctx, err := app.CreateQueryContext(height)
	if err != nil {
		return ExportedApp{}, err
	}

	genState, err := app.mm.ExportGenesis(ctx)
	if err != nil {
		return ExportedApp{}, err
	}
	appState, err := json.MarshalIndent(genState, "", "  ")
	if err != nil {
		return ExportedApp{}, err
	}

	cp, err := app.GetConsensusParams(ctx)
	if err != nil {
		return ExportedApp{}, err
	}

	return ExportedApp{
		AppState:        appState,
		Height:          ctx.Height(),
		ConsensusParams: cp,
	}, nil
}

// initParamsKeeper init params keeper and its subspaces
func initParamsKeeper(cdc codec.BinaryCodec, key storetypes.StoreKey) paramskeeper.Keeper {
	paramsKeeper := paramskeeper.NewKeeper(cdc, key)

	paramsKeeper.Subspace(baseapp.Paramspace)
	paramsKeeper.Subspace(authtypes.ModuleName)
	paramsKeeper.Subspace(wasmtypes.ModuleName)
	paramsKeeper.Subspace(minttypes.ModuleName)

	return paramsKeeper
}

package baseapp

import (
	"encoding/json"
	"fmt"
	"sync"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/babylonchain/chainkit/store/cachemulti"
	"github.com/babylonchain/chainkit/store/iavl"
	"github.com/babylonchain/chainkit/store/rootmulti"
	storetypes "github.com/babylonchain/chainkit/store/types"
	"github.com/babylonchain/chainkit/telemetry"
	sdk "github.com/babylonchain/chainkit/types"
)

// ABCIHandler is the application logic driven by BaseApp. Each phase gets
// the context type that allows exactly the operations legal in it.
type ABCIHandler interface {
	// InitGenesis failures are fatal.
	InitGenesis(ctx *sdk.InitContext, genesis map[string]json.RawMessage) ([]abci.ValidatorUpdate, error)
	// RunAnteChecks rejects a transaction before any of its messages run.
	// Writes it makes persist even if a message fails.
	RunAnteChecks(ctx *sdk.TxContext, tx sdk.Tx) error
	Msg(ctx *sdk.TxContext, msg sdk.Msg) error
	Query(ctx *sdk.QueryContext, req abci.RequestQuery) ([]byte, error)
	BeginBlock(ctx *sdk.BlockContext, req abci.RequestBeginBlock) error
	EndBlock(ctx *sdk.BlockContext, req abci.RequestEndBlock) ([]abci.ValidatorUpdate, error)
}

var _ abci.Application = (*BaseApp)(nil)

// BaseApp is the ABCI application. It owns the multi store and builds the
// context of every phase over it.
type BaseApp struct {
	abci.BaseApplication

	logger     log.Logger
	name       string
	version    string
	appVersion uint64
	chainID    string

	db         dbm.DB
	keys       *storetypes.KeyTable
	cms        *rootmulti.Store
	pruning    storetypes.PruningOptions
	cacheSize  int
	txDecoder  sdk.TxDecoder
	handler    ABCIHandler
	paramStore ParamStore
	metrics    *telemetry.Metrics

	// checkMtx guards checkState, which CheckTx and simulation queries share
	checkMtx     sync.Mutex
	checkState   *state
	deliverState *state

	blockGasMeter storetypes.GasMeter
	txIndex       uint32
}

// state is the pending write set of one ABCI connection.
type state struct {
	ms     *cachemulti.Store
	header tmproto.Header
}

// NewBaseApp loads the latest committed state of db.
func NewBaseApp(
	name string,
	logger log.Logger,
	db dbm.DB,
	keys *storetypes.KeyTable,
	txDecoder sdk.TxDecoder,
	handler ABCIHandler,
	options ...func(*BaseApp),
) (*BaseApp, error) {
	app := &BaseApp{
		logger:    logger.With("module", "baseapp"),
		name:      name,
		db:        db,
		keys:      keys,
		pruning:   storetypes.PruneNothing,
		cacheSize: iavl.DefaultCacheSize,
		txDecoder: txDecoder,
		handler:   handler,
	}
	for _, option := range options {
		option(app)
	}

	cms, err := rootmulti.NewStore(db, keys,
		rootmulti.WithCacheSize(app.cacheSize),
		rootmulti.WithPruning(app.pruning),
		rootmulti.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("load multi store: %w", err)
	}
	app.cms = cms

	app.setCheckState(tmproto.Header{ChainID: app.chainID})
	return app, nil
}

func (app *BaseApp) Name() string                   { return app.name }
func (app *BaseApp) Version() string                { return app.version }
func (app *BaseApp) AppVersion() uint64             { return app.appVersion }
func (app *BaseApp) ChainID() string                { return app.chainID }
func (app *BaseApp) Logger() log.Logger             { return app.logger }
func (app *BaseApp) KeyTable() *storetypes.KeyTable { return app.keys }

// CommitMultiStore returns the committed multi store.
func (app *BaseApp) CommitMultiStore() *rootmulti.Store {
	return app.cms
}

// LastCommitID returns the id of the latest committed height.
func (app *BaseApp) LastCommitID() storetypes.CommitID {
	return app.cms.LastCommitID()
}

// LastBlockHeight returns the latest committed height.
func (app *BaseApp) LastBlockHeight() int64 {
	return app.cms.LastCommitID().Version
}

func (app *BaseApp) setCheckState(header tmproto.Header) {
	app.checkMtx.Lock()
	defer app.checkMtx.Unlock()

	app.checkState = &state{
		ms:     app.cms.CacheMultiStore(),
		header: header,
	}
}

func (app *BaseApp) setDeliverState(header tmproto.Header) {
	app.deliverState = &state{
		ms:     app.cms.CacheMultiStore(),
		header: header,
	}
}

// CreateQueryContext returns a context reading the state committed at
// height. Height 0 is the latest height.
func (app *BaseApp) CreateQueryContext(height int64) (*sdk.QueryContext, error) {
	if height == 0 {
		height = app.LastBlockHeight()
	}
	snapshot, err := app.cms.SnapshotAt(height)
	if err != nil {
		return nil, err
	}
	return sdk.NewQueryContext(snapshot, height, snapshot.Time(), app.chainID, app.logger), nil
}

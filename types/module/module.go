/*
Package module assembles application modules into the handler that BaseApp
drives.

An application is a set of modules. Each module implements AppModuleBasic,
which needs no state and is enough for the CLI, and AppModule, which binds the
module to its keeper. Optional interfaces add message handling, queries and
block hooks. The Manager dispatches every phase to the modules in the
configured order.
*/
package module

import (
	"encoding/json"
	"fmt"
	"sort"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/babylonchain/chainkit/codec"
	sdk "github.com/babylonchain/chainkit/types"
)

// AppModuleBasic is the stateless part of a module.
type AppModuleBasic interface {
	Name() string
	DefaultGenesis(cdc codec.JSONCodec) json.RawMessage
	ValidateGenesis(cdc codec.JSONCodec, bz json.RawMessage) error
}

// AppModule is a module bound to its keeper.
type AppModule interface {
	AppModuleBasic

	InitGenesis(ctx *sdk.InitContext, cdc codec.JSONCodec, bz json.RawMessage) ([]abci.ValidatorUpdate, error)
	ExportGenesis(ctx *sdk.QueryContext, cdc codec.JSONCodec) (json.RawMessage, error)
}

// HasMsgs is implemented by modules that own transaction messages.
type HasMsgs interface {
	// Msgs returns one value of every message type the module handles.
	Msgs() []sdk.Msg
	HandleMsg(ctx *sdk.TxContext, msg sdk.Msg) error
}

// QueryRoute serves one query path.
type QueryRoute struct {
	NewRequest func() proto.Message
	Handler    func(ctx *sdk.QueryContext, req proto.Message) (proto.Message, error)
}

// HasQueries is implemented by modules that serve queries. Paths have the
// form /<package>.Query/<Method>.
type HasQueries interface {
	QueryRoutes() map[string]QueryRoute
}

// BeginBlocker runs at the start of every block.
type BeginBlocker interface {
	BeginBlock(ctx *sdk.BlockContext, req abci.RequestBeginBlock) error
}

// EndBlocker runs at the end of every block.
type EndBlocker interface {
	EndBlock(ctx *sdk.BlockContext, req abci.RequestEndBlock) ([]abci.ValidatorUpdate, error)
}

// Manager dispatches every ABCI phase to the modules.
type Manager struct {
	Modules map[string]AppModule

	OrderInitGenesis   []string
	OrderExportGenesis []string
	OrderBeginBlockers []string
	OrderEndBlockers   []string

	cdc         codec.Codec
	anteHandler sdk.AnteHandler
	msgRoutes   map[string]HasMsgs
	queryRoutes map[string]QueryRoute
	// typedRoutes maps a request message name to its path
	typedRoutes map[string]string
}

// NewManager registers modules, their messages with cdc and their query
// routes. It panics on duplicated modules, messages or query paths.
func NewManager(cdc codec.Codec, modules ...AppModule) *Manager {
	m := &Manager{
		Modules:     make(map[string]AppModule),
		cdc:         cdc,
		msgRoutes:   make(map[string]HasMsgs),
		queryRoutes: make(map[string]QueryRoute),
		typedRoutes: make(map[string]string),
	}

	var order []string
	for _, module := range modules {
		name := module.Name()
		if _, ok := m.Modules[name]; ok {
			panic(fmt.Sprintf("module %s registered twice", name))
		}
		m.Modules[name] = module
		order = append(order, name)

		if hm, ok := module.(HasMsgs); ok {
			for _, msg := range hm.Msgs() {
				typeURL := codec.MsgTypeURL(msg)
				if _, ok := m.msgRoutes[typeURL]; ok {
					panic(fmt.Sprintf("message %s handled twice", typeURL))
				}
				m.msgRoutes[typeURL] = hm
				cdc.RegisterMsgs(msg)
			}
		}

		if hq, ok := module.(HasQueries); ok {
			for path, route := range hq.QueryRoutes() {
				if _, ok := m.queryRoutes[path]; ok {
					panic(fmt.Sprintf("query path %s registered twice", path))
				}
				m.queryRoutes[path] = route
				m.typedRoutes[proto.MessageName(route.NewRequest())] = path
			}
		}
	}

	m.OrderInitGenesis = order
	m.OrderExportGenesis = order
	m.OrderBeginBlockers = modulesWith(order, m.Modules, func(am AppModule) bool {
		_, ok := am.(BeginBlocker)
		return ok
	})
	m.OrderEndBlockers = modulesWith(order, m.Modules, func(am AppModule) bool {
		_, ok := am.(EndBlocker)
		return ok
	})
	return m
}

func modulesWith(order []string, modules map[string]AppModule, pred func(AppModule) bool) []string {
	var names []string
	for _, name := range order {
		if pred(modules[name]) {
			names = append(names, name)
		}
	}
	return names
}

// SetOrderInitGenesis sets the genesis order. Every module must be listed.
func (m *Manager) SetOrderInitGenesis(moduleNames ...string) {
	m.assertComplete("SetOrderInitGenesis", moduleNames, func(AppModule) bool { return true })
	m.OrderInitGenesis = moduleNames
}

// SetOrderExportGenesis sets the export order. Every module must be listed.
func (m *Manager) SetOrderExportGenesis(moduleNames ...string) {
	m.assertComplete("SetOrderExportGenesis", moduleNames, func(AppModule) bool { return true })
	m.OrderExportGenesis = moduleNames
}

// SetOrderBeginBlockers sets the begin block order. Every module with a
// BeginBlock hook must be listed.
func (m *Manager) SetOrderBeginBlockers(moduleNames ...string) {
	m.assertComplete("SetOrderBeginBlockers", moduleNames, func(am AppModule) bool {
		_, ok := am.(BeginBlocker)
		return ok
	})
	m.OrderBeginBlockers = moduleNames
}

// SetOrderEndBlockers sets the end block order. Every module with an
// EndBlock hook must be listed.
func (m *Manager) SetOrderEndBlockers(moduleNames ...string) {
	m.assertComplete("SetOrderEndBlockers", moduleNames, func(am AppModule) bool {
		_, ok := am.(EndBlocker)
		return ok
	})
	m.OrderEndBlockers = moduleNames
}

func (m *Manager) assertComplete(setter string, moduleNames []string, required func(AppModule) bool) {
	if err := sdk.CheckForDuplicatesAndEmptyStrings(moduleNames); err != nil {
		panic(fmt.Sprintf("%s: %v", setter, err))
	}
	listed := make(map[string]bool, len(moduleNames))
	for _, name := range moduleNames {
		if _, ok := m.Modules[name]; !ok {
			panic(fmt.Sprintf("%s: unknown module %s", setter, name))
		}
		listed[name] = true
	}

	var missing []string
	for name, module := range m.Modules {
		if required(module) && !listed[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		panic(fmt.Sprintf("%s: modules %v must be listed", setter, missing))
	}
}

// SetAnteHandler sets the checks run before the messages of every
// transaction.
func (m *Manager) SetAnteHandler(ah sdk.AnteHandler) {
	m.anteHandler = ah
}

// InitGenesis initializes every module from its part of the app state. A
// module missing from genesis gets its default genesis.
func (m *Manager) InitGenesis(ctx *sdk.InitContext, genesis map[string]json.RawMessage) ([]abci.ValidatorUpdate, error) {
	var validatorUpdates []abci.ValidatorUpdate
	for _, name := range m.OrderInitGenesis {
		module := m.Modules[name]
		bz, ok := genesis[name]
		if !ok {
			bz = module.DefaultGenesis(m.cdc)
		}

		updates, err := module.InitGenesis(ctx, m.cdc, bz)
		if err != nil {
			return nil, fmt.Errorf("init genesis of module %s: %w", name, err)
		}
		if len(updates) > 0 {
			if len(validatorUpdates) > 0 {
				return nil, fmt.Errorf("validator set initialized by more than one module, last %s", name)
			}
			validatorUpdates = updates
		}
	}
	return validatorUpdates, nil
}

// ExportGenesis exports the state of every module.
func (m *Manager) ExportGenesis(ctx *sdk.QueryContext) (map[string]json.RawMessage, error) {
	genesis := make(map[string]json.RawMessage, len(m.Modules))
	for _, name := range m.OrderExportGenesis {
		bz, err := m.Modules[name].ExportGenesis(ctx, m.cdc)
		if err != nil {
			return nil, fmt.Errorf("export genesis of module %s: %w", name, err)
		}
		genesis[name] = bz
	}
	return genesis, nil
}

// RunAnteChecks runs the ante handler. Whether it runs for CheckTx is read
// from the context.
func (m *Manager) RunAnteChecks(ctx *sdk.TxContext, tx sdk.Tx) error {
	if m.anteHandler == nil {
		return nil
	}
	return m.anteHandler(ctx, tx)
}

// Msg routes msg to the module that owns its type.
func (m *Manager) Msg(ctx *sdk.TxContext, msg sdk.Msg) error {
	typeURL := codec.MsgTypeURL(msg)
	handler, ok := m.msgRoutes[typeURL]
	if !ok {
		return sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized message type %s", typeURL)
	}
	return handler.HandleMsg(ctx, msg)
}

// Query decodes req.Data into the request of req.Path and encodes the
// response of its handler.
func (m *Manager) Query(ctx *sdk.QueryContext, req abci.RequestQuery) ([]byte, error) {
	route, ok := m.queryRoutes[req.Path]
	if !ok {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unknown query path %s", req.Path)
	}

	request := route.NewRequest()
	if err := m.cdc.Unmarshal(req.Data, request); err != nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrTxDecode, err.Error())
	}
	res, err := route.Handler(ctx, request)
	if err != nil {
		return nil, err
	}
	return m.cdc.Marshal(res)
}

// TypedQuery serves an already decoded request.
func (m *Manager) TypedQuery(ctx *sdk.QueryContext, req proto.Message) (proto.Message, error) {
	path, ok := m.typedRoutes[proto.MessageName(req)]
	if !ok {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "no route for %s", proto.MessageName(req))
	}
	return m.queryRoutes[path].Handler(ctx, req)
}

// QueryPaths lists the registered query paths in order.
func (m *Manager) QueryPaths() []string {
	paths := make([]string, 0, len(m.queryRoutes))
	for path := range m.queryRoutes {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// BeginBlock runs the begin block hooks in order.
func (m *Manager) BeginBlock(ctx *sdk.BlockContext, req abci.RequestBeginBlock) error {
	for _, name := range m.OrderBeginBlockers {
		if err := m.Modules[name].(BeginBlocker).BeginBlock(ctx, req); err != nil {
			return fmt.Errorf("begin block of module %s: %w", name, err)
		}
	}
	return nil
}

// EndBlock runs the end block hooks in order. At most one module may update
// the validator set.
func (m *Manager) EndBlock(ctx *sdk.BlockContext, req abci.RequestEndBlock) ([]abci.ValidatorUpdate, error) {
	var validatorUpdates []abci.ValidatorUpdate
	for _, name := range m.OrderEndBlockers {
		updates, err := m.Modules[name].(EndBlocker).EndBlock(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("end block of module %s: %w", name, err)
		}
		if len(updates) > 0 {
			if len(validatorUpdates) > 0 {
				return nil, fmt.Errorf("validator set updated by more than one module, last %s", name)
			}
			validatorUpdates = updates
		}
	}
	return validatorUpdates, nil
}

// BasicManager is the set of stateless modules used by the CLI.
type BasicManager map[string]AppModuleBasic

func NewBasicManager(modules ...AppModuleBasic) BasicManager {
	bm := make(BasicManager, len(modules))
	for _, module := range modules {
		bm[module.Name()] = module
	}
	return bm
}

// DefaultGenesis returns the default app state.
func (bm BasicManager) DefaultGenesis(cdc codec.JSONCodec) map[string]json.RawMessage {
	genesis := make(map[string]json.RawMessage, len(bm))
	for name, module := range bm {
		genesis[name] = module.DefaultGenesis(cdc)
	}
	return genesis
}

// ValidateGenesis validates the part of genesis of every module. Missing
// parts are valid.
func (bm BasicManager) ValidateGenesis(cdc codec.JSONCodec, genesis map[string]json.RawMessage) error {
	for name := range genesis {
		if _, ok := bm[name]; !ok {
			return fmt.Errorf("genesis contains unknown module %s", name)
		}
	}
	for name, module := range bm {
		bz, ok := genesis[name]
		if !ok {
			continue
		}
		if err := module.ValidateGenesis(cdc, bz); err != nil {
			return fmt.Errorf("module %s: %w", name, err)
		}
	}
	return nil
}

package types

//go:generate mockgen -source=expected_engine.go -package types -destination mocked_engine.go

import (
	"time"

	storetypes "github.com/babylonchain/chainkit/store/types"
)

// Checksum identifies a code blob inside the engine.
type Checksum = []byte

// Env describes the block and contract a call runs in.
type Env struct {
	BlockHeight     int64
	BlockTime       time.Time
	ChainID         string
	ContractAddress string
}

// MessageInfo describes the sender of a call.
type MessageInfo struct {
	Sender string
}

// Response is the outcome of a state changing contract call.
type Response struct {
	// Data is returned to the caller unchanged.
	Data []byte
	// Attributes are emitted in a wasm event tagged with the contract address.
	Attributes []EventAttribute
}

// EventAttribute is one key-value pair emitted by a contract.
type EventAttribute struct {
	Key   string
	Value string
}

// Engine compiles and runs contract code. Calls must be deterministic and
// must charge all work to gasMeter.
//
// Engines keep a bounded cache of compiled code and no blobs. The keeper
// stores the blobs and hands one to LoadCode whenever HasCode is false.
type Engine interface {
	// AnalyzeCode validates code and returns its checksum without caching it.
	AnalyzeCode(code []byte) (Checksum, error)
	// LoadCode compiles code into the cache and returns its checksum.
	LoadCode(code []byte) (Checksum, error)
	// HasCode reports whether checksum is in the cache.
	HasCode(checksum Checksum) bool

	Instantiate(checksum Checksum, env Env, info MessageInfo, msg []byte, store storetypes.KVStore, gasMeter storetypes.GasMeter) (*Response, error)
	Execute(checksum Checksum, env Env, info MessageInfo, msg []byte, store storetypes.KVStore, gasMeter storetypes.GasMeter) (*Response, error)
	Migrate(checksum Checksum, env Env, msg []byte, store storetypes.KVStore, gasMeter storetypes.GasMeter) (*Response, error)
	Query(checksum Checksum, env Env, msg []byte, store storetypes.KVReader, gasMeter storetypes.GasMeter) ([]byte, error)

	// OnParamsChange is called with the committed params at the end of
	// every block and once when a node starts.
	OnParamsChange(params Params)
}

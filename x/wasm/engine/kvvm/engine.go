package kvvm

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sync"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	lru "github.com/hashicorp/golang-lru"

	storetypes "github.com/babylonchain/chainkit/store/types"
	"github.com/babylonchain/chainkit/telemetry"
	"github.com/babylonchain/chainkit/x/wasm/types"
)

const (
	// Magic starts every code blob.
	Magic = "\x00asm"
	// Version1 is the only known code version.
	Version1 uint32 = 1

	headerLen = len(Magic) + 4
)

// Gas costs of the engine. Storage access is charged by the store.
const (
	GasCostCall       storetypes.Gas = 10_000
	GasCostPerMsgByte storetypes.Gas = 5
	GasCostPerEntry   storetypes.Gas = 100
)

var _ types.Engine = (*Engine)(nil)

// module is a compiled code blob.
type module struct {
	checksum []byte
	version  uint32
	size     int
}

// Engine holds an LRU cache of compiled modules and nothing else. Callers
// load a blob with LoadCode whenever HasCode is false.
type Engine struct {
	mu       sync.Mutex
	compiled *lru.Cache
	compiles uint64
	metrics  *telemetry.Metrics
}

// New returns an engine caching at most cacheSize compiled modules.
func New(cacheSize int) (*Engine, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Engine{
		compiled: cache,
	}, nil
}

// NewFromParams returns an engine sized by the memory cache size of params.
func NewFromParams(params types.Params) (*Engine, error) {
	return New(int(params.MemoryCacheSize))
}

// SetMetrics makes the engine count calls and cache misses in m.
func (e *Engine) SetMetrics(m *telemetry.Metrics) {
	e.metrics = m
}

func (e *Engine) observe(operation string, err error) {
	if e.metrics == nil {
		return
	}
	e.metrics.EngineCallCount.WithLabelValues(operation, telemetry.Result(err)).Inc()
}

// Header returns the header of a version 1 code blob.
func Header() []byte {
	bz := make([]byte, headerLen)
	copy(bz, Magic)
	binary.LittleEndian.PutUint32(bz[len(Magic):], Version1)
	return bz
}

func compile(code []byte) (*module, error) {
	if len(code) < headerLen || string(code[:len(Magic)]) != Magic {
		return nil, sdkerrors.Wrap(types.ErrInvalidCode, "missing wasm magic")
	}
	version := binary.LittleEndian.Uint32(code[len(Magic):headerLen])
	if version != Version1 {
		return nil, sdkerrors.Wrapf(types.ErrInvalidCode, "unsupported version %d", version)
	}
	sum := sha256.Sum256(code)
	return &module{checksum: sum[:], version: version, size: len(code)}, nil
}

// AnalyzeCode validates code and returns its checksum. Nothing is cached.
func (e *Engine) AnalyzeCode(code []byte) (types.Checksum, error) {
	m, err := compile(code)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	e.compiles++
	e.mu.Unlock()
	return m.checksum, nil
}

// LoadCode compiles code into the cache, evicting the least recently used
// module when the cache is full.
func (e *Engine) LoadCode(code []byte) (types.Checksum, error) {
	m, err := compile(code)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.metrics != nil {
		e.metrics.EngineCacheMiss.Inc()
	}
	e.compiled.Add(hex.EncodeToString(m.checksum), m)
	e.compiles++
	return m.checksum, nil
}

func (e *Engine) HasCode(checksum types.Checksum) bool {
	return e.compiled.Contains(hex.EncodeToString(checksum))
}

// load returns the cached module of checksum.
func (e *Engine) load(checksum types.Checksum) (*module, error) {
	key := hex.EncodeToString(checksum)
	if m, ok := e.compiled.Get(key); ok {
		return m.(*module), nil
	}
	return nil, sdkerrors.Wrapf(types.ErrNotFound, "code %s not loaded", key)
}

// Compiles returns how many times a blob was compiled.
func (e *Engine) Compiles() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.compiles
}

// CacheLen returns the number of cached compiled modules.
func (e *Engine) CacheLen() int {
	return e.compiled.Len()
}

// OnParamsChange resizes the compiled module cache.
func (e *Engine) OnParamsChange(params types.Params) {
	if params.MemoryCacheSize == 0 {
		return
	}
	e.compiled.Resize(int(params.MemoryCacheSize))
}

func chargeCall(gasMeter storetypes.GasMeter, msg []byte, descriptor string) error {
	cost := GasCostCall + GasCostPerMsgByte*storetypes.Gas(len(msg))
	return gasMeter.ConsumeGas(cost, fmt.Sprintf("wasm %s", descriptor))
}

func (e *Engine) Instantiate(checksum types.Checksum, env types.Env, info types.MessageInfo, msg []byte, store storetypes.KVStore, gasMeter storetypes.GasMeter) (res *types.Response, err error) {
	defer func() { e.observe("instantiate", err) }()
	if _, err := e.load(checksum); err != nil {
		return nil, err
	}
	if err := chargeCall(gasMeter, msg, "instantiate"); err != nil {
		return nil, err
	}
	return setEntries(msg, store, "instantiate")
}

func (e *Engine) Migrate(checksum types.Checksum, env types.Env, msg []byte, store storetypes.KVStore, gasMeter storetypes.GasMeter) (res *types.Response, err error) {
	defer func() { e.observe("migrate", err) }()
	if _, err := e.load(checksum); err != nil {
		return nil, err
	}
	if err := chargeCall(gasMeter, msg, "migrate"); err != nil {
		return nil, err
	}
	return setEntries(msg, store, "migrate")
}

func (e *Engine) Execute(checksum types.Checksum, env types.Env, info types.MessageInfo, msg []byte, store storetypes.KVStore, gasMeter storetypes.GasMeter) (res *types.Response, err error) {
	defer func() { e.observe("execute", err) }()
	if _, err := e.load(checksum); err != nil {
		return nil, err
	}
	if err := chargeCall(gasMeter, msg, "execute"); err != nil {
		return nil, err
	}
	return execute(msg, store)
}

func (e *Engine) Query(checksum types.Checksum, env types.Env, msg []byte, store storetypes.KVReader, gasMeter storetypes.GasMeter) (res []byte, err error) {
	defer func() { e.observe("query", err) }()
	if _, err := e.load(checksum); err != nil {
		return nil, err
	}
	if err := chargeCall(gasMeter, msg, "query"); err != nil {
		return nil, err
	}
	return query(msg, store, gasMeter)
}

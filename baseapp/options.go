package baseapp

import (
	storetypes "github.com/babylonchain/chainkit/store/types"
	"github.com/babylonchain/chainkit/telemetry"
)

// SetPruning sets the pruning strategy of the multi store.
func SetPruning(opts storetypes.PruningOptions) func(*BaseApp) {
	return func(app *BaseApp) { app.pruning = opts }
}

// SetIAVLCacheSize sets the node cache size of the versioned store.
func SetIAVLCacheSize(size int) func(*BaseApp) {
	return func(app *BaseApp) { app.cacheSize = size }
}

// SetChainID sets the chain id before InitChain provides it, as on restart.
func SetChainID(chainID string) func(*BaseApp) {
	return func(app *BaseApp) { app.chainID = chainID }
}

func SetVersion(version string) func(*BaseApp) {
	return func(app *BaseApp) { app.version = version }
}

func SetAppVersion(v uint64) func(*BaseApp) {
	return func(app *BaseApp) { app.appVersion = v }
}

// SetParamStore sets where consensus params are kept.
func SetParamStore(ps ParamStore) func(*BaseApp) {
	return func(app *BaseApp) { app.paramStore = ps }
}

func SetMetrics(m *telemetry.Metrics) func(*BaseApp) {
	return func(app *BaseApp) { app.metrics = m }
}

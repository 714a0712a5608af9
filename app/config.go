package app

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/spf13/cast"

	storetypes "github.com/babylonchain/chainkit/store/types"
	sdk "github.com/babylonchain/chainkit/types"
)

// Flags and app.toml keys read by NewChainApp.
const (
	FlagPruning           = "pruning"
	FlagPruningKeepRecent = "pruning-keep-recent"
	FlagPruningInterval   = "pruning-interval"
	FlagIAVLCacheSize     = "iavl-cache-size"
	FlagMinGasPriceMilli  = "minimum-gas-price-milli"
	FlagChainID           = "chain-id"
	FlagAuthority         = "authority"
	FlagTelemetry         = "telemetry.enabled"
	FlagTelemetryAddress  = "telemetry.address"
)

// GovModuleName names the module account that is the default params
// authority.
const GovModuleName = "gov"

// AppOptions is the source of node local configuration, such as viper.
type AppOptions interface {
	Get(string) interface{}
}

// EmptyAppOptions is an AppOptions that returns nil for every key.
type EmptyAppOptions struct{}

func (EmptyAppOptions) Get(string) interface{} { return nil }

// AppOptionsMap is an AppOptions backed by a map, for tests.
type AppOptionsMap map[string]interface{}

func (m AppOptionsMap) Get(key string) interface{} { return m[key] }

// Config is the node local configuration kept in app.toml.
type Config struct {
	Pruning           string
	PruningKeepRecent uint64
	PruningInterval   uint64
	IAVLCacheSize     int
	MinGasPriceMilli  uint64
	// Authority is the address allowed to update module params.
	Authority        string
	Telemetry        bool
	TelemetryAddress string
}

// DefaultConfig returns the configuration written by chaind init.
func DefaultConfig() Config {
	return Config{
		Pruning:          storetypes.PruningOptionDefault,
		IAVLCacheSize:    781250,
		Authority:        sdk.NewModuleAddress(GovModuleName).String(),
		Telemetry:        true,
		TelemetryAddress: "localhost:26660",
	}
}

// ParseConfig reads the configuration from appOpts, falling back to the
// defaults for unset keys.
func ParseConfig(appOpts AppOptions) Config {
	cfg := DefaultConfig()
	if v := appOpts.Get(FlagPruning); v != nil {
		cfg.Pruning = cast.ToString(v)
	}
	cfg.PruningKeepRecent = cast.ToUint64(appOpts.Get(FlagPruningKeepRecent))
	cfg.PruningInterval = cast.ToUint64(appOpts.Get(FlagPruningInterval))
	if v := appOpts.Get(FlagIAVLCacheSize); v != nil {
		cfg.IAVLCacheSize = cast.ToInt(v)
	}
	cfg.MinGasPriceMilli = cast.ToUint64(appOpts.Get(FlagMinGasPriceMilli))
	if v := appOpts.Get(FlagAuthority); v != nil {
		cfg.Authority = cast.ToString(v)
	}
	if v := appOpts.Get(FlagTelemetry); v != nil {
		cfg.Telemetry = cast.ToBool(v)
	}
	if v := appOpts.Get(FlagTelemetryAddress); v != nil {
		cfg.TelemetryAddress = cast.ToString(v)
	}
	return cfg
}

// PruningOptions resolves the pruning strategy of cfg.
func (cfg Config) PruningOptions() (storetypes.PruningOptions, error) {
	if cfg.Pruning != storetypes.PruningOptionCustom {
		return storetypes.NewPruningOptionsFromString(cfg.Pruning)
	}
	opts := storetypes.PruningOptions{
		KeepRecent: cfg.PruningKeepRecent,
		Interval:   cfg.PruningInterval,
	}
	return opts, opts.Validate()
}

const defaultConfigTemplate = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml

###############################################################################
###                           Base Configuration                            ###
###############################################################################

# The minimum fee per thousand gas units a node accepts in CheckTx.
minimum-gas-price-milli = {{ .MinGasPriceMilli }}

# default: the last 362880 states are kept, pruning at 10 block intervals
# nothing: all historic states are kept
# everything: 2 latest states are kept, pruning at 10 block intervals
# custom: allow pruning options to be manually specified through 'pruning-keep-recent' and 'pruning-interval'
pruning = "{{ .Pruning }}"

# These are applied if and only if the pruning strategy is custom.
pruning-keep-recent = {{ .PruningKeepRecent }}
pruning-interval = {{ .PruningInterval }}

# Number of nodes cached by the versioned store of every module.
iavl-cache-size = {{ .IAVLCacheSize }}

# Address allowed to send the MsgUpdateParams of every module.
authority = "{{ .Authority }}"

###############################################################################
###                         Telemetry Configuration                         ###
###############################################################################

[telemetry]

# Serve Prometheus metrics.
enabled = {{ .Telemetry }}

# Address of the metrics server.
address = "{{ .TelemetryAddress }}"
`

// WriteConfigFile renders cfg into <home>/config/app.toml.
func WriteConfigFile(homePath string, cfg Config) error {
	configPath := filepath.Join(homePath, "config")
	if err := os.MkdirAll(configPath, os.ModePerm); err != nil {
		return fmt.Errorf("couldn't make app config dir: %w", err)
	}

	var buffer bytes.Buffer
	tmpl, err := template.New("appConfigFileTemplate").Parse(defaultConfigTemplate)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(&buffer, cfg); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configPath, "app.toml"), buffer.Bytes(), 0600)
}

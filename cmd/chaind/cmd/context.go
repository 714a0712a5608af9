package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	leveldberrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"

	"github.com/babylonchain/chainkit/retry"
)

// EnvPrefix prefixes the environment variables that override app.toml,
// e.g. CHAIND_PRUNING.
const EnvPrefix = "CHAIND"

type contextKey struct{}

// ContextKey is the key of the *Context in the command context.
var ContextKey = contextKey{}

// Context is the node configuration resolved by the root command for its
// subcommands.
type Context struct {
	Viper  *viper.Viper
	Logger log.Logger
	Home   string
}

// NewDefaultContext returns a Context with an empty viper and a stdout
// logger.
func NewDefaultContext() *Context {
	return &Context{
		Viper:  viper.New(),
		Logger: log.NewTMLogger(log.NewSyncWriter(os.Stdout)),
	}
}

// GetContextFromCmd returns the Context set by the root command, or a
// default one when the command runs outside Execute.
func GetContextFromCmd(cmd *cobra.Command) *Context {
	if v := cmd.Context().Value(ContextKey); v != nil {
		return v.(*Context)
	}
	return NewDefaultContext()
}

// Execute runs rootCmd with a fresh Context in its command context.
func Execute(rootCmd *cobra.Command) error {
	ctx := context.WithValue(context.Background(), ContextKey, NewDefaultContext())
	return rootCmd.ExecuteContext(ctx)
}

// InterceptConfigsPreRunHandler reads <home>/config/app.toml, the CHAIND_
// environment and the command flags into the Context of cmd. Flags set on
// the command line win over the environment, which wins over the file.
func InterceptConfigsPreRunHandler(cmd *cobra.Command) error {
	home, err := cmd.Flags().GetString(FlagHome)
	if err != nil {
		return err
	}

	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	configFile := filepath.Join(home, "config", "app.toml")
	if _, err := os.Stat(configFile); err == nil {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read in %s: %w", configFile, err)
		}
	}

	logger := log.NewTMLogger(log.NewSyncWriter(cmd.OutOrStdout()))
	level, err := log.AllowLevel(v.GetString(FlagLogLevel))
	if err != nil {
		return err
	}
	logger = log.NewFilter(logger, level)

	sctx := GetContextFromCmd(cmd)
	sctx.Viper = v
	sctx.Logger = logger
	sctx.Home = home
	return nil
}

func genesisFile(home string) string {
	return filepath.Join(home, "config", "genesis.json")
}

// openDB opens the application database under <home>/data. The LOCK file
// of a node that is still shutting down is waited out for a while.
func openDB(logger log.Logger, home string) (*dbm.GoLevelDB, error) {
	o := opt.Options{
		DisableSeeksCompaction: true,
	}

	var db *dbm.GoLevelDB
	err := retry.Retry(logger.With("module", "db"), 100*time.Millisecond, 5*time.Second, func() error {
		var err error
		db, err = dbm.NewGoLevelDBWithOpts("application", filepath.Join(home, "data"), &o)
		if leveldberrors.IsCorrupted(err) {
			return retry.Unrecoverable(err)
		}
		return err
	})
	return db, err
}

package cmd

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/tendermint/tendermint/abci/server"
	tmos "github.com/tendermint/tendermint/libs/os"
	tmtypes "github.com/tendermint/tendermint/types"
	"golang.org/x/sync/errgroup"

	"github.com/babylonchain/chainkit/app"
	storetypes "github.com/babylonchain/chainkit/store/types"
)

// StartCmd runs the application behind an ABCI server that a Tendermint
// node connects to as its proxy app.
func StartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Run the application behind an ABCI server",
		Long: `Run the application behind an ABCI server. Point the proxy_app of
the Tendermint node at --address. Metrics are served on the telemetry
address of app.toml when telemetry is enabled.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return startApp(cmd.Context(), GetContextFromCmd(cmd))
		},
	}

	cmd.Flags().String(FlagAddress, "tcp://0.0.0.0:26658", "listen address of the ABCI server")
	cmd.Flags().String(FlagTransport, "socket", "transport protocol of the ABCI server (socket|grpc)")
	cmd.Flags().String(app.FlagPruning, storetypes.PruningOptionDefault, "pruning strategy (default|nothing|everything|custom)")
	cmd.Flags().Uint64(app.FlagMinGasPriceMilli, 0, "minimum fee per thousand gas units accepted in CheckTx")

	return cmd
}

func startApp(ctx context.Context, sctx *Context) error {
	genDoc, err := tmtypes.GenesisDocFromFile(genesisFile(sctx.Home))
	if err != nil {
		return err
	}
	// BaseApp needs the chain id before InitChain on a restarted node
	sctx.Viper.Set(app.FlagChainID, genDoc.ChainID)

	db, err := openDB(sctx.Logger, sctx.Home)
	if err != nil {
		return err
	}

	chainApp, err := app.NewChainApp(sctx.Logger, db, sctx.Viper)
	if err != nil {
		return err
	}

	abciServer, err := server.NewServer(sctx.Viper.GetString(FlagAddress), sctx.Viper.GetString(FlagTransport), chainApp)
	if err != nil {
		return err
	}
	abciServer.SetLogger(sctx.Logger.With("module", "abci-server"))
	if err := abciServer.Start(); err != nil {
		return err
	}

	cfg := chainApp.Config()
	var metricsServer *http.Server
	if cfg.Telemetry {
		metricsServer = &http.Server{
			Addr:              cfg.TelemetryAddress,
			Handler:           chainApp.Metrics.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	// the process exits once the callback returns
	tmos.TrapSignal(sctx.Logger, func() {
		if err := abciServer.Stop(); err != nil {
			sctx.Logger.Error("failed to stop abci server", "err", err)
		}
		if err := db.Close(); err != nil {
			sctx.Logger.Error("failed to close db", "err", err)
		}
	})

	g, ctx := errgroup.WithContext(ctx)
	if metricsServer != nil {
		g.Go(func() error {
			sctx.Logger.Info("serving metrics", "address", metricsServer.Addr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		select {
		case <-abciServer.Quit():
		case <-ctx.Done():
			if err := abciServer.Stop(); err != nil {
				sctx.Logger.Error("failed to stop abci server", "err", err)
			}
		}
		if metricsServer != nil {
			return metricsServer.Shutdown(context.Background())
		}
		return nil
	})

	return g.Wait()
}

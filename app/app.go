package app

import (
	"context"
	"net/http"
	"os"
	"time"

	"cosmossdk.io/log"
	metrics "github.com/hashicorp/go-metrics"
	"github.com/pkg/errors"

	"github.com/initia-labs/sidecar/bridge"
	"github.com/initia-labs/sidecar/config"
	"github.com/initia-labs/sidecar/engine"
	"github.com/initia-labs/sidecar/rpc/namespaces/ethereum/eth"
	"github.com/initia-labs/sidecar/rpc/namespaces/ethereum/net"
	"github.com/initia-labs/sidecar/server"
)

const (
	appName = "sidecar"

	telemetryInterval  = 10 * time.Second
	telemetryRetention = time.Minute
)

// SidecarApp wires the engine adapter, the transaction bridge and the
// JSON-RPC server together.
type SidecarApp struct {
	logger log.Logger
	cfg    config.Config

	engine *engine.Client
	bridge *bridge.Bridge
	server *server.Server

	metrics *metrics.InmemSink
}

// NewSidecarApp builds every component from cfg. Nothing listens until
// Start is called.
func NewSidecarApp(logger log.Logger, cfg config.Config) (*SidecarApp, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &SidecarApp{logger: logger, cfg: cfg}
	if cfg.Telemetry.Enabled {
		sink, err := newTelemetrySink()
		if err != nil {
			return nil, err
		}
		app.metrics = sink
	}

	adapter, err := NewAdapter(logger, cfg)
	if err != nil {
		return nil, err
	}
	app.engine = engine.NewClient(logger, adapter)

	app.bridge, err = bridge.New(logger, app.engine, bridge.Config{
		ChainId:              ChainId(cfg),
		MaxGasAmount:         cfg.Engine.Basic.MaxGasAmount,
		GasUnitPrice:         cfg.Engine.Basic.GasUnitPrice,
		ExpirationTimeout:    cfg.ExpirationTimeout(),
		SerializeSubmissions: cfg.Engine.Basic.SerializeSubmissions,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create bridge")
	}

	app.server, err = server.New(logger, server.Config{
		Address:        cfg.Server.Address(),
		RequestTimeout: cfg.Server.RequestTimeout(),
		CORS:           cfg.Server.CORS,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
	}, app.APIs())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create server")
	}

	return app, nil
}

// APIs returns the JSON-RPC namespaces served by the sidecar.
func (app *SidecarApp) APIs() []server.API {
	return []server.API{
		{Namespace: "eth", Service: eth.NewPublicAPI(app.logger, app.engine, app.bridge)},
		{Namespace: "net", Service: net.NewPublicAPI(app.logger)},
	}
}

// Handler returns the HTTP handler of the JSON-RPC server.
func (app *SidecarApp) Handler() http.Handler {
	return app.server.Handler()
}

// Start serves until ctx is done.
func (app *SidecarApp) Start(ctx context.Context) error {
	if app.metrics != nil {
		// dumps the in-memory metrics to stderr on SIGUSR1
		signal := metrics.NewInmemSignal(app.metrics, metrics.DefaultSignal, os.Stderr)
		defer signal.Stop()
	}

	app.logger.Info("starting sidecar",
		"engine", string(app.cfg.Engine.Adapter.Kind),
		"chain_id", ChainId(app.cfg).String(),
		"entry_func", app.engine.EntryFunc(),
	)

	return app.server.ListenAndServe(ctx)
}

// Metrics returns the in-memory sink, nil when telemetry is disabled.
func (app *SidecarApp) Metrics() *metrics.InmemSink {
	return app.metrics
}

func newTelemetrySink() (*metrics.InmemSink, error) {
	sink := metrics.NewInmemSink(telemetryInterval, telemetryRetention)

	metricsConf := metrics.DefaultConfig(appName)
	metricsConf.EnableHostname = false
	metricsConf.EnableRuntimeMetrics = false
	if _, err := metrics.NewGlobal(metricsConf, sink); err != nil {
		return nil, errors.Wrap(err, "failed to initialize telemetry")
	}

	return sink, nil
}

package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"cosmossdk.io/log"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Config is the HTTP front end configuration.
type Config struct {
	// Address is the `host:port` the server binds to.
	Address string
	// RequestTimeout bounds every request and the shutdown drain.
	RequestTimeout time.Duration
	// CORS lists the allowed origins. nil disables the CORS layer,
	// a single "*" or "all" allows every origin.
	CORS []string
	// MaxBodyBytes limits the JSON-RPC request body.
	MaxBodyBytes int
}

// API is a JSON-RPC namespace served under `<namespace>_<method>`.
type API struct {
	Namespace string
	Service   any
}

// Server serves JSON-RPC 2.0 over HTTP POST at `/`.
type Server struct {
	logger     log.Logger
	cfg        Config
	rpcServer  *rpc.Server
	httpServer *http.Server
}

// New registers apis on a JSON-RPC server and wraps it in the middleware
// stack.
func New(logger log.Logger, cfg Config, apis []API) (*Server, error) {
	if cfg.RequestTimeout <= 0 {
		return nil, errors.New("request timeout must be positive")
	}

	logger = logger.With("module", "server")

	rpcServer := rpc.NewServer()
	if cfg.MaxBodyBytes > 0 {
		rpcServer.SetHTTPBodyLimit(cfg.MaxBodyBytes)
	}
	for _, api := range apis {
		if err := rpcServer.RegisterName(api.Namespace, api.Service); err != nil {
			return nil, errors.Wrapf(err, "failed to register %s namespace", api.Namespace)
		}
		logger.Debug("registered json-rpc namespace", "namespace", api.Namespace)
	}

	router := mux.NewRouter()
	router.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	router.Handle("/", rpcServer)

	corsHandler, err := newCORSMiddleware(cfg.CORS)
	if err != nil {
		return nil, err
	}

	handler := chain(router,
		recoverMiddleware(logger),
		corsHandler,
		timeoutMiddleware(cfg.RequestTimeout),
	)

	return &Server{
		logger:    logger,
		cfg:       cfg,
		rpcServer: rpcServer,
		httpServer: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: cfg.RequestTimeout,
		},
	}, nil
}

// Handler returns the full middleware stack.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe binds the configured address and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return errors.Wrapf(err, "failed to bind %s", s.cfg.Address)
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then stops accepting
// and drains in-flight requests for at most the request timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("starting json-rpc server", "address", ln.Addr().String())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down json-rpc server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.RequestTimeout)
		defer cancel()

		err := s.httpServer.Shutdown(shutdownCtx)
		s.rpcServer.Stop()
		return err
	})

	return g.Wait()
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

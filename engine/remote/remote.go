package remote

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"cosmossdk.io/log"

	"github.com/initia-labs/sidecar/aptos"
	"github.com/initia-labs/sidecar/engine"
)

var _ engine.Adapter = (*Adapter)(nil)

// Config is the remote node configuration.
type Config struct {
	// Endpoint is the versioned base url of the Aptos REST API.
	Endpoint string
	// Timeout bounds every HTTP request issued to the node.
	Timeout time.Duration
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithHTTPClient builds the adapter client from a copy of client, keeping
// its transport. The configured timeout overrides client.Timeout.
func WithHTTPClient(client *http.Client) Option {
	return func(a *Adapter) {
		c := *client
		a.client = &c
	}
}

// Adapter talks to an Aptos node through its REST API. A single http client
// is built at construction and shared by all requests.
type Adapter struct {
	engine.Basic

	logger   log.Logger
	endpoint *url.URL
	client   *http.Client
}

// NewAdapter creates a remote adapter for the given endpoint.
func NewAdapter(logger log.Logger, basic engine.BasicConfig, cfg Config, opts ...Option) (*Adapter, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	endpoint, err := url.ParseRequestURI(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid engine endpoint: %w", err)
	}
	if endpoint.Scheme != "http" && endpoint.Scheme != "https" {
		return nil, fmt.Errorf("invalid engine endpoint scheme: %s", endpoint.Scheme)
	}

	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive")
	}

	a := &Adapter{
		Basic:    engine.NewBasic(basic),
		logger:   logger.With("module", "engine", "adapter", "remote"),
		endpoint: endpoint,
		client:   &http.Client{Timeout: cfg.Timeout},
	}

	for _, opt := range opts {
		opt(a)
	}
	a.client.Timeout = cfg.Timeout

	return a, nil
}

// Endpoint returns the configured base url.
func (a *Adapter) Endpoint() string {
	return a.endpoint.String()
}

// GetLedgerInfo implements `GET /`.
func (a *Adapter) GetLedgerInfo(ctx context.Context) (*aptos.LedgerInfo, error) {
	var info aptos.LedgerInfo
	if err := a.get(ctx, a.endpoint, "failed to get ledger info", &info); err != nil {
		return nil, err
	}

	return &info, nil
}

// GetAccount implements `GET /accounts/{address}`.
func (a *Adapter) GetAccount(ctx context.Context, addr aptos.AccountAddress) (*aptos.AccountData, error) {
	var account aptos.AccountData
	u := a.endpoint.JoinPath("accounts", addr.String())
	if err := a.get(ctx, u, "failed to get account data", &account); err != nil {
		return nil, err
	}

	return &account, nil
}

// GetAccountBalance implements `GET /accounts/{address}/balance/{asset_type}`.
func (a *Adapter) GetAccountBalance(ctx context.Context, addr aptos.AccountAddress, assetType string) (uint64, error) {
	var balance aptos.U64
	u := a.endpoint.JoinPath("accounts", addr.String(), "balance", url.PathEscape(assetType))
	if err := a.get(ctx, u, "failed to get balance", &balance); err != nil {
		return 0, err
	}

	return uint64(balance), nil
}

// GetBlockByHeight implements `GET /blocks/by_height/{height}`.
func (a *Adapter) GetBlockByHeight(ctx context.Context, height uint64, withTransactions bool) (*aptos.Block, error) {
	u := a.endpoint.JoinPath("blocks", "by_height", strconv.FormatUint(height, 10))
	query := u.Query()
	query.Set("with_transactions", strconv.FormatBool(withTransactions))
	u.RawQuery = query.Encode()

	var block aptos.Block
	if err := a.get(ctx, u, "failed to get block by height", &block); err != nil {
		return nil, err
	}

	return &block, nil
}

// SubmitTransaction implements `POST /transactions` with a BCS body.
func (a *Adapter) SubmitTransaction(ctx context.Context, tx *aptos.SignedTransaction) (*aptos.PendingTransaction, error) {
	const message = "failed to submit transaction"

	bz, err := tx.BcsSerialize()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", message, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint.JoinPath("transactions").String(), bytes.NewReader(bz))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", message, err)
	}
	req.Header.Set("Content-Type", aptos.ContentTypeSignedTransaction)
	req.Header.Set("Accept", aptos.ContentTypeJSON)

	var pending aptos.PendingTransaction
	if err := a.do(req, message, &pending); err != nil {
		return nil, err
	}

	return &pending, nil
}

func (a *Adapter) get(ctx context.Context, u *url.URL, message string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("%s: %w", message, err)
	}
	req.Header.Set("Accept", aptos.ContentTypeJSON)

	return a.do(req, message, out)
}

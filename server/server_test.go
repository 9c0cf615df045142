package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/initia-labs/sidecar/aptos"
	"github.com/initia-labs/sidecar/bridge"
	"github.com/initia-labs/sidecar/engine/mock"
	"github.com/initia-labs/sidecar/rpc/namespaces/ethereum/eth"
	netapi "github.com/initia-labs/sidecar/rpc/namespaces/ethereum/net"
	rpctypes "github.com/initia-labs/sidecar/rpc/types"
)

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func setupServer(t *testing.T, cfg Config) (*Server, *mock.MockAdapter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	adapter := mock.NewMockAdapter(ctrl)
	adapter.EXPECT().CoinType().Return("0x1::aptos_coin::AptosCoin").AnyTimes()
	adapter.EXPECT().AuthFunc().Return("0x100::evm::authenticate").AnyTimes()
	adapter.EXPECT().EntryFunc().Return("0x100::evm::transact").AnyTimes()

	b, err := bridge.New(log.NewNopLogger(), adapter, bridge.DefaultConfig())
	require.NoError(t, err)

	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = 5 * time.Second
	}
	srv, err := New(log.NewNopLogger(), cfg, []API{
		{Namespace: "eth", Service: eth.NewPublicAPI(log.NewNopLogger(), adapter, b)},
		{Namespace: "net", Service: netapi.NewPublicAPI(log.NewNopLogger())},
	})
	require.NoError(t, err)

	return srv, adapter
}

func call(t *testing.T, handler http.Handler, method string, params ...any) rpcResponse {
	t.Helper()

	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(map[string]any{"jsonrpc": "2.0", "id": 1, "method": method, "params": params})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func Test_ChainId(t *testing.T) {
	srv, adapter := setupServer(t, Config{})
	adapter.EXPECT().GetLedgerInfo(gomock.Any()).Return(&aptos.LedgerInfo{ChainId: 4}, nil)

	resp := call(t, srv.Handler(), "eth_chainId")
	require.Nil(t, resp.Error)
	require.JSONEq(t, `"0x4"`, string(resp.Result))
}

func Test_GetBalance(t *testing.T) {
	srv, adapter := setupServer(t, Config{})
	adapter.EXPECT().GetAccountBalance(gomock.Any(), gomock.Any(), "0x1::aptos_coin::AptosCoin").Return(uint64(42), nil)

	resp := call(t, srv.Handler(), "eth_getBalance", "0xC96aAa54E2d44c299564da76e1cD3184A2386B8D", "latest")
	require.Nil(t, resp.Error)
	require.JSONEq(t, `"0x2a"`, string(resp.Result))
}

func Test_SendRawTransactionEmpty(t *testing.T) {
	srv, _ := setupServer(t, Config{})

	resp := call(t, srv.Handler(), "eth_sendRawTransaction", "0x")
	require.NotNil(t, resp.Error)
	require.Equal(t, rpctypes.InvalidParamsCode, resp.Error.Code)
	require.Contains(t, resp.Error.Message, "empty raw transaction data")
}

func Test_MethodErrors(t *testing.T) {
	srv, _ := setupServer(t, Config{})

	resp := call(t, srv.Handler(), "eth_accounts")
	require.NotNil(t, resp.Error)
	require.Equal(t, rpctypes.InternalErrorCode, resp.Error.Code)

	resp = call(t, srv.Handler(), "net_peerCount")
	require.NotNil(t, resp.Error)
	require.Equal(t, rpctypes.InternalErrorCode, resp.Error.Code)

	resp = call(t, srv.Handler(), "foo_bar")
	require.NotNil(t, resp.Error)
	require.Equal(t, -32601, resp.Error.Code)
}

func Test_NetNamespace(t *testing.T) {
	srv, _ := setupServer(t, Config{})

	resp := call(t, srv.Handler(), "net_version")
	require.Nil(t, resp.Error)
	require.JSONEq(t, `"3735928559"`, string(resp.Result))

	resp = call(t, srv.Handler(), "net_listening")
	require.Nil(t, resp.Error)
	require.JSONEq(t, `true`, string(resp.Result))
}

func Test_Health(t *testing.T) {
	srv, _ := setupServer(t, Config{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func corsHeader(t *testing.T, handler http.Handler, origin string) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"net_listening","params":[]}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", origin)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	return rec.Header().Get("Access-Control-Allow-Origin")
}

func Test_CORS(t *testing.T) {
	srv, _ := setupServer(t, Config{})
	require.Empty(t, corsHeader(t, srv.Handler(), "https://example.com"))

	for _, all := range []string{"*", "all"} {
		srv, _ = setupServer(t, Config{CORS: []string{all}})
		require.Equal(t, "*", corsHeader(t, srv.Handler(), "https://example.com"))
	}

	srv, _ = setupServer(t, Config{CORS: []string{"https://example.com", "https://wallet.example.com"}})
	require.Equal(t, "https://wallet.example.com", corsHeader(t, srv.Handler(), "https://wallet.example.com"))
	require.Empty(t, corsHeader(t, srv.Handler(), "https://evil.example.com"))

	// a literal "*" inside a list does not open the list up
	srv, _ = setupServer(t, Config{CORS: []string{"https://wallet.example.com", "*"}})
	require.Empty(t, corsHeader(t, srv.Handler(), "https://evil.example.com"))
	require.Equal(t, "https://wallet.example.com", corsHeader(t, srv.Handler(), "https://wallet.example.com"))

	// wildcard patterns are compared verbatim
	srv, _ = setupServer(t, Config{CORS: []string{"https://*.example.com"}})
	require.Empty(t, corsHeader(t, srv.Handler(), "https://evil.example.com"))

	// "all" is case sensitive
	srv, _ = setupServer(t, Config{CORS: []string{"ALL"}})
	require.Empty(t, corsHeader(t, srv.Handler(), "https://example.com"))

	_, err := newCORSMiddleware([]string{"https://example.com\r\nX-Injected: 1"})
	require.Error(t, err)
}

func Test_TimeoutMiddleware(t *testing.T) {
	writeErr := make(chan error, 1)
	blocking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		// give the middleware time to answer first
		time.Sleep(20 * time.Millisecond)
		_, err := w.Write([]byte("late"))
		writeErr <- err
	})

	handler := chain(blocking, recoverMiddleware(log.NewNopLogger()), timeoutMiddleware(50*time.Millisecond))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	require.Equal(t, http.StatusRequestTimeout, rec.Code)
	require.NotContains(t, rec.Body.String(), "late")
	require.ErrorIs(t, <-writeErr, http.ErrHandlerTimeout)

	fast := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Test", "1")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("done"))
	})
	handler = chain(fast, timeoutMiddleware(time.Second))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Equal(t, "1", rec.Header().Get("X-Test"))
	require.Equal(t, "done", rec.Body.String())
}

func Test_PanicBecomes500(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	handler := chain(panicking, recoverMiddleware(log.NewNopLogger()), timeoutMiddleware(time.Second))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func Test_ServeAndShutdown(t *testing.T) {
	srv, adapter := setupServer(t, Config{RequestTimeout: time.Second})
	adapter.EXPECT().GetLedgerInfo(gomock.Any()).Return(&aptos.LedgerInfo{BlockHeight: 10}, nil)

	ln, err := (&net.ListenConfig{}).Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ctx, ln) }()

	resp, err := http.Post("http://"+ln.Addr().String()+"/", "application/json",
		strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"eth_blockNumber","params":[]}`))
	require.NoError(t, err)

	var body rpcResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NoError(t, resp.Body.Close())
	require.JSONEq(t, `"0xa"`, string(body.Result))

	cancel()
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func Test_BindFailure(t *testing.T) {
	ln, err := (&net.ListenConfig{}).Listen(context.Background(), "tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv, _ := setupServer(t, Config{Address: ln.Addr().String()})
	err = srv.ListenAndServe(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to bind")
}

package remote

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/initia-labs/sidecar/aptos"
	"github.com/initia-labs/sidecar/engine"
)

var basicConfig = engine.BasicConfig{
	CoinType:  "0x1::aptos_coin::AptosCoin",
	AuthFunc:  "0x100::evm::authenticate",
	EntryFunc: "0x100::evm::transact",
}

func setup(t *testing.T, handler http.HandlerFunc) (*Adapter, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	var buf bytes.Buffer
	logger := log.NewLogger(&buf, log.OutputJSONOption(), log.LevelOption(zerolog.DebugLevel))

	adapter, err := NewAdapter(logger, basicConfig, Config{Endpoint: srv.URL + "/v1", Timeout: time.Second})
	require.NoError(t, err)

	return adapter, &buf
}

func testAddress(t *testing.T) aptos.AccountAddress {
	addr, err := aptos.ParseAccountAddress("0xc96aaa54e2d44c299564da76e1cd3184a2386b8d")
	require.NoError(t, err)
	return addr
}

func testSignedTransaction(t *testing.T) *aptos.SignedTransaction {
	entryFunc, err := aptos.ParseMemberId(basicConfig.EntryFunc)
	require.NoError(t, err)
	authFunc, err := aptos.ParseFunctionInfo(basicConfig.AuthFunc)
	require.NoError(t, err)

	return &aptos.SignedTransaction{
		RawTxn: aptos.RawTransaction{
			Sender:         testAddress(t),
			SequenceNumber: 7,
			Payload: &aptos.TransactionPayload__EntryFunction{
				Value: aptos.NewEntryFunction(entryFunc, nil, [][]byte{{0x01}}),
			},
			MaxGasAmount:            2_000_000,
			GasUnitPrice:            100,
			ExpirationTimestampSecs: 1_700_000_000,
			ChainId:                 aptos.ChainTesting,
		},
		Authenticator: aptos.NewAbstractionAuthenticator(authFunc, nil, nil),
	}
}

func Test_Attributes(t *testing.T) {
	adapter, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {})

	require.Equal(t, basicConfig.CoinType, adapter.CoinType())
	require.Equal(t, basicConfig.AuthFunc, adapter.AuthFunc())
	require.Equal(t, basicConfig.EntryFunc, adapter.EntryFunc())
}

func Test_GetLedgerInfo(t *testing.T) {
	adapter, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/v1", r.URL.Path)

		w.Header().Set(aptos.HeaderChainId, "4")
		_, _ = io.WriteString(w, `{
			"chain_id": 4,
			"epoch": "2",
			"ledger_version": "18446744073709551615",
			"oldest_ledger_version": "0",
			"ledger_timestamp": "1700000000000000",
			"node_role": "full_node",
			"oldest_block_height": "0",
			"block_height": "1234",
			"git_hash": "abcdef"
		}`)
	})

	info, err := adapter.GetLedgerInfo(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint8(4), info.ChainId)
	require.Equal(t, aptos.U64(1234), info.BlockHeight)
	require.Equal(t, aptos.U64(18446744073709551615), info.LedgerVersion)
	require.Equal(t, "full_node", info.NodeRole)
	require.NotNil(t, info.GitHash)
}

func Test_GetAccount(t *testing.T) {
	addr := testAddress(t)
	adapter, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/accounts/"+addr.String(), r.URL.Path)
		_, _ = io.WriteString(w, `{"sequence_number":"7","authentication_key":"0x000000000000000000000000c96aaa54e2d44c299564da76e1cd3184a2386b8d"}`)
	})

	account, err := adapter.GetAccount(context.Background(), addr)
	require.NoError(t, err)
	require.Equal(t, aptos.U64(7), account.SequenceNumber)
	require.Equal(t, addr[:], []byte(account.AuthenticationKey))
}

func Test_GetAccountBalance(t *testing.T) {
	addr := testAddress(t)

	for _, body := range []string{`42`, `"42"`} {
		adapter, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1/accounts/"+addr.String()+"/balance/0x1::aptos_coin::AptosCoin", r.URL.Path)
			_, _ = io.WriteString(w, body)
		})

		balance, err := adapter.GetAccountBalance(context.Background(), addr, adapter.CoinType())
		require.NoError(t, err, body)
		require.Equal(t, uint64(42), balance)
	}
}

func Test_GetBlockByHeight(t *testing.T) {
	adapter, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/blocks/by_height/99", r.URL.Path)
		require.Equal(t, "true", r.URL.Query().Get("with_transactions"))
		_, _ = io.WriteString(w, `{
			"block_height": "99",
			"block_hash": "0x01",
			"block_timestamp": "1700000000000000",
			"first_version": "10",
			"last_version": "12",
			"transactions": [{"type":"block_metadata_transaction"}]
		}`)
	})

	block, err := adapter.GetBlockByHeight(context.Background(), 99, true)
	require.NoError(t, err)
	require.Equal(t, aptos.U64(99), block.BlockHeight)
	require.Equal(t, aptos.U64(12), block.LastVersion)
	require.Len(t, block.Transactions, 1)
}

func Test_SubmitTransaction(t *testing.T) {
	signed := testSignedTransaction(t)
	expectedBody, err := signed.BcsSerialize()
	require.NoError(t, err)

	adapter, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/transactions", r.URL.Path)
		require.Equal(t, aptos.ContentTypeSignedTransaction, r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Equal(t, expectedBody, body)

		w.WriteHeader(http.StatusAccepted)
		_, _ = io.WriteString(w, `{
			"hash": "0xabc",
			"sender": "0x000000000000000000000000c96aaa54e2d44c299564da76e1cd3184a2386b8d",
			"sequence_number": "7",
			"max_gas_amount": "2000000",
			"gas_unit_price": "100",
			"expiration_timestamp_secs": "1700000000",
			"payload": {"type": "entry_function_payload"},
			"signature": {"type": "single_sender"}
		}`)
	})

	pending, err := adapter.SubmitTransaction(context.Background(), signed)
	require.NoError(t, err)
	require.Equal(t, "0xabc", pending.Hash)
	require.Equal(t, aptos.U64(7), pending.SequenceNumber)
}

func Test_SubmitTransactionRejected(t *testing.T) {
	adapter, buf := setup(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message":"mempool is full","error_code":"mempool_is_full","vm_error_code":null}`)
	})

	_, err := adapter.SubmitTransaction(context.Background(), testSignedTransaction(t))
	require.ErrorIs(t, err, engine.ErrUpstream)
	require.NotContains(t, err.Error(), "mempool is full")

	require.Contains(t, buf.String(), `"level":"warn"`)
	require.Contains(t, buf.String(), `"status":400`)
	require.Contains(t, buf.String(), "mempool is full")
}

func Test_NotFound(t *testing.T) {
	adapter, buf := setup(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"Account not found","error_code":"account_not_found"}`)
	})

	_, err := adapter.GetAccount(context.Background(), testAddress(t))
	require.ErrorIs(t, err, engine.ErrNotFound)
	require.Contains(t, buf.String(), "Account not found")
}

func Test_PlainTextErrorBody(t *testing.T) {
	adapter, buf := setup(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := adapter.GetLedgerInfo(context.Background())
	require.ErrorIs(t, err, engine.ErrUpstream)
	require.Contains(t, buf.String(), "bad gateway")
}

func Test_DecodeError(t *testing.T) {
	adapter, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `not json`)
	})

	_, err := adapter.GetLedgerInfo(context.Background())
	require.ErrorIs(t, err, engine.ErrDecode)
}

func Test_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	adapter, err := NewAdapter(log.NewNopLogger(), basicConfig, Config{Endpoint: endpoint, Timeout: time.Second})
	require.NoError(t, err)

	_, err = adapter.GetLedgerInfo(context.Background())
	require.ErrorIs(t, err, engine.ErrTransport)
}

func Test_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	adapter, err := NewAdapter(log.NewNopLogger(), basicConfig, Config{Endpoint: srv.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = adapter.GetLedgerInfo(context.Background())
	require.ErrorIs(t, err, engine.ErrTransport)

	// cancellation of the caller context aborts the request as well
	adapter, err = NewAdapter(log.NewNopLogger(), basicConfig, Config{Endpoint: srv.URL, Timeout: time.Minute})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = adapter.GetLedgerInfo(ctx)
	require.ErrorIs(t, err, engine.ErrTransport)
}

func Test_NewAdapterValidation(t *testing.T) {
	_, err := NewAdapter(nil, basicConfig, Config{Endpoint: "http://127.0.0.1:8080/v1", Timeout: time.Second})
	require.Error(t, err)

	_, err = NewAdapter(log.NewNopLogger(), basicConfig, Config{Endpoint: "127.0.0.1:8080", Timeout: time.Second})
	require.Error(t, err)

	_, err = NewAdapter(log.NewNopLogger(), basicConfig, Config{Endpoint: "ftp://127.0.0.1/v1", Timeout: time.Second})
	require.Error(t, err)

	_, err = NewAdapter(log.NewNopLogger(), basicConfig, Config{Endpoint: "http://127.0.0.1:8080/v1", Timeout: 0})
	require.Error(t, err)

	adapter, err := NewAdapter(log.NewNopLogger(), basicConfig, Config{Endpoint: "http://127.0.0.1:8080/v1/", Timeout: time.Second})
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:8080/v1/", adapter.Endpoint())
}

type headerTransport struct {
	base http.RoundTripper
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("X-Sidecar-Test", "1")
	return t.base.RoundTrip(req)
}

func Test_WithHTTPClient(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Sidecar-Test") != "1" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Path == "/v1/slow" {
			<-release
			return
		}
		_, _ = w.Write([]byte(`{"chain_id":4,"block_height":"1"}`))
	}))
	defer srv.Close()
	defer close(release)

	client := &http.Client{Transport: headerTransport{base: http.DefaultTransport}, Timeout: time.Hour}
	adapter, err := NewAdapter(log.NewNopLogger(), basicConfig, Config{Endpoint: srv.URL + "/v1", Timeout: 50 * time.Millisecond}, WithHTTPClient(client))
	require.NoError(t, err)

	info, err := adapter.GetLedgerInfo(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint8(4), info.ChainId)

	// the configured timeout wins and the caller's client is left untouched
	require.Equal(t, 50*time.Millisecond, adapter.client.Timeout)
	require.Equal(t, time.Hour, client.Timeout)

	err = adapter.get(context.Background(), adapter.endpoint.JoinPath("slow"), "slow", &info)
	require.ErrorIs(t, err, engine.ErrTransport)
}

package remote

import (
	"encoding/json"
	"io"
	"net/http"

	errorsmod "cosmossdk.io/errors"

	"github.com/initia-labs/sidecar/aptos"
	"github.com/initia-labs/sidecar/engine"
)

// maxResponseBytes bounds how much of a response body is read.
const maxResponseBytes = 16 << 20

// do sends req and decodes a 2xx JSON body into out. Any other outcome is
// logged at WARN and collapsed into an engine error; the upstream body is
// never part of the returned error.
func (a *Adapter) do(req *http.Request, message string, out any) error {
	resp, err := a.client.Do(req)
	if err != nil {
		a.logger.Warn(message, "method", req.Method, "url", req.URL.String(), "err", err)
		return errorsmod.Wrap(engine.ErrTransport, message)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		a.logger.Warn(message, "method", req.Method, "url", req.URL.String(), "status", resp.StatusCode, "err", err)
		return errorsmod.Wrap(engine.ErrTransport, message)
	}

	a.logger.Debug("engine response",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"chain_id", resp.Header.Get(aptos.HeaderChainId),
		"ledger_version", resp.Header.Get(aptos.HeaderLedgerVersion),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		a.logger.Warn(message, "status", resp.StatusCode, "body", upstreamMessage(body))
		if resp.StatusCode == http.StatusNotFound {
			return errorsmod.Wrap(engine.ErrNotFound, message)
		}
		return errorsmod.Wrapf(engine.ErrUpstream, "%s: status %d", message, resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		a.logger.Warn(message, "status", resp.StatusCode, "err", err)
		return errorsmod.Wrap(engine.ErrDecode, message)
	}

	return nil
}

// upstreamMessage extracts the message of an Aptos error body, falling
// back to the raw body.
func upstreamMessage(body []byte) string {
	var apiErr aptos.Error
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return apiErr.Error()
	}
	return string(body)
}

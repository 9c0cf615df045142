package config

import (
	"github.com/pelletier/go-toml"
)

// ToTOML renders the effective configuration in the file format Load reads.
func (c Config) ToTOML() (string, error) {
	tree, err := toml.TreeFromMap(c.toMap())
	if err != nil {
		return "", err
	}
	return tree.ToTomlString()
}

func (c Config) toMap() map[string]any {
	server := map[string]any{
		"host":                    c.Server.Host,
		"port":                    int64(c.Server.Port),
		"request_timeout_seconds": c.Server.RequestTimeoutSeconds,
		"max_body_bytes":          int64(c.Server.MaxBodyBytes),
	}
	if len(c.Server.CORS) > 0 {
		server["cors"] = c.Server.CORS
	}

	basic := c.Engine.Basic
	engine := map[string]any{
		"basic": map[string]any{
			"coin_type":             basic.CoinType,
			"auth_func":             basic.AuthFunc,
			"entry_func":            basic.EntryFunc,
			"max_gas_amount":        basic.MaxGasAmount,
			"gas_unit_price":        basic.GasUnitPrice,
			"expiration_seconds":    basic.ExpirationSeconds,
			"serialize_submissions": basic.SerializeSubmissions,
		},
	}

	switch c.Engine.Adapter.Kind {
	case AdapterLocal:
		engine["adapter"] = string(AdapterLocal)
	default:
		remote := c.Engine.Adapter.Remote
		engine["adapter"] = map[string]any{
			string(AdapterRemote): map[string]any{
				"endpoint": remote.Endpoint,
				"timeout":  remote.Timeout,
				"chain_id": int64(remote.ChainId),
			},
		}
	}

	return map[string]any{
		"server": server,
		"engine": engine,
		"telemetry": map[string]any{
			"enabled": c.Telemetry.Enabled,
		},
	}
}

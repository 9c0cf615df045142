package config

import (
	"fmt"
	"io"
	"math"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/initia-labs/sidecar/aptos"
)

const configType = "toml"

// Load reads the TOML file at path on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(configType)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config file %s", path)
	}

	return fromViper(v)
}

// Read parses TOML from r on top of the defaults.
func Read(r io.Reader) (Config, error) {
	v := viper.New()
	v.SetConfigType(configType)
	if err := v.ReadConfig(r); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse config")
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := DefaultConfig()
	if err := decode(v.AllSettings(), &cfg); err != nil {
		return Config{}, invalid("%s", err)
	}

	if raw := v.Get("engine.adapter"); raw != nil {
		adapter, err := decodeAdapter(raw)
		if err != nil {
			return Config{}, err
		}
		cfg.Engine.Adapter = adapter
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(input any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(chainIdHook, itemOrListHook),
		Result:     out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// decodeAdapter accepts the externally tagged forms `adapter = "Local"`,
// `[engine.adapter.Remote]` and `[engine.adapter.Local]`. Keys arrive
// lowercased from viper.
func decodeAdapter(raw any) (AdapterConfig, error) {
	switch raw := raw.(type) {
	case string:
		switch {
		case strings.EqualFold(raw, string(AdapterLocal)):
			return AdapterConfig{Kind: AdapterLocal}, nil
		case strings.EqualFold(raw, string(AdapterRemote)):
			return AdapterConfig{Kind: AdapterRemote, Remote: DefaultRemoteConfig()}, nil
		}
		return AdapterConfig{}, invalid("unknown engine adapter %q", raw)

	case map[string]any:
		if len(raw) != 1 {
			return AdapterConfig{}, invalid("engine.adapter must have exactly one variant, got %d", len(raw))
		}

		var variant string
		var body any
		for k, v := range raw {
			variant, body = k, v
		}

		switch {
		case strings.EqualFold(variant, string(AdapterLocal)):
			return AdapterConfig{Kind: AdapterLocal}, nil
		case strings.EqualFold(variant, string(AdapterRemote)):
			remote := DefaultRemoteConfig()
			if err := decode(body, &remote); err != nil {
				return AdapterConfig{}, invalid("engine.adapter.Remote: %s", err)
			}
			return AdapterConfig{Kind: AdapterRemote, Remote: remote}, nil
		}
		return AdapterConfig{}, invalid("unknown engine adapter %q", variant)
	}

	return AdapterConfig{}, invalid("invalid engine.adapter %v", raw)
}

var (
	chainIdType     = reflect.TypeOf(aptos.ChainId(0))
	stringSliceType = reflect.TypeOf([]string(nil))
)

// chainIdHook accepts a u8 or a chain name.
func chainIdHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != chainIdType {
		return data, nil
	}

	if name, ok := data.(string); ok {
		id, err := aptos.ParseChainId(name)
		if err != nil {
			return nil, err
		}
		return id, nil
	}

	n, err := cast.ToUint64E(data)
	if err != nil || n > math.MaxUint8 {
		return nil, fmt.Errorf("invalid chain id %v", data)
	}
	return aptos.ChainId(n), nil
}

// itemOrListHook lets a single string stand for a one element list.
func itemOrListHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != stringSliceType {
		return data, nil
	}
	if item, ok := data.(string); ok {
		return []string{item}, nil
	}
	return data, nil
}

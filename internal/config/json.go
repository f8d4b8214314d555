package config

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/multipool/internal/jsonc"
)

// PortalJSONConfig mirrors [PortalConfig] with json tags for the optional
// config file. The file is read through the lenient JSON decoder, so
// operators may comment it the same way they comment pool documents.
type PortalJSONConfig struct {
	Portal struct {
		PoolConfigDir         string `json:"pool_config_dir"`
		CoinConfigDir         string `json:"coin_config_dir"`
		DefaultPoolConfigPath string `json:"default_pool_config"`
	} `json:"portal,omitempty"`

	Website struct {
		Address       string   `json:"address"`
		StatsInterval Duration `json:"stats_interval"`
	} `json:"website,omitempty"`

	CLI struct {
		Address string `json:"address"`
	} `json:"cli,omitempty"`

	Exchange struct {
		BaseURL        string   `json:"base_url"`
		Currency       string   `json:"currency"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"exchange,omitempty"`
}

func parseJSON(jsonFilePath string) (*PortalConfig, error) {
	var jsonCfg PortalJSONConfig
	if err := jsonc.DecodeFile(jsonFilePath, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &PortalConfig{
		Portal: Portal{
			PoolConfigDir:         jsonCfg.Portal.PoolConfigDir,
			CoinConfigDir:         jsonCfg.Portal.CoinConfigDir,
			DefaultPoolConfigPath: jsonCfg.Portal.DefaultPoolConfigPath,
		},
		Website: Website{
			Address:       jsonCfg.Website.Address,
			StatsInterval: time.Duration(jsonCfg.Website.StatsInterval),
		},
		CLI: CLI{
			Address: jsonCfg.CLI.Address,
		},
		Exchange: Exchange{
			BaseURL:        jsonCfg.Exchange.BaseURL,
			Currency:       jsonCfg.Exchange.Currency,
			RequestTimeout: time.Duration(jsonCfg.Exchange.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

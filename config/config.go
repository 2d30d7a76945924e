// Package config describes the relays the gateway runs. A relay definition
// binds an lps id to a listen address plus per-lps translation settings.
// Definitions come either from a JSON file or from the serve flags.
package config

import (
	"io/ioutil"
	"os"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/batchcorp/lpsgateway/options"
	"github.com/batchcorp/lpsgateway/translate"
	"github.com/batchcorp/lpsgateway/validate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrNoRelays = errors.New("config must define at least one relay")

type Config struct {
	Relays      []*RelayConfig `json:"relays"`
	RelaysMutex *sync.RWMutex  `json:"-"`
}

type RelayConfig struct {
	LpsID                          string                   `json:"lps_id"`
	ListenAddress                  string                   `json:"listen_address"`
	TransactionExpiryWindowSeconds int                      `json:"transaction_expiry_window_seconds"`
	ResponseCodes                  *translate.ResponseCodes `json:"response_codes,omitempty"`
}

// ExpiryWindow returns the configured window, or the translator default
func (r *RelayConfig) ExpiryWindow() time.Duration {
	if r.TransactionExpiryWindowSeconds <= 0 {
		return translate.DefaultExpiryWindow
	}

	return time.Duration(r.TransactionExpiryWindowSeconds) * time.Second
}

// FromOptions builds the relay set for the serve command. A config file,
// when given, replaces the single relay described by the flags.
func FromOptions(serveOpts *options.ServeOptions) (*Config, error) {
	if serveOpts == nil {
		return nil, validate.ErrMissingCLIOptions
	}

	if serveOpts.ConfigFile != "" {
		return ReadConfig(serveOpts.ConfigFile)
	}

	cfg := &Config{
		Relays: []*RelayConfig{
			{
				LpsID:                          serveOpts.LpsID,
				ListenAddress:                  serveOpts.ListenAddress,
				TransactionExpiryWindowSeconds: int(serveOpts.TransactionExpiryWindow / time.Second),
			},
		},
		RelaysMutex: &sync.RWMutex{},
	}

	if err := cfg.prepare(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ReadConfig reads a relay definition JSON file into a Config struct
func ReadConfig(fileName string) (*Config, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", fileName)
	}

	defer f.Close()

	data, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", fileName)
	}

	cfg := &Config{
		Relays:      make([]*RelayConfig, 0),
		RelaysMutex: &sync.RWMutex{},
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "could not unmarshal %s", fileName)
	}

	if err := cfg.prepare(); err != nil {
		return nil, errors.Wrapf(err, "invalid config in %s", fileName)
	}

	return cfg, nil
}

// Exists determines if a config file exists
func Exists(fileName string) bool {
	if _, err := os.Stat(fileName); os.IsNotExist(err) {
		return false
	}

	return true
}

// GetRelay returns the relay definition for lpsID, or nil
func (c *Config) GetRelay(lpsID string) *RelayConfig {
	c.RelaysMutex.RLock()
	defer c.RelaysMutex.RUnlock()

	for _, r := range c.Relays {
		if r.LpsID == lpsID {
			return r
		}
	}

	return nil
}

// prepare validates the relays and fills defaults
func (c *Config) prepare() error {
	if len(c.Relays) == 0 {
		return ErrNoRelays
	}

	lpsIDs := make(map[string]struct{})
	addresses := make(map[string]struct{})

	for _, r := range c.Relays {
		if r == nil {
			return validate.ErrEmptyRelayConfig
		}

		if r.LpsID == "" {
			return validate.ErrMissingLpsID
		}

		if r.ListenAddress == "" {
			return errors.Wrapf(validate.ErrMissingListenAddress, "relay '%s'", r.LpsID)
		}

		if _, ok := lpsIDs[r.LpsID]; ok {
			return errors.Wrapf(validate.ErrDuplicateLpsID, "'%s'", r.LpsID)
		}

		if _, ok := addresses[r.ListenAddress]; ok {
			return errors.Wrapf(validate.ErrDuplicateListenAddress, "'%s'", r.ListenAddress)
		}

		lpsIDs[r.LpsID] = struct{}{}
		addresses[r.ListenAddress] = struct{}{}

		r.ResponseCodes = r.ResponseCodes.WithDefaults()
	}

	return nil
}

package builder

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/hermeznetwork/tracerr"
	"github.com/kelseyhightower/envconfig"
	"github.com/mcuadros/go-defaults"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"github.com/rikikudohust-thesis/callsender/internal/pkg/model"
)

// LoadEnvFile exports the variables of a dotenv file without overriding ones
// already set. A missing file is fine.
func LoadEnvFile(file string) error {
	if file == "" {
		return nil
	}
	if err := gotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return tracerr.Wrap(err)
	}
	return nil
}

func LoadEnvConfig() (*model.SenderConfig, error) {
	var cfg model.SenderConfig
	defaults.SetDefaults(&cfg)
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, tracerr.Wrap(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadCallBatch reads the "calls" list of the file. The format follows the
// file extension (json, yaml, toml...). Extra keys on an entry are ignored;
// a missing contractAddress or a missing or null functionDataList is an error.
func loadCallBatch(file string) (model.CallBatch, error) {
	v := viper.New()
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return nil, tracerr.Wrap(err)
	}
	if !v.IsSet(model.CallsKey) {
		return nil, tracerr.Wrap(model.ErrMissingCalls)
	}

	var batch model.CallBatch
	strict := func(c *mapstructure.DecoderConfig) {
		c.ErrorUnset = true
		c.WeaklyTypedInput = false
	}
	if err := v.UnmarshalKey(model.CallsKey, &batch, strict); err != nil {
		return nil, tracerr.Wrap(fmt.Errorf("%w: %v", model.ErrMalformedCallSet, err))
	}
	for i, set := range batch {
		// null decodes without touching the field
		if set.FunctionDataList == nil {
			return nil, tracerr.Wrap(fmt.Errorf("%w: entry %d has no functionDataList", model.ErrMalformedCallSet, i))
		}
	}
	return batch, nil
}

package model

import (
	"strings"
	"time"

	"github.com/hermeznetwork/tracerr"
)

// SenderConfig is resolved once from the environment at startup.
type SenderConfig struct {
	PrivateKey    string `split_words:"true"`
	Provider      []string
	WalletAddress string `split_words:"true"`

	// ConfirmTimeout bounds each receipt wait. Zero waits forever.
	ConfirmTimeout time.Duration `default:"0" split_words:"true"`
}

// Validate reports a missing credential or endpoint.
func (c *SenderConfig) Validate() error {
	if strings.TrimSpace(c.PrivateKey) == "" {
		return tracerr.Wrap(ErrMissingPrivateKey)
	}
	if len(c.Endpoints()) == 0 {
		return tracerr.Wrap(ErrMissingProvider)
	}
	return nil
}

// Endpoints returns the non-empty provider URLs in configured order.
func (c *SenderConfig) Endpoints() []string {
	rpcs := make([]string, 0, len(c.Provider))
	for _, p := range c.Provider {
		if p = strings.TrimSpace(p); p != "" {
			rpcs = append(rpcs, p)
		}
	}
	return rpcs
}

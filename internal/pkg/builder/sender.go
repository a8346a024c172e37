package builder

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/rikikudohust-thesis/callsender/internal/pkg/model"
	"github.com/rikikudohust-thesis/callsender/internal/pkg/service/chain"
	"github.com/rikikudohust-thesis/callsender/internal/pkg/service/sender"
	"github.com/rikikudohust-thesis/callsender/internal/pkg/utils"
)

type Options struct {
	CallsFile string
}

type evmBackend interface {
	chain.Backend
	Close()
}

var dialEvmClient = func(ctx context.Context, log logrus.FieldLogger, rpcs []string) (evmBackend, error) {
	return utils.GetEvmClient(ctx, log, rpcs)
}

type Sender struct {
	job     model.IJob
	backend evmBackend
}

// NewSender resolves configuration from the environment and loads the call
// batch before any network access, then dials the node.
func NewSender(ctx context.Context, opts Options, log logrus.FieldLogger) (*Sender, error) {
	cfg, err := LoadEnvConfig()
	if err != nil {
		return nil, err
	}

	prvKey, err := utils.ParsePrivateKey(cfg.PrivateKey)
	if err != nil {
		return nil, err
	}

	batch, err := loadCallBatch(opts.CallsFile)
	if err != nil {
		return nil, err
	}

	backend, err := dialEvmClient(ctx, log, cfg.Endpoints())
	if err != nil {
		return nil, err
	}

	client, err := chain.NewClient(backend, prvKey, cfg.ConfirmTimeout)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Sender{
		job:     sender.NewJob(*cfg, client, batch, log),
		backend: backend,
	}, nil
}

func (s *Sender) Run(ctx context.Context) error {
	return s.job.Run(ctx)
}

func (s *Sender) Close() {
	s.backend.Close()
}

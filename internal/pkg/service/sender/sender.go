package sender

import (
	"context"
	"errors"
	"time"

	"github.com/hermeznetwork/tracerr"
	"github.com/sirupsen/logrus"

	"github.com/rikikudohust-thesis/callsender/internal/pkg/model"
)

// Job submits every payload of the batch, one at a time, in file order.
// A payload's receipt is awaited before the next request is built, so the
// signer's pending nonce is always the right one.
type Job struct {
	cfg    model.SenderConfig
	client model.IChainClient
	batch  model.CallBatch
	report *reporter
}

var _ model.IJob = (*Job)(nil)

func NewJob(cfg model.SenderConfig, client model.IChainClient, batch model.CallBatch, log logrus.FieldLogger) *Job {
	return &Job{
		cfg:    cfg,
		client: client,
		batch:  batch,
		report: &reporter{log: log},
	}
}

// Run prints the network identity and processes the batch. Only a failure
// to resolve the chain id is returned; per-transaction failures are logged.
func (j *Job) Run(ctx context.Context) error {
	start := time.Now()
	chainID, err := j.client.ChainID(ctx)
	if err != nil {
		return tracerr.Wrap(err)
	}

	wallet := j.cfg.WalletAddress
	if wallet == "" {
		wallet = j.client.Address().Hex()
	}
	j.report.network(chainID, wallet)

	outcomes := j.Process(ctx)
	j.report.log.Debugf("done, %d transactions, elapsed: %v", len(outcomes), time.Since(start))
	return nil
}

// Process walks the batch and returns one outcome per payload.
func (j *Job) Process(ctx context.Context) []model.TransactionOutcome {
	outcomes := make([]model.TransactionOutcome, 0, j.batch.Len())
	for _, set := range j.batch {
		j.report.contract(set.ContractAddress)
		for _, functionData := range set.FunctionDataList {
			outcome := j.send(ctx, set.ContractAddress, functionData)
			j.report.outcome(&outcome)
			outcomes = append(outcomes, outcome)
		}
	}
	return outcomes
}

func (j *Job) send(ctx context.Context, contractAddress, functionData string) model.TransactionOutcome {
	outcome := model.TransactionOutcome{
		ContractAddress: contractAddress,
		FunctionData:    functionData,
	}
	j.report.sending(contractAddress, functionData)

	req, err := model.NewTransactionRequest(contractAddress, functionData)
	if err != nil {
		outcome.Failure = model.NewTxFailure(model.FailureInvalidRequest, err)
		return outcome
	}
	outcome.Request = req

	tx, err := j.client.Submit(ctx, req)
	if err != nil {
		outcome.Failure = asFailure(err)
		return outcome
	}
	outcome.Hash = tx.Hash()
	j.report.sent(outcome.Hash)

	receipt, err := j.client.AwaitConfirmation(ctx, tx)
	if err != nil {
		outcome.Failure = asFailure(err)
		return outcome
	}
	outcome.BlockNumber = receipt.BlockNumber
	outcome.Status = receipt.Status
	return outcome
}

// asFailure keeps a classified failure as is and treats anything else as a
// transport problem.
func asFailure(err error) *model.TxFailure {
	var failure *model.TxFailure
	if errors.As(tracerr.Unwrap(err), &failure) {
		return failure
	}
	return model.NewTxFailure(model.FailureNetwork, err)
}

package sender

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"

	"github.com/rikikudohust-thesis/callsender/internal/pkg/model"
)

type reporter struct {
	log logrus.FieldLogger
}

func (r *reporter) network(chainID *big.Int, wallet string) {
	entry := r.log
	if name, ok := model.ChainNames[chainID.Uint64()]; ok && chainID.IsUint64() {
		entry = r.log.WithField("network", name)
	}
	entry.Infof("Connected to chainId: %s", chainID)
	r.log.Infof("Wallet Address: %s", wallet)
}

func (r *reporter) contract(address string) {
	r.log.Infof("Processing calls for contract: %s", address)
}

func (r *reporter) sending(to, functionData string) {
	r.log.Infof("Sending transaction to: %s", to)
	r.log.Infof("Transaction data: %s", functionData)
}

func (r *reporter) sent(hash common.Hash) {
	r.log.Infof("Transaction sent. Hash: %s", hash.Hex())
}

func (r *reporter) outcome(o *model.TransactionOutcome) {
	if o.Failed() {
		entry := r.log.WithField("kind", o.Failure.Kind.String())
		if o.Hash != (common.Hash{}) {
			entry = entry.WithField("hash", o.Hash.Hex())
		}
		entry.Errorf("Error sending transaction: %v", o.Failure.Err)
		return
	}

	r.log.Infof("Transaction confirmed in block %s", o.BlockNumber)
	r.log.Infof("Receipt status: %d", o.Status)
	if o.Reverted() {
		r.log.Warn("Transaction reverted (status = 0).")
		return
	}
	r.log.Infof("Transaction succeeded (status = %d).", o.Status)
}

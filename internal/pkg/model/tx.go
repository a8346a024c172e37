package model

import (
	"fmt"
	"math/big"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/hermeznetwork/tracerr"
)

// TransactionRequest is built right before submission and dropped after it.
// It never carries a value transfer.
type TransactionRequest struct {
	To       ethCommon.Address
	Data     []byte
	GasLimit uint64
}

// NewTransactionRequest validates the address and decodes the hex payload.
func NewTransactionRequest(contractAddress, functionData string) (*TransactionRequest, error) {
	if !ethCommon.IsHexAddress(contractAddress) {
		return nil, tracerr.Wrap(fmt.Errorf("%w: %q", ErrInvalidAddress, contractAddress))
	}
	data, err := hexutil.Decode(functionData)
	if err != nil {
		return nil, tracerr.Wrap(fmt.Errorf("%w: %v", ErrInvalidCallData, err))
	}
	return &TransactionRequest{
		To:       ethCommon.HexToAddress(contractAddress),
		Data:     data,
		GasLimit: TxGasLimit,
	}, nil
}

type FailureKind int

const (
	FailureInvalidRequest FailureKind = iota
	FailureNetwork
	FailureRejected
	FailureTimeout
)

func (k FailureKind) String() string {
	switch k {
	case FailureInvalidRequest:
		return "invalid request"
	case FailureNetwork:
		return "network"
	case FailureRejected:
		return "rejected"
	case FailureTimeout:
		return "timeout"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// TxFailure is a classified per-transaction error.
type TxFailure struct {
	Kind FailureKind
	Err  error
}

func NewTxFailure(kind FailureKind, err error) *TxFailure {
	return &TxFailure{Kind: kind, Err: err}
}

func (f *TxFailure) Error() string {
	return fmt.Sprintf("%s: %v", f.Kind, f.Err)
}

func (f *TxFailure) Unwrap() error {
	return f.Err
}

// TransactionOutcome is what happened to one payload. Exactly one of Failure
// or Receipt data is meaningful; Hash is set whenever the node accepted the tx.
type TransactionOutcome struct {
	ContractAddress string
	FunctionData    string
	Request         *TransactionRequest
	Hash            ethCommon.Hash
	BlockNumber     *big.Int
	Status          uint64
	Failure         *TxFailure
}

func (o *TransactionOutcome) Failed() bool {
	return o.Failure != nil
}

func (o *TransactionOutcome) Reverted() bool {
	return o.Failure == nil && o.Status == types.ReceiptStatusFailed
}

func (o *TransactionOutcome) Succeeded() bool {
	return o.Failure == nil && o.Status != types.ReceiptStatusFailed
}

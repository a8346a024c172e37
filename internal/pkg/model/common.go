package model

import (
	"context"
	"math/big"

	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type IJob interface {
	Run(ctx context.Context) error
}

// IChainClient is the node connection together with the signing key.
// Submit returns once the node has accepted the signed transaction;
// AwaitConfirmation blocks until it is mined.
type IChainClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	Address() ethCommon.Address
	Submit(ctx context.Context, req *TransactionRequest) (*types.Transaction, error)
	AwaitConfirmation(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/hermeznetwork/tracerr"

	"github.com/rikikudohust-thesis/callsender/internal/pkg/model"
	"github.com/rikikudohust-thesis/callsender/internal/pkg/utils"
)

// Backend is the subset of *ethclient.Client used to sign, send and confirm.
type Backend interface {
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// Client signs with a single key. It is not safe for concurrent Submit calls:
// nonces come from the node's pending count.
type Client struct {
	backend        Backend
	prvKey         *ecdsa.PrivateKey
	address        common.Address
	chainID        *big.Int
	confirmTimeout time.Duration
}

var _ model.IChainClient = (*Client)(nil)

func NewClient(backend Backend, prvKey *ecdsa.PrivateKey, confirmTimeout time.Duration) (*Client, error) {
	address, err := utils.AddressFromKey(prvKey)
	if err != nil {
		return nil, err
	}
	return &Client{
		backend:        backend,
		prvKey:         prvKey,
		address:        address,
		confirmTimeout: confirmTimeout,
	}, nil
}

func (c *Client) Address() common.Address {
	return c.address
}

// ChainID asks the node once and caches the answer for signing.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	if c.chainID != nil {
		return new(big.Int).Set(c.chainID), nil
	}
	chainID, err := c.backend.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	c.chainID = chainID
	return new(big.Int).Set(chainID), nil
}

// Submit signs req and broadcasts it. The returned transaction is pending.
func (c *Client) Submit(ctx context.Context, req *model.TransactionRequest) (*types.Transaction, error) {
	chainID, err := c.ChainID(ctx)
	if err != nil {
		return nil, classify(err)
	}

	nonce, err := c.backend.PendingNonceAt(ctx, c.address)
	if err != nil {
		return nil, classify(err)
	}

	txData, err := c.feeFields(ctx, chainID, nonce, req)
	if err != nil {
		return nil, classify(err)
	}

	signedTx, err := types.SignNewTx(c.prvKey, types.LatestSignerForChainID(chainID), txData)
	if err != nil {
		return nil, model.NewTxFailure(model.FailureInvalidRequest, tracerr.Wrap(err))
	}

	if err := c.backend.SendTransaction(ctx, signedTx); err != nil {
		return nil, classify(err)
	}
	return signedTx, nil
}

// feeFields prices the tx with what the node suggests: dynamic fee when the
// chain has a base fee, legacy gas price otherwise.
func (c *Client) feeFields(ctx context.Context, chainID *big.Int, nonce uint64, req *model.TransactionRequest) (types.TxData, error) {
	to := req.To
	head, err := c.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, err
	}

	if head.BaseFee != nil {
		tip, err := c.backend.SuggestGasTipCap(ctx)
		if err != nil {
			return nil, err
		}
		feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
		return &types.DynamicFeeTx{
			ChainID:   chainID,
			Nonce:     nonce,
			GasTipCap: tip,
			GasFeeCap: feeCap,
			Gas:       req.GasLimit,
			To:        &to,
			Data:      req.Data,
		}, nil
	}

	gasPrice, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, err
	}
	return &types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      req.GasLimit,
		To:       &to,
		Data:     req.Data,
	}, nil
}

// AwaitConfirmation polls for the receipt until the tx is mined, or until the
// confirm timeout elapses when one is configured.
func (c *Client) AwaitConfirmation(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	if c.confirmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.confirmTimeout)
		defer cancel()
	}
	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return nil, classify(err)
	}
	return receipt, nil
}

// classify maps a client error onto a failure kind. A JSON-RPC error object
// means the node answered and refused; anything else is treated as transport.
func classify(err error) *model.TxFailure {
	err = tracerr.Unwrap(err)
	var failure *model.TxFailure
	if errors.As(err, &failure) {
		return failure
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return model.NewTxFailure(model.FailureTimeout, tracerr.Wrap(err))
	}
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return model.NewTxFailure(model.FailureRejected, tracerr.Wrap(err))
	}
	return model.NewTxFailure(model.FailureNetwork, tracerr.Wrap(err))
}

package utils

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/hermeznetwork/tracerr"
	"github.com/sirupsen/logrus"
)

// GetEvmClient dials the rpcs starting from a random one and returns the
// first client that connects.
func GetEvmClient(ctx context.Context, log logrus.FieldLogger, rpcs []string) (*ethclient.Client, error) {
	rpcsLen := len(rpcs)
	if rpcsLen == 0 {
		return nil, tracerr.Wrap(fmt.Errorf("no rpc configured"))
	}
	indexRand, err := rand.Int(rand.Reader, big.NewInt(int64(rpcsLen)))
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	index := int(indexRand.Int64())

	for i := 0; i < rpcsLen; i++ {
		rpc := rpcs[(index+i)%rpcsLen]
		client, err := ethclient.DialContext(ctx, rpc)
		if err == nil {
			return client, nil
		}
		log.Warnf("failed to connect %s, err: %v", rpc, err)
	}

	return nil, tracerr.Wrap(fmt.Errorf("failed to connect any rpcs"))
}

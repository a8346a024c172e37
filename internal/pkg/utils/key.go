package utils

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hermeznetwork/tracerr"

	"github.com/rikikudohust-thesis/callsender/internal/pkg/model"
)

// ParsePrivateKey accepts a hex secp256k1 key with or without 0x prefix.
func ParsePrivateKey(hexKey string) (*ecdsa.PrivateKey, error) {
	hexKey = strings.TrimSpace(hexKey)
	hexKey = strings.TrimPrefix(strings.TrimPrefix(hexKey, "0x"), "0X")
	prvKey, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, tracerr.Wrap(fmt.Errorf("%w: %v", model.ErrInvalidPrivateKey, err))
	}
	return prvKey, nil
}

func AddressFromKey(prvKey *ecdsa.PrivateKey) (common.Address, error) {
	publicKeyECDSA, ok := prvKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return common.Address{}, tracerr.Wrap(fmt.Errorf("cannot assert type: publicKey is not of type *ecdsa.PublicKey"))
	}
	return crypto.PubkeyToAddress(*publicKeyECDSA), nil
}

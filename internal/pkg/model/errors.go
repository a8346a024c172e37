package model

import "errors"

var (
	ErrMissingPrivateKey = errors.New("missing PRIVATE_KEY in environment")
	ErrMissingProvider   = errors.New("missing PROVIDER in environment")
	ErrInvalidPrivateKey = errors.New("invalid PRIVATE_KEY")
	ErrMissingCalls      = errors.New("calls file has no \"calls\" key")
	ErrMalformedCallSet  = errors.New("malformed call set")
	ErrInvalidAddress    = errors.New("invalid contract address")
	ErrInvalidCallData   = errors.New("invalid call data")
)

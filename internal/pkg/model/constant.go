package model

const (
	ChainIDEthereum       = 1
	ChainIDSepolia        = 11155111
	ChainIDArbitrumGoerli = 421613
)

var ChainNames = map[uint64]string{
	ChainIDEthereum:       "ethereum",
	ChainIDSepolia:        "sepolia",
	ChainIDArbitrumGoerli: "arbitrum-goerli",
}

// TxGasLimit is the gas ceiling attached to every call. It is never estimated.
const TxGasLimit uint64 = 3_000_000

const (
	// CallsKey is the top-level key holding the call batch in the calls file.
	CallsKey = "calls"

	DefaultCallsFile = "calls.json"
	DefaultEnvFile   = ".env"
)

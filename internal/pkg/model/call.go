package model

// ContractCallSet is one entry of the calls file: a target contract and the
// pre-encoded call data to send to it, in order.
type ContractCallSet struct {
	ContractAddress  string   `mapstructure:"contractAddress" json:"contractAddress"`
	FunctionDataList []string `mapstructure:"functionDataList" json:"functionDataList"`
}

// CallBatch is the whole calls file in file order.
type CallBatch []ContractCallSet

// Len returns the total number of payloads across all call sets.
func (b CallBatch) Len() int {
	n := 0
	for _, set := range b {
		n += len(set.FunctionDataList)
	}
	return n
}

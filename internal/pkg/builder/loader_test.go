package builder

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hermeznetwork/tracerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rikikudohust-thesis/callsender/internal/pkg/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// unsetEnv clears keys for the test and restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

var senderEnv = []string{"PRIVATE_KEY", "PROVIDER", "WALLET_ADDRESS", "CONFIRM_TIMEOUT"}

func TestLoadCallBatchJSON(t *testing.T) {
	path := writeFile(t, "calls.json", `{
  "calls": [
    {"contractAddress": "0xAAAaAaAaAAaAaAaAAaaAAaaaaAaAaAaAAaAAaAAa", "functionDataList": ["0x1111", "0x2222"]},
    {"contractAddress": "0xBbbbBbBbbBBbbbbBbBbbbbbBBBbBbBBbbbbbbBBB", "functionDataList": ["0x3333"]}
  ]
}`)

	batch, err := loadCallBatch(path)
	require.NoError(t, err)
	require.Len(t, batch, 2)
	assert.Equal(t, "0xAAAaAaAaAAaAaAaAAaaAAaaaaAaAaAaAAaAAaAAa", batch[0].ContractAddress)
	assert.Equal(t, []string{"0x1111", "0x2222"}, batch[0].FunctionDataList)
	assert.Equal(t, []string{"0x3333"}, batch[1].FunctionDataList)
	assert.Equal(t, 3, batch.Len())
}

func TestLoadCallBatchYAML(t *testing.T) {
	path := writeFile(t, "calls.yaml", `calls:
  - contractAddress: "0xAAAaAaAaAAaAaAaAAaaAAaaaaAaAaAaAAaAAaAAa"
    functionDataList:
      - "0x1111"
`)

	batch, err := loadCallBatch(path)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, []string{"0x1111"}, batch[0].FunctionDataList)
}

func TestLoadCallBatchEmptyList(t *testing.T) {
	batch, err := loadCallBatch(writeFile(t, "calls.json", `{"calls": []}`))
	require.NoError(t, err)
	assert.Empty(t, batch)
}

func TestLoadCallBatchMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `{"calls": [`},
		{"wrong type", `{"calls": [{"contractAddress": "0x1", "functionDataList": [17]}]}`},
		{"calls not a list", `{"calls": 5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadCallBatch(writeFile(t, "calls.json", tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoadCallBatchIncompleteEntry(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no functionDataList", `{"calls": [{"contractAddress": "0xAAAaAaAaAAaAaAaAAaaAAaaaaAaAaAaAAaAAaAAa"}]}`},
		{"null functionDataList", `{"calls": [{"contractAddress": "0xAAAaAaAaAAaAaAaAAaaAAaaaaAaAaAaAAaAAaAAa", "functionDataList": null}]}`},
		{"no contractAddress", `{"calls": [{"functionDataList": ["0x11"]}]}`},
		{"misspelled key", `{"calls": [{"contractAddress": "0x1", "functionData": ["0x11"]}]}`},
		{"second entry broken", `{"calls": [
  {"contractAddress": "0x1", "functionDataList": ["0x11"]},
  {"contractAddress": "0x2"}
]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch, err := loadCallBatch(writeFile(t, "calls.json", tt.content))
			require.Error(t, err)
			assert.Nil(t, batch)
			assert.True(t, errors.Is(tracerr.Unwrap(err), model.ErrMalformedCallSet))
		})
	}
}

func TestLoadCallBatchEmptyFunctionDataList(t *testing.T) {
	batch, err := loadCallBatch(writeFile(t, "calls.json", `{"calls": [{"contractAddress": "0x1", "functionDataList": []}]}`))
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.NotNil(t, batch[0].FunctionDataList)
	assert.Empty(t, batch[0].FunctionDataList)
}

func TestLoadCallBatchIgnoresExtraKeys(t *testing.T) {
	path := writeFile(t, "calls.json", `{"calls": [
  {"note": "bump counter", "contractAddress": "0xAAAaAaAaAAaAaAaAAaaAAaaaaAaAaAaAAaAAaAAa", "functionDataList": ["0x1111"], "name": "counter"}
]}`)

	batch, err := loadCallBatch(path)
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, "0xAAAaAaAaAAaAaAaAAaaAAaaaaAaAaAaAAaAAaAAa", batch[0].ContractAddress)
	assert.Equal(t, []string{"0x1111"}, batch[0].FunctionDataList)
}

func TestLoadCallBatchMissingKey(t *testing.T) {
	_, err := loadCallBatch(writeFile(t, "calls.json", `{"transactions": []}`))
	require.Error(t, err)
	assert.True(t, errors.Is(tracerr.Unwrap(err), model.ErrMissingCalls))
}

func TestLoadCallBatchMissingFile(t *testing.T) {
	_, err := loadCallBatch(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadEnvConfig(t *testing.T) {
	unsetEnv(t, senderEnv...)
	t.Setenv("PRIVATE_KEY", "0xabc")
	t.Setenv("PROVIDER", "http://localhost:8545,http://localhost:8546")
	t.Setenv("CONFIRM_TIMEOUT", "90s")

	cfg, err := LoadEnvConfig()
	require.NoError(t, err)
	assert.Equal(t, "0xabc", cfg.PrivateKey)
	assert.Equal(t, []string{"http://localhost:8545", "http://localhost:8546"}, cfg.Endpoints())
	assert.Equal(t, "", cfg.WalletAddress)
	assert.Equal(t, 90*time.Second, cfg.ConfirmTimeout)
}

func TestLoadEnvConfigDefaults(t *testing.T) {
	unsetEnv(t, senderEnv...)
	t.Setenv("PRIVATE_KEY", "0xabc")
	t.Setenv("PROVIDER", "http://localhost:8545")

	cfg, err := LoadEnvConfig()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.ConfirmTimeout)
}

func TestLoadEnvConfigMissing(t *testing.T) {
	unsetEnv(t, senderEnv...)
	t.Setenv("PROVIDER", "http://localhost:8545")
	_, err := LoadEnvConfig()
	assert.True(t, errors.Is(tracerr.Unwrap(err), model.ErrMissingPrivateKey))

	unsetEnv(t, senderEnv...)
	t.Setenv("PRIVATE_KEY", "0xabc")
	_, err = LoadEnvConfig()
	assert.True(t, errors.Is(tracerr.Unwrap(err), model.ErrMissingProvider))
}

func TestLoadEnvFile(t *testing.T) {
	unsetEnv(t, senderEnv...)
	t.Setenv("PROVIDER", "http://from-process:8545")
	path := writeFile(t, ".env", "PRIVATE_KEY=0xfromfile\nPROVIDER=http://from-file:8545\n")

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "0xfromfile", os.Getenv("PRIVATE_KEY"))
	assert.Equal(t, "http://from-process:8545", os.Getenv("PROVIDER"))
}

func TestLoadEnvFileMissing(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
	assert.NoError(t, LoadEnvFile(""))
}

func TestLoadEnvFileMalformed(t *testing.T) {
	path := writeFile(t, ".env", "this is not an assignment\n")
	assert.Error(t, LoadEnvFile(path))
}

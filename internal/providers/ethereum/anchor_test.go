package ethereum

import (
	"context"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/origin-platform/rights-ledger/internal/mocks"
)

const testPrivateKey = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"

func TestAnchor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockEthBackend(ctrl)
	client, err := NewClientWithBackend(Config{
		ChainName:     "eip155:11155111",
		PrivateKeyHex: testPrivateKey,
		GasLimit:      60_000,
	}, backend)
	require.NoError(t, err)

	key, err := crypto.HexToECDSA(testPrivateKey)
	require.NoError(t, err)
	from := crypto.PubkeyToAddress(key.PublicKey)

	contentHash := "5891b5b522d5df086d0ff0b110fbd9d21bb4fc7163af34d08286a2e846f6be03"

	var sent *types.Transaction
	backend.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(11155111), nil)
	backend.EXPECT().PendingNonceAt(gomock.Any(), from).Return(uint64(7), nil)
	backend.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(2_000_000_000), nil)
	backend.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
			sent = tx
			return nil
		})

	ref, err := client.Anchor(context.Background(), contentHash)
	require.NoError(t, err)

	assert.Equal(t, "eip155:11155111", ref.ChainName)
	require.NotNil(t, sent)
	assert.Equal(t, sent.Hash().Hex(), ref.TxHash)

	// Zero-value self-transaction carrying the digest as calldata
	expected, err := hex.DecodeString(contentHash)
	require.NoError(t, err)
	assert.Equal(t, expected, sent.Data())
	assert.Equal(t, int64(0), sent.Value().Int64())
	require.NotNil(t, sent.To())
	assert.Equal(t, from, *sent.To())
	assert.Equal(t, uint64(7), sent.Nonce())
	assert.Equal(t, uint64(60_000), sent.Gas())

	sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(11155111)), sent)
	require.NoError(t, err)
	assert.Equal(t, from, sender)
}

func TestAnchorRejectsNonHexHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockEthBackend(ctrl)
	client, err := NewClientWithBackend(Config{
		ChainName:     "eip155:1",
		PrivateKeyHex: testPrivateKey,
	}, backend)
	require.NoError(t, err)

	_, err = client.Anchor(context.Background(), "not-hex!")
	assert.ErrorContains(t, err, "not hex")
}

func TestNewClientWithBackendRejectsBadKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := NewClientWithBackend(Config{PrivateKeyHex: "zz"}, mocks.NewMockEthBackend(ctrl))
	assert.Error(t, err)
}

func TestNewClientWithBackendDefaultsGasLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, err := NewClientWithBackend(Config{PrivateKeyHex: testPrivateKey}, mocks.NewMockEthBackend(ctrl))
	require.NoError(t, err)
	assert.Equal(t, uint64(50_000), client.gasLimit)
}

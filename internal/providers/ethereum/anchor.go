package ethereum

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/origin-platform/rights-ledger/internal/adapter"
	"github.com/origin-platform/rights-ledger/internal/domain"
)

// Backend is the subset of the Ethereum client the anchor needs
//
//go:generate mockgen -source=anchor.go -destination=../../mocks/eth_backend.go -package=mocks -mock_names=Backend=MockEthBackend
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// Config holds the anchor client configuration
type Config struct {
	// RPCURL is the Ethereum JSON-RPC endpoint
	RPCURL string
	// ChainName is the human-readable chain identifier written into anchors
	ChainName string
	// PrivateKeyHex is the hex-encoded key of the anchoring account
	PrivateKeyHex string
	// GasLimit for the anchor transaction; a plain data-carrying transfer
	GasLimit uint64
}

// Client anchors content hashes to an Ethereum-compatible chain by sending a
// zero-value self-transaction carrying the hash in the calldata. The
// transaction hash becomes the tamper-evident anchor reference.
type Client struct {
	backend   Backend
	chainName string
	key       *ecdsa.PrivateKey
	from      common.Address
	gasLimit  uint64
}

// NewClient dials the RPC endpoint and builds an anchor client
func NewClient(cfg Config) (*Client, error) {
	eth, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial ethereum rpc: %w", err)
	}
	return NewClientWithBackend(cfg, eth)
}

// NewClientWithBackend builds an anchor client over an existing backend
func NewClientWithBackend(cfg Config, backend Backend) (*Client, error) {
	key, err := crypto.HexToECDSA(cfg.PrivateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to parse anchor key: %w", err)
	}

	gasLimit := cfg.GasLimit
	if gasLimit == 0 {
		gasLimit = 50_000
	}

	return &Client{
		backend:   backend,
		chainName: cfg.ChainName,
		key:       key,
		from:      crypto.PubkeyToAddress(key.PublicKey),
		gasLimit:  gasLimit,
	}, nil
}

var _ adapter.AnchorClient = (*Client)(nil)

// Anchor records the content hash on chain and returns the anchor reference
func (c *Client) Anchor(ctx context.Context, contentHash string) (*domain.AnchorRef, error) {
	payload, err := hex.DecodeString(contentHash)
	if err != nil {
		return nil, fmt.Errorf("content hash is not hex: %w", err)
	}

	chainID, err := c.backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}

	nonce, err := c.backend.PendingNonceAt(ctx, c.from)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gas price: %w", err)
	}

	tx := types.NewTransaction(nonce, c.from, big.NewInt(0), c.gasLimit, gasPrice, payload)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign anchor transaction: %w", err)
	}

	if err := c.backend.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("failed to send anchor transaction: %w", err)
	}

	return &domain.AnchorRef{
		ChainName: c.chainName,
		TxHash:    signed.Hash().Hex(),
	}, nil
}

package evm

import (
	"context"
	"encoding/hex"
	stderrors "errors"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/venmorph/attestor-svc/internal/config"
	"github.com/venmorph/attestor-svc/internal/data"
	"github.com/venmorph/attestor-svc/internal/gobind"
	"gitlab.com/distributed_lab/logan/v3"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

var (
	ErrRequestNotFound  = errors.New("request not found")
	ErrSubmissionFailed = errors.New("attestation submission failed")
)

// Client reads and writes Venmorph contract state. SubmitAttestation blocks
// until the transaction is mined; at-most-once submission is the caller's
// responsibility.
type Client struct {
	venmorph   *gobind.Venmorph
	eth        *ethclient.Client
	transactor *bind.TransactOpts
	timeout    time.Duration
}

func NewClient(cfg config.EVM) *Client {
	return &Client{
		venmorph:   cfg.Venmorph,
		eth:        cfg.Client,
		transactor: cfg.Transactor,
		timeout:    cfg.RequestTimeout,
	}
}

func (c *Client) TotalRequests(ctx context.Context) (uint64, error) {
	child, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	n, err := c.venmorph.GetTotalRequests(&bind.CallOpts{Context: child})
	if err != nil {
		return 0, errors.Wrap(err, "failed to get total requests")
	}
	if !n.IsUint64() {
		return 0, errors.New("total request count out of range")
	}

	return n.Uint64(), nil
}

func (c *Client) Request(ctx context.Context, id uint64) (data.Request, error) {
	child, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	r, err := c.venmorph.GetRequests(&bind.CallOpts{Context: child}, new(big.Int).SetUint64(id))
	if err != nil {
		if isRevert(err) {
			return data.Request{}, ErrRequestNotFound
		}
		return data.Request{}, errors.Wrap(err, "failed to get request from contract")
	}

	req := data.Request{
		ID:          r.Id.Uint64(),
		Creator:     r.Creator,
		XRPLAddress: r.XrplAddress,
		AssetSymbol: r.AssetSymbol,
		AssetAmount: r.AssetAmount,
		Expiry:      time.Unix(r.Expiry.Int64(), 0).UTC(),
		SlippageBps: r.SlippageBps,
		Status:      data.RequestStatus(r.Status),
	}
	if req.Status == data.StatusPaid {
		req.PaidTxHash = strings.ToUpper(hex.EncodeToString(r.PaidTxHash[:]))
		req.PaidAmount = r.PaidAmount
		req.PaidAt = time.Unix(r.PaidAt.Int64(), 0).UTC()
	}

	return req, nil
}

// SubmitAttestation sends submitPaymentAttestation and waits for the receipt.
// The contract rejects non-PENDING requests, which is only a weak duplicate
// guard; the submitter keeps its own set.
func (c *Client) SubmitAttestation(ctx context.Context, id uint64, xrplTxHash string, amountDrops *big.Int, paidAt time.Time) (common.Hash, error) {
	hash, err := decodeTxHash(xrplTxHash)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "invalid xrpl transaction hash")
	}

	opts := *c.transactor
	opts.Context = ctx

	tx, err := c.venmorph.SubmitPaymentAttestation(
		&opts,
		new(big.Int).SetUint64(id),
		hash,
		amountDrops,
		big.NewInt(paidAt.Unix()),
	)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to send attestation transaction")
	}

	receipt, err := bind.WaitMined(ctx, c.eth, tx)
	if err != nil {
		return common.Hash{}, errors.Wrap(err, "failed to wait for attestation inclusion", logan.F{"tx": tx.Hash().Hex()})
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return common.Hash{}, errors.From(ErrSubmissionFailed, logan.F{"tx": tx.Hash().Hex()})
	}

	return tx.Hash(), nil
}

func decodeTxHash(s string) ([32]byte, error) {
	var out [32]byte
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return out, err
	}
	if len(b) != len(out) {
		return out, errors.Errorf("expected 32 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}

// revertErrorCode is the JSON-RPC error code geth assigns to reverted
// eth_call executions.
const revertErrorCode = 3

func isRevert(err error) bool {
	var rpcErr rpc.Error
	if stderrors.As(err, &rpcErr) && rpcErr.ErrorCode() == revertErrorCode {
		return true
	}
	// Some nodes report reverts under a generic code but still attach the
	// revert data.
	var dataErr rpc.DataError
	return stderrors.As(err, &dataErr) && dataErr.ErrorData() != nil
}

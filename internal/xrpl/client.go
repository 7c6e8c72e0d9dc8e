package xrpl

import (
	"context"
	"encoding/json"
	"math/big"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"gitlab.com/distributed_lab/logan/v3"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

// ErrLedgerNotFound is returned when the requested ledger index is not present
// on the server, typically because it exceeds the validated ledger.
var ErrLedgerNotFound = errors.New("ledger not found")

// Client speaks the rippled WebSocket API. A mutex serializes the
// request/response exchange; the connection is redialed lazily after a
// transport failure.
type Client struct {
	endpoint string
	timeout  time.Duration
	log      *logan.Entry

	mu     sync.Mutex
	conn   *websocket.Conn
	nextID uint64
}

func NewClient(endpoint string, timeout time.Duration, log *logan.Entry) *Client {
	return &Client{
		endpoint: endpoint,
		timeout:  timeout,
		log:      log.WithField("endpoint", endpoint),
	}
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

// ValidatedLedgerIndex returns the sequence number of the most recently
// validated ledger.
func (c *Client) ValidatedLedgerIndex(ctx context.Context) (uint32, error) {
	var result struct {
		Info struct {
			ValidatedLedger struct {
				Seq uint32 `json:"seq"`
			} `json:"validated_ledger"`
		} `json:"info"`
	}

	err := c.command(ctx, map[string]interface{}{"command": "server_info"}, &result)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get server_info")
	}
	if result.Info.ValidatedLedger.Seq == 0 {
		return 0, errors.New("server reported no validated ledger")
	}

	return result.Info.ValidatedLedger.Seq, nil
}

// Ledger fetches the transaction list of a validated ledger by index. Only XRP
// payments survive the parse; partial-payment deliveries are read from the
// transaction metadata.
func (c *Client) Ledger(ctx context.Context, index uint32) (Ledger, error) {
	var result struct {
		Ledger struct {
			CloseTime    int64             `json:"close_time"`
			Transactions []json.RawMessage `json:"transactions"`
		} `json:"ledger"`
		Validated bool `json:"validated"`
	}

	req := map[string]interface{}{
		"command":      "ledger",
		"ledger_index": index,
		"transactions": true,
		"expand":       true,
	}
	if err := c.command(ctx, req, &result); err != nil {
		return Ledger{}, errors.Wrap(err, "failed to get ledger", logan.F{"ledger_index": index})
	}
	if !result.Validated {
		return Ledger{}, ErrLedgerNotFound
	}

	ledger := Ledger{
		Index:     index,
		CloseTime: time.Unix(result.Ledger.CloseTime+rippleEpoch, 0).UTC(),
	}
	for _, raw := range result.Ledger.Transactions {
		p, ok, err := parsePayment(raw, index)
		if err != nil {
			c.log.WithError(err).WithField("ledger_index", index).Warn("skipping unparsable transaction")
			continue
		}
		if ok {
			ledger.Payments = append(ledger.Payments, p)
		}
	}

	return ledger, nil
}

func parsePayment(raw json.RawMessage, index uint32) (Payment, bool, error) {
	var tx struct {
		Hash            string          `json:"hash"`
		TransactionType string          `json:"TransactionType"`
		Account         string          `json:"Account"`
		Destination     string          `json:"Destination"`
		DestinationTag  *uint32         `json:"DestinationTag"`
		Amount          json.RawMessage `json:"Amount"`
		Meta            struct {
			TransactionResult string          `json:"TransactionResult"`
			DeliveredAmount   json.RawMessage `json:"delivered_amount"`
		} `json:"metaData"`
	}
	if err := json.Unmarshal(raw, &tx); err != nil {
		return Payment{}, false, errors.Wrap(err, "failed to unmarshal transaction")
	}

	if tx.TransactionType != "Payment" {
		return Payment{}, false, nil
	}
	if tx.Meta.TransactionResult != "" && tx.Meta.TransactionResult != "tesSUCCESS" {
		return Payment{}, false, nil
	}

	amount := tx.Meta.DeliveredAmount
	if amount == nil {
		amount = tx.Amount
	}
	drops, ok := dropsAmount(amount)
	if !ok {
		// IOU payment, not an XRP settlement
		return Payment{}, false, nil
	}

	return Payment{
		Hash:           tx.Hash,
		Account:        tx.Account,
		Destination:    tx.Destination,
		DestinationTag: tx.DestinationTag,
		AmountDrops:    drops,
		LedgerIndex:    index,
	}, true, nil
}

// dropsAmount decodes an XRPL amount field. XRP amounts are JSON strings of
// drops; issued-currency amounts are objects and yield ok=false.
func dropsAmount(raw json.RawMessage) (*big.Int, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	drops, ok := new(big.Int).SetString(s, 10)
	if !ok || drops.Sign() < 0 {
		return nil, false
	}
	return drops, true
}

func (c *Client) command(ctx context.Context, req map[string]interface{}, result interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.dialLocked(ctx); err != nil {
		return errors.Wrap(err, "failed to dial xrpl node")
	}

	c.nextID++
	id := c.nextID
	req["id"] = id

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	_ = c.conn.SetWriteDeadline(deadline)
	if err := c.conn.WriteJSON(req); err != nil {
		c.resetLocked()
		return errors.Wrap(err, "failed to write command")
	}

	type response struct {
		ID           uint64          `json:"id"`
		Status       string          `json:"status"`
		Error        string          `json:"error"`
		ErrorMessage string          `json:"error_message"`
		Result       json.RawMessage `json:"result"`
	}
	var resp response
	for {
		resp = response{}
		_ = c.conn.SetReadDeadline(deadline)
		if err := c.conn.ReadJSON(&resp); err != nil {
			c.resetLocked()
			return errors.Wrap(err, "failed to read response")
		}
		// rippled may interleave stream messages with responses
		if resp.ID == id {
			break
		}
	}

	if resp.Status != "success" {
		if resp.Error == "lgrNotFound" {
			return ErrLedgerNotFound
		}
		return errors.Errorf("command failed: %s (%s)", resp.Error, resp.ErrorMessage)
	}

	if result == nil {
		return nil
	}
	err := json.Unmarshal(resp.Result, result)
	return errors.Wrap(err, "failed to unmarshal result")
}

func (c *Client) dialLocked(ctx context.Context) error {
	if c.conn != nil {
		return nil
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.endpoint, nil)
	if err != nil {
		return err
	}
	c.conn = conn
	c.log.Debug("connected to xrpl node")
	return nil
}

func (c *Client) resetLocked() {
	if c.conn == nil {
		return
	}
	_ = c.conn.Close()
	c.conn = nil
}

package data

// LastLedger stores the XRPL polling watermark: the highest ledger index that
// was fully evaluated.
type LastLedger interface {
	Set(uint32) error
	Get() (*uint32, error)
}

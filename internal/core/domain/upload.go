package domain

// Tab is the UI section a file is uploaded from.
type Tab string

const (
	TabInvoice    Tab = "invoice"
	TabLedger     Tab = "ledger"
	TabCreditCard Tab = "credit_card"
)

// ParseTab validates a tab hint. The empty string means no hint.
func ParseTab(s string) (Tab, bool) {
	switch t := Tab(s); t {
	case "", TabInvoice, TabLedger, TabCreditCard:
		return t, true
	}
	return "", false
}

// UploadStatus is the outcome reported for an upload.
type UploadStatus string

const (
	UploadSuccess UploadStatus = "success"
	UploadError   UploadStatus = "error"
)

// UploadResult reports what an upload did.
type UploadResult struct {
	Status  UploadStatus `json:"status"`
	Message string       `json:"message"`
	Saved   int          `json:"saved"`
}

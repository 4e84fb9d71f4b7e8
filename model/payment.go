package model

// Payment is one partial or full settlement against an order. The ledger is
// append-only; the payments of an order sum to its AmountPaid.
type Payment struct {
	DTO
	OrderId      uint    `gorm:"not null;index" json:"orderId"`
	Amount       float64 `gorm:"not null" validate:"required,gt=0" json:"amount"`
	Method       string  `gorm:"not null" json:"method"`
	RecordedById uint    `gorm:"not null" json:"recordedById"`
	RecordedBy   *User   `gorm:"foreignKey:RecordedById" json:"recordedBy,omitempty"`
	ReceiptCode  string  `gorm:"uniqueIndex;size:40" json:"receiptCode"`
}

type Payments []Payment

type CreatePaymentInput struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Method string  `json:"method" validate:"required,oneof=cash pix debit credit"`
}

type PixQRInput struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

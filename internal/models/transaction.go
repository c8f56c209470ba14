package models

// TransactionType represents the kind of financial movement.
type TransactionType string

const (
	TransactionTypeDeposit TransactionType = "deposit"
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeDebt    TransactionType = "debt"
)

// TransactionStatus represents the settlement state of a transaction.
type TransactionStatus string

const (
	TransactionStatusPaid    TransactionStatus = "paid"
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusOverdue TransactionStatus = "overdue"
)

// Transaction represents a financial transaction in the project ledger.
// Amounts are always stored positive; the sign is implied by Type.
// Transactions are immutable once created.
//
// Date is an opaque zero-padded YYYY/MM/DD string. Range filtering relies
// on lexical ordering of this format.
type Transaction struct {
	Base
	ProjectID   string            `gorm:"type:uuid;not null;index" json:"project_id"`
	Date        string            `gorm:"not null" json:"date"`
	Amount      int64             `gorm:"type:bigint;not null" json:"amount"`
	Type        TransactionType   `gorm:"not null" json:"type"`
	Description string            `gorm:"not null" json:"description"`
	Status      TransactionStatus `gorm:"not null" json:"status"`
	PartnerID   *string           `gorm:"type:uuid" json:"partner_id,omitempty"`

	// Relationships
	Partner *Partner `gorm:"foreignKey:PartnerID" json:"partner,omitempty"`
}

package models

import "time"

// Expense represents a single income or expense record.
// Amounts are stored in cents to avoid float drift, e.g. 12.34 = 1234.
// OccurredAt is supplied by the caller and is the axis for every
// monthly/yearly aggregation; CreatedAt/UpdatedAt are row bookkeeping only.
type Expense struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"`
	Type        string    `gorm:"size:16;index;not null"` // income / expense
	Category    string    `gorm:"size:64;not null"`
	AmountCents int64     `gorm:"not null"`
	OccurredAt  time.Time `gorm:"index;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

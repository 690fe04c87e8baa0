package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidAmount indicates that the transaction amount is not a valid number.
	ErrInvalidAmount = errors.New("Amount must be a positive number.")
	// ErrNonPositiveAmount indicates that the transaction amount is zero or negative.
	ErrNonPositiveAmount = errors.New("Amount must be a positive number.")
	// ErrSelfTransaction indicates that the creditor and the debtor are the same user.
	ErrSelfTransaction = errors.New("A user cannot owe money to themselves.")
	// ErrTransactionUserNotFound indicates that the creditor or the debtor does not exist.
	ErrTransactionUserNotFound = errors.New("One of the users does not exist.")
)

// Transaction holds a single transactions row with the creditor and debtor
// names resolved.
type Transaction struct {
	ID           int32     `json:"id"`
	CreditorName string    `json:"creditor"`
	DebtorName   string    `json:"debtor"`
	Amount       string    `json:"amount"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// CreateTransactionParams is the input data to record a transaction.
type CreateTransactionParams struct {
	CreditorID int32  `json:"creditor_id"`
	DebtorID   int32  `json:"debtor_id"`
	Amount     string `json:"amount"`
}

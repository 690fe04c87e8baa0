package domain

import (
	"errors"
	"time"
)

var (
	// ErrUserAlreadyExists indicates that a user with the given name already exists.
	ErrUserAlreadyExists = errors.New("User already exists.")
	// ErrUserNotFound indicates that the user is not found.
	ErrUserNotFound = errors.New("User not found.")
)

// User holds a single users row.
type User struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// UserView is the JSON projection of a user's obligations used in all API
// responses. Sum is the total owed to the user minus the total owed by them.
// OwesTo and OwedBy hold per-counterparty totals summed across all
// transactions with that counterparty.
type UserView struct {
	Name   string             `json:"name"`
	OwesTo map[string]float64 `json:"owes_to"`
	OwedBy map[string]float64 `json:"owed_by"`
	Sum    float64            `json:"sum"`
}

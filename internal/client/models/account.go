package models

import "time"

// Account is a bank account owned by the current user.
type Account struct {
	ID            int64     `json:"id"`
	AccountName   string    `json:"accountName"`
	AccountNumber string    `json:"accountNumber"`
	Type          string    `json:"type"`
	Balance       float64   `json:"balance"`
	Status        string    `json:"status"`
	OpenDate      time.Time `json:"openDate"`
}

// Account types and statuses reported by the API.
const (
	AccountSavings  = "SAVINGS"
	AccountChecking = "CHECKING"

	AccountActive = "ACTIVE"
	AccountClosed = "CLOSED"
	AccountFrozen = "FROZEN"
)

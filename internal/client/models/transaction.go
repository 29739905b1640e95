package models

import "time"

// TransactionType enumerates the kinds of ledger movements the API reports.
type TransactionType string

const (
	TypeDeposit  TransactionType = "DEPOSIT"
	TypeWithdraw TransactionType = "WITHDRAW"
	TypeTransfer TransactionType = "TRANSFER"
	TypePayment  TransactionType = "PAYMENT"
)

// TransactionStatus enumerates the processing states of a transaction.
type TransactionStatus string

const (
	StatusSuccess   TransactionStatus = "SUCCESS"
	StatusPending   TransactionStatus = "PENDING"
	StatusFailed    TransactionStatus = "FAILED"
	StatusCancelled TransactionStatus = "CANCELLED"
)

// Transaction is a single entry of the transaction history.
type Transaction struct {
	ID                  int64             `json:"id"`
	Type                TransactionType   `json:"type"`
	Amount              float64           `json:"amount"`
	AfterBalance        float64           `json:"afterBalance"`
	Status              TransactionStatus `json:"status"`
	TransactionTime     time.Time         `json:"transactionTime"`
	CounterpartyName    string            `json:"counterpartyName,omitempty"`
	CounterpartyAccount string            `json:"counterpartyAccount,omitempty"`
	AccountNumber       string            `json:"accountNumber"`
	Description         string            `json:"description,omitempty"`
}

// Inbound reports whether the movement increased the account balance.
func (t *Transaction) Inbound() bool {
	return t.Type == TypeDeposit
}

// TransferOrder is the outgoing body of transactions/transfer.
type TransferOrder struct {
	FromAccountID   int64   `json:"fromAccountId"`
	ToAccountNumber string  `json:"toAccountNumber"`
	ToAccountName   string  `json:"toAccountName"`
	Amount          float64 `json:"amount"`
	Description     string  `json:"description,omitempty"`
	TransferType    string  `json:"transferType"`
}

// Transfer routing kinds accepted by the API.
const (
	TransferInternal = "INTERNAL"
	TransferExternal = "EXTERNAL"
)

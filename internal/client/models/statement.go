package models

// MonthlyStatement aggregates one calendar month of account activity.
type MonthlyStatement struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	OpeningBal   float64 `json:"openingBalance"`
	ClosingBal   float64 `json:"closingBalance"`
	Transactions int     `json:"transactionCount"`
}

// StatementFile is the server's answer to a statements/generate-pdf request:
// the rendered document is stored server-side and handed back as a URL.
type StatementFile struct {
	URL       string `json:"url"`
	ExpiresIn int64  `json:"expiresIn,omitempty"`
}

package models

// CreditCard is a credit card issued to the current user.
type CreditCard struct {
	ID          int64   `json:"id"`
	CardNumber  string  `json:"cardNumber"`
	CreditLimit float64 `json:"creditLimit"`
	UsedCredit  float64 `json:"usedCredit"`
	Status      string  `json:"status"`
}

// Available returns the remaining spendable credit.
func (c *CreditCard) Available() float64 {
	return c.CreditLimit - c.UsedCredit
}

// CardApplication is the outgoing body of credit-cards/apply.
type CardApplication struct {
	RequestedLimit float64 `json:"requestedLimit"`
	MonthlyIncome  float64 `json:"monthlyIncome"`
	Employer       string  `json:"employer,omitempty"`
}

package dto

// TransactionResponse is one executed order in the account's audit trail
type TransactionResponse struct {
	ID         uint64 `json:"id"`
	Symbol     string `json:"symbol"`
	Side       string `json:"side"`
	Quantity   int64  `json:"quantity"`
	UnitPrice  string `json:"unitPrice"`
	Total      string `json:"total"`
	ExecutedAt string `json:"executedAt"`
}

// TransactionListResponse represents the API response for a transaction history
type TransactionListResponse struct {
	AccountID    uint64                `json:"accountId"`
	Transactions []TransactionResponse `json:"transactions"`
}

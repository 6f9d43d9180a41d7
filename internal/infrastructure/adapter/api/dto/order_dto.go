package dto

// OrderRequest represents the API request for placing an order. Quantity is
// a string so that fractional or malformed values reach domain validation
// instead of failing JSON binding with an opaque message.
type OrderRequest struct {
	Side     string `json:"side" binding:"required,oneof=buy sell"`
	Symbol   string `json:"symbol" binding:"required"`
	Quantity string `json:"quantity" binding:"required"`
}

// OrderResponse represents the API response for an executed order
type OrderResponse struct {
	AccountID   uint64 `json:"accountId"`
	Symbol      string `json:"symbol"`
	Side        string `json:"side"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	CashBalance string `json:"cashBalance"`
	Success     bool   `json:"success"`
}

package dto

// QuoteResponse represents the API response for a symbol quote
type QuoteResponse struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Price  string `json:"price"`
}

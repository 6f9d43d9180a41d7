package dto

// PortfolioLineResponse is one position row in a portfolio response
type PortfolioLineResponse struct {
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	Price     string `json:"price"`
	LineTotal string `json:"lineTotal"`
}

// PortfolioResponse represents the API response for a portfolio valuation
type PortfolioResponse struct {
	AccountID  uint64                  `json:"accountId"`
	Cash       string                  `json:"cash"`
	Holdings   []PortfolioLineResponse `json:"holdings"`
	GrandTotal string                  `json:"grandTotal"`
	Refreshed  bool                    `json:"refreshed"`
}

package entity

// PortfolioLine is one valued position in a portfolio view
type PortfolioLine struct {
	Symbol    string `json:"symbol"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	Price     string `json:"price"`     // Current unit price, 2 decimal places
	LineTotal string `json:"lineTotal"` // Quantity * Price, 2 decimal places
}

// PortfolioView is the derived valuation of an account: every holding priced
// at current quotes plus the cash balance. It is computed, never stored.
type PortfolioView struct {
	AccountID  uint64          `json:"accountId"`
	Cash       string          `json:"cash"`
	Lines      []PortfolioLine `json:"holdings"`
	GrandTotal string          `json:"grandTotal"`
}

// NewPortfolioLine values a holding at the given current price
func NewPortfolioLine(holding *Holding, priceInCents int64) (PortfolioLine, error) {
	total, err := MultiplyPrice(priceInCents, holding.Quantity)
	if err != nil {
		return PortfolioLine{}, err
	}

	return PortfolioLine{
		Symbol:    holding.Symbol,
		Name:      holding.Name,
		Quantity:  holding.Quantity,
		Price:     CentsToString(priceInCents),
		LineTotal: CentsToString(total),
	}, nil
}

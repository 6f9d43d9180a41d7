package entity

// Quote is a point-in-time price and display name for a symbol, as returned
// by the external market data provider. It is consumed, never stored.
type Quote struct {
	Symbol string // Ticker symbol, upper case
	Name   string // Company display name
	Price  int64  // Current price per share in cents
}

// GetPrice returns the quoted price as a string with 2 decimal places
func (q *Quote) GetPrice() string {
	return CentsToString(q.Price)
}

package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidOrder       = 4001
	CodeUnknownSymbol      = 4002
	CodeInsufficientFunds  = 4003
	CodeInsufficientShares = 4004
	CodeInvalidAmount      = 4005
	CodeAmountOverflow     = 4006
	CodeInvalidAccountID   = 4007
	CodeAccountNotFound    = 4040

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeQuoteUnavailable = 5020
)

// Base error types
var (
	// ErrInvalidOrder is returned when the order quantity is missing, zero,
	// negative, or not an integer
	ErrInvalidOrder = errors.New("order quantity must be a positive integer")

	// ErrUnknownSymbol is returned when the quote gateway cannot resolve the symbol
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrInsufficientFunds is returned when a buy would cost more than the available cash
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientShares is returned when a sell exceeds or would zero out the held quantity
	ErrInsufficientShares = errors.New("insufficient shares")

	// ErrQuoteUnavailable is returned when the quote gateway fails transiently
	ErrQuoteUnavailable = errors.New("quote service unavailable")

	// ErrInvalidSymbol is returned when the symbol is empty or malformed
	ErrInvalidSymbol = errors.New("symbol cannot be empty")

	// ErrInvalidAmount is returned when a money amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a money amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrAmountOverflow is returned when an order value would overflow the cent range
	ErrAmountOverflow = errors.New("amount is too large and would cause overflow")

	// ErrInvalidAccountID is returned when the account ID is not a positive integer
	ErrInvalidAccountID = errors.New("account ID must be positive")

	// ErrAccountNotFound is returned when the requested account doesn't exist
	ErrAccountNotFound = errors.New("account not found")

	// ErrHoldingNotFound is returned when no position exists for the (account, symbol) pair
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrTransactionNotFound is returned when the requested ledger entry doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrDuplicateAccount is returned when trying to create an account that already exists
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrDuplicateHolding is returned when opening a position that already exists
	ErrDuplicateHolding = errors.New("holding already exists")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidOrder):
		return CodeInvalidOrder
	case errors.Is(err, ErrUnknownSymbol), errors.Is(err, ErrInvalidSymbol):
		return CodeUnknownSymbol
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInsufficientShares):
		return CodeInsufficientShares
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrAmountOverflow):
		return CodeAmountOverflow
	case errors.Is(err, ErrInvalidAccountID):
		return CodeInvalidAccountID
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrQuoteUnavailable):
		return CodeQuoteUnavailable
	default:
		return CodeInternalServer
	}
}

// OrderError represents an error while executing a buy or sell order
type OrderError struct {
	AccountID uint64
	Symbol    string
	Side      string
	Quantity  int64
	Reason    string
	Err       error
}

// Error implements the error interface for OrderError
func (e *OrderError) Error() string {
	return fmt.Sprintf("order failed for account %d (%s %d %s): %s - %v",
		e.AccountID, e.Side, e.Quantity, e.Symbol, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *OrderError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *OrderError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "order_error",
		"account_id": e.AccountID,
		"symbol":     e.Symbol,
		"side":       e.Side,
		"quantity":   e.Quantity,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewOrderError creates a detailed order error
func NewOrderError(accountID uint64, symbol, side string, quantity int64, reason string, err error) error {
	return &OrderError{
		AccountID: accountID,
		Symbol:    symbol,
		Side:      side,
		Quantity:  quantity,
		Reason:    reason,
		Err:       err,
	}
}

// InsufficientFundsError provides detailed error information for a rejected buy
type InsufficientFundsError struct {
	AccountID uint64
	Cost      string
	Cash      string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for account %d: required %s, available %s",
		e.AccountID, e.Cost, e.Cash)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"account_id": e.AccountID,
		"cost":       e.Cost,
		"cash":       e.Cash,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(accountID uint64, cost, cash string) error {
	return &InsufficientFundsError{
		AccountID: accountID,
		Cost:      cost,
		Cash:      cash,
	}
}

// InsufficientSharesError provides detailed error information for a rejected sell
type InsufficientSharesError struct {
	AccountID uint64
	Symbol    string
	Requested int64
	Held      int64
}

// Error implements the error interface
func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf("insufficient shares of %s for account %d: requested %d, held %d",
		e.Symbol, e.AccountID, e.Requested, e.Held)
}

// Is checks if the target error is an ErrInsufficientShares
func (e *InsufficientSharesError) Is(target error) bool {
	return target == ErrInsufficientShares
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientSharesError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_shares",
		"account_id": e.AccountID,
		"symbol":     e.Symbol,
		"requested":  e.Requested,
		"held":       e.Held,
		"error_code": CodeInsufficientShares,
	}
}

// NewInsufficientSharesError creates a new detailed insufficient shares error
func NewInsufficientSharesError(accountID uint64, symbol string, requested, held int64) error {
	return &InsufficientSharesError{
		AccountID: accountID,
		Symbol:    symbol,
		Requested: requested,
		Held:      held,
	}
}

// QuoteError wraps a failed quote gateway lookup with its symbol
type QuoteError struct {
	Symbol string
	Err    error
}

// Error implements the error interface
func (e *QuoteError) Error() string {
	return fmt.Sprintf("quote lookup failed for %s: %v", e.Symbol, e.Err)
}

// Unwrap returns the underlying error
func (e *QuoteError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *QuoteError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "quote_error",
		"symbol":     e.Symbol,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewQuoteError creates a new quote error for the given symbol
func NewQuoteError(symbol string, err error) error {
	return &QuoteError{Symbol: symbol, Err: err}
}

// IsInvalidOrderError checks if the error is an invalid order error
func IsInvalidOrderError(err error) bool {
	return errors.Is(err, ErrInvalidOrder)
}

// IsUnknownSymbolError checks if the error is an unknown symbol error
func IsUnknownSymbolError(err error) bool {
	return errors.Is(err, ErrUnknownSymbol)
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsInsufficientSharesError checks if the error is related to insufficient shares
func IsInsufficientSharesError(err error) bool {
	return errors.Is(err, ErrInsufficientShares)
}

// IsQuoteUnavailableError checks if the error is a transient quote gateway failure
func IsQuoteUnavailableError(err error) bool {
	return errors.Is(err, ErrQuoteUnavailable)
}

// IsAccountNotFoundError checks if the error is an account not found error
func IsAccountNotFoundError(err error) bool {
	return errors.Is(err, ErrAccountNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrHoldingNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}

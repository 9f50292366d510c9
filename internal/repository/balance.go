package repository

import "github.com/shopspring/decimal"

// BalanceRepository holds the single account balance. Implementations do not
// validate: callers write only values that have already passed the operation
// rules.
type BalanceRepository interface {
	Read() decimal.Decimal
	Write(balance decimal.Decimal)
}

package repository

import "github.com/shopspring/decimal"

// MemoryRepository keeps the balance for the lifetime of the process. It is
// owned by a single caller and is not safe for concurrent use.
type MemoryRepository struct {
	balance decimal.Decimal
}

func NewMemoryRepository(initial decimal.Decimal) *MemoryRepository {
	return &MemoryRepository{balance: initial}
}

func (r *MemoryRepository) Read() decimal.Decimal {
	return r.balance
}

func (r *MemoryRepository) Write(balance decimal.Decimal) {
	r.balance = balance
}

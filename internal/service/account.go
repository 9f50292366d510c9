package service

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"AccountSystem/internal/model"
	"AccountSystem/internal/repository"
)

// AccountService applies view, credit and debit operations to a balance store
type AccountService interface {
	Apply(op model.Operation) (decimal.Decimal, error)
	View() decimal.Decimal
	Credit(amount decimal.Decimal) (decimal.Decimal, error)
	Debit(amount decimal.Decimal) (decimal.Decimal, error)
}

type accountService struct {
	repo   repository.BalanceRepository
	logger *zap.Logger
}

// NewAccountService creates a new implementation of AccountService. A nil
// logger discards all output.
func NewAccountService(repo repository.BalanceRepository, logger *zap.Logger) AccountService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &accountService{
		repo:   repo,
		logger: logger,
	}
}

func (s *accountService) Apply(op model.Operation) (decimal.Decimal, error) {
	switch op.Type {
	case model.View:
		return s.View(), nil
	case model.Credit:
		return s.Credit(op.Amount)
	case model.Debit:
		return s.Debit(op.Amount)
	default:
		s.logger.Warn("operation rejected",
			zap.String("operation", string(op.Type)),
			zap.Error(model.ErrInvalidOperation))
		return s.repo.Read(), model.ErrInvalidOperation
	}
}

func (s *accountService) View() decimal.Decimal {
	balance := s.repo.Read()
	s.logger.Debug("balance viewed", zap.Stringer("balance", balance))
	return balance
}

func (s *accountService) Credit(amount decimal.Decimal) (decimal.Decimal, error) {
	balance := s.repo.Read()

	amount, err := s.checkAmount(model.Credit, amount)
	if err != nil {
		return balance, err
	}

	balance = balance.Add(amount)
	s.repo.Write(balance)
	s.applied(model.Credit, amount, balance)

	return balance, nil
}

func (s *accountService) Debit(amount decimal.Decimal) (decimal.Decimal, error) {
	balance := s.repo.Read()

	amount, err := s.checkAmount(model.Debit, amount)
	if err != nil {
		return balance, err
	}
	if amount.GreaterThan(balance) {
		return balance, s.reject(model.Debit, amount.String(), model.ErrInsufficientFunds)
	}

	balance = balance.Sub(amount)
	s.repo.Write(balance)
	s.applied(model.Debit, amount, balance)

	return balance, nil
}

// checkAmount refuses out-of-range and negative amounts, checking the sign
// before rounding so that -0.004 is still negative, and returns the amount
// rounded to cents.
func (s *accountService) checkAmount(op model.OperationType, amount decimal.Decimal) (decimal.Decimal, error) {
	if !model.InRange(amount) {
		return amount, s.reject(op, "out of range", model.ErrInvalidAmount)
	}
	if amount.IsNegative() {
		return amount, s.reject(op, amount.String(), model.ErrInvalidAmount)
	}

	return amount.Round(model.Places), nil
}

func (s *accountService) applied(op model.OperationType, amount, balance decimal.Decimal) {
	s.logger.Info("operation applied",
		zap.String("operation", string(op)),
		zap.String("amount", model.FormatBalance(amount)),
		zap.String("balance", model.FormatBalance(balance)))
}

func (s *accountService) reject(op model.OperationType, amount string, err error) error {
	s.logger.Warn("operation rejected",
		zap.String("operation", string(op)),
		zap.String("amount", amount),
		zap.Error(err))
	return err
}

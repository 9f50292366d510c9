package handler

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"AccountSystem/internal/model"
)

const (
	menuRule  = "--------------------------------"
	menuTitle = "Account Management System"

	PromptChoice = "Enter your choice (1-4): "
	PromptCredit = "Enter credit amount: "
	PromptDebit  = "Enter debit amount: "

	MsgInvalidChoice     = "Invalid choice, please select 1-4."
	MsgInvalidNumber     = "Invalid amount, please enter a valid number."
	MsgInvalidAmount     = "Amount must be zero or positive."
	MsgInsufficientFunds = "Insufficient funds for this debit."
	MsgInvalidOperation  = "Invalid operation, expected view, credit or debit."
	MsgGoodbye           = "Exiting the program. Goodbye!"
)

var menuLines = []string{
	menuRule,
	menuTitle,
	"1. View Balance",
	"2. Credit Account",
	"3. Debit Account",
	"4. Exit",
	menuRule,
}

// ResultMessage renders the outcome of a successful operation.
func ResultMessage(op model.OperationType, balance decimal.Decimal) string {
	formatted := model.FormatBalance(balance)

	switch op {
	case model.Credit:
		return "Amount credited. New balance: " + formatted
	case model.Debit:
		return "Amount debited. New balance: " + formatted
	default:
		return "Current balance: " + formatted
	}
}

// ErrorMessage maps an operation or input error to the text shown to the user.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidAmount):
		return MsgInvalidAmount
	case errors.Is(err, model.ErrInsufficientFunds):
		return MsgInsufficientFunds
	case errors.Is(err, model.ErrInvalidNumber):
		return MsgInvalidNumber
	case errors.Is(err, model.ErrInvalidMenuChoice):
		return MsgInvalidChoice
	case errors.Is(err, model.ErrInvalidOperation):
		return MsgInvalidOperation
	default:
		return fmt.Sprintf("Operation failed: %v", err)
	}
}

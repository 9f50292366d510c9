package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AccountSystem/internal/model"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Integer", input: "250", expected: "250.00"},
		{name: "Two decimals", input: "999999.99", expected: "999999.99"},
		{name: "One cent", input: "0.01", expected: "0.01"},
		{name: "Surrounding whitespace", input: "  12.5 \n", expected: "12.50"},
		{name: "Negative kept", input: "-50", expected: "-50.00"},
		{name: "Formatted half up", input: "0.005", expected: "0.01"},
		{name: "Formatted down", input: "10.004", expected: "10.00"},
		{name: "Zero", input: "0", expected: "0.00"},
		{name: "Scientific notation", input: "2.5e2", expected: "250.00"},
		{name: "Largest whole part", input: "999999999999999.99", expected: "999999999999999.99"},
		{name: "Longest fraction", input: "0.000000000000000001", expected: "0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := model.ParseAmount(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, model.FormatBalance(amount))
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	inputs := []string{
		"", "   ", "abc", "12,50", "1.2.3", "NaN", "Inf", "$5", "--5", "1e", "0x10", "1_000",
		"1e999999999", "-1e999999999", "1e-999999999", "0e999999999",
		"1000000000000000", "1e15", "0.0000000000000000001",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := model.ParseAmount(input)
			assert.ErrorIs(t, err, model.ErrInvalidNumber)
		})
	}
}

func TestParseAmount_HugeExponentReturnsPromptly(t *testing.T) {
	done := make(chan error, 1)
	go func() {
		_, err := model.ParseAmount("1e999999999")
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, model.ErrInvalidNumber)
	case <-time.After(time.Second):
		t.Fatal("ParseAmount did not return for a huge exponent")
	}
}

func TestParseAmount_KeepsSubCentSign(t *testing.T) {
	amount, err := model.ParseAmount("-0.004")
	require.NoError(t, err)

	assert.True(t, amount.IsNegative())
	assert.True(t, amount.Equal(decimal.RequireFromString("-0.004")))
}

func TestInRange(t *testing.T) {
	assert.True(t, model.InRange(decimal.RequireFromString("999999999999999")))
	assert.True(t, model.InRange(decimal.RequireFromString("-999999999999999.99")))
	assert.True(t, model.InRange(decimal.Zero))
	assert.False(t, model.InRange(decimal.New(1, 15)))
	assert.False(t, model.InRange(decimal.New(1, 999999999)))
	assert.False(t, model.InRange(decimal.New(1, -19)))
}

func TestFormatBalance(t *testing.T) {
	assert.Equal(t, "1000.00", model.FormatBalance(model.DefaultInitialBalance))
	assert.Equal(t, "0.00", model.FormatBalance(decimal.Zero))
	assert.Equal(t, "1250.50", model.FormatBalance(decimal.RequireFromString("1250.5")))
}

func TestParseMenuChoice(t *testing.T) {
	testCases := []struct {
		input    string
		expected model.MenuChoice
	}{
		{"1", model.ChoiceView},
		{"2", model.ChoiceCredit},
		{" 3 ", model.ChoiceDebit},
		{"4\n", model.ChoiceExit},
	}

	for _, tc := range testCases {
		choice, err := model.ParseMenuChoice(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, choice)
	}
}

func TestParseMenuChoice_Invalid(t *testing.T) {
	for _, input := range []string{"0", "5", "-1", "", "abc", "1.5", "99999999999999999999"} {
		t.Run(input, func(t *testing.T) {
			_, err := model.ParseMenuChoice(input)
			assert.ErrorIs(t, err, model.ErrInvalidMenuChoice)
		})
	}
}

func TestParseOperationType(t *testing.T) {
	op, err := model.ParseOperationType("credit")
	require.NoError(t, err)
	assert.Equal(t, model.Credit, op)

	op, err = model.ParseOperationType(" DEBIT ")
	require.NoError(t, err)
	assert.Equal(t, model.Debit, op)

	_, err = model.ParseOperationType("transfer")
	assert.ErrorIs(t, err, model.ErrInvalidOperation)
}

package handler

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"AccountSystem/internal/model"
	"AccountSystem/internal/service"
)

// ConsoleHandler runs the interactive menu against an AccountService.
type ConsoleHandler struct {
	service service.AccountService
	in      *bufio.Scanner
	out     io.Writer
}

func NewConsoleHandler(service service.AccountService, in io.Reader, out io.Writer) *ConsoleHandler {
	return &ConsoleHandler{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run shows the menu until the user picks Exit or the input ends. Invalid
// input is reported and re-prompted; only read and write failures are
// returned.
func (h *ConsoleHandler) Run() error {
	for {
		if err := h.renderMenu(); err != nil {
			return err
		}

		choice, err := h.readChoice()
		if errors.Is(err, io.EOF) {
			return h.endOfInput()
		}
		if err != nil {
			return err
		}

		switch choice {
		case model.ChoiceView:
			err = h.println(ResultMessage(model.View, h.service.View()))
		case model.ChoiceCredit:
			err = h.handleAmount(model.Credit, PromptCredit)
		case model.ChoiceDebit:
			err = h.handleAmount(model.Debit, PromptDebit)
		case model.ChoiceExit:
			return h.println(MsgGoodbye)
		}

		if errors.Is(err, io.EOF) {
			return h.endOfInput()
		}
		if err != nil {
			return err
		}
	}
}

// endOfInput finishes the dangling prompt line before saying goodbye.
func (h *ConsoleHandler) endOfInput() error {
	if err := h.println(""); err != nil {
		return err
	}
	return h.println(MsgGoodbye)
}

func (h *ConsoleHandler) renderMenu() error {
	for _, line := range menuLines {
		if err := h.println(line); err != nil {
			return fmt.Errorf("failed to render menu: %w", err)
		}
	}
	return nil
}

func (h *ConsoleHandler) readChoice() (model.MenuChoice, error) {
	for {
		line, err := h.prompt(PromptChoice)
		if err != nil {
			return 0, err
		}

		choice, err := model.ParseMenuChoice(line)
		if err == nil {
			return choice, nil
		}
		if err := h.println(ErrorMessage(err)); err != nil {
			return 0, err
		}
	}
}

// handleAmount keeps asking until the amount is accepted or the operation
// fails for a reason re-entry cannot fix.
func (h *ConsoleHandler) handleAmount(op model.OperationType, promptText string) error {
	for {
		line, err := h.prompt(promptText)
		if err != nil {
			return err
		}

		amount, err := model.ParseAmount(line)
		if err != nil {
			if err := h.println(ErrorMessage(err)); err != nil {
				return err
			}
			continue
		}

		balance, err := h.service.Apply(model.Operation{Type: op, Amount: amount})
		switch {
		case err == nil:
			return h.println(ResultMessage(op, balance))
		case errors.Is(err, model.ErrInvalidAmount):
			if err := h.println(ErrorMessage(err)); err != nil {
				return err
			}
		default:
			return h.println(ErrorMessage(err))
		}
	}
}

func (h *ConsoleHandler) prompt(text string) (string, error) {
	if _, err := fmt.Fprint(h.out, text); err != nil {
		return "", err
	}

	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return h.in.Text(), nil
}

func (h *ConsoleHandler) println(text string) error {
	_, err := fmt.Fprintln(h.out, text)
	return err
}

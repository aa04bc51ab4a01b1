package commands

import (
	"errors"
	"strings"

	"warehouse/internal/pkg/guard"
)

var (
	ErrReceiveOrderCommandIsNotConstructed = errors.New(
		"ReceiveOrderCommand must be created via NewReceiveOrderCommand constructor",
	)
	ErrColorIsRequired = errors.New("color is required")
	ErrModelIsRequired = errors.New("model is required")
)

// ReceiveOrderCommand represents one van order arriving at the warehouse.
// Every fourth order forms a picking request.
//
// Example:
//
//	cmd, err := NewReceiveOrderCommand("Red", "SE")
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//
//	handler := NewReceiveOrderCommandHandler(runner)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order rejected: %w", err)
//	}
type ReceiveOrderCommand struct { //nolint:recvcheck //using for validation
	color string
	model string

	guard guard.ConstructorGuard
}

// NewReceiveOrderCommand creates a command for an order of the given van
// colour and model. Both are required; whether the pair is known is decided
// by the engine's translation table.
func NewReceiveOrderCommand(color, model string) (ReceiveOrderCommand, error) {
	command := ReceiveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setColor(color),
		command.setModel(model),
	); err != nil {
		return ReceiveOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrReceiveOrderCommandIsNotConstructed)
}

func (c ReceiveOrderCommand) Color() string {
	return c.color
}

func (c ReceiveOrderCommand) Model() string {
	return c.model
}

func (c *ReceiveOrderCommand) setColor(color string) error {
	color = strings.TrimSpace(color)
	if color == "" {
		return ErrColorIsRequired
	}

	c.color = color
	return nil
}

func (c *ReceiveOrderCommand) setModel(model string) error {
	model = strings.TrimSpace(model)
	if model == "" {
		return ErrModelIsRequired
	}

	c.model = model
	return nil
}

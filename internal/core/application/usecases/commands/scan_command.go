package commands

import (
	"errors"
	"strings"

	"warehouse/internal/pkg/guard"
)

var ErrScanCommandIsNotConstructed = errors.New(
	"ScanCommand must be created via NewScanCommand constructor",
)

// ScanCommand reports one fascia scanned by a worker: picked, sequenced,
// loaded or replenished depending on the role.
//
// Example:
//
//	cmd, err := NewScanCommand("Picker", "Alice", "3")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type ScanCommand struct { //nolint:recvcheck //using for validation
	workerRef
	sku string

	guard guard.ConstructorGuard
}

func NewScanCommand(role, name, sku string) (ScanCommand, error) {
	command := ScanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.set(role, name),
		command.setSKU(sku),
	); err != nil {
		return ScanCommand{}, err
	}

	return command, nil
}

func (c ScanCommand) Validate() error {
	return c.guard.Validate(ErrScanCommandIsNotConstructed)
}

// SKU returns the scanned SKU as received. The engine parses it.
func (c ScanCommand) SKU() string {
	return c.sku
}

func (c *ScanCommand) setSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return ErrSKUIsRequired
	}

	c.sku = sku
	return nil
}

package commands

import (
	"context"
	"errors"
	"strings"

	"warehouse/internal/core/application/engine"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrRescanCommandIsNotConstructed = errors.New(
	"RescanCommand must be created via NewRescanCommand constructor",
)

// RescanCommand undoes scanning work. An empty SKU becomes the "0"
// placeholder.
type RescanCommand struct { //nolint:recvcheck //using for validation
	workerRef
	sku string

	guard guard.ConstructorGuard
}

func NewRescanCommand(role, name, sku string) (RescanCommand, error) {
	command := RescanCommand{
		guard: guard.NewConstructorGuard(),
		sku:   strings.TrimSpace(sku),
	}
	if command.sku == "" {
		command.sku = kernel.NoSKU.String()
	}

	if err := command.set(role, name); err != nil {
		return RescanCommand{}, err
	}

	return command, nil
}

func (c RescanCommand) Validate() error {
	return c.guard.Validate(ErrRescanCommandIsNotConstructed)
}

func (c RescanCommand) SKU() string {
	return c.sku
}

type RescanCommandHandler struct {
	runner EngineRunner
}

func NewRescanCommandHandler(runner EngineRunner) RescanCommandHandler {
	return RescanCommandHandler{runner: runner}
}

func (h *RescanCommandHandler) Handle(ctx context.Context, cmd RescanCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.runner.Submit(ctx, "rescan", func(ctx context.Context, e *engine.AssignmentEngine) error {
		return e.OnRescan(ctx, cmd.Role(), cmd.Name(), cmd.SKU())
	})
}

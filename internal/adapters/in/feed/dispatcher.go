package feed

import (
	"context"
	"fmt"

	"warehouse/internal/core/application/usecases/commands"
)

// Handlers are the command handlers an Event can reach.
type Handlers struct {
	ReceiveOrder commands.ReceiveOrderCommandHandler
	WorkerReady  commands.WorkerReadyCommandHandler
	Scan         commands.ScanCommandHandler
	Rescan       commands.RescanCommandHandler
	Discard      commands.DiscardCommandHandler
	FinishWork   commands.FinishWorkCommandHandler
}

// NewHandlers builds every handler over the same runner.
func NewHandlers(runner commands.EngineRunner) Handlers {
	return Handlers{
		ReceiveOrder: commands.NewReceiveOrderCommandHandler(runner),
		WorkerReady:  commands.NewWorkerReadyCommandHandler(runner),
		Scan:         commands.NewScanCommandHandler(runner),
		Rescan:       commands.NewRescanCommandHandler(runner),
		Discard:      commands.NewDiscardCommandHandler(runner),
		FinishWork:   commands.NewFinishWorkCommandHandler(runner),
	}
}

// Dispatcher routes events to their command handler.
type Dispatcher struct {
	h Handlers
}

func NewDispatcher(h Handlers) *Dispatcher {
	return &Dispatcher{h: h}
}

// Dispatch builds the command for ev and hands it over. Errors from the
// engine are returned unchanged.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) error {
	switch ev.Kind {
	case KindOrder:
		cmd, err := commands.NewReceiveOrderCommand(ev.Color, ev.Model)
		if err != nil {
			return err
		}
		return d.h.ReceiveOrder.Handle(ctx, cmd)
	case KindReady:
		cmd, err := commands.NewWorkerReadyCommand(ev.Role, ev.Name)
		if err != nil {
			return err
		}
		return d.h.WorkerReady.Handle(ctx, cmd)
	case KindScan:
		cmd, err := commands.NewScanCommand(ev.Role, ev.Name, ev.SKU)
		if err != nil {
			return err
		}
		return d.h.Scan.Handle(ctx, cmd)
	case KindRescan:
		cmd, err := commands.NewRescanCommand(ev.Role, ev.Name, ev.SKU)
		if err != nil {
			return err
		}
		return d.h.Rescan.Handle(ctx, cmd)
	case KindDiscard:
		cmd, err := commands.NewDiscardCommand(ev.Role, ev.Name)
		if err != nil {
			return err
		}
		return d.h.Discard.Handle(ctx, cmd)
	case KindFinish:
		cmd, err := commands.NewFinishWorkCommand(ev.Role, ev.Name)
		if err != nil {
			return err
		}
		return d.h.FinishWork.Handle(ctx, cmd)
	default:
		return fmt.Errorf("%w: kind %d", ErrInvalidLine, ev.Kind)
	}
}

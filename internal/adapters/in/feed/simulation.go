package feed

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"

	"warehouse/internal/core/application/engine"
	"warehouse/internal/pkg/logging"
)

// Stats counts what a Simulation did with its input.
type Stats struct {
	Lines    int
	Invalid  int
	Rejected int
}

// Simulation replays a feed against the engine, one line at a time.
type Simulation struct {
	dispatcher *Dispatcher
	logger     *slog.Logger
}

func NewSimulation(dispatcher *Dispatcher, logger *slog.Logger) *Simulation {
	return &Simulation{
		dispatcher: dispatcher,
		logger:     logger.With("component", "feed"),
	}
}

// Run reads r to the end. Unparseable lines and rejected events are logged
// and skipped; only read errors and ctx cancellation stop the run.
func (s *Simulation) Run(ctx context.Context, r io.Reader) (Stats, error) {
	var stats Stats
	sc := bufio.NewScanner(r)

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		line := sc.Text()
		stats.Lines++
		logging.Config(ctx, s.logger, "INPUT: "+line)

		ev, err := ParseLine(line)
		if err != nil {
			stats.Invalid++
			logging.Config(ctx, s.logger, "SYSTEM: Invalid input read, continuing")
			continue
		}

		if err := s.dispatcher.Dispatch(ctx, ev); err != nil {
			if errors.Is(err, engine.ErrRunnerStopped) ||
				errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return stats, err
			}
			stats.Rejected++
			s.logger.WarnContext(ctx, "event rejected", "kind", ev.Kind.String(), "error", err)
		}
	}
	if err := sc.Err(); err != nil {
		return stats, err
	}

	logging.Config(ctx, s.logger, "SYSTEM: Simulation Complete")
	return stats, nil
}

package jobs

import (
	"context"
	"log/slog"
	"time"

	"warehouse/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SnapshotJob persists engine state on a schedule.
type SnapshotJob struct {
	handler  commands.SaveSnapshotCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	now      func() time.Time
}

func NewSnapshotJob(handler commands.SaveSnapshotCommandHandler, schedule string, logger *slog.Logger) *SnapshotJob {
	return &SnapshotJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "snapshot_job"),
		now:      time.Now,
	}
}

func (j *SnapshotJob) Name() string {
	return "snapshot"
}

func (j *SnapshotJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running snapshot to finish.
func (j *SnapshotJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Snapshot job stopped")
}

func (j *SnapshotJob) run(ctx context.Context) {
	cmd, err := commands.NewSaveSnapshotCommand(j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Snapshot command is invalid", "error", err)
		return
	}

	if err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Snapshot job failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Snapshot saved", "taken_at", cmd.TakenAt())
}

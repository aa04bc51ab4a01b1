package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ShortageReportJob logs the levels below full stock on a schedule.
type ShortageReportJob struct {
	handler  queries.GetInventoryQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewShortageReportJob(handler queries.GetInventoryQueryHandler, schedule string, logger *slog.Logger) *ShortageReportJob {
	return &ShortageReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "shortage_report_job"),
	}
}

func (j *ShortageReportJob) Name() string {
	return "shortage report"
}

func (j *ShortageReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shortage report job started", "schedule", j.schedule)
	return nil
}

func (j *ShortageReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Shortage report job stopped")
}

func (j *ShortageReportJob) run(ctx context.Context) {
	levels, err := j.handler.Handle(ctx, queries.NewGetInventoryQuery(true))
	if err != nil {
		j.logger.ErrorContext(ctx, "Shortage report failed", "error", err)
		return
	}
	if len(levels) == 0 {
		return
	}

	attrs := make([]any, 0, len(levels))
	for _, l := range levels {
		attrs = append(attrs, slog.Int(l.SKU, l.Count))
	}
	j.logger.InfoContext(ctx, "Levels below full stock",
		"count", len(levels),
		slog.Group("levels", attrs...))
}

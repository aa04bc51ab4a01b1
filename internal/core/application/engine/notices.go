package engine

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/worker"
)

type (
	directFunc func(e *AssignmentEngine, ctx context.Context, w *worker.Worker, dir worker.Direction)
	reportFunc func(e *AssignmentEngine, ctx context.Context, w *worker.Worker, sku kernel.SKU, res worker.ScanResult)
)

// notices maps each role to what its scanner tells the worker.
var notices = map[worker.Role]struct {
	direct directFunc
	report reportFunc
}{
	worker.Picker:      {direct: directPicker, report: reportPick},
	worker.Sequencer:   {direct: directCorrectOrder, report: reportSequence},
	worker.Loader:      {direct: directCorrectOrder, report: reportLoad},
	worker.Replenisher: {direct: directReplenisher, report: reportRestock},
}

func (e *AssignmentEngine) direct(ctx context.Context, w *worker.Worker, dir worker.Direction) {
	if n, ok := notices[w.Role()]; ok {
		n.direct(e, ctx, w, dir)
	}
}

func (e *AssignmentEngine) reportScan(ctx context.Context, w *worker.Worker, sku kernel.SKU, res worker.ScanResult) {
	if res.OverScan {
		e.logger.WarnContext(ctx, "Worker scanned more than eight fascias", "role", w.Role(), "worker", w.Name(), "sku", sku)
		return
	}
	if n, ok := notices[w.Role()]; ok {
		n.report(e, ctx, w, sku, res)
	}
}

func directPicker(e *AssignmentEngine, ctx context.Context, w *worker.Worker, dir worker.Direction) {
	e.logger.InfoContext(ctx, "Picker directed to location",
		"worker", w.Name(), "location", dir.Stop.Location, "sku", dir.Stop.SKU)
}

func directCorrectOrder(e *AssignmentEngine, ctx context.Context, w *worker.Worker, dir worker.Direction) {
	e.logger.InfoContext(ctx, "Worker shown correct order",
		"role", w.Role(), "worker", w.Name(), "request", dir.RequestID, "correct_order", dir.CorrectOrder)
}

func directReplenisher(e *AssignmentEngine, ctx context.Context, w *worker.Worker, dir worker.Direction) {
	e.logger.InfoContext(ctx, "Replenisher directed to replenish SKU", "worker", w.Name(), "sku", dir.Target)
}

func reportPick(e *AssignmentEngine, ctx context.Context, w *worker.Worker, sku kernel.SKU, res worker.ScanResult) {
	if res.Mismatch {
		e.logger.WarnContext(ctx, "Picker picked incorrect fascia",
			"worker", w.Name(), "sku", sku, "expected", res.Expected.SKU, "location", res.Expected.Location)
	} else {
		e.logger.InfoContext(ctx, "Picker picked fascia", "worker", w.Name(), "sku", sku)
	}

	switch {
	case res.Complete:
		e.logger.InfoContext(ctx, "Picker heading to marshalling", "worker", w.Name())
	case res.HandOff:
		e.logger.WarnContext(ctx, "Picker has no locations left, returned fascias must be picked again",
			"worker", w.Name(), "scanned", len(w.Scans()))
	case res.Advanced:
		e.logger.InfoContext(ctx, "Picker directed to location",
			"worker", w.Name(), "location", res.Next.Location, "sku", res.Next.SKU)
	}
}

func reportSequence(e *AssignmentEngine, ctx context.Context, w *worker.Worker, sku kernel.SKU, res worker.ScanResult) {
	if res.Mismatch {
		e.logger.WarnContext(ctx, "Sequencer scanner reports error sequencing",
			"worker", w.Name(), "sku", sku, "expected", res.Expected.SKU, "request", w.Request().ID())
	} else {
		e.logger.InfoContext(ctx, "Sequencer scanner confirms sequence", "worker", w.Name(), "sku", sku)
	}
	if res.Complete {
		e.logger.InfoContext(ctx, "Sequencer scanner already sequenced eight fascias",
			"worker", w.Name(), "request", w.Request().ID(), "in_order", res.InOrder)
	}
}

func reportLoad(e *AssignmentEngine, ctx context.Context, w *worker.Worker, sku kernel.SKU, res worker.ScanResult) {
	e.logger.InfoContext(ctx, "Loader loaded item", "worker", w.Name(), "sku", sku)
	if !res.Complete {
		return
	}
	if res.InOrder {
		e.logger.InfoContext(ctx, "Loader scanner confirms request completed loading",
			"worker", w.Name(), "request", w.Request().ID())
	} else {
		e.logger.WarnContext(ctx, "Loader scanner reports error while loading items",
			"worker", w.Name(), "request", w.Request().ID(), "scanned", w.Scans(), "correct_order", w.Request().CorrectOrder())
	}
}

func reportRestock(e *AssignmentEngine, ctx context.Context, w *worker.Worker, sku kernel.SKU, res worker.ScanResult) {
	if res.Recorded {
		e.logger.InfoContext(ctx, "Replenisher scanner reports stock successfully replenished", "worker", w.Name(), "sku", sku)
		return
	}
	e.logger.WarnContext(ctx, "Replenisher scanner reports error when replenishing",
		"worker", w.Name(), "sku", sku, "target", res.Expected.SKU)
}

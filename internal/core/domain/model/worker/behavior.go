package worker

import (
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/request"
)

// Direction is what the scanner shows after an assignment or a claim.
type Direction struct {
	RequestID int
	// Stop is the picker's next slot.
	Stop kernel.LocationEntry
	// CorrectOrder is shown to sequencers and loaders.
	CorrectOrder []kernel.SKU
	// Target is the replenisher's SKU.
	Target kernel.SKU
}

// ScanResult describes how a scan was judged.
type ScanResult struct {
	// Recorded is false when the buffer did not change.
	Recorded bool
	// Mismatch marks a scan that differs from Expected.
	Mismatch bool
	Expected kernel.LocationEntry
	// Advanced is set when a picker moved on to Next.
	Advanced bool
	Next     kernel.LocationEntry
	// Complete is set on the scan that fills the buffer.
	Complete bool
	// HandOff is set when a picker matched its last stop while an earlier
	// pick was put back, so the buffer is not full yet.
	HandOff bool
	// InOrder reports, on completion, whether the buffer equals the correct
	// order.
	InOrder  bool
	OverScan bool
}

type RescanKind int

const (
	// PutBack returns the last picked item to its slot.
	PutBack RescanKind = iota + 1
	// Repeat scans the restocked item again.
	Repeat
	// Reset voids the whole scan sequence of the stage.
	Reset
)

type RescanResult struct {
	Kind RescanKind
	// Dropped is the buffer entry removed by a put-back, if any.
	Dropped    kernel.SKU
	HasDropped bool
	// Unfrozen is set when a put-back returned an over-scanned item.
	Unfrozen bool
	// Scan is the outcome of a Repeat.
	Scan ScanResult
}

type behavior struct {
	takes    request.Status
	start    func(*request.PickingRequest) error
	complete func(*request.PickingRequest) error
	direct   func(*Worker) (Direction, error)
	scan     func(*Worker, kernel.SKU) (ScanResult, error)
	rescan   func(*Worker, kernel.SKU) (RescanResult, error)
}

func behaviors() map[Role]behavior {
	return map[Role]behavior{
		Picker: {
			takes:    request.Waiting,
			start:    (*request.PickingRequest).StartPicking,
			complete: (*request.PickingRequest).FinishPicking,
			direct:   pickerDirect,
			scan:     pickerScan,
			rescan:   pickerRescan,
		},
		Sequencer: {
			takes:    request.Picked,
			start:    (*request.PickingRequest).StartSequencing,
			complete: (*request.PickingRequest).FinishSequencing,
			direct:   showCorrectOrder,
			scan:     sequencerScan,
			rescan:   resetRescan,
		},
		Loader: {
			takes:    request.Sequenced,
			start:    (*request.PickingRequest).StartLoading,
			complete: (*request.PickingRequest).FinishLoading,
			direct:   showCorrectOrder,
			scan:     loaderScan,
			rescan:   resetRescan,
		},
		Replenisher: {
			direct: replenisherDirect,
			scan:   replenisherScan,
			rescan: replenisherRescan,
		},
	}
}

func pickerDirect(w *Worker) (Direction, error) {
	stop, err := w.request.NextStop()
	if err != nil {
		return Direction{}, err
	}
	w.expected, w.hasExpected = stop, true
	return Direction{RequestID: w.request.ID(), Stop: stop}, nil
}

// pickerScan records every item. A matching item moves the picker to the
// next stop unless the buffer is full or the route has no stops left.
func pickerScan(w *Worker, sku kernel.SKU) (ScanResult, error) {
	if !w.record(sku) {
		return ScanResult{OverScan: true}, nil
	}

	res := ScanResult{
		Recorded: true,
		Expected: w.expected,
		Complete: len(w.scans) == request.ItemsPerRequest,
	}
	if sku != w.expected.SKU {
		res.Mismatch = true
		return res, nil
	}
	if res.Complete {
		return res, nil
	}
	if w.request.Remaining() == 0 {
		res.HandOff = true
		return res, nil
	}

	stop, err := w.request.NextStop()
	if err != nil {
		return res, err
	}
	w.expected = stop
	res.Advanced, res.Next = true, stop
	return res, nil
}

// pickerRescan drops the newest buffer entry. An item rejected by an
// over-scan was never recorded, so putting it back only lifts the freeze.
func pickerRescan(w *Worker, _ kernel.SKU) (RescanResult, error) {
	res := RescanResult{Kind: PutBack}
	if w.frozen {
		w.frozen = false
		res.Unfrozen = true
		return res, nil
	}
	if n := len(w.scans); n > 0 {
		res.Dropped, res.HasDropped = w.scans[n-1], true
		w.scans = w.scans[:n-1]
	}
	return res, nil
}

func showCorrectOrder(w *Worker) (Direction, error) {
	return Direction{RequestID: w.request.ID(), CorrectOrder: w.request.CorrectOrder()}, nil
}

// sequencerScan checks the k-th scan against the k-th item of the correct
// order. Mismatches are still recorded.
func sequencerScan(w *Worker, sku kernel.SKU) (ScanResult, error) {
	if !w.record(sku) {
		return ScanResult{OverScan: true}, nil
	}

	correct := w.request.CorrectOrder()
	k := len(w.scans)
	res := ScanResult{
		Recorded: true,
		Expected: kernel.LocationEntry{SKU: correct[k-1]},
		Mismatch: sku != correct[k-1],
		Complete: k == request.ItemsPerRequest,
	}
	res.InOrder = res.Complete && w.request.MatchesCorrectOrder(w.scans)
	return res, nil
}

// loaderScan only judges the buffer once it holds every item.
func loaderScan(w *Worker, sku kernel.SKU) (ScanResult, error) {
	if !w.record(sku) {
		return ScanResult{OverScan: true}, nil
	}

	res := ScanResult{Recorded: true, Complete: len(w.scans) == request.ItemsPerRequest}
	res.InOrder = res.Complete && w.request.MatchesCorrectOrder(w.scans)
	return res, nil
}

func resetRescan(w *Worker, _ kernel.SKU) (RescanResult, error) {
	w.resetBuffer()
	return RescanResult{Kind: Reset}, nil
}

func replenisherDirect(w *Worker) (Direction, error) {
	return Direction{Target: w.target}, nil
}

// replenisherScan gives no partial credit: a wrong SKU leaves the buffer
// untouched.
func replenisherScan(w *Worker, sku kernel.SKU) (ScanResult, error) {
	expected := kernel.LocationEntry{SKU: w.target}
	if sku != w.target {
		return ScanResult{Mismatch: true, Expected: expected}, nil
	}
	w.scans = append(w.scans, sku)
	return ScanResult{Recorded: true, Expected: expected}, nil
}

func replenisherRescan(w *Worker, sku kernel.SKU) (RescanResult, error) {
	res, err := replenisherScan(w, sku)
	return RescanResult{Kind: Repeat, Scan: res}, err
}

// Package engine is the warehouse's assignment and state machine core.
//
// AssignmentEngine consumes one event at a time: orders arriving, workers
// reporting ready, scans, rescans, discards and finishes. Each event is fully
// applied, including every follow-up match it makes possible, before the
// call returns. The engine holds no locks and must be driven from a single
// goroutine. Runner provides that goroutine for callers that are themselves
// concurrent, such as HTTP handlers and scheduled jobs.
package engine

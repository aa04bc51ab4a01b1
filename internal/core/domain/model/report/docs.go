// Package report holds the read-only records the warehouse hands to storage:
// point-in-time inventory snapshots and completed picking requests.
//
// Records are built from live domain state with the New constructors and
// rebuilt from storage with the Restore constructors. Neither kind changes
// after construction.
package report

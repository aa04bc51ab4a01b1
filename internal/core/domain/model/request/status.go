package request

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

// Status is the lifecycle state of a picking request.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Waiting
	Picking
	Picked
	Sequencing
	Sequenced
	Loading
	Loaded
	// Finished is terminal.
	Finished
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Waiting:    "Waiting",
		Picking:    "Picking",
		Picked:     "Picked",
		Sequencing: "Sequencing",
		Sequenced:  "Sequenced",
		Loading:    "Loading",
		Loaded:     "Loaded",
		Finished:   "Finished",
	}
}

// forward lists the single legal successor of each status.
func forward() map[Status]Status {
	return map[Status]Status{
		Waiting:    Picking,
		Picking:    Picked,
		Picked:     Sequencing,
		Sequencing: Sequenced,
		Sequenced:  Loading,
		Loading:    Loaded,
		Loaded:     Finished,
	}
}

// ParseStatus is the inverse of String for valid statuses.
func ParseStatus(s string) (Status, error) {
	for st, name := range getStatusStrings() {
		if st != Unknown && name == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Finished {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Finished
}

// InProgress reports whether a worker is actively handling the request.
func (s Status) InProgress() bool {
	return s == Picking || s == Sequencing || s == Loading
}

// IsLoaded reports whether the request has cleared the loading dock.
func (s Status) IsLoaded() bool {
	return s == Loaded || s == Finished
}

// Advance returns the successor of s when it equals want.
//
// The explicit want makes every caller name the transition it expects, so a
// picker finishing a request that is already Sequencing fails loudly instead
// of skipping a stage.
func (s Status) Advance(want Status) (Status, error) {
	next, ok := forward()[s]
	if !ok || next != want {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s cannot move to %s", s, want),
		)
	}
	return next, nil
}

// Reset returns Waiting from any non-terminal status.
func (s Status) Reset() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is terminal and cannot be discarded", s),
		)
	}
	return Waiting, nil
}

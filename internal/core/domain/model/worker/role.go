package worker

import (
	"fmt"

	"warehouse/internal/core/domain/model/request"
	"warehouse/internal/pkg/errs"
)

// Role is the stage a worker is trained for.
type Role int

const (
	// UnknownRole catches uninitialized values.
	UnknownRole Role = iota
	Picker
	Sequencer
	Loader
	Replenisher
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Picker:      "Picker",
		Sequencer:   "Sequencer",
		Loader:      "Loader",
		Replenisher: "Replenisher",
	}
}

// ParseRole accepts the role names used by the event feed.
func ParseRole(s string) (Role, error) {
	for r, name := range getRoleStrings() {
		if r != UnknownRole && name == s {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

func (r Role) Validate() error {
	if r <= UnknownRole || r > Replenisher {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Accepts reports whether a worker of this role can take a request in status s.
// Replenishers never take requests.
func (r Role) Accepts(s request.Status) bool {
	b, ok := behaviors()[r]
	return ok && b.takes != request.Unknown && b.takes == s
}

// WorksRequests reports whether the role works on picking requests.
func (r Role) WorksRequests() bool {
	b, ok := behaviors()[r]
	return ok && b.takes != request.Unknown
}

// Start moves pr into this role's stage.
func (r Role) Start(pr *request.PickingRequest) error {
	b, ok := behaviors()[r]
	if !ok || b.start == nil {
		return fmt.Errorf("%w: %s", ErrRoleHasNoStage, r)
	}
	return b.start(pr)
}

// Complete moves pr out of this role's stage.
func (r Role) Complete(pr *request.PickingRequest) error {
	b, ok := behaviors()[r]
	if !ok || b.complete == nil {
		return fmt.Errorf("%w: %s", ErrRoleHasNoStage, r)
	}
	return b.complete(pr)
}

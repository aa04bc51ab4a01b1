package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// Coordinate is one numeric component of a location code.
type Coordinate int8

const (
	CoordinateMin Coordinate = 0
	CoordinateMax Coordinate = 9

	// LocationCodeLength is the length of a rendered code such as "A,0,1,2".
	LocationCodeLength = 7
)

// ErrLocationIsNotConstructed is returned when a zero Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or ParseLocation constructors")

// Location is a storage slot: a zone letter followed by aisle, rack and level.
// The zero value is invalid.
type Location struct { //nolint:recvcheck //using for validation
	zone  byte
	aisle Coordinate
	rack  Coordinate
	level Coordinate
	guard guard.ConstructorGuard
}

// NewLocation validates every component and returns the slot.
func NewLocation(zone byte, aisle, rack, level Coordinate) (Location, error) {
	loc := Location{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		loc.setZone(zone),
		loc.setCoordinate("aisle", &loc.aisle, aisle),
		loc.setCoordinate("rack", &loc.rack, rack),
		loc.setCoordinate("level", &loc.level, level),
	); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// ParseLocation reads a code of the form "Z,a,r,l".
func ParseLocation(code string) (Location, error) {
	parts := strings.Split(strings.TrimSpace(code), ",")
	if len(parts) != 4 || len(parts[0]) != 1 {
		return Location{}, errs.NewValueIsInvalidErrorWithCause(
			"location", fmt.Errorf("%q is not a Z,a,r,l code", code))
	}

	coords := make([]Coordinate, 3)
	for i, p := range parts[1:] {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Location{}, errs.NewValueIsInvalidErrorWithCause("location", err)
		}
		coords[i] = Coordinate(n) //nolint:gosec // range checked by NewLocation
	}

	return NewLocation(parts[0][0], coords[0], coords[1], coords[2])
}

func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) Zone() byte {
	return l.zone
}

func (l Location) Aisle() Coordinate {
	return l.aisle
}

func (l Location) Rack() Coordinate {
	return l.rack
}

func (l Location) Level() Coordinate {
	return l.level
}

// String renders the 7-character location code.
func (l Location) String() string {
	return fmt.Sprintf("%c,%d,%d,%d", l.zone, l.aisle, l.rack, l.level)
}

// IsEqual compares two constructed locations.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return l == other, nil
}

func (l *Location) setZone(zone byte) error {
	if zone < 'A' || zone > 'Z' {
		return errs.NewValueIsOutOfRangeError("zone", string(zone), "A", "Z")
	}
	l.zone = zone
	return nil
}

func (l *Location) setCoordinate(name string, dst *Coordinate, v Coordinate) error {
	if v < CoordinateMin || v > CoordinateMax {
		return errs.NewValueIsOutOfRangeError(name, v, CoordinateMin, CoordinateMax)
	}
	*dst = v
	return nil
}

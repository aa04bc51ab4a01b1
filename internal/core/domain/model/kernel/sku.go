package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"warehouse/internal/pkg/errs"
)

// SKU identifies one fascia item. Scans are compared by exact text; ordering
// uses the numeric value.
type SKU string

// NoSKU is the sentinel used for an idle replenisher and for a rescan that
// carries no item.
const NoSKU SKU = "0"

// ParseSKU validates s as a non-negative decimal SKU number.
func ParseSKU(s string) (SKU, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errs.NewValueIsRequiredError("sku")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("sku", fmt.Errorf("%q is not a number", s))
	}
	if n < 0 {
		return "", errs.NewValueIsInvalidErrorWithCause("sku", fmt.Errorf("%d is negative", n))
	}
	return SKU(s), nil
}

// Number returns the numeric value, or -1 for malformed SKUs.
func (s SKU) Number() int {
	n, err := strconv.Atoi(string(s))
	if err != nil {
		return -1
	}
	return n
}

func (s SKU) String() string {
	return string(s)
}

// IsNone reports whether s is the NoSKU sentinel.
func (s SKU) IsNone() bool {
	return s == NoSKU
}

// Less orders SKUs by numeric value, falling back to text for equal numbers.
func (s SKU) Less(other SKU) bool {
	a, b := s.Number(), other.Number()
	if a != b {
		return a < b
	}
	return s < other
}

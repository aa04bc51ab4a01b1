package inventory

import (
	"fmt"

	"warehouse/internal/pkg/errs"
)

const (
	DefaultLowStockThreshold = 5
	DefaultRestockAmount     = 25
	DefaultFullStock         = 30
)

// LowStockPolicy decides which picks raise a low-stock signal.
type LowStockPolicy int

const (
	// LevelTriggered signals on every pick that leaves the count at or below
	// the threshold.
	LevelTriggered LowStockPolicy = iota
	// EdgeTriggered signals only on the pick that crosses the threshold.
	EdgeTriggered
)

func getLowStockPolicyStrings() map[LowStockPolicy]string {
	return map[LowStockPolicy]string{
		LevelTriggered: "level",
		EdgeTriggered:  "edge",
	}
}

func ParseLowStockPolicy(s string) (LowStockPolicy, error) {
	for p, name := range getLowStockPolicyStrings() {
		if name == s {
			return p, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause(
		"low stock policy", fmt.Errorf("%q is neither level nor edge", s))
}

func (p LowStockPolicy) String() string {
	if str, ok := getLowStockPolicyStrings()[p]; ok {
		return str
	}
	return fmt.Sprintf("LowStockPolicy(%d)", int(p))
}

// Fires reports whether a pick from before to after signals low stock.
func (p LowStockPolicy) Fires(before, after, threshold int) bool {
	if after > threshold {
		return false
	}
	if p == EdgeTriggered {
		return before > threshold
	}
	return true
}

// Settings are the stock rules applied by a Ledger.
type Settings struct {
	LowStockThreshold int
	RestockAmount     int
	FullStock         int
	LowStock          LowStockPolicy
}

func DefaultSettings() Settings {
	return Settings{
		LowStockThreshold: DefaultLowStockThreshold,
		RestockAmount:     DefaultRestockAmount,
		FullStock:         DefaultFullStock,
		LowStock:          LevelTriggered,
	}
}

func (s Settings) Validate() error {
	if s.LowStockThreshold < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"low stock threshold", fmt.Errorf("%d is negative", s.LowStockThreshold))
	}
	if s.RestockAmount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"restock amount", fmt.Errorf("%d is not greater than 0", s.RestockAmount))
	}
	if s.FullStock <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"full stock", fmt.Errorf("%d is not greater than 0", s.FullStock))
	}
	if _, ok := getLowStockPolicyStrings()[s.LowStock]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("low stock policy", fmt.Errorf("%s is unknown", s.LowStock))
	}
	return nil
}

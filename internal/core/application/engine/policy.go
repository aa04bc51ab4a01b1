package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"warehouse/internal/core/domain/model/inventory"
	"warehouse/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// SequencerMismatchPolicy decides whether a sequencer may finish a request
// whose scans differ from the correct order.
type SequencerMismatchPolicy int

const (
	// Advisory logs mismatches and lets the sequencer finish anyway.
	Advisory SequencerMismatchPolicy = iota
	// Blocking rejects the finish until the scans match.
	Blocking
)

func getSequencerMismatchPolicyStrings() map[SequencerMismatchPolicy]string {
	return map[SequencerMismatchPolicy]string{
		Advisory: "advisory",
		Blocking: "blocking",
	}
}

func ParseSequencerMismatchPolicy(s string) (SequencerMismatchPolicy, error) {
	for p, name := range getSequencerMismatchPolicyStrings() {
		if name == s {
			return p, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause(
		"sequencer mismatch policy", fmt.Errorf("%q is neither advisory nor blocking", s))
}

func (p SequencerMismatchPolicy) String() string {
	if str, ok := getSequencerMismatchPolicyStrings()[p]; ok {
		return str
	}
	return fmt.Sprintf("SequencerMismatchPolicy(%d)", int(p))
}

// Policy gathers the tunable rules of the engine.
type Policy struct {
	Inventory         inventory.Settings
	SequencerMismatch SequencerMismatchPolicy
}

func DefaultPolicy() Policy {
	return Policy{
		Inventory:         inventory.DefaultSettings(),
		SequencerMismatch: Advisory,
	}
}

func (p Policy) Validate() error {
	if _, ok := getSequencerMismatchPolicyStrings()[p.SequencerMismatch]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"sequencer mismatch policy", fmt.Errorf("%s is unknown", p.SequencerMismatch))
	}
	return p.Inventory.Validate()
}

// policyFile is the YAML layout. Absent keys keep their defaults.
type policyFile struct {
	LowStockThreshold *int   `yaml:"low_stock_threshold"`
	RestockAmount     *int   `yaml:"restock_amount"`
	FullStock         *int   `yaml:"full_stock"`
	LowStock          string `yaml:"low_stock"`
	SequencerMismatch string `yaml:"sequencer_mismatch"`
}

// LoadPolicy reads a YAML policy on top of DefaultPolicy. Unknown keys are
// rejected.
//
//	low_stock_threshold: 5
//	restock_amount: 25
//	full_stock: 30
//	low_stock: edge
//	sequencer_mismatch: blocking
func LoadPolicy(r io.Reader) (Policy, error) {
	var f policyFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Policy{}, fmt.Errorf("decode policy: %w", err)
	}

	p := DefaultPolicy()
	if f.LowStockThreshold != nil {
		p.Inventory.LowStockThreshold = *f.LowStockThreshold
	}
	if f.RestockAmount != nil {
		p.Inventory.RestockAmount = *f.RestockAmount
	}
	if f.FullStock != nil {
		p.Inventory.FullStock = *f.FullStock
	}
	if f.LowStock != "" {
		ls, err := inventory.ParseLowStockPolicy(f.LowStock)
		if err != nil {
			return Policy{}, err
		}
		p.Inventory.LowStock = ls
	}
	if f.SequencerMismatch != "" {
		sm, err := ParseSequencerMismatchPolicy(f.SequencerMismatch)
		if err != nil {
			return Policy{}, err
		}
		p.SequencerMismatch = sm
	}

	if err := p.Validate(); err != nil {
		return Policy{}, err
	}
	return p, nil
}

// LoadPolicyFile reads path with LoadPolicy. An empty path yields the
// defaults.
func LoadPolicyFile(path string) (Policy, error) {
	if path == "" {
		return DefaultPolicy(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read policy %s: %w", path, err)
	}
	return LoadPolicy(bytes.NewReader(data))
}

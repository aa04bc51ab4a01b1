package csvfile

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// LoadTraversal reads the traversal table. Every listed SKU starts at
// fullStock.
func LoadTraversal(r io.Reader, fullStock int) (*kernel.LocationTable, map[kernel.SKU]int, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read traversal: %w", err)
	}

	entries := make([]kernel.LocationEntry, 0, len(records))
	stock := make(map[kernel.SKU]int, len(records))
	for i, rec := range records {
		if len(rec) != 5 {
			return nil, nil, fmt.Errorf("read traversal: %w", fieldCountError(i+1, len(rec), 5))
		}
		loc, err := kernel.ParseLocation(strings.Join(rec[:4], ","))
		if err != nil {
			return nil, nil, fmt.Errorf("read traversal: line %d: %w", i+1, err)
		}
		sku, err := kernel.ParseSKU(rec[4])
		if err != nil {
			return nil, nil, fmt.Errorf("read traversal: line %d: %w", i+1, err)
		}
		entries = append(entries, kernel.LocationEntry{Location: loc, SKU: sku})
		stock[sku] = fullStock
	}

	table, err := kernel.NewLocationTable(entries)
	if err != nil {
		return nil, nil, fmt.Errorf("read traversal: %w", err)
	}
	return table, stock, nil
}

func LoadTraversalFile(path string, fullStock int) (*kernel.LocationTable, map[kernel.SKU]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return LoadTraversal(f, fullStock)
}

// ApplyInitialInventory overrides counts in stock from records keyed by
// location.
func ApplyInitialInventory(r io.Reader, table *kernel.LocationTable, stock map[kernel.SKU]int) error {
	records, err := readRecords(r)
	if err != nil {
		return fmt.Errorf("read initial inventory: %w", err)
	}

	for i, rec := range records {
		if len(rec) != 5 {
			return fmt.Errorf("read initial inventory: %w", fieldCountError(i+1, len(rec), 5))
		}
		loc, err := kernel.ParseLocation(strings.Join(rec[:4], ","))
		if err != nil {
			return fmt.Errorf("read initial inventory: line %d: %w", i+1, err)
		}
		sku, ok := table.SKUAt(loc.String())
		if !ok {
			return fmt.Errorf("read initial inventory: line %d: %w", i+1, errs.NewObjectNotFoundError("location", loc.String()))
		}
		n, err := strconv.Atoi(rec[4])
		if err != nil || n < 0 {
			return fmt.Errorf("read initial inventory: line %d: %w", i+1,
				errs.NewValueIsInvalidErrorWithCause("count", fmt.Errorf("%q is not a count", rec[4])))
		}
		stock[sku] = n
	}
	return nil
}

// ApplyInitialInventoryFile is ApplyInitialInventory over path. An empty
// path or a missing file leaves stock unchanged and reports false.
func ApplyInitialInventoryFile(path string, table *kernel.LocationTable, stock map[kernel.SKU]int) (bool, error) {
	if path == "" {
		return false, nil
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer f.Close()
	return true, ApplyInitialInventory(f, table, stock)
}

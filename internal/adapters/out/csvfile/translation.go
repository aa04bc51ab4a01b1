package csvfile

import (
	"fmt"
	"io"
	"os"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// TranslationTable maps a van colour and model to its front and back fascia
// SKUs.
type TranslationTable struct {
	pairs map[string][2]kernel.SKU
}

// LoadTranslations reads a translation table. The first record is a header.
func LoadTranslations(r io.Reader) (*TranslationTable, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, fmt.Errorf("read translations: %w", err)
	}

	t := &TranslationTable{pairs: make(map[string][2]kernel.SKU)}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) != 4 {
			return nil, fmt.Errorf("read translations: %w", fieldCountError(i+1, len(rec), 4))
		}
		front, err := kernel.ParseSKU(rec[2])
		if err != nil {
			return nil, fmt.Errorf("read translations: line %d: %w", i+1, err)
		}
		back, err := kernel.ParseSKU(rec[3])
		if err != nil {
			return nil, fmt.Errorf("read translations: line %d: %w", i+1, err)
		}
		t.pairs[translationKey(rec[0], rec[1])] = [2]kernel.SKU{front, back}
	}
	return t, nil
}

func LoadTranslationsFile(path string) (*TranslationTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadTranslations(f)
}

// Translate implements ports.TranslationLookup.
func (t *TranslationTable) Translate(color, model string) (kernel.SKU, kernel.SKU, error) {
	p, ok := t.pairs[translationKey(color, model)]
	if !ok {
		return "", "", errs.NewObjectNotFoundError("translation", color+" "+model)
	}
	return p[0], p[1], nil
}

func (t *TranslationTable) Len() int {
	return len(t.pairs)
}

func translationKey(color, model string) string {
	return color + "\x00" + model
}

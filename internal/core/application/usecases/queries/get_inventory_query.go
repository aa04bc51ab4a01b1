package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrGetInventoryQueryIsNotConstructed = errors.New(
	"GetInventoryQuery must be created via NewGetInventoryQuery constructor",
)

// GetInventoryQuery retrieves stock levels. With ShortagesOnly set, only
// levels below full stock are returned, which is the content of the final
// report.
//
// Example:
//
//	query := NewGetInventoryQuery(true)
//	handler := NewGetInventoryQueryHandler(runner, table)
//
//	levels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, l := range levels {
//	    fmt.Printf("%s %d\n", l.Location, l.Count)
//	}
type GetInventoryQuery struct {
	shortagesOnly bool

	guard guard.ConstructorGuard
}

func NewGetInventoryQuery(shortagesOnly bool) GetInventoryQuery {
	return GetInventoryQuery{shortagesOnly: shortagesOnly, guard: guard.NewConstructorGuard()}
}

func (q GetInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryQueryIsNotConstructed)
}

func (q GetInventoryQuery) ShortagesOnly() bool {
	return q.shortagesOnly
}

// GetInventoryQueryResponse is one storage level. Location is empty when the
// location table does not know the SKU.
type GetInventoryQueryResponse struct {
	SKU      string
	Location string
	Count    int
}

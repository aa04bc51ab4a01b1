// Package kernel provides the value objects shared by the warehouse domain model.
//
// The package includes:
//   - SKU: the identifier of one fascia item, compared as text and ordered numerically
//   - Location: a storage slot code of the form "Z,a,r,l" (zone, aisle, rack, level)
//   - LocationTable: the immutable SKU to Location mapping used for route planning
//   - UUID: identifiers for persisted records
//
// All values are immutable once constructed and safe to share between goroutines.
package kernel

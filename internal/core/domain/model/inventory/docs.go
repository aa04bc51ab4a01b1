// Package inventory tracks fascia stock per SKU and the queue of SKUs waiting
// for a replenisher.
//
// Every pick is checked against a low-stock threshold. Whether a pick that
// stays below the threshold signals again is decided by a LowStockPolicy.
package inventory

// Package worker models the people on the warehouse floor and their barcode
// scanners.
//
// A Worker carries a closed Role tag. Everything that differs between roles,
// what an assignment tells the worker, how a scan is judged and what a rescan
// undoes, is resolved through a per-role behavior table rather than through
// separate types.
//
//	Picker      follows the traversal stop by stop and hands off at 8 items
//	Sequencer   checks each scan against the correct order by position
//	Loader      checks the whole buffer once 8 items are loaded
//	Replenisher restocks a single claimed SKU
package worker

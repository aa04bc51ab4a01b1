// Package request models the picking request aggregate: a batch of four
// customer orders (eight fascia items) that travels through picking,
// sequencing and loading.
//
// The aggregate owns its Orders, the canonical correct order of the eight
// SKUs, and the traversal queue a picker drains. Status transitions are only
// ever triggered by the assignment engine; the aggregate validates them.
//
// Status machine:
//
//	Waiting ─> Picking ─> Picked ─> Sequencing ─> Sequenced ─> Loading ─> Loaded ─> Finished
//	   ^          │                      │                        │
//	   └──────────┴──────── discard ─────┴────────────────────────┘
package request

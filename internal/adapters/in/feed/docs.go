// Package feed turns lines of the warehouse event vocabulary into engine
// commands.
//
//	Order <model> <colour>
//	<Role> <name> ready
//	<Role> <name> picked|sequenced|loaded|replenished <sku>
//	<Role> <name> rescanned [<sku>]
//	<Role> <name> discarded
//	<Role> <name> to <destination>
//	<Role> <name> finished
//
// Simulation reads a whole feed, echoing every line to the log and skipping
// lines it cannot parse.
package feed

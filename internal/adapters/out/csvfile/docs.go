// Package csvfile reads the warehouse reference tables and writes the run
// artifacts as comma separated files.
//
// Inputs:
//   - translation table, with a header row: colour,model,front,back
//   - traversal table, no header: zone,aisle,rack,level,sku
//   - initial inventory, no header: zone,aisle,rack,level,count
//
// Outputs:
//   - final report: location,count for each level below full stock
//   - order log: colour,model for each order of every loaded request
//
// Output lines end with CRLF.
package csvfile

// Package realty computes portfolio-level KPIs for real-estate operations
// from tabular inputs.
//
// The package is made of four independent, stateless functions over [Table]:
//   - [SummarizeOccupancy]: occupancy rate, average and total rent per property.
//   - [BucketizeAging]: arrears summed per day-past-due band of an [AgingScheme].
//   - [CountExpiries]: leases counted per forward-looking window of a [HorizonScheme].
//   - [BridgeNOI]: account level change between two periods' P&L.
//
// Each one has a typed counterpart ([Occupancy], [Aging], [Expiries],
// [Bridge]) working on records instead of tables. Fixed categories (bands,
// horizons) are always present in the output, with a zero value when no row
// falls in them.
//
// Input tables are never modified and no function keeps state between calls:
// they are safe to call concurrently. Malformed inputs fail with an
// [InputShapeError] or an [AmbiguousDateError], and never return partial
// results.
//
// Reading sources, exporting and rendering results are left to the
// sub-packages and to the `rkpi` command-line tool.
package realty

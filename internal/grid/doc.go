// Package grid resolves the span of grid items across viewport breakpoints.
//
// # Overview
//
// Items are declared once, at full width, as a column bucket (1..6) and a row
// bucket (1..3). As the viewport narrows the grid drops from 6 columns to 4,
// 4 and finally 2, and every item's column span is looked up in a fixed table
// keyed by (bucket, breakpoint). Row span never changes.
//
// # Breakpoints
//
// Four tiers, ordered by width:
//
//	Mobile  width <= mobile_max   (default 600)   2 columns
//	Narrow  width <= narrow_max   (default 800)   4 columns
//	Mid     width <= mid_max      (default 1000)  4 columns
//	Full    otherwise                             6 columns
//
// Bounds are closed and the narrowest matching tier wins, so a width of
// exactly 800 is Narrow and exactly 1000 is Mid.
//
// # Span Table
//
//	bucket  Full  Mid  Narrow  Mobile
//	6       6     4    4       2
//	5       5     4    3       2
//	4       4     4    4       2
//	3       3     3    3       2
//	2       2     2    2       2
//	1       1     1    1       2
//
// Bucket 1 keeps a single column until Mobile, where it fills the 2-column
// grid. It is the only bucket allowed to differ from the "fit the container"
// pattern and must not be normalised.
//
// # Errors
//
// All validation happens when values are constructed:
//
//   - ErrInvalidBucket from NewItem, ParseColumnBucket and ParseRowBucket
//   - ErrInvalidBreakpointConfig from NewClassifier and ParseBreakpoint
//   - ErrInvalidTable from NewResolver
//
// Resolution itself cannot fail.
//
// # Concurrency
//
// Classifier, Table and Resolver are immutable values. The package-level
// default resolver is built once at init and is safe to share between
// goroutines without locking.
//
// # Usage Example
//
//	cls, err := grid.NewClassifier(grid.DefaultThresholds())
//	if err != nil {
//		return err
//	}
//	item, err := grid.NewItem(5, 2)
//	if err != nil {
//		return err
//	}
//	span := grid.ResolveSpan(item, cls.Classify(900))
package grid

package grid

import "fmt"

// Table is the span data: the container column count per breakpoint and the
// column span of every bucket at every breakpoint. Spans is indexed by
// bucket-1.
type Table struct {
	Columns [breakpointCount]int
	Spans   [MaxColumnBucket][breakpointCount]int
}

// DefaultTable returns the 6/4/4/2 grid. Bucket 1 stays at 1 column until
// Mobile.
func DefaultTable() Table {
	return Table{
		Columns: [breakpointCount]int{Mobile: 2, Narrow: 4, Mid: 4, Full: 6},
		Spans: [MaxColumnBucket][breakpointCount]int{
			{Mobile: 2, Narrow: 1, Mid: 1, Full: 1},
			{Mobile: 2, Narrow: 2, Mid: 2, Full: 2},
			{Mobile: 2, Narrow: 3, Mid: 3, Full: 3},
			{Mobile: 2, Narrow: 4, Mid: 4, Full: 4},
			{Mobile: 2, Narrow: 3, Mid: 4, Full: 5},
			{Mobile: 2, Narrow: 4, Mid: 4, Full: 6},
		},
	}
}

// Validate checks the resolver invariants:
//   - the full-width grid has MaxColumnBucket columns
//   - every span is at least 1
//   - at Full, span equals the bucket
//   - for buckets >= 2, span never exceeds the container columns
//
// Bucket 1 is exempt from the container check.
func (t Table) Validate() error {
	if t.Columns[Full] != int(MaxColumnBucket) {
		return fmt.Errorf("%w: full-width grid has %d columns, want %d", ErrInvalidTable, t.Columns[Full], MaxColumnBucket)
	}
	for _, bp := range Breakpoints() {
		if t.Columns[bp] < 1 {
			return fmt.Errorf("%w: %s grid has %d columns", ErrInvalidTable, bp, t.Columns[bp])
		}
	}
	for i, row := range t.Spans {
		bucket := ColumnBucket(i + 1)
		if row[Full] != int(bucket) {
			return fmt.Errorf("%w: bucket %d spans %d at full width", ErrInvalidTable, bucket, row[Full])
		}
		for _, bp := range Breakpoints() {
			span := row[bp]
			if span < 1 {
				return fmt.Errorf("%w: bucket %d spans %d at %s", ErrInvalidTable, bucket, span, bp)
			}
			if bucket >= 2 && span > t.Columns[bp] {
				return fmt.Errorf("%w: bucket %d spans %d at %s, grid has %d columns",
					ErrInvalidTable, bucket, span, bp, t.Columns[bp])
			}
		}
	}
	return nil
}

// Resolver looks up spans in a validated table.
type Resolver struct {
	table Table
}

// NewResolver validates t and wraps it.
func NewResolver(t Table) (*Resolver, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{table: t}, nil
}

var defaultResolver = mustResolver(DefaultTable())

func mustResolver(t Table) *Resolver {
	r, err := NewResolver(t)
	if err != nil {
		panic(err)
	}
	return r
}

// DefaultResolver returns the shared resolver over DefaultTable.
func DefaultResolver() *Resolver {
	return defaultResolver
}

// Table returns a copy of the resolver's data.
func (r *Resolver) Table() Table {
	return r.table
}

// Columns returns the container column count at bp.
func (r *Resolver) Columns(bp Breakpoint) int {
	return r.table.Columns[mustBreakpoint(bp)]
}

// ColumnSpan returns the effective column span of bucket at bp.
func (r *Resolver) ColumnSpan(bucket ColumnBucket, bp Breakpoint) int {
	if !bucket.Valid() {
		panic(fmt.Sprintf("grid: column bucket %d outside %d..%d", bucket, MinColumnBucket, MaxColumnBucket))
	}
	return r.table.Spans[bucket-1][mustBreakpoint(bp)]
}

// RowSpan returns the row span of bucket, which is the same at every breakpoint.
func (r *Resolver) RowSpan(bucket RowBucket) int {
	return int(bucket)
}

// Resolve returns the effective span of item at bp.
func (r *Resolver) Resolve(item Item, bp Breakpoint) Span {
	return Span{
		Columns: r.ColumnSpan(item.Columns(), bp),
		Rows:    r.RowSpan(item.Rows()),
	}
}

// Columns returns the default container column count at bp.
func Columns(bp Breakpoint) int {
	return defaultResolver.Columns(bp)
}

// ResolveColumnSpan looks up bucket at bp in the default table.
func ResolveColumnSpan(bucket ColumnBucket, bp Breakpoint) int {
	return defaultResolver.ColumnSpan(bucket, bp)
}

// ResolveRowSpan returns the row span of bucket.
func ResolveRowSpan(bucket RowBucket) int {
	return defaultResolver.RowSpan(bucket)
}

// ResolveSpan resolves item at bp against the default table.
func ResolveSpan(item Item, bp Breakpoint) Span {
	return defaultResolver.Resolve(item, bp)
}

// Breakpoint and bucket values only come from the declared constants or the
// Parse functions; anything else is a programming error.
func mustBreakpoint(bp Breakpoint) Breakpoint {
	if !bp.Valid() {
		panic(fmt.Sprintf("grid: %s is not a declared breakpoint", bp))
	}
	return bp
}

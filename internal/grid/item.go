package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnBucket is the declared full-width column span of an item.
type ColumnBucket int

// RowBucket is the declared row span of an item.
type RowBucket int

// Bucket ranges.
const (
	MinColumnBucket ColumnBucket = 1
	MaxColumnBucket ColumnBucket = 6
	MinRowBucket    RowBucket    = 1
	MaxRowBucket    RowBucket    = 3
)

// Valid reports whether c is in 1..6.
func (c ColumnBucket) Valid() bool {
	return c >= MinColumnBucket && c <= MaxColumnBucket
}

// Valid reports whether r is in 1..3.
func (r RowBucket) Valid() bool {
	return r >= MinRowBucket && r <= MaxRowBucket
}

// ParseColumnBucket converts n to a ColumnBucket, rejecting values outside 1..6.
func ParseColumnBucket(n int) (ColumnBucket, error) {
	c := ColumnBucket(n)
	if !c.Valid() {
		return 0, fmt.Errorf("%w: column bucket %d outside %d..%d", ErrInvalidBucket, n, MinColumnBucket, MaxColumnBucket)
	}
	return c, nil
}

// ParseRowBucket converts n to a RowBucket, rejecting values outside 1..3.
func ParseRowBucket(n int) (RowBucket, error) {
	r := RowBucket(n)
	if !r.Valid() {
		return 0, fmt.Errorf("%w: row bucket %d outside %d..%d", ErrInvalidBucket, n, MinRowBucket, MaxRowBucket)
	}
	return r, nil
}

// Item is a declared grid item. Its fields are only reachable through
// accessors so a constructed Item always holds valid buckets.
type Item struct {
	columns ColumnBucket
	rows    RowBucket
}

// NewItem validates both buckets and returns the item.
func NewItem(columns, rows int) (Item, error) {
	c, err := ParseColumnBucket(columns)
	if err != nil {
		return Item{}, err
	}
	r, err := ParseRowBucket(rows)
	if err != nil {
		return Item{}, err
	}
	return Item{columns: c, rows: r}, nil
}

// MustItem is NewItem for fixed declarations; it panics on invalid buckets.
func MustItem(columns, rows int) Item {
	item, err := NewItem(columns, rows)
	if err != nil {
		panic(err)
	}
	return item
}

// ParseItem reads the "COLUMNSxROWS" notation, e.g. "5x2".
func ParseItem(s string) (Item, error) {
	cols, rows, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return Item{}, fmt.Errorf("%w: %q is not in COLUMNSxROWS form", ErrInvalidBucket, s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cols))
	if err != nil {
		return Item{}, fmt.Errorf("%w: column bucket %q: %v", ErrInvalidBucket, cols, err)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rows))
	if err != nil {
		return Item{}, fmt.Errorf("%w: row bucket %q: %v", ErrInvalidBucket, rows, err)
	}
	return NewItem(c, r)
}

// Columns returns the declared column bucket.
func (i Item) Columns() ColumnBucket { return i.columns }

// Rows returns the declared row bucket.
func (i Item) Rows() RowBucket { return i.rows }

// IsZero reports whether i was never constructed.
func (i Item) IsZero() bool { return i.columns == 0 && i.rows == 0 }

func (i Item) String() string {
	return fmt.Sprintf("%dx%d", i.columns, i.rows)
}

// Span is the resolved track count of an item at one breakpoint.
type Span struct {
	Columns int
	Rows    int
}

func (s Span) String() string {
	return fmt.Sprintf("%dx%d", s.Columns, s.Rows)
}

package color

// Table is a palette precomputed for every iteration count of one budget.
//
// An escape-time pass asks for the color of the same few hundred counts
// millions of times; a Table answers with a slice index instead of an HSB
// conversion. Entry i holds the color for i iterations, entry max holds the
// in-set color.
type Table struct {
	entries []ColorU8
}

// NewTable evaluates fn for every count in [0, maxIterations].
// A negative maxIterations yields an empty table.
func NewTable(maxIterations int, fn func(iterations int) ColorU8) *Table {
	if maxIterations < 0 {
		return &Table{}
	}
	entries := make([]ColorU8, maxIterations+1)
	for i := range entries {
		entries[i] = fn(i)
	}
	return &Table{entries: entries}
}

// At returns the color for the given iteration count.
// Counts outside the table are clamped to its ends.
func (t *Table) At(iterations int) ColorU8 {
	if len(t.entries) == 0 {
		return Black
	}
	if iterations < 0 {
		iterations = 0
	}
	if iterations >= len(t.entries) {
		iterations = len(t.entries) - 1
	}
	return t.entries[iterations]
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

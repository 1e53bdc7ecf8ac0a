package rows

import "github.com/google/btree"

// freeRows is the min-ordered set of rows not currently in use.
// It is never empty: taking the last row inserts the next one.
type freeRows struct {
	tree *btree.BTreeG[int]
}

func newFreeRows() *freeRows {
	f := &freeRows{tree: btree.NewG[int](8, func(a, b int) bool { return a < b })}
	f.tree.ReplaceOrInsert(1)
	return f
}

// take removes and returns the lowest free row.
func (f *freeRows) take() int {
	row, _ := f.tree.DeleteMin()
	if f.tree.Len() == 0 {
		f.tree.ReplaceOrInsert(row + 1)
	}
	return row
}

// release returns row to the set.
func (f *freeRows) release(row int) {
	f.tree.ReplaceOrInsert(row)
}

package util

// Cell is used as the return type for the testing framework.
// X is the column and Y is the row of the cell.
type Cell struct {
	X, Y int
}

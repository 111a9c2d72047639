package gol

// Next state of a cell given its state and live neighbour count:
// alive with exactly 3 neighbours, or alive already with exactly 2
func alive(cell, neighbours uint8) uint8 {
	if neighbours == 3 || (neighbours == 2 && cell != 0) {
		return 1
	}
	return 0
}

// grid.go — digest bits to symmetric boolean occupancy grid.
package pixel

// Grid is a square boolean occupancy matrix, row-major. A true cell is
// rendered in the foreground color. Every grid built by buildGrid satisfies
// grid[r][c] == grid[r][len(grid)-1-c] (mirror symmetry about the vertical
// center).
type Grid [][]bool

// Dimension returns the number of blocks per row/column.
func (g Grid) Dimension() int { return len(g) }

// buildGrid derives the occupancy grid from digest bytes. The first byte is
// reserved for color selection and skipped. Remaining bits are consumed
// MSB-first within each byte to fill the left half of the grid column by
// column; each set cell is mirrored into the right half. For odd sizes the
// central column is its own mirror, so it may be set twice (idempotent).
func buildGrid(digest []byte, size int) Grid {
	grid := make(Grid, size)
	for i := range grid {
		grid[i] = make([]bool, size)
	}

	body := digest[1:]
	halfColumns := size/2 + size%2

	for cell := 0; cell < size*halfColumns; cell++ {
		if !getBit(body, cell) {
			continue
		}
		column := cell / size
		row := cell % size
		grid[row][column] = true
		grid[row][size-column-1] = true
	}

	return grid
}

// getBit reports whether bit n of data is set, counting bits MSB-first
// within each byte.
func getBit(data []byte, n int) bool {
	return data[n/8]>>(7-n%8)&1 == 1
}

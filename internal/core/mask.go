package core

// Mask is a coarse silhouette laid over a bounding box.
// Each cell covers an equal share of the box; only solid cells collide.
// The zero Mask behaves as a fully solid box.
type Mask struct {
	cols, rows int
	bits       []bool
}

// MaskFromRows builds a mask from text rows. Any non-space rune is solid.
// Short rows are padded with empty cells.
func MaskFromRows(rows ...string) Mask {
	cols := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > cols {
			cols = n
		}
	}
	m := Mask{cols: cols, rows: len(rows), bits: make([]bool, cols*len(rows))}
	for y, row := range rows {
		for x, r := range []rune(row) {
			m.bits[y*cols+x] = r != ' '
		}
	}
	return m
}

// Cols returns the number of mask columns.
func (m Mask) Cols() int { return m.cols }

// Rows returns the number of mask rows.
func (m Mask) Rows() int { return m.rows }

// Solid reports whether the cell at (col, row) is part of the silhouette.
func (m Mask) Solid(col, row int) bool {
	if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
		return false
	}
	return m.bits[row*m.cols+col]
}

// cell returns the play-area rectangle covered by mask cell (col, row)
// when the mask is stretched over box. A box smaller than the mask still
// gives every cell at least one unit.
func (m Mask) cell(box Rect, col, row int) Rect {
	x0 := box.X + col*box.W/m.cols
	x1 := Max(box.X+(col+1)*box.W/m.cols, x0+1)
	y0 := box.Y + row*box.H/m.rows
	y1 := Max(box.Y+(row+1)*box.H/m.rows, y0+1)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Overlaps reports whether region touches a solid cell of the mask
// stretched over box. The bounding boxes are tested first.
func (m Mask) Overlaps(box, region Rect) bool {
	overlap, ok := box.Intersection(region)
	if !ok {
		return false
	}
	if m.cols == 0 || m.rows == 0 {
		return true
	}
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			if m.bits[row*m.cols+col] && m.cell(box, col, row).Intersects(overlap) {
				return true
			}
		}
	}
	return false
}

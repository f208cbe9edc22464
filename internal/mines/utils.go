package mines

// celltodo is the flood fill worklist. Cells are pushed at most once
// because they are marked revealed before being pushed.
type celltodo struct {
	stack []int
}

func (std *celltodo) add(i int) {
	std.stack = append(std.stack, i)
}

func (std *celltodo) next() (i int, ok bool) {
	n := len(std.stack)
	if n == 0 {
		return -1, false
	}
	i = std.stack[n-1]
	std.stack = std.stack[:n-1]
	return i, true
}

package mines

// celltodo is a FIFO of cell indices threaded through a slice with one slot
// per cell, so an index must not be added again before it is taken.
type celltodo struct {
	next       []int
	head, tail int
}

func newCelltodo(size int) *celltodo {
	return &celltodo{next: make([]int, size), head: -1, tail: -1}
}

func (ct *celltodo) add(i int) {
	ct.next[i] = -1
	if ct.empty() {
		ct.head, ct.tail = i, i
		return
	}
	ct.next[ct.tail] = i
	ct.tail = i
}

func (ct *celltodo) empty() bool {
	return ct.head == -1
}

func (ct *celltodo) take() int {
	i := ct.head
	if ct.head = ct.next[i]; ct.head == -1 {
		ct.tail = -1
	}
	return i
}

package handlemap

// freeList is a stack of slot indices that have been removed and not yet
// reused. LIFO order keeps reuse cache-friendly, but correctness only
// requires that it holds every removed-and-unreused index.
type freeList struct {
	indices []uint32
}

func (f *freeList) push(i uint32) {
	f.indices = append(f.indices, i)
}

func (f *freeList) pop() (uint32, bool) {
	n := len(f.indices)
	if n == 0 {
		return 0, false
	}
	i := f.indices[n-1]
	f.indices = f.indices[:n-1]
	return i, true
}

func (f *freeList) size() int {
	return len(f.indices)
}

func (f *freeList) reset() {
	f.indices = f.indices[:0]
}

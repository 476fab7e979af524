package shortest

import "container/heap"

// entry is a tentative (distance, node) pair waiting in the frontier.
type entry struct {
	node string
	dist int64
}

// frontier is a min-heap of entries ordered by distance. A node may appear
// several times; entries superseded by a smaller distance are skipped when
// popped rather than removed.
type frontier []entry

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(entry)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]
	return e
}

func (f *frontier) push(node string, dist int64) {
	heap.Push(f, entry{node: node, dist: dist})
}

func (f *frontier) pop() entry {
	return heap.Pop(f).(entry)
}

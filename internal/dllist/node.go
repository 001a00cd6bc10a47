package dllist

const (
	// headSlot номер ячейки головного стража в арене.
	headSlot = 0
	// tailSlot номер ячейки хвостового стража в арене.
	tailSlot = 1
	// sentinels количество ячеек постоянно занятых стражами.
	sentinels = 2
)

// node узел содержащий данное значение в связанном списке.
// Связи хранятся в виде номеров ячеек арены.
type node[T any] struct {
	prev int
	next int

	value T
}

// isSentinel проверка, что данная ячейка принадлежит стражу.
func isSentinel(slot int) bool {
	return slot == headSlot || slot == tailSlot
}

// initArena создание арены содержащей только связанные друг с другом стражи.
func (l *List[T]) initArena(capacity int) {
	l.nodes = make([]*node[T], sentinels, sentinels+capacity)
	l.nodes[headSlot] = &node[T]{prev: -1, next: tailSlot}
	l.nodes[tailSlot] = &node[T]{prev: headSlot, next: -1}
	l.free = l.free[:0]
	l.count = 0
}

// lazyInit создаёт стражей для списка, который ещё не использовался.
func (l *List[T]) lazyInit() {
	if l.nodes == nil {
		l.initArena(l.capacity)
	}
}

// alloc выделение ячейки под новый узел с данным значением.
func (l *List[T]) alloc(v T) int {
	n := &node[T]{
		prev:  -1,
		next:  -1,
		value: v,
	}

	if last := len(l.free) - 1; last >= 0 {
		slot := l.free[last]
		l.free = l.free[:last]
		l.nodes[slot] = n
		return slot
	}

	l.nodes = append(l.nodes, n)
	return len(l.nodes) - 1
}

// release освобождение ячейки узла. Значение отдаётся GC вместе с узлом.
func (l *List[T]) release(slot int) {
	l.nodes[slot] = nil
	l.free = append(l.free, slot)
}

// linkSentinels связывает стражей друг с другом, что соответствует пустому списку.
func (l *List[T]) linkSentinels() {
	l.nodes[headSlot].next = tailSlot
	l.nodes[tailSlot].prev = headSlot
}

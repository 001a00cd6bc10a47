package dllist

// Append добавление нового значения в конец списка.
func (l *List[T]) Append(v T) {
	l.lazyInit()
	l.linkAfter(l.nodes[tailSlot].prev, v)
}

// Insert вставка значения на данную позицию. Допустимы индексы [0, Len()],
// Len() означает добавление в конец.
func (l *List[T]) Insert(index int, v T) error {
	if index < 0 || index > l.count {
		return errorIndexOutOfRange("insert", index, l.count)
	}

	if index == l.count {
		l.Append(v)
		return nil
	}

	l.linkAfter(l.nodeBefore(index), v)
	return nil
}

// RemoveAt удаление элемента на данной позиции с возвратом его значения.
func (l *List[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= l.count {
		var zero T
		return zero, errorIndexOutOfRange("remove at", index, l.count)
	}

	slot := l.nodes[l.nodeBefore(index)].next
	return l.unlink(slot), nil
}

// Get получение ссылки на значение на данной позиции. Ссылка остаётся
// действительной пока элемент находится в списке.
func (l *List[T]) Get(index int) (*T, error) {
	if index < 0 || index >= l.count {
		return nil, errorIndexOutOfRange("get", index, l.count)
	}

	slot := l.nodes[l.nodeBefore(index)].next
	return &l.nodes[slot].value, nil
}

// nodeBefore возвращает ячейку узла стоящего прямо перед данным индексом.
// Обход идёт от ближайшего к индексу стража.
func (l *List[T]) nodeBefore(index int) int {
	if index < l.count/2 {
		slot := headSlot
		for i := 0; i < index; i++ {
			slot = l.nodes[slot].next
		}
		return slot
	}

	slot := tailSlot
	for i := l.count; i >= index; i-- {
		slot = l.nodes[slot].prev
	}
	return slot
}

// linkAfter вставка нового узла после данного.
func (l *List[T]) linkAfter(prev int, v T) int {
	slot := l.alloc(v)
	next := l.nodes[prev].next

	n := l.nodes[slot]
	n.prev = prev
	n.next = next
	l.nodes[prev].next = slot
	l.nodes[next].prev = slot
	l.count++

	return slot
}

// unlink удаление узла из списка с возвратом его значения.
func (l *List[T]) unlink(slot int) T {
	n := l.nodes[slot]
	l.nodes[n.prev].next = n.next
	l.nodes[n.next].prev = n.prev
	v := n.value

	l.release(slot)
	l.count--
	l.gen++

	return v
}

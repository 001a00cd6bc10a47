package dllist

// Clone создание нового списка с копиями всех элементов данного.
// Копия получает политику сравнения исходного списка, но не политику
// освобождения данных: ответственным за данные остаётся исходный список.
func (l *List[T]) Clone() *List[T] {
	res := New[T](WithCapacity[T](l.count), WithLogger[T](l.log))
	res.copyFrom(l)

	return res
}

// Assign замена содержимого списка копиями элементов other. Текущие элементы
// удаляются через Clear с вызовом собственной политики освобождения данных,
// которая сохраняется. Политика сравнения берётся у other.
func (l *List[T]) Assign(other *List[T]) {
	if l == other {
		return
	}

	l.Clear()
	l.copyFrom(other)
}

func (l *List[T]) copyFrom(other *List[T]) {
	l.lazyInit()
	l.equaler = other.equaler
	if other.count == 0 {
		return
	}

	for slot := other.nodes[headSlot].next; slot != tailSlot; slot = other.nodes[slot].next {
		l.Append(other.nodes[slot].value)
	}

	if l.log != nil {
		l.log.DebugCopy(other.count)
	}
}

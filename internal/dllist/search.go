package dllist

// IndexOf индекс первого элемента равного данному или NotFound, если такого нет.
func (l *List[T]) IndexOf(v T) int {
	if l.count == 0 {
		return NotFound
	}

	var index int
	for slot := l.nodes[headSlot].next; slot != tailSlot; slot = l.nodes[slot].next {
		if l.equal(l.nodes[slot].value, v) {
			return index
		}
		index++
	}

	return NotFound
}

// Contains проверка наличия в списке элемента равного данному.
func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) != NotFound
}

// RemoveItem удаление первого элемента равного данному. Возвращает false
// если такого элемента не нашлось.
func (l *List[T]) RemoveItem(v T) bool {
	return l.RemoveItemWith(v, nil)
}

// RemoveItemWith то же самое, что и RemoveItem, но с вызовом cleanup
// над удалённым значением.
func (l *List[T]) RemoveItemWith(v T, cleanup func(v T)) bool {
	index := l.IndexOf(v)
	if index == NotFound {
		return false
	}

	removed, err := l.RemoveAt(index)
	if err != nil {
		// Индекс только что получен и не может выйти за пределы.
		panic(err)
	}

	if cleanup != nil {
		cleanup(removed)
	}

	return true
}

// Match проверка, что список содержит ровно данные элементы в том же порядке.
func (l *List[T]) Match(items []T) bool {
	if len(items) != l.count {
		return false
	}

	var i int
	for c := l.ForwardBegin(); !c.AtEnd(); c.Next() {
		if !l.equal(c.Value(), items[i]) {
			return false
		}
		i++
	}

	return true
}

// Values возвращает копию элементов списка в порядке от начала к концу.
func (l *List[T]) Values() []T {
	res := make([]T, 0, l.count)
	for c := l.ForwardBegin(); !c.AtEnd(); c.Next() {
		res = append(res, c.Value())
	}

	return res
}

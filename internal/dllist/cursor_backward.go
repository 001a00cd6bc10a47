package dllist

// BackwardCursor курсор обхода списка от конца к началу.
// И Next, и Prev сдвигают его в сторону головы списка.
type BackwardCursor[T any] struct {
	c cursor[T]
}

// BackwardBegin курсор на последнем элементе списка.
func (l *List[T]) BackwardBegin() BackwardCursor[T] {
	l.lazyInit()
	return BackwardCursor[T]{c: newCursor(l, l.nodes[tailSlot].prev)}
}

// BackwardEnd курсор на головном страже.
func (l *List[T]) BackwardEnd() BackwardCursor[T] {
	l.lazyInit()
	return BackwardCursor[T]{c: newCursor(l, headSlot)}
}

// Value значение текущего элемента.
func (c *BackwardCursor[T]) Value() T {
	return c.c.node("backward cursor value").value
}

// Ptr ссылка на значение текущего элемента.
func (c *BackwardCursor[T]) Ptr() *T {
	return &c.c.node("backward cursor reference").value
}

// AtEnd проверка, что курсор вышел на головной страж.
func (c *BackwardCursor[T]) AtEnd() bool {
	return c.c.slot == headSlot
}

// Equal проверка, что курсоры указывают на один и тот же узел.
func (c *BackwardCursor[T]) Equal(o BackwardCursor[T]) bool {
	return c.c.same(&o.c)
}

// Prev переход к предыдущему элементу.
func (c *BackwardCursor[T]) Prev() *BackwardCursor[T] {
	c.c.step("backward cursor prev", headSlot, false)
	return c
}

// PostPrev переход к предыдущему элементу с возвратом курсора на прежней позиции.
func (c *BackwardCursor[T]) PostPrev() BackwardCursor[T] {
	prev := *c
	c.Prev()
	return prev
}

// Next так же переходит к предыдущему элементу.
func (c *BackwardCursor[T]) Next() *BackwardCursor[T] {
	return c.Prev()
}

// PostNext то же самое, что и PostPrev.
func (c *BackwardCursor[T]) PostNext() BackwardCursor[T] {
	return c.PostPrev()
}

// Remove удаление текущего элемента. Курсор переставляется на следующий
// узел, так что Prev приведёт к элементу стоявшему перед удалённым.
func (c *BackwardCursor[T]) Remove() {
	c.c.remove("backward cursor remove", false, nil)
}

// RemoveWith то же самое, что и Remove, но с вызовом cleanup над удалённым значением.
func (c *BackwardCursor[T]) RemoveWith(cleanup func(v T)) {
	c.c.remove("backward cursor remove", false, cleanup)
}

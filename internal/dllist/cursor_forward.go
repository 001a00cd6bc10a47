package dllist

// ForwardCursor курсор обхода списка от начала к концу.
//
//	for c := l.ForwardBegin(); !c.AtEnd(); c.Next() {
//	    fmt.Println(c.Value())
//	}
type ForwardCursor[T any] struct {
	c cursor[T]
}

// ForwardBegin курсор на первом элементе списка. Для пустого списка
// совпадает с ForwardEnd.
func (l *List[T]) ForwardBegin() ForwardCursor[T] {
	l.lazyInit()
	return ForwardCursor[T]{c: newCursor(l, l.nodes[headSlot].next)}
}

// ForwardEnd курсор на хвостовом страже.
func (l *List[T]) ForwardEnd() ForwardCursor[T] {
	l.lazyInit()
	return ForwardCursor[T]{c: newCursor(l, tailSlot)}
}

// Value значение текущего элемента.
func (c *ForwardCursor[T]) Value() T {
	return c.c.node("forward cursor value").value
}

// Ptr ссылка на значение текущего элемента.
func (c *ForwardCursor[T]) Ptr() *T {
	return &c.c.node("forward cursor reference").value
}

// AtEnd проверка, что курсор вышел на хвостовой страж.
func (c *ForwardCursor[T]) AtEnd() bool {
	return c.c.slot == tailSlot
}

// Equal проверка, что курсоры указывают на один и тот же узел.
func (c *ForwardCursor[T]) Equal(o ForwardCursor[T]) bool {
	return c.c.same(&o.c)
}

// Next переход к следующему элементу.
func (c *ForwardCursor[T]) Next() *ForwardCursor[T] {
	c.c.step("forward cursor next", tailSlot, true)
	return c
}

// PostNext переход к следующему элементу с возвратом курсора
// на прежней позиции.
func (c *ForwardCursor[T]) PostNext() ForwardCursor[T] {
	prev := *c
	c.Next()
	return prev
}

// Remove удаление текущего элемента. Курсор переставляется на предыдущий
// узел, так что Next приведёт к элементу следовавшему за удалённым.
func (c *ForwardCursor[T]) Remove() {
	c.c.remove("forward cursor remove", true, nil)
}

// RemoveWith то же самое, что и Remove, но с вызовом cleanup над удалённым значением.
func (c *ForwardCursor[T]) RemoveWith(cleanup func(v T)) {
	c.c.remove("forward cursor remove", true, cleanup)
}

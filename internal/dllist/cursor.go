package dllist

import "github.com/sirkon/errors"

// cursor общая часть курсоров: ячейка узла в списке и поколение списка,
// в котором курсор был действителен последний раз.
type cursor[T any] struct {
	list *List[T]
	slot int
	gen  uint64
}

func newCursor[T any](l *List[T], slot int) cursor[T] {
	return cursor[T]{
		list: l,
		slot: slot,
		gen:  l.gen,
	}
}

// check паникует, если после создания курсора из списка был удалён
// какой-то узел не через этот курсор.
func (c *cursor[T]) check(op string) {
	if c.list == nil {
		panic(errors.Wrap(ErrorCursorInvalidated, op).Str("reason", "cursor is not bound to a list"))
	}

	if c.gen != c.list.gen {
		panic(
			errors.Wrap(ErrorCursorInvalidated, op).
				Uint64("cursor-generation", c.gen).
				Uint64("list-generation", c.list.gen),
		)
	}
}

func (c *cursor[T]) node(op string) *node[T] {
	c.check(op)
	if isSentinel(c.slot) {
		panic(errors.Wrap(ErrorInvalidCursorDereference, op).Int("sentinel-slot", c.slot))
	}

	return c.list.nodes[c.slot]
}

func (c *cursor[T]) step(op string, boundary int, forward bool) {
	c.check(op)
	if c.slot == boundary {
		panic(errors.Wrap(ErrorCursorExhausted, op))
	}

	n := c.list.nodes[c.slot]
	if forward {
		c.slot = n.next
	} else {
		c.slot = n.prev
	}
}

// remove удаляет текущий узел и переставляет курсор на данного соседа.
func (c *cursor[T]) remove(op string, forward bool, cleanup func(v T)) {
	n := c.node(op)
	neighbour := n.prev
	if !forward {
		neighbour = n.next
	}

	v := c.list.unlink(c.slot)
	c.slot = neighbour
	c.gen = c.list.gen

	if cleanup != nil {
		cleanup(v)
	}
}

func (c *cursor[T]) same(o *cursor[T]) bool {
	return c.list == o.list && c.slot == o.slot
}

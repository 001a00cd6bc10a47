package dllist

import "github.com/sirkon/deepequal"

// Equaler политика сравнения элементов списка.
type Equaler[T any] interface {
	Equal(a, b T) bool
}

// EqualFunc адаптер функции к Equaler.
type EqualFunc[T any] func(a, b T) bool

// Equal для реализации Equaler.
func (f EqualFunc[T]) Equal(a, b T) bool {
	return f(a, b)
}

// Disposer политика освобождения данных, на которые ссылаются элементы.
// Вызывается один раз со всем списком перед удалением его узлов и должна
// сама обойти элементы. Узлы при этом удалять не нужно.
type Disposer[T any] interface {
	Dispose(l *List[T])
}

// DisposerFunc адаптер функции к Disposer.
type DisposerFunc[T any] func(l *List[T])

// Dispose для реализации Disposer.
func (f DisposerFunc[T]) Dispose(l *List[T]) {
	f(l)
}

// DisposeEach политика освобождения вызывающая release для каждого элемента
// в порядке от начала к концу.
func DisposeEach[T any](release func(v T)) Disposer[T] {
	return DisposerFunc[T](func(l *List[T]) {
		for c := l.ForwardBegin(); !c.AtEnd(); c.Next() {
			release(c.Value())
		}
	})
}

func (l *List[T]) equal(a, b T) bool {
	if l.equaler != nil {
		return l.equaler.Equal(a, b)
	}

	return any(a) == any(b)
}

// DeepEqual политика сравнения по содержимому, подходит для элементов
// несравнимых типов вроде срезов и отображений.
func DeepEqual[T any]() Equaler[T] {
	return EqualFunc[T](func(a, b T) bool {
		return deepequal.Equal(a, b)
	})
}
